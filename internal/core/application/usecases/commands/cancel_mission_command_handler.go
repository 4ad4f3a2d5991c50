package commands

import (
	"context"
	"log/slog"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/tracking"
	"parcelflow/internal/core/ports"
)

// CancelMissionCommandHandler aborts a mission. Parcels the mission still
// holds revert to the status they had before assignment (recorded in the
// ledger as forced corrections), and the mission's demands return to the
// assignable pool. Parcels already marked with an outcome keep it.
type CancelMissionCommandHandler struct {
	uowFactory MissionUoWFactory
	notifier   ports.Notifier
	log        *slog.Logger
}

// NewCancelMissionCommandHandler creates a handler for mission cancellation.
func NewCancelMissionCommandHandler(
	uowFactory MissionUoWFactory,
	notifier ports.Notifier,
	log *slog.Logger,
) CancelMissionCommandHandler {
	return CancelMissionCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		log:        log,
	}
}

// Handle processes the mission cancellation command.
func (h CancelMissionCommandHandler) Handle(ctx context.Context, cmd CancelMissionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	missionRepo := uow.MissionRepository()

	m, err := missionRepo.GetForUpdate(ctx, cmd.MissionID())
	if err != nil {
		return err
	}

	if err = m.Cancel(cmd.Reason()); err != nil {
		return err
	}

	parcelRepo := uow.ParcelRepository()
	trackingRepo := uow.TrackingRepository()

	parcels, err := parcelRepo.GetAllByMission(ctx, m.ID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	missionID := m.ID()

	for _, p := range parcels {
		from := p.Status()

		restored, revertErr := p.RevertFromMission()
		if revertErr != nil {
			return revertErr
		}
		if err = parcelRepo.Update(ctx, p); err != nil {
			return err
		}

		if restored == from {
			continue
		}
		entry, entryErr := tracking.NewEntry(
			kernel.NewUUID(), p.ID(), restored,
			&from, &missionID, cmd.ActorID(), cmd.Reason(), true, now)
		if entryErr != nil {
			return entryErr
		}
		if err = trackingRepo.Add(ctx, entry); err != nil {
			return err
		}
	}

	demandRepo := uow.DemandRepository()
	demands, err := demandRepo.GetAllByIDsForUpdate(ctx, m.DemandIDs())
	if err != nil {
		return err
	}
	for _, d := range demands {
		if err = d.ReleaseFromMission(); err != nil {
			return err
		}
		if err = demandRepo.Update(ctx, d); err != nil {
			return err
		}
	}

	if err = missionRepo.Update(ctx, m); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.MissionStatusChanged(ctx, m); err != nil {
		h.log.Warn("mission status notification failed",
			"missionId", m.ID().String(), "error", err)
	}

	return nil
}
