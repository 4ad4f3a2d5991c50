package commands

import (
	"context"
	"log/slog"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/mission"
	"parcelflow/internal/core/domain/model/tracking"
	"parcelflow/internal/core/ports"
	"parcelflow/internal/pkg/errs"
)

// ErrParcelNotHeldByMission is returned when the parcel is not currently
// held by the mission named in the command.
var ErrParcelNotHeldByMission = errs.NewConflictError("parcel", "parcel is not held by this mission")

// MarkParcelOutcomeCommandHandler records a per-parcel outcome mid-mission.
// A terminal outcome removes the parcel from the mission's remaining set, so
// mission completion only touches parcels without a final outcome. A
// non-terminal outcome is a progress report; the mission keeps holding the
// parcel.
type MarkParcelOutcomeCommandHandler struct {
	uowFactory MissionUoWFactory
	notifier   ports.Notifier
	log        *slog.Logger
}

// NewMarkParcelOutcomeCommandHandler creates a handler for parcel outcomes.
func NewMarkParcelOutcomeCommandHandler(
	uowFactory MissionUoWFactory,
	notifier ports.Notifier,
	log *slog.Logger,
) MarkParcelOutcomeCommandHandler {
	return MarkParcelOutcomeCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		log:        log,
	}
}

// Handle processes the parcel outcome command.
func (h MarkParcelOutcomeCommandHandler) Handle(ctx context.Context, cmd MarkParcelOutcomeCommand) error {
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

	m, err := uow.MissionRepository().GetForUpdate(ctx, cmd.MissionID())
	if err != nil {
		return err
	}
	if m.Status() != mission.InProgress {
		return mission.ErrNotInProgress
	}

	parcelRepo := uow.ParcelRepository()
	parcels, err := parcelRepo.GetAllByIDsForUpdate(ctx, []kernel.UUID{cmd.ParcelID()})
	if err != nil {
		return err
	}
	p := parcels[0]

	if p.Mission() == nil || !p.Mission().IsEqual(cmd.MissionID()) {
		return ErrParcelNotHeldByMission
	}

	from := p.Status()
	changed, err := p.ChangeStatus(cmd.Outcome())
	if err != nil {
		return err
	}

	// Only a terminal outcome releases the parcel; a mid-route progress
	// report leaves it on the mission so completion still advances it and
	// no other mission can claim it.
	if cmd.Outcome().IsTerminal() {
		if err = p.DetachFromMission(); err != nil {
			return err
		}
	}
	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}

	var entry *tracking.Entry
	if changed {
		missionID := cmd.MissionID()
		entry, err = tracking.NewEntry(
			kernel.NewUUID(), p.ID(), p.Status(),
			&from, &missionID, cmd.ActorID(), cmd.Note(), false, time.Now().UTC())
		if err != nil {
			return err
		}
		if err = uow.TrackingRepository().Add(ctx, entry); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if entry != nil {
		if err = h.notifier.ParcelStatusChanged(ctx, entry); err != nil {
			h.log.Warn("parcel status notification failed",
				"parcelId", p.ID().String(), "error", err)
		}
	}

	return nil
}
