package commands

import (
	"context"
	"log/slog"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/tracking"
	"parcelflow/internal/core/ports"
)

// CompleteMissionCommandHandler verifies the completion code and closes the
// mission. On success every parcel still held by the mission advances to
// the kind's happy-path status (At-warehouse for pickups, Delivered for
// deliveries) with a ledger entry each; demands stay consumed. A wrong code
// leaves everything untouched.
type CompleteMissionCommandHandler struct {
	uowFactory MissionUoWFactory
	notifier   ports.Notifier
	log        *slog.Logger
}

// NewCompleteMissionCommandHandler creates a handler for mission completion.
func NewCompleteMissionCommandHandler(
	uowFactory MissionUoWFactory,
	notifier ports.Notifier,
	log *slog.Logger,
) CompleteMissionCommandHandler {
	return CompleteMissionCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		log:        log,
	}
}

// Handle processes the mission completion command.
func (h CompleteMissionCommandHandler) Handle(ctx context.Context, cmd CompleteMissionCommand) error {
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

	if err = m.Complete(cmd.PresentedCode()); err != nil {
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
	final := m.CompletionParcelStatus()
	entries := make([]*tracking.Entry, 0, len(parcels))

	for _, p := range parcels {
		from := p.Status()

		changed, changeErr := p.AdvanceTo(final)
		if changeErr != nil {
			return changeErr
		}
		if err = p.DetachFromMission(); err != nil {
			return err
		}
		if err = parcelRepo.Update(ctx, p); err != nil {
			return err
		}

		if !changed {
			continue
		}
		entry, entryErr := tracking.NewEntry(
			kernel.NewUUID(), p.ID(), p.Status(),
			&from, &missionID, cmd.ActorID(), "", false, now)
		if entryErr != nil {
			return entryErr
		}
		if err = trackingRepo.Add(ctx, entry); err != nil {
			return err
		}
		entries = append(entries, entry)
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
	for _, entry := range entries {
		if err = h.notifier.ParcelStatusChanged(ctx, entry); err != nil {
			h.log.Warn("parcel status notification failed",
				"parcelId", entry.Parcel().String(), "error", err)
		}
	}

	return nil
}
