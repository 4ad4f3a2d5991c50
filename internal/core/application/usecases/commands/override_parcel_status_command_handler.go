package commands

import (
	"context"
	"log/slog"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/tracking"
	"parcelflow/internal/core/ports"
)

// OverrideParcelStatusCommandHandler forces a parcel into an arbitrary
// status. The forward-only rule is bypassed but the change is still
// ledgered, flagged as an override, so the audit trail stays complete.
type OverrideParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
	notifier   ports.Notifier
	log        *slog.Logger
}

// NewOverrideParcelStatusCommandHandler creates a handler for status overrides.
func NewOverrideParcelStatusCommandHandler(
	uowFactory ParcelUoWFactory,
	notifier ports.Notifier,
	log *slog.Logger,
) OverrideParcelStatusCommandHandler {
	return OverrideParcelStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		log:        log,
	}
}

// Handle processes the status override command.
func (h OverrideParcelStatusCommandHandler) Handle(ctx context.Context, cmd OverrideParcelStatusCommand) error {
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

	parcelRepo := uow.ParcelRepository()

	parcels, err := parcelRepo.GetAllByIDsForUpdate(ctx, []kernel.UUID{cmd.ParcelID()})
	if err != nil {
		return err
	}
	p := parcels[0]

	from := p.Status()
	if err = p.OverrideStatus(cmd.NewStatus()); err != nil {
		return err
	}
	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}

	entry, err := tracking.NewEntry(
		kernel.NewUUID(), p.ID(), p.Status(),
		&from, p.Mission(), cmd.ActorID(), cmd.Note(), true, time.Now().UTC())
	if err != nil {
		return err
	}
	if err = uow.TrackingRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.ParcelStatusChanged(ctx, entry); err != nil {
		h.log.Warn("parcel status notification failed",
			"parcelId", p.ID().String(), "error", err)
	}

	return nil
}
