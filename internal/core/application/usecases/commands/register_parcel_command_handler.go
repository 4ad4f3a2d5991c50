package commands

import (
	"context"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/parcel"
	"parcelflow/internal/core/domain/model/tracking"
)

// RegisterParcelCommandHandler handles the business logic for parcel intake.
// Generates the tracking code, creates the parcel in Pending status, and
// appends the first ledger entry in the same transaction.
type RegisterParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewRegisterParcelCommandHandler creates a handler for parcel registration.
func NewRegisterParcelCommandHandler(uowFactory ParcelUoWFactory) RegisterParcelCommandHandler {
	return RegisterParcelCommandHandler{uowFactory: uowFactory}
}

// Handle processes the parcel registration command and returns the tracking
// code handed to the shipper.
func (h RegisterParcelCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterParcelCommand,
) (kernel.TrackingCode, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.TrackingCode{}, err
	}

	trackingCode, err := kernel.NewTrackingCode()
	if err != nil {
		return kernel.TrackingCode{}, err
	}

	recipient, err := parcel.NewRecipient(
		cmd.RecipientName(), cmd.PrimaryPhone(), cmd.SecondaryPhone(), cmd.Address(), cmd.Region())
	if err != nil {
		return kernel.TrackingCode{}, err
	}

	newParcel, err := parcel.NewParcel(
		kernel.NewUUID(), trackingCode, cmd.ShipperID(), recipient,
		cmd.WeightGrams(), cmd.PriceCents(), cmd.FeesCents(), cmd.Pieces(), cmd.Article())
	if err != nil {
		return kernel.TrackingCode{}, err
	}

	entry, err := tracking.NewEntry(
		kernel.NewUUID(), newParcel.ID(), newParcel.Status(),
		nil, nil, cmd.ActorID(), "registered at intake", false, time.Now().UTC())
	if err != nil {
		return kernel.TrackingCode{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.TrackingCode{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return kernel.TrackingCode{}, err
	}

	if err = uow.TrackingRepository().Add(ctx, entry); err != nil {
		return kernel.TrackingCode{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.TrackingCode{}, err
	}

	return trackingCode, nil
}
