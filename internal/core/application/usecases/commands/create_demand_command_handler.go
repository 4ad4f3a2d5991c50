package commands

import (
	"context"
	"time"

	"parcelflow/internal/core/domain/model/demand"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/parcel"
	"parcelflow/internal/pkg/errs"
)

var (
	// ErrForeignParcel is returned when a demand references a parcel that
	// belongs to a different shipper.
	ErrForeignParcel = errs.NewAuthorizationError("parcel belongs to a different shipper")

	// ErrParcelNotPending is returned when a demand references a parcel
	// that has already started its lifecycle.
	ErrParcelNotPending = errs.NewConflictError("parcel", "parcel is not in Pending status")
)

// CreateDemandCommandHandler handles the business logic for demand
// submission. Validates that every referenced parcel exists, belongs to the
// submitting shipper, and is still pending before creating the demand in
// ReviewPending state.
type CreateDemandCommandHandler struct {
	uowFactory DemandUoWFactory
}

// NewCreateDemandCommandHandler creates a handler for demand submission.
func NewCreateDemandCommandHandler(uowFactory DemandUoWFactory) CreateDemandCommandHandler {
	return CreateDemandCommandHandler{uowFactory: uowFactory}
}

// Handle processes the demand submission command and returns the new
// demand's identifier.
func (h CreateDemandCommandHandler) Handle(
	ctx context.Context,
	cmd CreateDemandCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcels, err := uow.ParcelRepository().GetAllByIDs(ctx, cmd.ParcelIDs())
	if err != nil {
		return kernel.UUID{}, err
	}

	for _, p := range parcels {
		if !p.IsOwnedBy(cmd.ShipperID()) {
			return kernel.UUID{}, ErrForeignParcel
		}
		if p.Status() != parcel.Pending {
			return kernel.UUID{}, ErrParcelNotPending
		}
	}

	newDemand, err := demand.NewDemand(
		kernel.NewUUID(), cmd.ShipperID(), cmd.Agency(), cmd.ParcelIDs(), time.Now().UTC())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.DemandRepository().Add(ctx, newDemand); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return newDemand.ID(), nil
}
