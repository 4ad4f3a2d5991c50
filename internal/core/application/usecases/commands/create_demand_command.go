package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

var (
	ErrCreateDemandCommandIsNotConstructed = errors.New(
		"CreateDemandCommand must be created via NewCreateDemandCommand constructor",
	)
	// ErrEmptyParcelSet is returned when a demand references no parcels.
	ErrEmptyParcelSet = errs.NewValueIsRequiredError("parcelIds")
)

// CreateDemandCommand represents a shipper's request to have a set of their
// pending parcels picked up.
type CreateDemandCommand struct { //nolint:recvcheck //using for validation
	shipperID kernel.UUID
	agency    string
	parcelIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateDemandCommand creates a command to submit a pickup demand.
// The parcel set must be non-empty and every identifier valid.
func NewCreateDemandCommand(
	shipperID kernel.UUID,
	agency string,
	parcelIDs []kernel.UUID,
) (CreateDemandCommand, error) {
	cmd := CreateDemandCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipperID(shipperID),
		cmd.setAgency(agency),
		cmd.setParcelIDs(parcelIDs),
	); err != nil {
		return CreateDemandCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDemandCommand) Validate() error {
	return c.guard.Validate(ErrCreateDemandCommandIsNotConstructed)
}

// ShipperID returns the identifier of the submitting shipper.
func (c CreateDemandCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

// Agency returns the agency the demand is scoped to.
func (c CreateDemandCommand) Agency() string {
	return c.agency
}

// ParcelIDs returns the identifiers of the parcels to pick up.
func (c CreateDemandCommand) ParcelIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.parcelIDs))
	copy(ids, c.parcelIDs)
	return ids
}

func (c *CreateDemandCommand) setShipperID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipperId", err)
	}
	c.shipperID = id
	return nil
}

func (c *CreateDemandCommand) setAgency(agency string) error {
	if agency == "" {
		return errs.NewValueIsRequiredError("agency")
	}
	c.agency = agency
	return nil
}

func (c *CreateDemandCommand) setParcelIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return ErrEmptyParcelSet
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("parcelIds", err)
		}
	}
	c.parcelIDs = make([]kernel.UUID, len(ids))
	copy(c.parcelIDs, ids)
	return nil
}
