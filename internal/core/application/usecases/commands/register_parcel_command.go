package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

var ErrRegisterParcelCommandIsNotConstructed = errors.New(
	"RegisterParcelCommand must be created via NewRegisterParcelCommand constructor",
)

// RegisterParcelCommand represents a request to register a new parcel at
// intake. The parcel starts its lifecycle in Pending status with a freshly
// generated tracking code.
type RegisterParcelCommand struct { //nolint:recvcheck //using for validation
	shipperID kernel.UUID

	recipientName  string
	primaryPhone   string
	secondaryPhone string
	address        string
	region         string

	weightGrams int
	priceCents  int64
	feesCents   int64
	pieces      int
	article     string

	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRegisterParcelCommand creates a command to register a new parcel.
// Declaration validation (positive weight, non-negative amounts, a named
// recipient) happens in the aggregate constructor; the command only checks
// the identifiers it carries.
func NewRegisterParcelCommand(
	shipperID kernel.UUID,
	recipientName, primaryPhone, secondaryPhone, address, region string,
	weightGrams int,
	priceCents, feesCents int64,
	pieces int,
	article string,
	actorID kernel.UUID,
) (RegisterParcelCommand, error) {
	cmd := RegisterParcelCommand{
		recipientName:  recipientName,
		primaryPhone:   primaryPhone,
		secondaryPhone: secondaryPhone,
		address:        address,
		region:         region,
		weightGrams:    weightGrams,
		priceCents:     priceCents,
		feesCents:      feesCents,
		pieces:         pieces,
		article:        article,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipperID(shipperID),
		cmd.setActorID(actorID),
	); err != nil {
		return RegisterParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterParcelCommand) Validate() error {
	return c.guard.Validate(ErrRegisterParcelCommandIsNotConstructed)
}

// ShipperID returns the identifier of the shipper the parcel belongs to.
func (c RegisterParcelCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

// RecipientName returns the recipient's name.
func (c RegisterParcelCommand) RecipientName() string {
	return c.recipientName
}

// PrimaryPhone returns the recipient's primary phone number.
func (c RegisterParcelCommand) PrimaryPhone() string {
	return c.primaryPhone
}

// SecondaryPhone returns the recipient's optional secondary phone number.
func (c RegisterParcelCommand) SecondaryPhone() string {
	return c.secondaryPhone
}

// Address returns the recipient's street address.
func (c RegisterParcelCommand) Address() string {
	return c.address
}

// Region returns the recipient's region.
func (c RegisterParcelCommand) Region() string {
	return c.region
}

// WeightGrams returns the declared weight in grams.
func (c RegisterParcelCommand) WeightGrams() int {
	return c.weightGrams
}

// PriceCents returns the declared value in cents.
func (c RegisterParcelCommand) PriceCents() int64 {
	return c.priceCents
}

// FeesCents returns the collection fees in cents.
func (c RegisterParcelCommand) FeesCents() int64 {
	return c.feesCents
}

// Pieces returns the declared piece count.
func (c RegisterParcelCommand) Pieces() int {
	return c.pieces
}

// Article returns the declared article description.
func (c RegisterParcelCommand) Article() string {
	return c.article
}

// ActorID returns the identifier of the user registering the parcel.
func (c RegisterParcelCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *RegisterParcelCommand) setShipperID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipperId", err)
	}
	c.shipperID = id
	return nil
}

func (c *RegisterParcelCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actorId", err)
	}
	c.actorID = id
	return nil
}
