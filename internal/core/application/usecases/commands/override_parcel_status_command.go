package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/parcel"
	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

var ErrOverrideParcelStatusCommandIsNotConstructed = errors.New(
	"OverrideParcelStatusCommand must be created via NewOverrideParcelStatusCommand constructor",
)

// OverrideParcelStatusCommand represents an administrative correction of a
// parcel's status, bypassing the forward-only transition rule. The change
// is recorded in the ledger flagged as an override.
type OverrideParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	newStatus parcel.Status
	actorID   kernel.UUID
	note      string

	guard guard.ConstructorGuard
}

// NewOverrideParcelStatusCommand creates a command to force a parcel status.
// A note explaining the correction is required.
func NewOverrideParcelStatusCommand(
	parcelID kernel.UUID,
	newStatus parcel.Status,
	actorID kernel.UUID,
	note string,
) (OverrideParcelStatusCommand, error) {
	cmd := OverrideParcelStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setNewStatus(newStatus),
		cmd.setActorID(actorID),
		cmd.setNote(note),
	); err != nil {
		return OverrideParcelStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OverrideParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrOverrideParcelStatusCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to correct.
func (c OverrideParcelStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// NewStatus returns the status to force.
func (c OverrideParcelStatusCommand) NewStatus() parcel.Status {
	return c.newStatus
}

// ActorID returns the identifier of the correcting operator.
func (c OverrideParcelStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Note returns the explanation for the correction.
func (c OverrideParcelStatusCommand) Note() string {
	return c.note
}

func (c *OverrideParcelStatusCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcelId", err)
	}
	c.parcelID = id
	return nil
}

func (c *OverrideParcelStatusCommand) setNewStatus(status parcel.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.newStatus = status
	return nil
}

func (c *OverrideParcelStatusCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actorId", err)
	}
	c.actorID = id
	return nil
}

func (c *OverrideParcelStatusCommand) setNote(note string) error {
	if note == "" {
		return errs.NewValueIsRequiredError("note")
	}
	c.note = note
	return nil
}
