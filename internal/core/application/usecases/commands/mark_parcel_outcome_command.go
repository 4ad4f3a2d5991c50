package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/parcel"
	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

var ErrMarkParcelOutcomeCommandIsNotConstructed = errors.New(
	"MarkParcelOutcomeCommand must be created via NewMarkParcelOutcomeCommand constructor",
)

// MarkParcelOutcomeCommand represents a driver recording what happened to a
// single parcel mid-mission: delivered, delivered and paid, or coming back
// to the warehouse.
type MarkParcelOutcomeCommand struct { //nolint:recvcheck //using for validation
	missionID kernel.UUID
	parcelID  kernel.UUID
	outcome   parcel.Status
	actorID   kernel.UUID
	note      string

	guard guard.ConstructorGuard
}

// NewMarkParcelOutcomeCommand creates a command to record a parcel outcome.
// The outcome must be a valid parcel status; whether the transition is legal
// from the parcel's current status is decided by the aggregate.
func NewMarkParcelOutcomeCommand(
	missionID, parcelID kernel.UUID,
	outcome parcel.Status,
	actorID kernel.UUID,
	note string,
) (MarkParcelOutcomeCommand, error) {
	cmd := MarkParcelOutcomeCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMissionID(missionID),
		cmd.setParcelID(parcelID),
		cmd.setOutcome(outcome),
		cmd.setActorID(actorID),
	); err != nil {
		return MarkParcelOutcomeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkParcelOutcomeCommand) Validate() error {
	return c.guard.Validate(ErrMarkParcelOutcomeCommandIsNotConstructed)
}

// MissionID returns the identifier of the mission holding the parcel.
func (c MarkParcelOutcomeCommand) MissionID() kernel.UUID {
	return c.missionID
}

// ParcelID returns the identifier of the parcel.
func (c MarkParcelOutcomeCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Outcome returns the status to record for the parcel.
func (c MarkParcelOutcomeCommand) Outcome() parcel.Status {
	return c.outcome
}

// ActorID returns the identifier of the recording driver.
func (c MarkParcelOutcomeCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Note returns the free-form note attached to the outcome.
func (c MarkParcelOutcomeCommand) Note() string {
	return c.note
}

func (c *MarkParcelOutcomeCommand) setMissionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("missionId", err)
	}
	c.missionID = id
	return nil
}

func (c *MarkParcelOutcomeCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcelId", err)
	}
	c.parcelID = id
	return nil
}

func (c *MarkParcelOutcomeCommand) setOutcome(outcome parcel.Status) error {
	if err := outcome.Validate(); err != nil {
		return err
	}
	c.outcome = outcome
	return nil
}

func (c *MarkParcelOutcomeCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actorId", err)
	}
	c.actorID = id
	return nil
}
