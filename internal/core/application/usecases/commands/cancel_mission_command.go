package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

var ErrCancelMissionCommandIsNotConstructed = errors.New(
	"CancelMissionCommand must be created via NewCancelMissionCommand constructor",
)

// CancelMissionCommand represents an operator aborting a mission. This is
// the only path that returns the mission's demands to the assignable pool.
type CancelMissionCommand struct { //nolint:recvcheck //using for validation
	missionID kernel.UUID
	actorID   kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewCancelMissionCommand creates a command to cancel a mission.
// A reason is required.
func NewCancelMissionCommand(missionID, actorID kernel.UUID, reason string) (CancelMissionCommand, error) {
	cmd := CancelMissionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMissionID(missionID),
		cmd.setActorID(actorID),
		cmd.setReason(reason),
	); err != nil {
		return CancelMissionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelMissionCommand) Validate() error {
	return c.guard.Validate(ErrCancelMissionCommandIsNotConstructed)
}

// MissionID returns the identifier of the mission to cancel.
func (c CancelMissionCommand) MissionID() kernel.UUID {
	return c.missionID
}

// ActorID returns the identifier of the cancelling operator.
func (c CancelMissionCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Reason returns the cancellation reason.
func (c CancelMissionCommand) Reason() string {
	return c.reason
}

func (c *CancelMissionCommand) setMissionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("missionId", err)
	}
	c.missionID = id
	return nil
}

func (c *CancelMissionCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actorId", err)
	}
	c.actorID = id
	return nil
}

func (c *CancelMissionCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}
