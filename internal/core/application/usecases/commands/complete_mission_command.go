package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

var ErrCompleteMissionCommandIsNotConstructed = errors.New(
	"CompleteMissionCommand must be created via NewCompleteMissionCommand constructor",
)

// CompleteMissionCommand represents a request to close a mission by
// presenting its one-time completion code.
type CompleteMissionCommand struct { //nolint:recvcheck //using for validation
	missionID     kernel.UUID
	presentedCode string
	actorID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteMissionCommand creates a command to complete a mission.
// The presented code is carried verbatim; matching happens in the aggregate
// with a constant-time comparison.
func NewCompleteMissionCommand(
	missionID kernel.UUID,
	presentedCode string,
	actorID kernel.UUID,
) (CompleteMissionCommand, error) {
	cmd := CompleteMissionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMissionID(missionID),
		cmd.setPresentedCode(presentedCode),
		cmd.setActorID(actorID),
	); err != nil {
		return CompleteMissionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteMissionCommand) Validate() error {
	return c.guard.Validate(ErrCompleteMissionCommandIsNotConstructed)
}

// MissionID returns the identifier of the mission to complete.
func (c CompleteMissionCommand) MissionID() kernel.UUID {
	return c.missionID
}

// PresentedCode returns the completion code as presented.
func (c CompleteMissionCommand) PresentedCode() string {
	return c.presentedCode
}

// ActorID returns the identifier of the user completing the mission.
func (c CompleteMissionCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *CompleteMissionCommand) setMissionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("missionId", err)
	}
	c.missionID = id
	return nil
}

func (c *CompleteMissionCommand) setPresentedCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("presentedCode")
	}
	c.presentedCode = code
	return nil
}

func (c *CompleteMissionCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actorId", err)
	}
	c.actorID = id
	return nil
}
