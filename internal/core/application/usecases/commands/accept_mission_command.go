package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

var ErrAcceptMissionCommandIsNotConstructed = errors.New(
	"AcceptMissionCommand must be created via NewAcceptMissionCommand constructor",
)

// AcceptMissionCommand represents a driver's agreement to run a pending
// mission.
type AcceptMissionCommand struct { //nolint:recvcheck //using for validation
	missionID kernel.UUID
	driverID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptMissionCommand creates a command for a driver to accept a mission.
func NewAcceptMissionCommand(missionID, driverID kernel.UUID) (AcceptMissionCommand, error) {
	cmd := AcceptMissionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMissionID(missionID),
		cmd.setDriverID(driverID),
	); err != nil {
		return AcceptMissionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptMissionCommand) Validate() error {
	return c.guard.Validate(ErrAcceptMissionCommandIsNotConstructed)
}

// MissionID returns the identifier of the mission to accept.
func (c AcceptMissionCommand) MissionID() kernel.UUID {
	return c.missionID
}

// DriverID returns the identifier of the accepting driver.
func (c AcceptMissionCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *AcceptMissionCommand) setMissionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("missionId", err)
	}
	c.missionID = id
	return nil
}

func (c *AcceptMissionCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverId", err)
	}
	c.driverID = id
	return nil
}
