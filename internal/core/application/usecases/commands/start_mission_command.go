package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

var ErrStartMissionCommandIsNotConstructed = errors.New(
	"StartMissionCommand must be created via NewStartMissionCommand constructor",
)

// StartMissionCommand represents a driver beginning execution of an
// accepted mission.
type StartMissionCommand struct { //nolint:recvcheck //using for validation
	missionID kernel.UUID
	driverID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartMissionCommand creates a command for a driver to start a mission.
func NewStartMissionCommand(missionID, driverID kernel.UUID) (StartMissionCommand, error) {
	cmd := StartMissionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMissionID(missionID),
		cmd.setDriverID(driverID),
	); err != nil {
		return StartMissionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartMissionCommand) Validate() error {
	return c.guard.Validate(ErrStartMissionCommandIsNotConstructed)
}

// MissionID returns the identifier of the mission to start.
func (c StartMissionCommand) MissionID() kernel.UUID {
	return c.missionID
}

// DriverID returns the identifier of the starting driver.
func (c StartMissionCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *StartMissionCommand) setMissionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("missionId", err)
	}
	c.missionID = id
	return nil
}

func (c *StartMissionCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverId", err)
	}
	c.driverID = id
	return nil
}
