package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

var ErrRejectMissionCommandIsNotConstructed = errors.New(
	"RejectMissionCommand must be created via NewRejectMissionCommand constructor",
)

// RejectMissionCommand represents a driver declining a pending mission with
// a reason. Rejection does not free the mission's parcels; an operator must
// cancel the mission to re-plan them.
type RejectMissionCommand struct { //nolint:recvcheck //using for validation
	missionID kernel.UUID
	driverID  kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewRejectMissionCommand creates a command for a driver to reject a mission.
// A reason is required.
func NewRejectMissionCommand(missionID, driverID kernel.UUID, reason string) (RejectMissionCommand, error) {
	cmd := RejectMissionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMissionID(missionID),
		cmd.setDriverID(driverID),
		cmd.setReason(reason),
	); err != nil {
		return RejectMissionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectMissionCommand) Validate() error {
	return c.guard.Validate(ErrRejectMissionCommandIsNotConstructed)
}

// MissionID returns the identifier of the mission to reject.
func (c RejectMissionCommand) MissionID() kernel.UUID {
	return c.missionID
}

// DriverID returns the identifier of the rejecting driver.
func (c RejectMissionCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Reason returns the driver's rejection reason.
func (c RejectMissionCommand) Reason() string {
	return c.reason
}

func (c *RejectMissionCommand) setMissionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("missionId", err)
	}
	c.missionID = id
	return nil
}

func (c *RejectMissionCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverId", err)
	}
	c.driverID = id
	return nil
}

func (c *RejectMissionCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}
