package commands

import (
	"errors"
	"time"

	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

var ErrSendMissionRemindersCommandIsNotConstructed = errors.New(
	"SendMissionRemindersCommand must be created via NewSendMissionRemindersCommand constructor",
)

// SendMissionRemindersCommand asks for reminder notifications to be sent for
// every mission still pending at the given point in time.
type SendMissionRemindersCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewSendMissionRemindersCommand creates a command to nudge drivers whose
// missions are scheduled before now and still unanswered.
func NewSendMissionRemindersCommand(now time.Time) (SendMissionRemindersCommand, error) {
	cmd := SendMissionRemindersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setNow(now); err != nil {
		return SendMissionRemindersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendMissionRemindersCommand) Validate() error {
	return c.guard.Validate(ErrSendMissionRemindersCommandIsNotConstructed)
}

// Now returns the point in time the reminder scan is anchored to.
func (c SendMissionRemindersCommand) Now() time.Time {
	return c.now
}

func (c *SendMissionRemindersCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}
	c.now = now
	return nil
}
