package commands

import (
	"context"
	"log/slog"

	"parcelflow/internal/core/ports"
)

// SendMissionRemindersCommandHandler fans reminder notifications out to the
// drivers of missions that are past their scheduled time and still pending.
// The scan is read only, so nothing is committed.
type SendMissionRemindersCommandHandler struct {
	uowFactory MissionStateUoWFactory
	notifier   ports.Notifier
	log        *slog.Logger
}

// NewSendMissionRemindersCommandHandler creates a handler for reminder fan-out.
func NewSendMissionRemindersCommandHandler(
	uowFactory MissionStateUoWFactory,
	notifier ports.Notifier,
	log *slog.Logger,
) SendMissionRemindersCommandHandler {
	return SendMissionRemindersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		log:        log,
	}
}

// Handle processes the reminder command. A failed notification for one
// mission does not stop reminders for the rest.
func (h SendMissionRemindersCommandHandler) Handle(ctx context.Context, cmd SendMissionRemindersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	missions, err := uow.MissionRepository().GetAllPendingBefore(ctx, cmd.Now())
	if err != nil {
		return err
	}

	for _, m := range missions {
		if err := h.notifier.MissionReminder(ctx, m); err != nil {
			h.log.Warn("mission reminder notification failed",
				"missionId", m.ID().String(), "error", err)
		}
	}

	return nil
}
