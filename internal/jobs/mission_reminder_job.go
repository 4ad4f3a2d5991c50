package jobs

import (
	"context"
	"log/slog"
	"time"

	"parcelflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// MissionReminderJob periodically nudges drivers whose missions are past
// their scheduled time and still waiting on an accept or reject.
type MissionReminderJob struct {
	handler commands.SendMissionRemindersCommandHandler
	cron    *cron.Cron
	spec    string
	logger  *slog.Logger
}

// NewMissionReminderJob creates the reminder job with the given cron spec,
// for example "*/5 * * * *" for every five minutes.
func NewMissionReminderJob(
	handler commands.SendMissionRemindersCommandHandler,
	spec string,
	logger *slog.Logger,
) *MissionReminderJob {
	return &MissionReminderJob{
		handler: handler,
		cron:    cron.New(),
		spec:    spec,
		logger:  logger.With("component", "mission_reminder_job"),
	}
}

// Start schedules the reminder job.
func (j *MissionReminderJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()

		cmd, err := commands.NewSendMissionRemindersCommand(time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Mission reminder command rejected", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Mission reminder job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Mission reminder job started", "spec", j.spec)
	return nil
}

// Stop stops the reminder job.
func (j *MissionReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Mission reminder job stopped")
}
