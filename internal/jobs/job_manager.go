package jobs

import (
	"fmt"
	"log/slog"

	"parcelflow/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	missionReminderJob *MissionReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	remindersHandler commands.SendMissionRemindersCommandHandler,
	reminderSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		missionReminderJob: NewMissionReminderJob(remindersHandler, reminderSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.missionReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start mission reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.missionReminderJob.Stop()
}
