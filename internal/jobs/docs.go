// Package jobs provides scheduled background tasks for the parcel system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. MissionReminderJob - Periodically reminds drivers about missions that
// are past their scheduled time and still waiting on a response
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(remindersHandler, "*/5 * * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Reminder failures are logged and never abort the schedule. A failed job
// start surfaces through StartAll so the application can refuse to boot.
package jobs
