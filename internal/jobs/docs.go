// Package jobs provides scheduled background tasks for the workshop system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for service order management.
//
// # Available Jobs
//
// 1. OverdueFlaggingJob - Runs hourly to flag unpaid orders past their
// expected delivery date as Overdue.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(overdueCandidatesHandler, changeFinancialHandler, logger)
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
// - The flagging job tolerates races with concurrent payments and deletions:
// an order that can no longer move to Overdue is skipped silently.
// - Lookup and infrastructure failures are logged and retried on the next run.
// - Failed job starts will stop any already running jobs.
package jobs
