package jobs

import (
	"fmt"
	"log/slog"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueFlaggingJob *OverdueFlaggingJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the handlers as dependencies to wire up the job execution.
func NewJobManager(
	overdueCandidatesHandler queries.GetOverdueCandidatesQueryHandler,
	changeFinancialHandler commands.ChangeFinancialStatusCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueFlaggingJob: NewOverdueFlaggingJob(overdueCandidatesHandler, changeFinancialHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueFlaggingJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue flagging job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueFlaggingJob.Stop()
}
