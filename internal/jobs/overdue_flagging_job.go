package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// OverdueFlaggingJob periodically moves unpaid orders past their expected
// delivery date into the Overdue financial status. Runs at the top of every
// hour; a missed run only delays flagging, it never loses it.
type OverdueFlaggingJob struct {
	candidates queries.GetOverdueCandidatesQueryHandler
	handler    commands.ChangeFinancialStatusCommandHandler
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewOverdueFlaggingJob creates the overdue flagging job.
func NewOverdueFlaggingJob(
	candidates queries.GetOverdueCandidatesQueryHandler,
	handler commands.ChangeFinancialStatusCommandHandler,
	logger *slog.Logger,
) *OverdueFlaggingJob {
	return &OverdueFlaggingJob{
		candidates: candidates,
		handler:    handler,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "overdue_flagging_job"),
	}
}

// Start schedules the job to run hourly.
func (j *OverdueFlaggingJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", j.Run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue flagging job started (running hourly)")
	return nil
}

// Stop stops the job.
func (j *OverdueFlaggingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue flagging job stopped")
}

// Run executes one flagging pass. Each candidate is processed in its own
// transaction, so one failing order does not block the rest.
func (j *OverdueFlaggingJob) Run() {
	ctx := context.Background()

	ids, err := j.candidates.Handle(ctx, queries.NewGetOverdueCandidatesQuery(time.Now()))
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue candidate lookup failed", "error", err)
		return
	}
	if len(ids) == 0 {
		return
	}

	flagged := 0
	for _, id := range ids {
		cmd, cmdErr := commands.NewChangeFinancialStatusCommand(id, serviceorder.FinancialOverdue)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Overdue command construction failed", "orderId", id.String(), "error", cmdErr)
			continue
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// A payment or deletion may have landed between the lookup and
			// the flagging; those races are not system failures.
			if errors.Is(handleErr, errs.ErrInvalidStatusTransition) || errors.Is(handleErr, errs.ErrObjectNotFound) {
				continue
			}
			j.logger.ErrorContext(ctx, "Overdue flagging failed", "orderId", id.String(), "error", handleErr)
			continue
		}
		flagged++
	}

	j.logger.InfoContext(ctx, "Overdue flagging pass completed", "candidates", len(ids), "flagged", flagged)
}
