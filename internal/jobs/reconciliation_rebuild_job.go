package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReconciliationRebuildJob manages the nightly recomputation of
// reconciliation buckets. Each run rebuilds the previous UTC day's buckets
// from the orders table, keeping any payments already recorded on them.
type ReconciliationRebuildJob struct {
	handler  commands.RebuildReconciliationsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReconciliationRebuildJob creates a new job for the nightly rebuild.
// The schedule is a six-field cron expression, expected to fire shortly
// after UTC midnight.
func NewReconciliationRebuildJob(
	handler commands.RebuildReconciliationsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *ReconciliationRebuildJob {
	return &ReconciliationRebuildJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "reconciliation_rebuild_job"),
	}
}

// Start begins the rebuild job on its configured schedule.
func (j *ReconciliationRebuildJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		day := time.Now().UTC().Add(-24 * time.Hour)

		cmd, err := commands.NewRebuildReconciliationsCommand(day)
		if err != nil {
			j.logger.ErrorContext(ctx, "Reconciliation rebuild job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Reconciliation rebuild job failed",
				"day", cmd.Day().Format("2006-01-02"), "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reconciliation rebuild job started",
		"schedule", j.schedule)
	return nil
}

// Stop stops the rebuild job.
func (j *ReconciliationRebuildJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reconciliation rebuild job stopped")
}
