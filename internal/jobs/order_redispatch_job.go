package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderRedispatchJob manages the scheduled re-announcement of stale orders.
// Each run finds pending orders that no courier has taken within maxAge and
// puts them in front of the pool again.
type OrderRedispatchJob struct {
	handler  commands.RedispatchStaleOrdersCommandHandler
	schedule string
	maxAge   time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderRedispatchJob creates a new job for re-announcing stale orders.
// The schedule is a six-field cron expression.
func NewOrderRedispatchJob(
	handler commands.RedispatchStaleOrdersCommandHandler,
	schedule string,
	maxAge time.Duration,
	logger *slog.Logger,
) *OrderRedispatchJob {
	return &OrderRedispatchJob{
		handler:  handler,
		schedule: schedule,
		maxAge:   maxAge,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_redispatch_job"),
	}
}

// Start begins the redispatch job on its configured schedule.
func (j *OrderRedispatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewRedispatchStaleOrdersCommand(j.maxAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order redispatch job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order redispatch job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order redispatch job started",
		"schedule", j.schedule, "max_age", j.maxAge.String())
	return nil
}

// Stop stops the redispatch job.
func (j *OrderRedispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order redispatch job stopped")
}
