package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/application/usecases/commands"
)

// Schedules carries the cron expressions and tuning knobs for all jobs.
type Schedules struct {
	// OrderRedispatch is the six-field cron expression of the stale-order
	// sweep.
	OrderRedispatch string

	// RedispatchMaxAge is how long an order may wait unassigned before the
	// sweep re-announces it.
	RedispatchMaxAge time.Duration

	// ReconciliationRebuild is the six-field cron expression of the nightly
	// bucket rebuild.
	ReconciliationRebuild string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderRedispatchJob       *OrderRedispatchJob
	reconciliationRebuildJob *ReconciliationRebuildJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	redispatchHandler commands.RedispatchStaleOrdersCommandHandler,
	rebuildHandler commands.RebuildReconciliationsCommandHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderRedispatchJob: NewOrderRedispatchJob(
			redispatchHandler, schedules.OrderRedispatch, schedules.RedispatchMaxAge, logger),
		reconciliationRebuildJob: NewReconciliationRebuildJob(
			rebuildHandler, schedules.ReconciliationRebuild, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderRedispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start order redispatch job: %w", err)
	}

	if err := jm.reconciliationRebuildJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderRedispatchJob.Stop()
		return fmt.Errorf("failed to start reconciliation rebuild job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reconciliationRebuildJob.Stop()
	jm.orderRedispatchJob.Stop()
}
