// Package jobs provides scheduled background tasks for the dispatch
// platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order dispatch service.
//
// # Available Jobs
//
// 1. OrderRedispatchJob - Periodically re-announces pending orders that no
// courier has taken within the configured age.
// 2. ReconciliationRebuildJob - Rebuilds the previous day's reconciliation
// buckets from the orders table each night.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(redispatchHandler, rebuildHandler, schedules, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Cron expressions use the six-field seconds syntax and come from
// configuration. The redispatch sweep defaults to once a minute and the
// reconciliation rebuild to shortly after UTC midnight, covering the day
// that just ended.
//
// # Error Handling
//
// - Both jobs log failed runs and let the next scheduled run retry
// - Failed job starts will stop any already running jobs
package jobs
