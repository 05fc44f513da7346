// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around order fulfillment.
//
// # Available Jobs
//
// 1. StatsRefreshJob - Runs every 30 seconds to rebuild the cached statistics snapshot
// 2. OverdueAssignmentJob - Runs every minute to report assignments stuck in flight
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(statsProjection, assignmentsHandler, logger)
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
// - A failed statistics refresh keeps the previous snapshot and is logged
// - The overdue watchdog logs each stale assignment; it never mutates orders
// - Failed job starts will stop any already running jobs
package jobs
