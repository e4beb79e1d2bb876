// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the dispatch engine.
//
// # Available Jobs
//
// 1. PoolStatusJob - Logs a periodic report of the worker pool so operators
// can see who is online and dispatchable
// 2. ArchiveRetentionJob - Deletes archived orders older than the configured
// retention window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(pool, archive, retentionDays, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The pool status job runs every minute; the retention job runs once an hour.
// Escalation timers are NOT scheduled here: they are single-shot per
// assignment and owned by the engine's scheduler.
package jobs
