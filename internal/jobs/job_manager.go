package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	poolStatusJob       *PoolStatusJob
	archiveRetentionJob *ArchiveRetentionJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	pool ports.WorkerPool,
	archive ports.OrderArchive,
	retention time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		poolStatusJob:       NewPoolStatusJob(pool, logger),
		archiveRetentionJob: NewArchiveRetentionJob(archive, retention, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.poolStatusJob.Start(); err != nil {
		return fmt.Errorf("failed to start pool status job: %w", err)
	}

	if err := jm.archiveRetentionJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.poolStatusJob.Stop()
		return fmt.Errorf("failed to start archive retention job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.archiveRetentionJob.Stop()
	jm.poolStatusJob.Stop()
}
