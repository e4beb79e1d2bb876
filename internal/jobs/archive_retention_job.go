package jobs

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// ArchiveRetentionJob deletes archived orders older than the retention
// window. Runs hourly; the archive stays bounded without manual cleanup.
type ArchiveRetentionJob struct {
	archive   ports.OrderArchive
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewArchiveRetentionJob creates a job pruning the archive every hour.
func NewArchiveRetentionJob(archive ports.OrderArchive, retention time.Duration, logger *slog.Logger) *ArchiveRetentionJob {
	return &ArchiveRetentionJob{
		archive:   archive,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "archive_retention_job"),
	}
}

// Start begins the archive retention job.
func (j *ArchiveRetentionJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().Add(-j.retention)

		deleted, err := j.archive.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			j.logger.ErrorContext(ctx, "Archive retention job failed", "error", err)
			return
		}

		if deleted > 0 {
			j.logger.InfoContext(ctx, "Pruned archived orders",
				"deleted", deleted, "cutoff", cutoff)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Archive retention job started (running hourly)")
	return nil
}

// Stop stops the archive retention job.
func (j *ArchiveRetentionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Archive retention job stopped")
}
