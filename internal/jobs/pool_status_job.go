package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// PoolStatusJob periodically logs the state of the worker pool: how many
// workers are registered, online, and dispatchable.
type PoolStatusJob struct {
	pool   ports.WorkerPool
	cron   *cron.Cron
	logger *slog.Logger
}

// NewPoolStatusJob creates a job reporting the pool status every minute.
func NewPoolStatusJob(pool ports.WorkerPool, logger *slog.Logger) *PoolStatusJob {
	return &PoolStatusJob{
		pool:   pool,
		cron:   cron.New(),
		logger: logger.With("component", "pool_status_job"),
	}
}

// Start begins the pool status job.
func (j *PoolStatusJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		statuses, err := j.pool.Snapshot(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pool status job failed", "error", err)
			return
		}

		online := 0
		for _, s := range statuses {
			if s.Availability == worker.Online {
				online++
			}
		}

		eligible, err := j.pool.EligibleOrdered(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pool status job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Worker pool status",
			"registered", len(statuses), "online", online, "dispatchable", len(eligible))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pool status job started (running every minute)")
	return nil
}

// Stop stops the pool status job.
func (j *PoolStatusJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pool status job stopped")
}
