package cmd

import (
	"log/slog"
	"time"

	"dispatch/internal/adapters/out/memory/workerpool"
	"dispatch/internal/adapters/out/postgres/orderarchive"
	"dispatch/internal/adapters/out/webhook"
	"dispatch/internal/core/application/engine"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires the dispatch engine, its adapters, and the use case
// handlers together. Everything downstream receives fully constructed
// dependencies from here.
type CompositionRoot struct {
	gormDB  *gorm.DB
	pool    *workerpool.Pool
	archive *orderarchive.GormOrderArchive
	engine  *engine.Engine
	logger  *slog.Logger
}

// NewCompositionRoot builds the application graph from the config.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	pool, err := workerpool.NewPool(worker.ID(config.RootWorkerID))
	if err != nil {
		return nil, err
	}

	notifier, err := webhook.NewNotifier(config.NotifyBaseURL)
	if err != nil {
		return nil, err
	}

	archive := orderarchive.NewGormOrderArchive(gormDB)
	window := time.Duration(config.EscalationWindowSeconds) * time.Second

	dispatchEngine, err := engine.NewEngine(
		pool, notifier, archive, engine.NewTimerScheduler(), window, logger)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		gormDB:  gormDB,
		pool:    pool,
		archive: archive,
		engine:  dispatchEngine,
		logger:  logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.engine)
}

func (c *CompositionRoot) CreateDecideCommandHandler() commands.DecideCommandHandler {
	return commands.NewDecideCommandHandler(c.engine)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.engine)
}

func (c *CompositionRoot) CreateRegisterWorkerCommandHandler() commands.RegisterWorkerCommandHandler {
	return commands.NewRegisterWorkerCommandHandler(c.pool)
}

func (c *CompositionRoot) CreateDeregisterWorkerCommandHandler() commands.DeregisterWorkerCommandHandler {
	return commands.NewDeregisterWorkerCommandHandler(c.pool)
}

func (c *CompositionRoot) CreateSetAvailabilityCommandHandler() commands.SetAvailabilityCommandHandler {
	return commands.NewSetAvailabilityCommandHandler(c.pool)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.engine)
}

func (c *CompositionRoot) CreateGetPoolStatusQueryHandler() queries.GetPoolStatusQueryHandler {
	return queries.NewGetPoolStatusQueryHandler(c.pool)
}

func (c *CompositionRoot) CreateGetArchivedOrdersQueryHandler() queries.GetArchivedOrdersQueryHandler {
	return queries.NewGetArchivedOrdersQueryHandler(c.gormDB)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager(retention time.Duration) *jobs.JobManager {
	return jobs.NewJobManager(c.pool, c.archive, retention, c.logger)
}
