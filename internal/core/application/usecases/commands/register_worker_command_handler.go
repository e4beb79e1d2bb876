package commands

import (
	"context"

	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/core/ports"
)

// RegisterWorkerCommandHandler adds regular workers to the pool. Workers
// join offline; a separate availability change makes them eligible for
// assignments.
type RegisterWorkerCommandHandler struct {
	pool ports.WorkerPool
}

// NewRegisterWorkerCommandHandler creates a handler for worker registration.
func NewRegisterWorkerCommandHandler(pool ports.WorkerPool) RegisterWorkerCommandHandler {
	return RegisterWorkerCommandHandler{
		pool: pool,
	}
}

// Handle processes the registration command. Registering an already-known
// worker is a no-op.
func (h RegisterWorkerCommandHandler) Handle(ctx context.Context, cmd RegisterWorkerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.pool.Register(ctx, cmd.WorkerID(), worker.RoleRegular)
}
