package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// DeregisterWorkerCommandHandler removes workers from the pool. The root
// worker is protected and cannot be removed.
type DeregisterWorkerCommandHandler struct {
	pool ports.WorkerPool
}

// NewDeregisterWorkerCommandHandler creates a handler for worker removal.
func NewDeregisterWorkerCommandHandler(pool ports.WorkerPool) DeregisterWorkerCommandHandler {
	return DeregisterWorkerCommandHandler{
		pool: pool,
	}
}

// Handle processes the deregistration command.
func (h DeregisterWorkerCommandHandler) Handle(ctx context.Context, cmd DeregisterWorkerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.pool.Deregister(ctx, cmd.WorkerID())
}
