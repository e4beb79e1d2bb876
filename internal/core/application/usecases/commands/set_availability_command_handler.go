package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// SetAvailabilityCommandHandler changes a worker's availability in the pool.
// Going online stamps the worker's priority key; orders already in flight
// keep their creation-time eligibility snapshot.
type SetAvailabilityCommandHandler struct {
	pool ports.WorkerPool
}

// NewSetAvailabilityCommandHandler creates a handler for availability
// changes.
func NewSetAvailabilityCommandHandler(pool ports.WorkerPool) SetAvailabilityCommandHandler {
	return SetAvailabilityCommandHandler{
		pool: pool,
	}
}

// Handle processes the availability change command.
func (h SetAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.pool.SetAvailability(ctx, cmd.WorkerID(), cmd.Availability())
}
