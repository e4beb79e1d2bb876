package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/pkg/guard"
)

var ErrDeregisterWorkerCommandIsNotConstructed = errors.New(
	"DeregisterWorkerCommand must be created via NewDeregisterWorkerCommand constructor",
)

// DeregisterWorkerCommand represents a request to remove a worker from the
// pool. Orders already holding the worker in their eligibility snapshot keep
// it; removal only affects future orders.
type DeregisterWorkerCommand struct { //nolint:recvcheck //using for validation
	workerID worker.ID

	guard guard.ConstructorGuard
}

// NewDeregisterWorkerCommand creates a command to deregister a worker.
func NewDeregisterWorkerCommand(workerID worker.ID) (DeregisterWorkerCommand, error) {
	if err := workerID.Validate(); err != nil {
		return DeregisterWorkerCommand{}, err
	}

	return DeregisterWorkerCommand{
		workerID: workerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeregisterWorkerCommand) Validate() error {
	return c.guard.Validate(ErrDeregisterWorkerCommandIsNotConstructed)
}

// WorkerID returns the worker to remove.
func (c DeregisterWorkerCommand) WorkerID() worker.ID {
	return c.workerID
}
