package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/pkg/guard"
)

var ErrRegisterWorkerCommandIsNotConstructed = errors.New(
	"RegisterWorkerCommand must be created via NewRegisterWorkerCommand constructor",
)

// RegisterWorkerCommand represents a request to add a regular worker to the
// pool. The root worker is registered once at startup and never through this
// command.
type RegisterWorkerCommand struct { //nolint:recvcheck //using for validation
	workerID worker.ID

	guard guard.ConstructorGuard
}

// NewRegisterWorkerCommand creates a command to register a worker.
func NewRegisterWorkerCommand(workerID worker.ID) (RegisterWorkerCommand, error) {
	if err := workerID.Validate(); err != nil {
		return RegisterWorkerCommand{}, err
	}

	return RegisterWorkerCommand{
		workerID: workerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterWorkerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterWorkerCommandIsNotConstructed)
}

// WorkerID returns the worker to register.
func (c RegisterWorkerCommand) WorkerID() worker.ID {
	return c.workerID
}
