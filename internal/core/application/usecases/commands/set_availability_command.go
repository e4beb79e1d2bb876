package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/pkg/guard"
)

var ErrSetAvailabilityCommandIsNotConstructed = errors.New(
	"SetAvailabilityCommand must be created via NewSetAvailabilityCommand constructor",
)

// SetAvailabilityCommand represents a request to flip a worker online or
// offline.
type SetAvailabilityCommand struct { //nolint:recvcheck //using for validation
	workerID     worker.ID
	availability worker.Availability

	guard guard.ConstructorGuard
}

// NewSetAvailabilityCommand creates a command to change a worker's
// availability.
func NewSetAvailabilityCommand(workerID worker.ID, availability worker.Availability) (SetAvailabilityCommand, error) {
	cmd := SetAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWorkerID(workerID),
		cmd.setAvailability(availability),
	); err != nil {
		return SetAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetAvailabilityCommandIsNotConstructed)
}

// WorkerID returns the worker whose availability changes.
func (c SetAvailabilityCommand) WorkerID() worker.ID {
	return c.workerID
}

// Availability returns the requested availability.
func (c SetAvailabilityCommand) Availability() worker.Availability {
	return c.availability
}

func (c *SetAvailabilityCommand) setWorkerID(workerID worker.ID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}

func (c *SetAvailabilityCommand) setAvailability(availability worker.Availability) error {
	if err := availability.Validate(); err != nil {
		return err
	}

	c.availability = availability
	return nil
}
