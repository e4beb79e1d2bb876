package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrDecideCommandIsNotConstructed = errors.New(
		"DecideCommand must be created via NewDecideCommand constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order id must be greater than 0")
)

// DecideCommand represents a worker's answer to one specific assignment
// offer. The order id, cursor, and worker id together form the decision
// token that ties the answer to the offer it responds to.
type DecideCommand struct { //nolint:recvcheck //using for validation
	orderID  int64
	cursor   int
	workerID worker.ID
	decision ports.Decision

	guard guard.ConstructorGuard
}

// NewDecideCommand creates a command carrying a worker's accept or reject.
func NewDecideCommand(orderID int64, cursor int, workerID worker.ID, decision ports.Decision) (DecideCommand, error) {
	cmd := DecideCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCursor(cursor),
		cmd.setWorkerID(workerID),
		cmd.setDecision(decision),
	); err != nil {
		return DecideCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DecideCommand) Validate() error {
	return c.guard.Validate(ErrDecideCommandIsNotConstructed)
}

// Token returns the decision token identifying the answered offer.
func (c DecideCommand) Token() ports.DecisionToken {
	return ports.DecisionToken{OrderID: c.orderID, Cursor: c.cursor, WorkerID: c.workerID}
}

// Decision returns the worker's accept or reject.
func (c DecideCommand) Decision() ports.Decision {
	return c.decision
}

func (c *DecideCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *DecideCommand) setCursor(cursor int) error {
	if cursor < 0 {
		return errs.NewValueIsInvalidError("cursor")
	}

	c.cursor = cursor
	return nil
}

func (c *DecideCommand) setWorkerID(workerID worker.ID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}

func (c *DecideCommand) setDecision(decision ports.Decision) error {
	if decision != ports.DecisionAccept && decision != ports.DecisionReject {
		return errs.NewValueIsInvalidError("decision")
	}

	c.decision = decision
	return nil
}
