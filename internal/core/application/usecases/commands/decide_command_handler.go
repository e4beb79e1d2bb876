package commands

import (
	"context"
)

// DecideCommandHandler applies a worker's decision to the dispatch engine.
// Stale decisions, ones whose token no longer matches the order's current
// assignment, are refused by the engine.
type DecideCommandHandler struct {
	dispatcher Dispatcher
}

// NewDecideCommandHandler creates a handler for worker decisions.
func NewDecideCommandHandler(dispatcher Dispatcher) DecideCommandHandler {
	return DecideCommandHandler{
		dispatcher: dispatcher,
	}
}

// Handle processes the decision command.
func (h DecideCommandHandler) Handle(ctx context.Context, cmd DecideCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.dispatcher.Decide(ctx, cmd.Token(), cmd.Decision())
}
