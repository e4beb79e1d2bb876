package commands

import (
	"context"
)

// CompleteOrderCommandHandler marks an accepted order fulfilled. The engine
// archives the order and drops it from the live set.
type CompleteOrderCommandHandler struct {
	dispatcher Dispatcher
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(dispatcher Dispatcher) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		dispatcher: dispatcher,
	}
}

// Handle processes the completion command.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.dispatcher.Complete(ctx, cmd.OrderID(), cmd.Detail())
}
