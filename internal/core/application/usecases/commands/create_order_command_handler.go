package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
// Builds the validated payload and hands it to the dispatch engine, which
// captures the eligibility snapshot and starts the assignment cascade.
type CreateOrderCommandHandler struct {
	dispatcher Dispatcher
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(dispatcher Dispatcher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		dispatcher: dispatcher,
	}
}

// Handle processes the order placement command and returns the allocated
// order id. When no worker is dispatchable the engine refuses the order
// without consuming an id.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	payload, err := order.NewPayload(
		cmd.CustomerID(),
		cmd.CustomerName(),
		cmd.Address(),
		cmd.ImageRef(),
		cmd.Amount(),
		cmd.PaymentMode(),
		cmd.UPIHandle(),
		cmd.PaymentProofRef(),
	)
	if err != nil {
		return 0, err
	}

	return h.dispatcher.CreateOrder(ctx, payload)
}
