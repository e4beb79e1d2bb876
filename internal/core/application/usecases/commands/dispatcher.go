// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation, then
// delegation to the dispatch engine or the worker pool.
package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// Dispatcher is the engine surface the command handlers drive: order
// creation, worker decisions, and completion.
type Dispatcher interface {
	// CreateOrder allocates an order id, captures the eligibility snapshot,
	// and offers the order to the first eligible worker.
	CreateOrder(ctx context.Context, payload order.Payload) (int64, error)

	// Decide applies a worker's accept or reject for one specific offer.
	Decide(ctx context.Context, token ports.DecisionToken, decision ports.Decision) error

	// Complete marks an accepted order fulfilled. The detail is forwarded to
	// the customer with the completion notice.
	Complete(ctx context.Context, orderID int64, detail string) error
}
