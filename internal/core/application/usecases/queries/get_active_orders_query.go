// Package queries contains read-only operations over the dispatch state.
// Implements the Query pattern for the read side of the CQRS architecture:
// live state is projected straight from the engine and the pool, finished
// orders are read from the archive database.
package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery requests a projection of every live order: Pending
// orders still cascading through workers and Accepted orders awaiting
// completion.
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for the live order set.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse is the read model for one live order.
type GetActiveOrdersQueryResponse struct {
	OrderID        int64   `json:"order_id"`
	Status         string  `json:"status"`
	CustomerName   string  `json:"customer_name"`
	Address        string  `json:"address"`
	Total          float64 `json:"total"`
	PaymentMode    string  `json:"payment_mode"`
	AssignedWorker string  `json:"assigned_worker,omitempty"`
	Attempt        int     `json:"attempt"`
	EligibleCount  int     `json:"eligible_count"`
}
