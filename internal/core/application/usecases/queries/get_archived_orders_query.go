package queries

import (
	"errors"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const maxArchivedOrdersLimit = 1000

var ErrGetArchivedOrdersQueryIsNotConstructed = errors.New(
	"GetArchivedOrdersQuery must be created via NewGetArchivedOrdersQuery constructor",
)

// GetArchivedOrdersQuery requests the most recently finished orders from the
// archive.
type GetArchivedOrdersQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetArchivedOrdersQuery creates a query for finished orders. The limit
// caps how many records are returned, newest first.
func NewGetArchivedOrdersQuery(limit int) (GetArchivedOrdersQuery, error) {
	if limit <= 0 || limit > maxArchivedOrdersLimit {
		return GetArchivedOrdersQuery{}, errs.NewValueIsOutOfRangeError(
			"limit", limit, 1, maxArchivedOrdersLimit)
	}

	return GetArchivedOrdersQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetArchivedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetArchivedOrdersQueryIsNotConstructed)
}

// Limit returns the maximum number of records to return.
func (q GetArchivedOrdersQuery) Limit() int {
	return q.limit
}

// GetArchivedOrdersQueryResponse is the read model for one finished order.
type GetArchivedOrdersQueryResponse struct {
	OrderID        int64     `json:"order_id"`
	CustomerName   string    `json:"customer_name"`
	Address        string    `json:"address"`
	Total          float64   `json:"total"`
	PaymentMode    string    `json:"payment_mode"`
	Status         string    `json:"status"`
	AssignedWorker string    `json:"assigned_worker,omitempty"`
	FinishedAt     time.Time `json:"finished_at"`
}
