package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/order"
)

// ArchivedOrder is the flattened record persisted when an order reaches a
// terminal status. The engine keeps only live orders in memory; the archive
// is the durable trail for everything that finished.
type ArchivedOrder struct {
	// OrderID is the order identifier.
	OrderID int64

	// CustomerID is the ordering customer's identity.
	CustomerID string

	// CustomerName is the customer's display name.
	CustomerName string

	// Address is the delivery destination.
	Address string

	// Total is the amount due.
	Total float64

	// PaymentMode is how the customer paid.
	PaymentMode string

	// Status is the terminal status the order finished in.
	Status order.Status

	// AssignedWorker is the worker that accepted the order. Empty when the
	// order never left Pending.
	AssignedWorker string

	// FinishedAt is when the order reached its terminal status.
	FinishedAt time.Time
}

// OrderArchive persists terminal orders for audit and reporting.
type OrderArchive interface {
	// Save stores the archived record. Saving the same order id twice is an
	// error; the engine archives each order exactly once.
	Save(ctx context.Context, archived ArchivedOrder) error

	// DeleteOlderThan removes records that finished before the cutoff and
	// returns how many were deleted.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
