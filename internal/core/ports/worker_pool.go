// Package ports defines the driven-side contracts of the dispatch engine:
// the worker pool, the notifier, and the order archive. These interfaces
// establish contracts between the application core and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/worker"
)

// ErrProtectedWorker is returned when attempting to deregister the root
// worker. The root worker is registered once at startup and stays in the
// pool for the lifetime of the process.
var ErrProtectedWorker = errors.New("worker is protected and cannot be deregistered")

// WorkerStatus is a read-only projection of a single pool member, used by
// status queries and the periodic pool report.
type WorkerStatus struct {
	// ID is the worker's identifier.
	ID worker.ID

	// Role distinguishes regular workers from the protected root worker.
	Role worker.Role

	// Availability is the worker's current online state.
	Availability worker.Availability

	// LastOnlineAt is when the worker last transitioned to online. Zero when
	// the worker has never been online.
	LastOnlineAt time.Time
}

// WorkerPool defines the registry of workers known to the dispatch engine.
//
// The pool owns worker identity, role, and availability; the engine queries
// it for the ordered eligibility snapshot captured at order creation.
// Implementations must be safe for concurrent use.
type WorkerPool interface {
	// Register adds a worker to the pool with the given role. Registering an
	// already-known worker is a no-op that preserves the worker's current
	// availability and role.
	Register(ctx context.Context, id worker.ID, role worker.Role) error

	// Deregister removes a worker from the pool. Removing an unknown worker
	// returns errs.ErrObjectNotFound; removing the root worker returns
	// ErrProtectedWorker. Orders already holding the worker in their
	// eligibility snapshot are unaffected.
	Deregister(ctx context.Context, id worker.ID) error

	// SetAvailability flips a worker online or offline. The pool stamps the
	// worker's priority key on each offline-to-online transition. Unknown
	// workers yield errs.ErrObjectNotFound.
	SetAvailability(ctx context.Context, id worker.ID, availability worker.Availability) error

	// EligibleOrdered returns the ids of all dispatchable workers, ordered by
	// earliest last-online time first, worker id as tiebreaker. The root
	// worker is never included. The returned slice is owned by the caller.
	EligibleOrdered(ctx context.Context) ([]worker.ID, error)

	// Snapshot returns the status of every pool member, root included,
	// in the same order EligibleOrdered uses with the root worker last.
	Snapshot(ctx context.Context) ([]WorkerStatus, error)
}
