package worker

import (
	"errors"
	"time"

	"dispatch/internal/pkg/guard"
)

// ErrWorkerIsNotConstructed is returned when a Worker instance was not created
// through the NewWorker factory method.
var ErrWorkerIsNotConstructed = errors.New("Worker must be created via NewWorker constructor")

// Worker represents a pool member capable of accepting or rejecting orders.
// It is an aggregate root owning the worker's identity, role, availability,
// and priority key.
//
// Worker follows these invariants:
//   - Must have a non-empty ID and a valid role
//   - Starts offline; availability is mutated only through SetAvailability
//   - lastOnlineAt is stamped on every offline-to-online transition and is
//     the priority key used to order eligible workers (earliest first)
//   - Only created through the NewWorker constructor
//
// The dispatch engine never mutates workers; availability changes come from
// external administration through the pool.
type Worker struct {
	// id uniquely identifies the worker
	id ID

	// role separates dispatchable workers from the protected root identity
	role Role

	// availability reports whether the worker can receive assignments
	availability Availability

	// lastOnlineAt is the time of the last offline-to-online transition
	lastOnlineAt time.Time

	// guard ensures the worker was created via NewWorker
	guard guard.ConstructorGuard
}

// NewWorker creates a Worker with the given identity and role. The worker
// starts offline with a zero priority key; it becomes eligible for
// assignments only after going online.
func NewWorker(id ID, role Role) (*Worker, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if err := role.Validate(); err != nil {
		return nil, err
	}

	return &Worker{
		id:           id,
		role:         role,
		availability: Offline,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Worker instance was properly constructed via NewWorker.
func (w *Worker) Validate() error {
	if w == nil {
		return ErrWorkerIsNotConstructed
	}
	return w.guard.Validate(ErrWorkerIsNotConstructed)
}

// ID returns the worker's identity.
func (w *Worker) ID() ID {
	return w.id
}

// Role returns the worker's role.
func (w *Worker) Role() Role {
	return w.role
}

// Availability returns the worker's current availability.
func (w *Worker) Availability() Availability {
	return w.availability
}

// LastOnlineAt returns the time of the last offline-to-online transition.
// Zero if the worker has never been online.
func (w *Worker) LastOnlineAt() time.Time {
	return w.lastOnlineAt
}

// IsOnline reports whether the worker is currently online.
func (w *Worker) IsOnline() bool {
	return w.availability == Online
}

// IsDispatchable reports whether the worker may receive order assignments:
// online and not the root identity.
func (w *Worker) IsDispatchable() bool {
	return w.IsOnline() && w.role == RoleRegular
}

// SetAvailability transitions the worker's availability. Going from offline
// to online stamps lastOnlineAt with the supplied time; re-setting the
// current availability is a no-op and does not refresh the priority key.
func (w *Worker) SetAvailability(availability Availability, at time.Time) error {
	if err := availability.Validate(); err != nil {
		return err
	}

	if availability == w.availability {
		return nil
	}

	if availability == Online {
		w.lastOnlineAt = at
	}

	w.availability = availability
	return nil
}
