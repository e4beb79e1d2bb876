package order

import (
	"errors"
	"fmt"
	"slices"

	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrEligibleWorkersRequired is returned when creating an order with an
	// empty eligibility snapshot. The caller must check eligibility before
	// allocating an order id.
	ErrEligibleWorkersRequired = errs.NewValueIsRequiredError("eligible workers")
	// ErrCursorExhausted is returned when advancing past the end of the
	// eligibility snapshot.
	ErrCursorExhausted = errors.New("cursor already past the last eligible worker")
)

// Order is the aggregate root for a unit of work routed to exactly one worker
// at a time.
//
// Order follows these invariants:
//   - The id is a positive integer, assigned once, never reused
//   - eligibleWorkers is a snapshot captured at creation; later pool changes
//     never reorder or extend it
//   - The cursor is monotonically non-decreasing and never exceeds
//     len(eligibleWorkers)
//   - While Pending, eligibleWorkers[cursor] is the single assigned worker
//   - Terminal statuses permit no further mutation
//
// All mutating methods enforce the status machine in Status; callers are
// responsible for serializing concurrent mutations of a single order.
type Order struct {
	// id is the monotonically increasing order identifier
	id int64

	// payload is the immutable order content
	payload Payload

	// eligibleWorkers is the ordered eligibility snapshot from creation time
	eligibleWorkers []worker.ID

	// cursor indexes eligibleWorkers at the currently assigned worker
	cursor int

	// status is the current lifecycle state
	status Status

	// guard ensures the order was created via NewOrder
	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order assigned to the first worker of the
// eligibility snapshot.
//
// Parameters:
//   - id: positive, unique order identifier allocated by the engine
//   - payload: validated order content
//   - eligibleWorkers: non-empty ordered snapshot of dispatchable workers
//
// The snapshot is copied; the caller's slice is not retained.
func NewOrder(id int64, payload Payload, eligibleWorkers []worker.ID) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not positive", id))
	}

	if err := payload.Validate(); err != nil {
		return nil, err
	}

	if len(eligibleWorkers) == 0 {
		return nil, ErrEligibleWorkersRequired
	}

	for _, workerID := range eligibleWorkers {
		if err := workerID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:              id,
		payload:         payload,
		eligibleWorkers: slices.Clone(eligibleWorkers),
		cursor:          0,
		status:          Pending,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order instance was properly constructed via NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's identifier.
func (o *Order) ID() int64 {
	return o.id
}

// Payload returns the immutable order content.
func (o *Order) Payload() Payload {
	return o.payload
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Cursor returns the index of the current assignment within the eligibility
// snapshot. Equal to len(EligibleWorkers()) once the cascade is exhausted.
func (o *Order) Cursor() int {
	return o.cursor
}

// EligibleWorkers returns a copy of the eligibility snapshot.
func (o *Order) EligibleWorkers() []worker.ID {
	return slices.Clone(o.eligibleWorkers)
}

// AssignedWorker returns the worker currently holding the order, and false
// when the cursor has moved past the last eligible worker.
func (o *Order) AssignedWorker() (worker.ID, bool) {
	if o.cursor >= len(o.eligibleWorkers) {
		return "", false
	}
	return o.eligibleWorkers[o.cursor], true
}

// MatchesCursor reports whether the given cursor identifies the order's
// current assignment. Decisions and timer events carry the cursor they were
// issued for; a mismatch means the order has already moved on and the event
// is stale.
func (o *Order) MatchesCursor(cursor int) bool {
	return o.status == Pending && cursor == o.cursor
}

// Exhausted reports whether the cursor has moved past the last eligible
// worker.
func (o *Order) Exhausted() bool {
	return o.cursor >= len(o.eligibleWorkers)
}

// Accept transitions the order to Accepted. Valid only while Pending.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete transitions the order to Completed. Valid only while Accepted.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Advance moves the assignment to the next worker in the eligibility
// snapshot. The order stays Pending; whether the new cursor still addresses a
// worker is reported by Exhausted / AssignedWorker.
//
// Valid only while Pending and not yet exhausted; the cursor never exceeds
// the snapshot length.
func (o *Order) Advance() error {
	if o.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to advance", o.status.String()))
	}

	if o.Exhausted() {
		return ErrCursorExhausted
	}

	o.cursor++
	return nil
}

// RejectAll finalizes an exhausted Pending order whose last advance was
// driven by an explicit rejection.
func (o *Order) RejectAll() error {
	if !o.Exhausted() {
		return errs.NewValueIsInvalidErrorWithCause("cursor",
			fmt.Errorf("cursor %d still addresses an eligible worker", o.cursor))
	}

	newStatus, err := o.status.RejectAll()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Expire finalizes an exhausted Pending order whose last advance was driven
// by a timeout.
func (o *Order) Expire() error {
	if !o.Exhausted() {
		return errs.NewValueIsInvalidErrorWithCause("cursor",
			fmt.Errorf("cursor %d still addresses an eligible worker", o.cursor))
	}

	newStatus, err := o.status.Expire()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}
