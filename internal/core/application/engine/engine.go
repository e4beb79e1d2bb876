// Package engine implements order assignment and escalation: each new order
// is offered to one eligible worker at a time, and a per-assignment timer
// escalates the offer to the next worker when the current one rejects it or
// stays silent past the decision window.
package engine

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrNoWorkerAvailable is returned by CreateOrder when no dispatchable
	// worker exists. No order id is consumed in that case.
	ErrNoWorkerAvailable = errors.New("no dispatchable worker is available")

	// ErrStaleDecision is returned when a decision token no longer matches
	// the order's current assignment: the offer it answers was already
	// superseded by an escalation or an earlier decision.
	ErrStaleDecision = errors.New("decision does not match the order's current assignment")
)

// escalation cause, decides the terminal status of an exhausted order
type cause int

const (
	causeReject cause = iota
	causeTimeout
)

// trackedOrder pairs a live order with the mutex serializing its mutations.
// Decisions, timer expiries, and completion all contend on this one lock, so
// exactly one event wins any race and the rest observe the moved cursor.
type trackedOrder struct {
	mu    sync.Mutex
	order *order.Order
}

// ActiveOrder is a read-only projection of a live (non-terminal) order.
type ActiveOrder struct {
	ID             int64
	Status         order.Status
	CustomerName   string
	Address        string
	Total          float64
	PaymentMode    order.PaymentMode
	AssignedWorker worker.ID
	Cursor         int
	EligibleCount  int
}

// Engine owns the live orders and drives their lifecycle. Terminal orders
// are archived and dropped from memory; everything in the orders map is
// Pending or Accepted.
type Engine struct {
	pool      ports.WorkerPool
	notifier  ports.Notifier
	archive   ports.OrderArchive
	scheduler Scheduler
	window    time.Duration
	logger    *slog.Logger

	mu     sync.Mutex
	orders map[int64]*trackedOrder
	nextID int64
}

// NewEngine creates a dispatch engine. The window is how long each worker has
// to decide before the offer escalates.
func NewEngine(
	pool ports.WorkerPool,
	notifier ports.Notifier,
	archive ports.OrderArchive,
	scheduler Scheduler,
	window time.Duration,
	logger *slog.Logger,
) (*Engine, error) {
	if pool == nil {
		return nil, errs.NewValueIsRequiredError("pool")
	}
	if notifier == nil {
		return nil, errs.NewValueIsRequiredError("notifier")
	}
	if archive == nil {
		return nil, errs.NewValueIsRequiredError("archive")
	}
	if scheduler == nil {
		return nil, errs.NewValueIsRequiredError("scheduler")
	}
	if window <= 0 {
		return nil, errs.NewValueIsRequiredError("window")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &Engine{
		pool:      pool,
		notifier:  notifier,
		archive:   archive,
		scheduler: scheduler,
		window:    window,
		logger:    logger.With("component", "dispatch_engine"),
		orders:    make(map[int64]*trackedOrder),
	}, nil
}

// CreateOrder captures the eligibility snapshot, allocates the next order id,
// and offers the order to the first eligible worker.
//
// When no worker is dispatchable the order is refused with
// ErrNoWorkerAvailable and the id sequence does not move.
func (e *Engine) CreateOrder(ctx context.Context, payload order.Payload) (int64, error) {
	if err := payload.Validate(); err != nil {
		return 0, err
	}

	eligible, err := e.pool.EligibleOrdered(ctx)
	if err != nil {
		return 0, err
	}
	if len(eligible) == 0 {
		return 0, ErrNoWorkerAvailable
	}

	e.mu.Lock()
	id := e.nextID + 1
	newOrder, err := order.NewOrder(id, payload, eligible)
	if err != nil {
		e.mu.Unlock()
		return 0, err
	}
	e.nextID = id
	tracked := &trackedOrder{order: newOrder}
	e.orders[id] = tracked
	e.mu.Unlock()

	tracked.mu.Lock()
	defer tracked.mu.Unlock()
	e.offerLocked(ctx, tracked)

	return id, nil
}

// Decide applies a worker's accept or reject for one specific offer. The
// token must match the order's current assignment; a mismatch means the offer
// was already superseded and the decision is refused with ErrStaleDecision.
func (e *Engine) Decide(ctx context.Context, token ports.DecisionToken, decision ports.Decision) error {
	if decision != ports.DecisionAccept && decision != ports.DecisionReject {
		return errs.NewValueIsInvalidError("decision")
	}

	tracked, ok := e.lookup(token.OrderID)
	if !ok {
		return errs.NewObjectNotFoundError("order", token.OrderID)
	}

	tracked.mu.Lock()
	defer tracked.mu.Unlock()

	assigned, hasAssigned := tracked.order.AssignedWorker()
	if !tracked.order.MatchesCursor(token.Cursor) || !hasAssigned || assigned != token.WorkerID {
		return ErrStaleDecision
	}

	e.scheduler.Cancel(TimerKey{OrderID: token.OrderID, Cursor: token.Cursor})

	if decision == ports.DecisionAccept {
		if err := tracked.order.Accept(); err != nil {
			return err
		}
		e.notifyOutcome(ctx, tracked.order, ports.OutcomeAccepted, string(assigned))
		return nil
	}

	e.advanceLocked(ctx, tracked, causeReject)
	return nil
}

// Complete marks an accepted order fulfilled, archives it, and drops it from
// the live set. The detail is the fulfillment reference forwarded to the
// customer with the completion notice; when empty, the assigned worker's id
// is forwarded instead.
func (e *Engine) Complete(ctx context.Context, orderID int64, detail string) error {
	tracked, ok := e.lookup(orderID)
	if !ok {
		return errs.NewObjectNotFoundError("order", orderID)
	}

	tracked.mu.Lock()
	defer tracked.mu.Unlock()

	assigned, _ := tracked.order.AssignedWorker()

	if err := tracked.order.Complete(); err != nil {
		return err
	}

	if detail == "" {
		detail = string(assigned)
	}
	e.notifyOutcome(ctx, tracked.order, ports.OutcomeCompleted, detail)
	e.retireLocked(ctx, tracked, assigned)
	return nil
}

// ActiveOrders returns a projection of every live order, ordered by id.
func (e *Engine) ActiveOrders(_ context.Context) []ActiveOrder {
	e.mu.Lock()
	live := make([]*trackedOrder, 0, len(e.orders))
	for _, tracked := range e.orders {
		live = append(live, tracked)
	}
	e.mu.Unlock()

	views := make([]ActiveOrder, 0, len(live))
	for _, tracked := range live {
		tracked.mu.Lock()
		o := tracked.order
		assigned, _ := o.AssignedWorker()
		payload := o.Payload()
		views = append(views, ActiveOrder{
			ID:             o.ID(),
			Status:         o.Status(),
			CustomerName:   payload.CustomerName(),
			Address:        payload.Address(),
			Total:          payload.Amount().Total(),
			PaymentMode:    payload.PaymentMode(),
			AssignedWorker: assigned,
			Cursor:         o.Cursor(),
			EligibleCount:  len(o.EligibleWorkers()),
		})
		tracked.mu.Unlock()
	}

	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
	return views
}

func (e *Engine) lookup(orderID int64) (*trackedOrder, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	tracked, ok := e.orders[orderID]
	return tracked, ok
}

// expire is the timer callback for one assignment. A key whose cursor no
// longer matches is a stale wakeup and is ignored.
func (e *Engine) expire(key TimerKey) {
	tracked, ok := e.lookup(key.OrderID)
	if !ok {
		return
	}

	tracked.mu.Lock()
	defer tracked.mu.Unlock()

	if !tracked.order.MatchesCursor(key.Cursor) {
		return
	}

	ctx := context.Background()
	e.logger.InfoContext(ctx, "Assignment timed out",
		"order_id", key.OrderID, "cursor", key.Cursor)
	e.advanceLocked(ctx, tracked, causeTimeout)
}

// offerLocked notifies the currently assigned worker and arms the escalation
// timer. A permanent delivery failure counts as an immediate rejection by the
// unreachable worker. Caller holds tracked.mu.
func (e *Engine) offerLocked(ctx context.Context, tracked *trackedOrder) {
	assigned, ok := tracked.order.AssignedWorker()
	if !ok {
		return
	}

	key := TimerKey{OrderID: tracked.order.ID(), Cursor: tracked.order.Cursor()}
	e.scheduler.Schedule(key, e.window, func() { e.expire(key) })

	token := ports.DecisionToken{OrderID: key.OrderID, Cursor: key.Cursor, WorkerID: assigned}
	err := e.notifier.NotifyAssignment(ctx, assigned, snapshotOf(tracked.order), token)
	if err == nil {
		return
	}

	if errors.Is(err, ports.ErrPermanentDelivery) {
		e.logger.WarnContext(ctx, "Worker unreachable, escalating",
			"order_id", key.OrderID, "worker_id", assigned, "error", err)
		e.scheduler.Cancel(key)
		e.advanceLocked(ctx, tracked, causeReject)
		return
	}

	// transient failure: the timer stays armed and escalates on silence
	e.logger.WarnContext(ctx, "Assignment notification failed",
		"order_id", key.OrderID, "worker_id", assigned, "error", err)
}

// advanceLocked moves the cursor past the current worker and either offers
// the order to the next one or finalizes it. Caller holds tracked.mu.
func (e *Engine) advanceLocked(ctx context.Context, tracked *trackedOrder, c cause) {
	if err := tracked.order.Advance(); err != nil {
		e.logger.ErrorContext(ctx, "Cannot advance order",
			"order_id", tracked.order.ID(), "error", err)
		return
	}

	if !tracked.order.Exhausted() {
		e.offerLocked(ctx, tracked)
		return
	}

	var err error
	outcome := ports.OutcomeRejected
	if c == causeTimeout {
		outcome = ports.OutcomeExpired
		err = tracked.order.Expire()
	} else {
		err = tracked.order.RejectAll()
	}
	if err != nil {
		e.logger.ErrorContext(ctx, "Cannot finalize order",
			"order_id", tracked.order.ID(), "error", err)
		return
	}

	e.notifyOutcome(ctx, tracked.order, outcome, "")
	e.retireLocked(ctx, tracked, "")
}

// retireLocked archives a terminal order and removes it from the live set.
// Caller holds tracked.mu.
func (e *Engine) retireLocked(ctx context.Context, tracked *trackedOrder, assigned worker.ID) {
	o := tracked.order
	payload := o.Payload()

	err := e.archive.Save(ctx, ports.ArchivedOrder{
		OrderID:        o.ID(),
		CustomerID:     payload.CustomerID().String(),
		CustomerName:   payload.CustomerName(),
		Address:        payload.Address(),
		Total:          payload.Amount().Total(),
		PaymentMode:    payload.PaymentMode().String(),
		Status:         o.Status(),
		AssignedWorker: string(assigned),
		FinishedAt:     time.Now().UTC(),
	})
	if err != nil {
		e.logger.ErrorContext(ctx, "Cannot archive order",
			"order_id", o.ID(), "error", err)
	}

	e.mu.Lock()
	delete(e.orders, o.ID())
	e.mu.Unlock()
}

func (e *Engine) notifyOutcome(ctx context.Context, o *order.Order, outcome ports.Outcome, detail string) {
	err := e.notifier.NotifyOutcome(ctx, o.Payload().CustomerID(), o.ID(), outcome, detail)
	if err != nil {
		e.logger.WarnContext(ctx, "Outcome notification failed",
			"order_id", o.ID(), "outcome", outcome.String(), "error", err)
	}
}

func snapshotOf(o *order.Order) ports.OrderSnapshot {
	payload := o.Payload()
	return ports.OrderSnapshot{
		ID:              o.ID(),
		CustomerName:    payload.CustomerName(),
		Address:         payload.Address(),
		ImageRef:        payload.ImageRef(),
		Total:           payload.Amount().Total(),
		PaymentMode:     payload.PaymentMode(),
		UPIHandle:       payload.UPIHandle(),
		PaymentProofRef: payload.PaymentProofRef(),
	}
}
