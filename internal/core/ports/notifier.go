package ports

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/worker"
)

// ErrPermanentDelivery is returned by a Notifier when the recipient can
// never receive the message (gone, unsubscribed, blocked). The engine treats
// a permanent assignment delivery failure as an immediate rejection by the
// unreachable worker.
var ErrPermanentDelivery = errors.New("notification cannot be delivered")

// Decision is a worker's answer to an assignment offer.
type Decision int

const (
	// DecisionUnknown is the zero value and never a valid decision.
	DecisionUnknown Decision = iota
	// DecisionAccept claims the order for the deciding worker.
	DecisionAccept
	// DecisionReject declines the offer and moves the order on.
	DecisionReject
)

// ParseDecision converts a wire-level decision value.
func ParseDecision(value string) (Decision, error) {
	switch value {
	case "accept":
		return DecisionAccept, nil
	case "reject":
		return DecisionReject, nil
	default:
		return DecisionUnknown, errors.New("decision must be accept or reject")
	}
}

// String returns the wire-level representation of the decision.
func (d Decision) String() string {
	switch d {
	case DecisionAccept:
		return "accept"
	case DecisionReject:
		return "reject"
	default:
		return "Unknown"
	}
}

// DecisionToken identifies one specific assignment offer. It is handed to the
// worker with the offer and must come back with the decision; a token whose
// cursor no longer matches the order's current assignment is stale and the
// decision carrying it is discarded.
type DecisionToken struct {
	// OrderID is the offered order.
	OrderID int64

	// Cursor is the position in the order's eligibility snapshot the offer
	// was issued for.
	Cursor int

	// WorkerID is the worker the offer was addressed to.
	WorkerID worker.ID
}

// OrderSnapshot is the read-only view of an order shipped with an assignment
// offer. It carries everything the worker needs to decide.
type OrderSnapshot struct {
	// ID is the order identifier.
	ID int64

	// CustomerName is the ordering customer's display name.
	CustomerName string

	// Address is the delivery destination.
	Address string

	// ImageRef is the opaque reference to the order artifact.
	ImageRef string

	// Total is the amount due, in the engine's currency.
	Total float64

	// PaymentMode is how the customer pays.
	PaymentMode order.PaymentMode

	// UPIHandle is the customer's payment handle. Empty for cash on delivery.
	UPIHandle string

	// PaymentProofRef references the proof of payment. Empty for cash on
	// delivery.
	PaymentProofRef string
}

// Outcome is the terminal result reported to the customer.
type Outcome int

const (
	// OutcomeUnknown is the zero value and never a valid outcome.
	OutcomeUnknown Outcome = iota
	// OutcomeAccepted tells the customer a worker took the order.
	OutcomeAccepted
	// OutcomeCompleted tells the customer the order was fulfilled.
	OutcomeCompleted
	// OutcomeRejected tells the customer every eligible worker declined.
	OutcomeRejected
	// OutcomeExpired tells the customer no worker answered in time.
	OutcomeExpired
)

// String returns the wire-level representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeCompleted:
		return "completed"
	case OutcomeRejected:
		return "rejected_by_all"
	case OutcomeExpired:
		return "expired"
	default:
		return "Unknown"
	}
}

// Notifier delivers engine events to workers and customers. Implementations
// must distinguish transient failures (returned as ordinary errors) from
// permanent ones (wrapped in ErrPermanentDelivery).
type Notifier interface {
	// NotifyAssignment offers an order to a worker. The token must be echoed
	// back with the worker's decision.
	NotifyAssignment(ctx context.Context, workerID worker.ID, snapshot OrderSnapshot, token DecisionToken) error

	// NotifyOutcome reports a terminal-or-accepted event to the customer.
	// Detail carries optional human-readable context, such as the assigned
	// worker's id.
	NotifyOutcome(ctx context.Context, customerID kernel.UUID, orderID int64, outcome Outcome, detail string) error
}
