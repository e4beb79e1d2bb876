package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions so orders follow the correct workflow.
//
// State transitions:
//
//	Pending ──┬──> Accepted ──> Completed
//	          │
//	          ├──> RejectedByAll
//	          └──> Expired
//
// Pending is the only state that persists across reassignment: advancing the
// cursor keeps the order Pending. Completed, RejectedByAll, and Expired are
// terminal; Accepted only transitions to Completed. No transition ever leaves
// a terminal state.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status: the order is assigned to a worker who
	// has not yet decided. Reassignment keeps the order Pending.
	Pending

	// Accepted indicates the assigned worker accepted the order. No further
	// escalation happens; the order awaits completion.
	Accepted

	// Completed indicates the accepted order was fulfilled. Final state.
	Completed

	// RejectedByAll indicates every eligible worker explicitly rejected the
	// order (the last advance was driven by a rejection). Final state.
	RejectedByAll

	// Expired indicates the escalation cascade ran past the last eligible
	// worker on a timeout. Final state.
	Expired
)

// getStatusStrings returns a map of Status values to their string
// representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Pending:       "Pending",
		Accepted:      "Accepted",
		Completed:     "Completed",
		RejectedByAll: "RejectedByAll",
		Expired:       "Expired",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	switch s {
	case Pending, Accepted, Completed, RejectedByAll, Expired:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
// Accepted is not terminal: it still transitions to Completed.
func (s Status) IsTerminal() bool {
	return s == Completed || s == RejectedByAll || s == Expired
}

// Accept transitions Pending to Accepted.
//
// Returns (0, error) if the current status is not Pending: decisions arriving
// after the order left Pending must not change its state.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}

	return Accepted, nil
}

// Complete transitions Accepted to Completed.
func (s Status) Complete() (Status, error) {
	if s != Accepted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// RejectAll transitions Pending to RejectedByAll. Used when an explicit
// rejection advances the cursor past the last eligible worker.
func (s Status) RejectAll() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to reject", s.String()),
		)
	}

	return RejectedByAll, nil
}

// Expire transitions Pending to Expired. Used when a timeout advances the
// cursor past the last eligible worker.
func (s Status) Expire() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to expire", s.String()),
		)
	}

	return Expired, nil
}
