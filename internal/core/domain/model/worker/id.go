package worker

import (
	"strings"

	"dispatch/internal/pkg/errs"
)

// ErrIDIsRequired is returned when constructing an ID from an empty string.
var ErrIDIsRequired = errs.NewValueIsRequiredError("worker id")

// ID is the opaque identity of a worker. The engine never interprets its
// contents; it only compares IDs for equality and uses them as tie-breakers
// when ordering eligible workers.
type ID string

// NewID creates a worker ID from its raw representation. Leading and trailing
// whitespace is trimmed; an empty result is rejected.
func NewID(raw string) (ID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrIDIsRequired
	}
	return ID(trimmed), nil
}

// String returns the raw identifier.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the ID is empty.
func (id ID) IsZero() bool {
	return id == ""
}

// Validate checks that the ID is not empty.
func (id ID) Validate() error {
	if id.IsZero() {
		return ErrIDIsRequired
	}
	return nil
}
