package worker

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Availability represents whether a worker can currently receive orders.
// It is a value object with exactly two valid states; the zero value is
// invalid so uninitialized availabilities are caught by Validate.
type Availability int

const (
	// AvailabilityUnknown represents an invalid or undefined availability.
	AvailabilityUnknown Availability = iota

	// Offline means the worker must not receive assignments. New workers
	// start offline.
	Offline

	// Online means the worker is eligible for assignments.
	Online
)

// getAvailabilityStrings returns the string representation for each state.
func getAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		AvailabilityUnknown: "Unknown",
		Offline:             "offline",
		Online:              "online",
	}
}

// ParseAvailability converts the wire representation ("online"/"offline")
// into an Availability. Returns an error for any other input.
func ParseAvailability(raw string) (Availability, error) {
	switch raw {
	case "online":
		return Online, nil
	case "offline":
		return Offline, nil
	default:
		return AvailabilityUnknown, errs.NewValueIsInvalidErrorWithCause("availability",
			fmt.Errorf("%q is not one of online, offline", raw))
	}
}

// Validate checks that the Availability is one of the two defined states.
func (a Availability) Validate() error {
	if a != Online && a != Offline {
		return errs.NewValueIsInvalidErrorWithCause("availability",
			fmt.Errorf("%d is not a valid availability", a))
	}
	return nil
}

// String returns the wire representation of the availability.
// Implements fmt.Stringer; safe to call on invalid values.
func (a Availability) String() string {
	if str, ok := getAvailabilityStrings()[a]; ok {
		return str
	}
	return "Unknown"
}
