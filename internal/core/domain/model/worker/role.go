package worker

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Role separates ordinary, dispatchable workers from the protected root
// identity. Root workers administer the pool: they are never selected for
// assignments and cannot be deregistered.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleRegular is a dispatchable pool member.
	RoleRegular

	// RoleRoot is the protected administrative identity.
	RoleRoot
)

// Validate checks that the Role is one of the defined roles.
func (r Role) Validate() error {
	if r != RoleRegular && r != RoleRoot {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	switch r {
	case RoleRegular:
		return "regular"
	case RoleRoot:
		return "root"
	default:
		return "Unknown"
	}
}
