// Package guard provides a lightweight constructor-enforcement helper used by
// commands and value objects across the application. Embedding a
// ConstructorGuard in a struct makes zero-value instances detectable, so that
// objects which bypassed their constructor fail validation instead of being
// silently processed.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a
// nil validation error. Validation of an unconstructed object must always fail
// with a meaningful message, even without a type-specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. The zero value is "not constructed"; only NewConstructorGuard
// produces a guard that passes validation.
//
// Example:
//
//	type RegisterWorkerCommand struct {
//	    workerID string
//	    guard    guard.ConstructorGuard
//	}
//
//	func (c RegisterWorkerCommand) Validate() error {
//	    return c.guard.Validate(ErrRegisterWorkerCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as properly
// constructed. Call it from the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
