// Package guard provides the constructor guard used by commands, queries and aggregates
// to reject zero values that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in value objects and entities that must only be built
// through their constructor. The zero value is "not constructed".
//
// Example:
//
//	type DraftOrderCommand struct {
//	    customerID kernel.UUID
//	    guard      guard.ConstructorGuard
//	}
//
//	func (c DraftOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrDraftOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
