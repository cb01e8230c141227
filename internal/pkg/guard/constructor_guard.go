// Package guard provides the ConstructorGuard pattern used by value objects,
// commands, and aggregates to ensure they are only created through their
// designated constructor functions.
//
// A zero-value struct embedding a ConstructorGuard fails validation, which
// makes it impossible to smuggle an unvalidated object into the domain layer.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// was supplied and the guarded object was not created through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether the embedding struct was built through its
// constructor function or left as a zero value.
//
// The guard holds an internal flag that is only set by NewConstructorGuard.
// Constructors embed the guard; Validate methods check it before any other
// invariant.
//
// Example usage:
//
//	var ErrQuantityNotConstructed = errors.New("Quantity must be created via NewQuantity")
//
//	type Quantity struct {
//	    kg    decimal.Decimal
//	    guard guard.ConstructorGuard
//	}
//
//	func NewQuantity(kg decimal.Decimal) (Quantity, error) {
//	    if !kg.IsPositive() {
//	        return Quantity{}, errors.New("quantity must be positive")
//	    }
//	    return Quantity{kg: kg, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (q Quantity) Validate() error {
//	    return q.guard.Validate(ErrQuantityNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks the embedding object as
// properly constructed. Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
