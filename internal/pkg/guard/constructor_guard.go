// Package guard provides the constructor guard pattern used by commands,
// queries, and value objects to ensure instances are only created through
// their designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by Validate when a
// nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is a defensive programming pattern that ensures value
// objects and entities are only created through their designated constructor
// functions. A zero-value guard fails validation; a guard obtained from
// NewConstructorGuard passes.
//
// Example usage:
//
//	type TrackingCode struct {
//	    value string
//	    guard ConstructorGuard
//	}
//
//	func NewTrackingCode(value string) (TrackingCode, error) {
//	    if value == "" {
//	        return TrackingCode{}, errors.New("value is required")
//	    }
//	    return TrackingCode{value: value, guard: NewConstructorGuard()}, nil
//	}
//
//	func (c TrackingCode) Validate() error {
//	    return c.guard.Validate(ErrTrackingCodeIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. Call it in the constructor of domain objects so they
// can be distinguished from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed.
// Returns nil for constructed objects, the provided validationError for
// zero values, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
