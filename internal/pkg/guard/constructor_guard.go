// Package guard provides a defensive construction pattern for domain objects.
// Embedding a ConstructorGuard in a value object or command lets validation
// detect zero-value instances that bypassed the designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through
// their designated constructor functions. It prevents direct struct
// initialization and enforces validation rules.
//
// The guard works by maintaining an internal flag that is only set to true when
// the object is created through the proper constructor function. Any attempt to
// use a zero-value struct will fail validation.
//
// Example usage:
//
//	var ErrWashProgramNotConstructed = errors.New("WashProgram must be created via NewWashProgram")
//
//	type WashProgram struct {
//	    name        string
//	    temperature int
//	    guard       guard.ConstructorGuard
//	}
//
//	func NewWashProgram(name string, temperature int) (WashProgram, error) {
//	    if temperature < 0 {
//	        return WashProgram{}, errors.New("temperature cannot be negative")
//	    }
//	    return WashProgram{name: name, temperature: temperature, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p WashProgram) Validate() error {
//	    return p.guard.Validate(ErrWashProgramNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. This should be called in the constructor of domain
// objects so they can be distinguished from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed through
// its designated constructor function.
//
// If the object was created as a zero value (not through the constructor),
// this method returns the provided validation error. If validationError is nil,
// ErrDefaultConstructorGuard is returned instead.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
