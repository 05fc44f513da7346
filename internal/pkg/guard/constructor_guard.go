package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through
// their designated constructor functions. Embedding a guard in a struct makes
// zero-value instances detectable: the internal flag is only set when the
// object went through its constructor.
//
// Example usage:
//
//	type DeliveryPerson struct {
//	    id    kernel.UUID
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewDeliveryPerson(id kernel.UUID, name string) (*DeliveryPerson, error) {
//	    // validate inputs...
//	    return &DeliveryPerson{id: id, name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p *DeliveryPerson) Validate() error {
//	    return p.guard.Validate(ErrDeliveryPersonIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it inside the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its
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
