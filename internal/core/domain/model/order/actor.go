package order

import (
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// Role identifies who performed a workflow action.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleShop     Role = "shop"
	RoleRider    Role = "rider"
	RoleSystem   Role = "system"
)

// Validate checks if the Role value is one of the known roles.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleShop, RoleRider, RoleSystem:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// String returns the role name.
func (r Role) String() string {
	return string(r)
}

// ErrActorIsNotConstructed is returned when an Actor was not created through
// NewActor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError(
	"Actor must be created via NewActor constructor",
)

// Actor is the identity behind a stage event. It is always an explicit
// parameter threaded through every workflow call, never read from ambient
// session state, so the engine stays testable in isolation.
type Actor struct {
	id   kernel.UUID
	role Role

	guard guard.ConstructorGuard
}

// NewActor creates a validated actor.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:    id,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the actor was created through the constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's identity.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// IsEqual compares two actors by identity and role.
func (a Actor) IsEqual(other Actor) bool {
	return a.id.IsEqual(other.id) && a.role == other.role
}
