package order

import (
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// ServiceComposition describes what a chosen laundry service does, as explicit
// boolean capability flags resolved once from the catalog at order creation.
// Behavior is never re-derived from display strings: the flags are the only
// input the workflow path resolver sees.
type ServiceComposition struct { //nolint:recvcheck //using for validation
	requiresWash  bool
	requiresDry   bool
	requiresPress bool
	requiresFold  bool

	guard guard.ConstructorGuard
}

// ErrServiceCompositionIsNotConstructed is returned when a ServiceComposition
// was not created through NewServiceComposition.
var ErrServiceCompositionIsNotConstructed = errs.NewValueIsRequiredError(
	"ServiceComposition must be created via NewServiceComposition constructor",
)

// NewServiceComposition creates a validated service composition.
// At least one capability must be present: a service that washes nothing,
// dries nothing, presses nothing and folds nothing is not a service.
func NewServiceComposition(wash, dry, press, fold bool) (ServiceComposition, error) {
	if !wash && !dry && !press && !fold {
		return ServiceComposition{}, errs.NewValueIsInvalidError("service composition has no capabilities")
	}

	return ServiceComposition{
		requiresWash:  wash,
		requiresDry:   dry,
		requiresPress: press,
		requiresFold:  fold,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the composition was created through the constructor.
func (c ServiceComposition) Validate() error {
	return c.guard.Validate(ErrServiceCompositionIsNotConstructed)
}

// RequiresWash reports whether the service washes.
func (c ServiceComposition) RequiresWash() bool {
	return c.requiresWash
}

// RequiresDry reports whether the service dries.
func (c ServiceComposition) RequiresDry() bool {
	return c.requiresDry
}

// RequiresPress reports whether the service presses. Adds the Pressing stage
// to the resolved path.
func (c ServiceComposition) RequiresPress() bool {
	return c.requiresPress
}

// RequiresFold reports whether the service folds. Adds the Folding stage to
// the resolved path.
func (c ServiceComposition) RequiresFold() bool {
	return c.requiresFold
}

// DeliveryMode describes the logistics arrangement of an order, as explicit
// boolean flags resolved once from the catalog at order creation.
type DeliveryMode struct { //nolint:recvcheck //using for validation
	pickupRequired   bool
	deliveryRequired bool
	fleetInHouse     bool

	guard guard.ConstructorGuard
}

// ErrDeliveryModeIsNotConstructed is returned when a DeliveryMode was not
// created through NewDeliveryMode.
var ErrDeliveryModeIsNotConstructed = errs.NewValueIsRequiredError(
	"DeliveryMode must be created via NewDeliveryMode constructor",
)

// NewDeliveryMode creates a validated delivery mode.
// All-false is valid: the customer drops off and picks up at the shop.
// fleetInHouse decides which logistics sub-path applies when pickup or
// delivery is required; it is ignored otherwise.
func NewDeliveryMode(pickup, delivery, fleetInHouse bool) (DeliveryMode, error) {
	return DeliveryMode{
		pickupRequired:   pickup,
		deliveryRequired: delivery,
		fleetInHouse:     fleetInHouse,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the mode was created through the constructor.
func (m DeliveryMode) Validate() error {
	return m.guard.Validate(ErrDeliveryModeIsNotConstructed)
}

// PickupRequired reports whether items are collected from the customer.
func (m DeliveryMode) PickupRequired() bool {
	return m.pickupRequired
}

// DeliveryRequired reports whether finished items are delivered back.
func (m DeliveryMode) DeliveryRequired() bool {
	return m.deliveryRequired
}

// FleetInHouse reports whether logistics are performed by the shop's own
// staff rather than a third-party rider service.
func (m DeliveryMode) FleetInHouse() bool {
	return m.fleetInHouse
}
