package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Direction distinguishes the two independent logistics flows of an order.
type Direction int

const (
	// DirectionUnknown represents an invalid or undefined direction.
	DirectionUnknown Direction = iota

	// DirectionIncoming is the customer-to-shop flow (pickup).
	DirectionIncoming

	// DirectionOutgoing is the shop-to-customer flow (delivery).
	DirectionOutgoing
)

func getDirectionStrings() map[Direction]string {
	return map[Direction]string{
		DirectionUnknown:  "Unknown",
		DirectionIncoming: "Incoming",
		DirectionOutgoing: "Outgoing",
	}
}

// Validate checks if the Direction value is valid.
func (d Direction) Validate() error {
	if d != DirectionIncoming && d != DirectionOutgoing {
		return errs.NewValueIsInvalidErrorWithCause("direction is invalid", fmt.Errorf("%d is not a valid direction", d))
	}
	return nil
}

// String returns the human-readable name of the direction.
func (d Direction) String() string {
	if str, ok := getDirectionStrings()[d]; ok {
		return str
	}
	return "Unknown"
}

// DirectionFromString parses a direction from its string representation.
func DirectionFromString(str string) (Direction, error) {
	for direction, name := range getDirectionStrings() {
		if direction != DirectionUnknown && name == str {
			return direction, nil
		}
	}
	return DirectionUnknown, errs.NewValueIsInvalidErrorWithCause(
		"direction is invalid",
		fmt.Errorf("%q is not a valid direction", str),
	)
}

// DeliverySteps returns the ordered stage sequence for one logistics flow.
// Each direction has two provider variants:
//
//	incoming, third-party: ToPickup -> RiderBooked -> DeliveredInShop
//	incoming, in-house:    ToPickup -> ArrivedAtCustomer
//	outgoing, third-party: ForDelivery -> OutForDelivery -> DeliveredToCustomer
//	outgoing, in-house:    ForDelivery -> DeliveredToCustomer
func DeliverySteps(direction Direction, fleetInHouse bool) []Stage {
	switch direction {
	case DirectionIncoming:
		if fleetInHouse {
			return []Stage{StageToPickup, StageArrivedAtCustomer}
		}
		return []Stage{StageToPickup, StageRiderBooked, StageDeliveredInShop}
	case DirectionOutgoing:
		if fleetInHouse {
			return []Stage{StageForDelivery, StageDeliveredToCustomer}
		}
		return []Stage{StageForDelivery, StageOutForDelivery, StageDeliveredToCustomer}
	default:
		return nil
	}
}

// deliveryStepNeedsProof reports whether reaching the stage requires an
// attached proof reference. Only the third-party booking steps do: proof
// upload is a precondition of the booking, not a stage itself.
func deliveryStepNeedsProof(direction Direction, fleetInHouse bool, target Stage) bool {
	if fleetInHouse {
		return false
	}
	switch direction {
	case DirectionIncoming:
		return target == StageRiderBooked
	case DirectionOutgoing:
		return target == StageOutForDelivery
	default:
		return false
	}
}

// deliveryForcedOrderStage returns the order-status stage that completing a
// logistics flow forces, or StageUnknown when the step forces nothing.
// Completing the incoming flow forces ToWeigh; completing the outgoing flow
// forces Completed.
func deliveryForcedOrderStage(target Stage) Stage {
	switch target {
	case StageDeliveredInShop, StageArrivedAtCustomer:
		return StageToWeigh
	case StageDeliveredToCustomer:
		return StageCompleted
	default:
		return StageUnknown
	}
}
