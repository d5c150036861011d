package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Stage represents a single step in the order lifecycle workflow.
// Which stages an order actually traverses, and in which order, is decided
// once per order by ResolvePath from the service composition and delivery
// mode; Stage itself is just the vocabulary.
//
// Stages fall into fixed groups:
//
//	incoming logistics:  ToPickup, RiderBooked, ArrivedAtCustomer, DeliveredInShop
//	weighing:            ToWeigh
//	processing:          Processing, Washing, Drying, Pressing, Folding
//	outgoing logistics:  ForDelivery, OutForDelivery, DeliveredToCustomer
//	terminal:            Completed
//	exception exits:     Cancelled, Rejected (reachable from any non-final stage)
type Stage int

const (
	// StageUnknown represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	StageUnknown Stage = iota

	// StageToPickup means the order is waiting for pickup at the customer.
	StageToPickup

	// StageRiderBooked means a third-party rider has been booked for pickup.
	StageRiderBooked

	// StageArrivedAtCustomer means in-house staff have reached the customer.
	StageArrivedAtCustomer

	// StageDeliveredInShop means the picked-up items have arrived at the shop.
	StageDeliveredInShop

	// StageToWeigh means the items are at the shop waiting to be weighed.
	// Drop-off orders start here.
	StageToWeigh

	// StageProcessing means processing has started. Entering this stage is
	// gated on the service invoice being confirmed.
	StageProcessing

	// StageWashing means the items are being washed.
	StageWashing

	// StageDrying means the items are being dried.
	StageDrying

	// StagePressing means the items are being pressed. Present only when the
	// service composition requires pressing.
	StagePressing

	// StageFolding means the items are being folded. Present only when the
	// service composition requires folding.
	StageFolding

	// StageForDelivery means processing is done and the order is ready for
	// outgoing logistics. Reaching it arms the delivery track.
	StageForDelivery

	// StageOutForDelivery means the order has left the shop toward the customer.
	StageOutForDelivery

	// StageDeliveredToCustomer means outgoing logistics completed. It lives on
	// the delivery track only and is never part of the resolved path;
	// completing it forces the order to Completed.
	StageDeliveredToCustomer

	// StageCompleted is the terminal stage of every resolved path.
	StageCompleted

	// StageCancelled is an exception exit, reachable from any non-final stage.
	StageCancelled

	// StageRejected is an exception exit that must be accompanied by a
	// rejection record carrying the reason.
	StageRejected
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		StageUnknown:             "Unknown",
		StageToPickup:            "ToPickup",
		StageRiderBooked:         "RiderBooked",
		StageArrivedAtCustomer:   "ArrivedAtCustomer",
		StageDeliveredInShop:     "DeliveredInShop",
		StageToWeigh:             "ToWeigh",
		StageProcessing:          "Processing",
		StageWashing:             "Washing",
		StageDrying:              "Drying",
		StagePressing:            "Pressing",
		StageFolding:             "Folding",
		StageForDelivery:         "ForDelivery",
		StageOutForDelivery:      "OutForDelivery",
		StageDeliveredToCustomer: "DeliveredToCustomer",
		StageCompleted:           "Completed",
		StageCancelled:           "Cancelled",
		StageRejected:            "Rejected",
	}
}

// Validate checks if the Stage value is valid.
// StageUnknown (0) and out-of-range values are invalid.
func (s Stage) Validate() error {
	if s <= StageUnknown || s > StageRejected {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// String returns the human-readable name of the stage.
// This method implements the fmt.Stringer interface and is safe
// to call on any Stage value, including invalid ones.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StageFromString parses a stage from its string representation.
// Used when decoding incoming requests.
func StageFromString(str string) (Stage, error) {
	for stage, name := range getStageStrings() {
		if stage != StageUnknown && name == str {
			return stage, nil
		}
	}
	return StageUnknown, errs.NewValueIsInvalidErrorWithCause(
		"stage is invalid",
		fmt.Errorf("%q is not a valid stage", str),
	)
}

// IsProcessing reports whether the stage belongs to the processing group.
// Transitions into processing stages are recorded on the processing track only.
func (s Stage) IsProcessing() bool {
	return s >= StageProcessing && s <= StageFolding
}

// IsTerminal reports whether the stage is the path terminal.
func (s Stage) IsTerminal() bool {
	return s == StageCompleted
}

// IsExceptionExit reports whether the stage is one of the
// reachable-from-anywhere exits that are never part of the linear path.
func (s Stage) IsExceptionExit() bool {
	return s == StageCancelled || s == StageRejected
}

// IsFinal reports whether no further order-status transitions are accepted
// once this stage is recorded.
func (s Stage) IsFinal() bool {
	return s.IsTerminal() || s.IsExceptionExit()
}
