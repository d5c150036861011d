package payment

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// State represents the confirmation state of a single payment track.
// It implements a small state machine applied independently to the service
// invoice and the delivery fee.
//
// State transitions:
//
//	Pending ──> Submitted ──> Confirmed   (non-cash: submission carries a proof)
//	Pending ─────────────────> Confirmed  (cash, or non-cash confirmed by staff with proof)
//
// Confirmed is a final state with no further transitions.
type State int

const (
	// Unknown represents an invalid or undefined state.
	// This value (0) helps catch payment tracks that were never armed.
	Unknown State = iota

	// Pending is the initial state once a payment track is armed
	// (the invoice after weighing, the delivery fee after delivery handoff).
	Pending

	// Submitted indicates the customer has submitted a payment with proof
	// and is waiting for staff confirmation.
	Submitted

	// Confirmed indicates staff has confirmed the payment.
	// This is a final state.
	Confirmed
)

// getStateStrings returns a map of State values to their string representations.
func getStateStrings() map[State]string {
	return map[State]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Submitted: "Submitted",
		Confirmed: "Confirmed",
	}
}

// getValidStateStrings returns a map of only valid State values.
func getValidStateStrings() map[State]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[State]string{
		Pending:   "Pending",
		Submitted: "Submitted",
		Confirmed: "Confirmed",
	}
}

// Validate checks if the State value is valid.
// Valid states are: Pending, Submitted, Confirmed.
func (s State) Validate() error {
	if _, ok := getValidStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment state is invalid", fmt.Errorf("%d is not a valid payment state", s))
	}
	return nil
}

// String returns the human-readable name of the state.
// This method implements the fmt.Stringer interface and is safe
// to call on any State value, including invalid ones.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Submit transitions the state to Submitted.
//
// Valid transitions:
//   - Pending -> Submitted (customer submits payment with proof)
//
// Returns:
//   - (Submitted, nil) on valid transition
//   - (0, error) if the track is not armed or the payment is already submitted or confirmed
func (s State) Submit() (State, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"payment state is invalid",
			fmt.Errorf("%s is not a valid state to submit from", s.String()),
		)
	}

	return Submitted, nil
}

// Confirm transitions the state to Confirmed.
//
// Valid transitions:
//   - Pending -> Confirmed (cash, or non-cash with proof attached at confirmation)
//   - Submitted -> Confirmed (staff confirms a submitted payment)
//
// Whether a proof reference is required before confirmation depends on the
// payment method and is enforced by the order aggregate, not here.
func (s State) Confirm() (State, error) {
	if s != Pending && s != Submitted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"payment state is invalid",
			fmt.Errorf("%s is not a valid state to confirm from", s.String()),
		)
	}

	return Confirmed, nil
}
