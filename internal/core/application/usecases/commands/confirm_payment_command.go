package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrConfirmPaymentCommandIsNotConstructed = errors.New(
	"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
)

// ConfirmPaymentCommand represents staff confirming one payment track.
// For non-cash methods a proof reference must either accompany the
// confirmation or have been submitted earlier.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	track    order.Track
	actor    order.Actor
	proofURL string

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a command to confirm a payment track.
func NewConfirmPaymentCommand(orderID kernel.UUID, track order.Track, actor order.Actor, proofURL string) (ConfirmPaymentCommand, error) {
	cmd := ConfirmPaymentCommand{
		proofURL: proofURL,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
		cmd.setTrack(track),
	); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actor = actor
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// OrderID returns the order whose payment is confirmed.
func (c ConfirmPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Track returns the payment track being confirmed.
func (c ConfirmPaymentCommand) Track() order.Track {
	return c.track
}

// Actor returns the confirming staff member.
func (c ConfirmPaymentCommand) Actor() order.Actor {
	return c.actor
}

// ProofURL returns the proof attached to the confirmation, empty when none.
func (c ConfirmPaymentCommand) ProofURL() string {
	return c.proofURL
}

func (c *ConfirmPaymentCommand) setTrack(track order.Track) error {
	if err := track.Validate(); err != nil {
		return err
	}
	if !track.IsPayment() {
		return ErrTrackIsNotPayment
	}

	c.track = track
	return nil
}
