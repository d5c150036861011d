package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var (
	ErrSubmitPaymentProofCommandIsNotConstructed = errors.New(
		"SubmitPaymentProofCommand must be created via NewSubmitPaymentProofCommand constructor",
	)
	ErrTrackIsNotPayment = errors.New("track must be a payment track")
)

// SubmitPaymentProofCommand represents a customer attaching payment proof to
// one of the payment tracks.
type SubmitPaymentProofCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	track    order.Track
	actor    order.Actor
	proofURL string

	guard guard.ConstructorGuard
}

// NewSubmitPaymentProofCommand creates a command to submit payment proof.
func NewSubmitPaymentProofCommand(orderID kernel.UUID, track order.Track, actor order.Actor, proofURL string) (SubmitPaymentProofCommand, error) {
	cmd := SubmitPaymentProofCommand{
		proofURL: proofURL,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
		cmd.setTrack(track),
	); err != nil {
		return SubmitPaymentProofCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actor = actor
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitPaymentProofCommand) Validate() error {
	return c.guard.Validate(ErrSubmitPaymentProofCommandIsNotConstructed)
}

// OrderID returns the order being paid.
func (c SubmitPaymentProofCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Track returns the payment track the proof applies to.
func (c SubmitPaymentProofCommand) Track() order.Track {
	return c.track
}

// Actor returns the submitting customer.
func (c SubmitPaymentProofCommand) Actor() order.Actor {
	return c.actor
}

// ProofURL returns the uploaded proof reference.
func (c SubmitPaymentProofCommand) ProofURL() string {
	return c.proofURL
}

func (c *SubmitPaymentProofCommand) setTrack(track order.Track) error {
	if err := track.Validate(); err != nil {
		return err
	}
	if !track.IsPayment() {
		return ErrTrackIsNotPayment
	}

	c.track = track
	return nil
}
