package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrSubmitDeliveryStageCommandIsNotConstructed = errors.New(
	"SubmitDeliveryStageCommand must be created via NewSubmitDeliveryStageCommand constructor",
)

// SubmitDeliveryStageCommand represents a rider or staff member recording one
// step of a logistics flow. The proof reference is mandatory for third-party
// booking steps and ignored elsewhere.
type SubmitDeliveryStageCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	direction order.Direction
	target    order.Stage
	actor     order.Actor
	proofURL  string

	guard guard.ConstructorGuard
}

// NewSubmitDeliveryStageCommand creates a command to record a logistics step.
func NewSubmitDeliveryStageCommand(
	orderID kernel.UUID,
	direction order.Direction,
	target order.Stage,
	actor order.Actor,
	proofURL string,
) (SubmitDeliveryStageCommand, error) {
	cmd := SubmitDeliveryStageCommand{
		proofURL: proofURL,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		direction.Validate(),
		target.Validate(),
		actor.Validate(),
	); err != nil {
		return SubmitDeliveryStageCommand{}, err
	}

	cmd.orderID = orderID
	cmd.direction = direction
	cmd.target = target
	cmd.actor = actor
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitDeliveryStageCommand) Validate() error {
	return c.guard.Validate(ErrSubmitDeliveryStageCommandIsNotConstructed)
}

// OrderID returns the order being moved.
func (c SubmitDeliveryStageCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Direction returns which logistics flow the step belongs to.
func (c SubmitDeliveryStageCommand) Direction() order.Direction {
	return c.direction
}

// Target returns the requested logistics stage.
func (c SubmitDeliveryStageCommand) Target() order.Stage {
	return c.target
}

// Actor returns who recorded the step.
func (c SubmitDeliveryStageCommand) Actor() order.Actor {
	return c.actor
}

// ProofURL returns the attached proof reference, empty when none.
func (c SubmitDeliveryStageCommand) ProofURL() string {
	return c.proofURL
}
