package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrSubmitProcessingStageCommandIsNotConstructed = errors.New(
	"SubmitProcessingStageCommand must be created via NewSubmitProcessingStageCommand constructor",
)

// SubmitProcessingStageCommand represents a shop worker recording progress on
// the processing track. Only processing-group stages are accepted.
type SubmitProcessingStageCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Stage
	actor   order.Actor

	guard guard.ConstructorGuard
}

// NewSubmitProcessingStageCommand creates a command to record a processing stage.
func NewSubmitProcessingStageCommand(orderID kernel.UUID, target order.Stage, actor order.Actor) (SubmitProcessingStageCommand, error) {
	cmd := SubmitProcessingStageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		target.Validate(),
		actor.Validate(),
	); err != nil {
		return SubmitProcessingStageCommand{}, err
	}

	cmd.orderID = orderID
	cmd.target = target
	cmd.actor = actor
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitProcessingStageCommand) Validate() error {
	return c.guard.Validate(ErrSubmitProcessingStageCommandIsNotConstructed)
}

// OrderID returns the order being processed.
func (c SubmitProcessingStageCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested processing stage.
func (c SubmitProcessingStageCommand) Target() order.Stage {
	return c.target
}

// Actor returns the shop worker recording the stage.
func (c SubmitProcessingStageCommand) Actor() order.Actor {
	return c.actor
}
