package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrSubmitOrderStageCommandIsNotConstructed = errors.New(
	"SubmitOrderStageCommand must be created via NewSubmitOrderStageCommand constructor",
)

// SubmitOrderStageCommand represents a staff request to move an order to a
// target stage, including the Cancelled and Rejected exits. The reason is
// required only for rejection; the note is always optional.
type SubmitOrderStageCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Stage
	actor   order.Actor
	reason  string
	note    string

	guard guard.ConstructorGuard
}

// NewSubmitOrderStageCommand creates a command to advance an order's status.
func NewSubmitOrderStageCommand(
	orderID kernel.UUID,
	target order.Stage,
	actor order.Actor,
	reason string,
	note string,
) (SubmitOrderStageCommand, error) {
	cmd := SubmitOrderStageCommand{
		reason: reason,
		note:   note,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setActor(actor),
	); err != nil {
		return SubmitOrderStageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderStageCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderStageCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c SubmitOrderStageCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested stage.
func (c SubmitOrderStageCommand) Target() order.Stage {
	return c.target
}

// Actor returns who requested the transition.
func (c SubmitOrderStageCommand) Actor() order.Actor {
	return c.actor
}

// Reason returns the rejection reason, empty for other targets.
func (c SubmitOrderStageCommand) Reason() string {
	return c.reason
}

// Note returns the optional free-text note.
func (c SubmitOrderStageCommand) Note() string {
	return c.note
}

func (c *SubmitOrderStageCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitOrderStageCommand) setTarget(target order.Stage) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *SubmitOrderStageCommand) setActor(actor order.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
