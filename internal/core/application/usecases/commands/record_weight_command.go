package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var (
	ErrRecordWeightCommandIsNotConstructed = errors.New(
		"RecordWeightCommand must be created via NewRecordWeightCommand constructor",
	)
	ErrWeightIsInvalid = errors.New("weight must be greater than 0")
)

// RecordWeightCommand represents a shop worker weighing the laundry. The
// first measurement arms the service-invoice payment track.
type RecordWeightCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	grams   int
	actor   order.Actor

	guard guard.ConstructorGuard
}

// NewRecordWeightCommand creates a command to record the measured weight.
func NewRecordWeightCommand(orderID kernel.UUID, grams int, actor order.Actor) (RecordWeightCommand, error) {
	cmd := RecordWeightCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
		cmd.setGrams(grams),
	); err != nil {
		return RecordWeightCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actor = actor
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordWeightCommand) Validate() error {
	return c.guard.Validate(ErrRecordWeightCommandIsNotConstructed)
}

// OrderID returns the order being weighed.
func (c RecordWeightCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Grams returns the measured weight in grams.
func (c RecordWeightCommand) Grams() int {
	return c.grams
}

// Actor returns the shop worker recording the weight.
func (c RecordWeightCommand) Actor() order.Actor {
	return c.actor
}

func (c *RecordWeightCommand) setGrams(grams int) error {
	if grams <= 0 {
		return ErrWeightIsInvalid
	}

	c.grams = grams
	return nil
}
