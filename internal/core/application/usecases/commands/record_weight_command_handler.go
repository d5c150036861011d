package commands

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

// RecordWeightCommandHandler stores the measured weight and arms the invoice
// payment track on first measurement.
type RecordWeightCommandHandler struct {
	planner  services.TransitionPlanner
	executor transitionExecutor
}

// NewRecordWeightCommandHandler creates a handler for weighing operations.
func NewRecordWeightCommandHandler(uowFactory UoWFactory, publisher ports.NotificationPublisher) RecordWeightCommandHandler {
	return RecordWeightCommandHandler{
		planner:  services.NewTransitionPlanner(),
		executor: newTransitionExecutor(uowFactory, publisher),
	}
}

// Handle processes the weight recording command. Re-weighing is not guarded
// by the idempotency window: the latest measurement wins while the order
// still sits at the weighing stage.
func (h *RecordWeightCommandHandler) Handle(ctx context.Context, cmd RecordWeightCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.executor.execute(ctx, cmd.OrderID(), cmd.Actor(), nil, func(aggregate *order.Order) (services.TransitionPlan, error) {
		return h.planner.PlanWeightRecorded(aggregate, cmd.Grams())
	})
}
