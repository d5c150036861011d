package commands

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

// SubmitDeliveryStageCommandHandler records logistics steps. When a step
// completes its flow, the forced order-status transition commits in the same
// transaction as the delivery event.
type SubmitDeliveryStageCommandHandler struct {
	planner  services.TransitionPlanner
	executor transitionExecutor
}

// NewSubmitDeliveryStageCommandHandler creates a handler for logistics steps.
func NewSubmitDeliveryStageCommandHandler(uowFactory UoWFactory, publisher ports.NotificationPublisher) SubmitDeliveryStageCommandHandler {
	return SubmitDeliveryStageCommandHandler{
		planner:  services.NewTransitionPlanner(),
		executor: newTransitionExecutor(uowFactory, publisher),
	}
}

// Handle processes the delivery stage command.
func (h *SubmitDeliveryStageCommandHandler) Handle(ctx context.Context, cmd SubmitDeliveryStageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	key := &requestKey{track: order.TrackDelivery, value: int(cmd.Target())}

	return h.executor.execute(ctx, cmd.OrderID(), cmd.Actor(), key, func(aggregate *order.Order) (services.TransitionPlan, error) {
		return h.planner.PlanDeliveryTransition(aggregate, cmd.Direction(), cmd.Target(), cmd.ProofURL())
	})
}
