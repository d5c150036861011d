package commands

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

// SubmitOrderStageCommandHandler executes staff-selected order-status
// transitions. Legality is decided against the order's stored workflow path;
// the resulting cross-track writes commit as one transaction.
type SubmitOrderStageCommandHandler struct {
	planner  services.TransitionPlanner
	executor transitionExecutor
}

// NewSubmitOrderStageCommandHandler creates a handler for status transitions.
func NewSubmitOrderStageCommandHandler(uowFactory UoWFactory, publisher ports.NotificationPublisher) SubmitOrderStageCommandHandler {
	return SubmitOrderStageCommandHandler{
		planner:  services.NewTransitionPlanner(),
		executor: newTransitionExecutor(uowFactory, publisher),
	}
}

// Handle processes the status transition command.
func (h *SubmitOrderStageCommandHandler) Handle(ctx context.Context, cmd SubmitOrderStageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	key := &requestKey{track: order.TrackOrderStatus, value: int(cmd.Target())}
	if cmd.Target().IsProcessing() {
		key.track = order.TrackProcessing
	}

	return h.executor.execute(ctx, cmd.OrderID(), cmd.Actor(), key, func(aggregate *order.Order) (services.TransitionPlan, error) {
		return h.planner.PlanStatusTransition(aggregate, cmd.Target(), cmd.Reason(), cmd.Note())
	})
}
