package commands

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

// SubmitProcessingStageCommandHandler records processing-track progress.
type SubmitProcessingStageCommandHandler struct {
	planner  services.TransitionPlanner
	executor transitionExecutor
}

// NewSubmitProcessingStageCommandHandler creates a handler for processing submissions.
func NewSubmitProcessingStageCommandHandler(uowFactory UoWFactory, publisher ports.NotificationPublisher) SubmitProcessingStageCommandHandler {
	return SubmitProcessingStageCommandHandler{
		planner:  services.NewTransitionPlanner(),
		executor: newTransitionExecutor(uowFactory, publisher),
	}
}

// Handle processes the processing stage command.
func (h *SubmitProcessingStageCommandHandler) Handle(ctx context.Context, cmd SubmitProcessingStageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	key := &requestKey{track: order.TrackProcessing, value: int(cmd.Target())}

	return h.executor.execute(ctx, cmd.OrderID(), cmd.Actor(), key, func(aggregate *order.Order) (services.TransitionPlan, error) {
		return h.planner.PlanProcessingTransition(aggregate, cmd.Target())
	})
}
