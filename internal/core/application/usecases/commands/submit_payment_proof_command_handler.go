package commands

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

// SubmitPaymentProofCommandHandler moves a payment track to Submitted with
// the uploaded proof reference attached to the event.
type SubmitPaymentProofCommandHandler struct {
	planner  services.TransitionPlanner
	executor transitionExecutor
}

// NewSubmitPaymentProofCommandHandler creates a handler for proof submissions.
func NewSubmitPaymentProofCommandHandler(uowFactory UoWFactory, publisher ports.NotificationPublisher) SubmitPaymentProofCommandHandler {
	return SubmitPaymentProofCommandHandler{
		planner:  services.NewTransitionPlanner(),
		executor: newTransitionExecutor(uowFactory, publisher),
	}
}

// Handle processes the proof submission command.
func (h *SubmitPaymentProofCommandHandler) Handle(ctx context.Context, cmd SubmitPaymentProofCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	key := &requestKey{track: cmd.Track(), value: int(payment.Submitted)}

	return h.executor.execute(ctx, cmd.OrderID(), cmd.Actor(), key, func(aggregate *order.Order) (services.TransitionPlan, error) {
		return h.planner.PlanPaymentSubmission(aggregate, cmd.Track(), cmd.ProofURL())
	})
}
