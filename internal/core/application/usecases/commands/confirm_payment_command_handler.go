package commands

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

// ConfirmPaymentCommandHandler confirms a payment track. When the service
// invoice is confirmed at the payment gate, the order moves into processing
// within the same transaction.
type ConfirmPaymentCommandHandler struct {
	planner  services.TransitionPlanner
	executor transitionExecutor
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmations.
func NewConfirmPaymentCommandHandler(uowFactory UoWFactory, publisher ports.NotificationPublisher) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		planner:  services.NewTransitionPlanner(),
		executor: newTransitionExecutor(uowFactory, publisher),
	}
}

// Handle processes the payment confirmation command.
func (h *ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	key := &requestKey{track: cmd.Track(), value: int(payment.Confirmed)}

	return h.executor.execute(ctx, cmd.OrderID(), cmd.Actor(), key, func(aggregate *order.Order) (services.TransitionPlan, error) {
		return h.planner.PlanPaymentConfirmation(aggregate, cmd.Track(), cmd.ProofURL())
	})
}
