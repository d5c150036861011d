package commands

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
//
// The catalog is consulted exactly once here: the capability flags behind the
// chosen service and delivery mode are resolved, stored on the order, and the
// workflow path is computed from them. Nothing downstream ever re-reads the
// catalog or re-derives behavior from display strings.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	catalog    ports.CatalogClient
	planner    services.TransitionPlanner
	executor   transitionExecutor
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	catalog ports.CatalogClient,
	publisher ports.NotificationPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		planner:    services.NewTransitionPlanner(),
		executor:   newTransitionExecutor(uowFactory, publisher),
	}
}

// Handle processes the order creation command.
// Resolves catalog flags, creates the order with its workflow path, persists
// the aggregate together with the seed status event, and publishes the
// creation notification.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	composition, err := h.catalog.GetServiceComposition(ctx, cmd.ServiceID())
	if err != nil {
		return err
	}

	deliveryMode, err := h.catalog.GetDeliveryMode(ctx, cmd.DeliveryModeID())
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.ShopID(),
		cmd.ServiceID(),
		cmd.DeliveryModeID(),
		composition,
		deliveryMode,
		cmd.AddOns(),
		cmd.PaymentMethod(),
	)
	if err != nil {
		return err
	}

	plan, err := h.planner.PlanCreation(aggregate)
	if err != nil {
		return err
	}

	actor, err := order.NewActor(cmd.CustomerID(), order.RoleCustomer)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	appended := make([]*order.StageEvent, 0, len(plan.Events))
	for _, planned := range plan.Events {
		event, err := order.NewStageEvent(cmd.OrderID(), planned.Track, planned.Value, actor, planned.ProofURL)
		if err != nil {
			return err
		}
		if err = uow.StageEventRepository().Append(ctx, event); err != nil {
			return err
		}
		appended = append(appended, event)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.executor.publishAll(ctx, appended)
	return nil
}
