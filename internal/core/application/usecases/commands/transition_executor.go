package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// idempotencyWindow is how far back the executor looks for an identical
// event from the same actor before treating a request as a client retry.
const idempotencyWindow = 10 * time.Second

// requestKey identifies the primary event a request would append. A matching
// event inside the idempotency window means the request already succeeded and
// is absorbed instead of inserting a duplicate.
type requestKey struct {
	track order.Track
	value int
}

// transitionExecutor is the shared machinery behind every transition command:
// load the aggregate, let the planner decide the cross-track writes, persist
// the aggregate and all planned events in one transaction, then publish
// notifications for the committed events.
//
// A persistence failure is retried once against fresh state. If a concurrent
// writer won the race, the second attempt re-validates against the new
// current stage and surfaces the resulting state error verbatim.
type transitionExecutor struct {
	uowFactory UoWFactory
	publisher  ports.NotificationPublisher
}

func newTransitionExecutor(uowFactory UoWFactory, publisher ports.NotificationPublisher) transitionExecutor {
	return transitionExecutor{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

func (e transitionExecutor) execute(
	ctx context.Context,
	orderID kernel.UUID,
	actor order.Actor,
	key *requestKey,
	plan func(aggregate *order.Order) (services.TransitionPlan, error),
) error {
	err := e.attempt(ctx, orderID, actor, key, plan)
	if err != nil && errors.Is(err, errs.ErrPersistence) {
		err = e.attempt(ctx, orderID, actor, key, plan)
	}
	return err
}

func (e transitionExecutor) attempt(
	ctx context.Context,
	orderID kernel.UUID,
	actor order.Actor,
	key *requestKey,
	plan func(aggregate *order.Order) (services.TransitionPlan, error),
) error {
	uow := e.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return err
	}

	if key != nil {
		since := time.Now().UTC().Add(-idempotencyWindow)
		recent, err := uow.StageEventRepository().FindRecent(ctx, orderID, key.track, key.value, actor.ID(), since)
		if err != nil {
			return err
		}
		if recent != nil {
			return nil
		}
	}

	transitionPlan, err := plan(aggregate)
	if err != nil {
		return err
	}

	appended := make([]*order.StageEvent, 0, len(transitionPlan.Events))
	for _, planned := range transitionPlan.Events {
		event, err := order.NewStageEvent(orderID, planned.Track, planned.Value, actor, planned.ProofURL)
		if err != nil {
			return err
		}
		if err = uow.StageEventRepository().Append(ctx, event); err != nil {
			return err
		}
		appended = append(appended, event)
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	e.publishAll(ctx, appended)
	return nil
}

// publishAll pushes notifications for committed events. Best-effort: a
// failed publish is logged and never affects the already-committed workflow.
func (e transitionExecutor) publishAll(ctx context.Context, events []*order.StageEvent) {
	if e.publisher == nil {
		return
	}

	for _, event := range events {
		notification := ports.StageNotification{
			OrderID:    event.OrderID(),
			Track:      event.Track(),
			Value:      event.Value(),
			Seq:        event.Seq(),
			ActorID:    event.Actor().ID(),
			ActorRole:  event.Actor().Role(),
			RecordedAt: event.RecordedAt(),
		}
		if err := e.publisher.Publish(ctx, notification); err != nil {
			slog.Warn("failed to publish stage notification",
				"orderId", event.OrderID().String(),
				"track", event.Track().String(),
				"error", err)
		}
	}
}
