// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read the store directly with raw SQL and never mutate state.
package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/pkg/guard"
)

var ErrGetOrderStateQueryIsNotConstructed = errors.New(
	"GetOrderStateQuery must be created via NewGetOrderStateQuery constructor",
)

// GetOrderStateQuery retrieves the per-track current state of one order
// together with its resolved workflow path.
//
// Example:
//
//	query, _ := NewGetOrderStateQuery(orderID)
//	handler := NewGetOrderStateQueryHandler(db)
//
//	state, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order state: %w", err)
//	}
//	fmt.Printf("Order is at %s\n", state.CurrentStage)
type GetOrderStateQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderStateQuery creates a query for one order's current state.
func NewGetOrderStateQuery(orderID kernel.UUID) (GetOrderStateQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderStateQuery{}, err
	}

	return GetOrderStateQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStateQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStateQueryIsNotConstructed)
}

// OrderID returns the order being inspected.
func (q GetOrderStateQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderStateQueryResponse is the per-track snapshot of one order.
type GetOrderStateQueryResponse struct {
	ID               kernel.UUID
	Path             []order.Stage
	CurrentStage     order.Stage
	ProcessingStage  order.Stage
	DeliveryStage    order.Stage
	InvoiceState     payment.State
	DeliveryFeeState payment.State
	WeightGrams      *int
	RejectionReason  string
}
