package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrGetOrdersAwaitingPaymentQueryIsNotConstructed = errors.New(
	"GetOrdersAwaitingPaymentQuery must be created via NewGetOrdersAwaitingPaymentQuery constructor",
)

// GetOrdersAwaitingPaymentQuery retrieves orders with an unconfirmed payment
// track older than the given age. Used by the payment reminder job.
type GetOrdersAwaitingPaymentQuery struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetOrdersAwaitingPaymentQuery creates a query for overdue payments.
func NewGetOrdersAwaitingPaymentQuery(olderThan time.Duration) (GetOrdersAwaitingPaymentQuery, error) {
	if olderThan < 0 {
		return GetOrdersAwaitingPaymentQuery{}, errors.New("olderThan must not be negative")
	}

	return GetOrdersAwaitingPaymentQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersAwaitingPaymentQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersAwaitingPaymentQueryIsNotConstructed)
}

// OlderThan returns the minimum age of the pending payment.
func (q GetOrdersAwaitingPaymentQuery) OlderThan() time.Duration {
	return q.olderThan
}

// AwaitingPaymentResponse identifies one unconfirmed payment track.
type AwaitingPaymentResponse struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	Track      order.Track
	Since      time.Time
}
