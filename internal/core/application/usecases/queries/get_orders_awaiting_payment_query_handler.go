package queries

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersAwaitingPaymentQueryHandler finds payment tracks that were armed
// or submitted but never confirmed within the given age.
type GetOrdersAwaitingPaymentQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersAwaitingPaymentQueryHandler creates a handler for overdue payment queries.
func NewGetOrdersAwaitingPaymentQueryHandler(db *gorm.DB) GetOrdersAwaitingPaymentQueryHandler {
	return GetOrdersAwaitingPaymentQueryHandler{db: db}
}

// Handle executes the query. A track counts as awaiting payment when its
// state on the order is Pending or Submitted and its latest event is older
// than the cutoff.
func (h GetOrdersAwaitingPaymentQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersAwaitingPaymentQuery,
) ([]AwaitingPaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-query.OlderThan())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			e.track,
			MAX(e.recorded_at) AS since
		FROM orders o
		JOIN stage_events e ON e.order_id = o.id
		WHERE
			(e.track = ? AND o.invoice_state IN (?, ?))
			OR (e.track = ? AND o.delivery_fee_state IN (?, ?))
		GROUP BY o.id, o.customer_id, e.track
		HAVING MAX(e.recorded_at) < ?
		ORDER BY since
	`,
		int(order.TrackInvoice), int(payment.Pending), int(payment.Submitted),
		int(order.TrackDeliveryPayment), int(payment.Pending), int(payment.Submitted),
		cutoff,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]AwaitingPaymentResponse, 0)
	for rows.Next() {
		var (
			rawOrderID    uuid.UUID
			rawCustomerID uuid.UUID
			track         int
			since         time.Time
		)

		if err = rows.Scan(&rawOrderID, &rawCustomerID, &track, &since); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(rawOrderID[:])
		if idErr != nil {
			return nil, idErr
		}
		customerID, idErr := kernel.UUIDFromBytes(rawCustomerID[:])
		if idErr != nil {
			return nil, idErr
		}

		responses = append(responses, AwaitingPaymentResponse{
			OrderID:    orderID,
			CustomerID: customerID,
			Track:      order.Track(track),
			Since:      since,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
