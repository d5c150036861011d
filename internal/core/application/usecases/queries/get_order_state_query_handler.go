package queries

import (
	"context"
	"database/sql"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderStateQueryHandler reads an order's per-track pointers straight from
// the orders table. The pointers are stored state, so no event scan happens
// on this path.
type GetOrderStateQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStateQueryHandler creates a handler for order state queries.
func NewGetOrderStateQueryHandler(db *gorm.DB) GetOrderStateQueryHandler {
	return GetOrderStateQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError for an unknown order.
func (h GetOrderStateQueryHandler) Handle(ctx context.Context, query GetOrderStateQuery) (GetOrderStateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStateQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			path,
			current_stage,
			processing_stage,
			delivery_stage,
			invoice_state,
			delivery_fee_state,
			weight_grams,
			rejection_reason
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var (
		id              uuid.UUID
		encodedPath     string
		currentStage    int
		processingStage int
		deliveryStage   int
		invoiceState    int
		feeState        int
		weightGrams     sql.NullInt64
		rejectionReason sql.NullString
	)

	err := row.Scan(
		&id,
		&encodedPath,
		&currentStage,
		&processingStage,
		&deliveryStage,
		&invoiceState,
		&feeState,
		&weightGrams,
		&rejectionReason,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderStateQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return GetOrderStateQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderStateQueryResponse{}, err
	}

	path, err := order.DecodePath(encodedPath)
	if err != nil {
		return GetOrderStateQueryResponse{}, err
	}

	response := GetOrderStateQueryResponse{
		ID:               orderID,
		Path:             path.Stages(),
		CurrentStage:     order.Stage(currentStage),
		ProcessingStage:  order.Stage(processingStage),
		DeliveryStage:    order.Stage(deliveryStage),
		InvoiceState:     payment.State(invoiceState),
		DeliveryFeeState: payment.State(feeState),
	}

	if weightGrams.Valid {
		w := int(weightGrams.Int64)
		response.WeightGrams = &w
	}
	if rejectionReason.Valid {
		response.RejectionReason = rejectionReason.String
	}

	return response, nil
}
