package queries

import (
	"context"
	"database/sql"
	"errors"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderTimelineQueryHandler merges an order's event history with its
// stored workflow path through the timeline reconstructor. The read is
// lock-free; ordering comes from the per-track sequence numbers.
type GetOrderTimelineQueryHandler struct {
	db            *gorm.DB
	events        ports.StageEventRepository
	reconstructor services.TimelineReconstructor
}

// NewGetOrderTimelineQueryHandler creates a handler for timeline queries.
// The event log is read through the repository; only the path lookup goes
// straight to the orders table.
func NewGetOrderTimelineQueryHandler(db *gorm.DB, events ports.StageEventRepository) GetOrderTimelineQueryHandler {
	return GetOrderTimelineQueryHandler{
		db:            db,
		events:        events,
		reconstructor: services.NewTimelineReconstructor(),
	}
}

// Handle executes the query. Returns errs.ObjectNotFoundError for an unknown order.
func (h GetOrderTimelineQueryHandler) Handle(ctx context.Context, query GetOrderTimelineQuery) ([]TimelineEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var encodedPath string
	err := h.db.WithContext(ctx).Raw(`
		SELECT path FROM orders WHERE id = ?
	`, query.OrderID().String()).Row().Scan(&encodedPath)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return nil, err
	}

	path, err := order.DecodePath(encodedPath)
	if err != nil {
		return nil, err
	}

	events, err := h.events.GetByOrder(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	entries := h.reconstructor.Reconstruct(path, events)

	response := make([]TimelineEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, TimelineEntryResponse{
			Stage:      entry.Stage,
			Completed:  entry.Completed,
			Active:     entry.Active,
			RecordedAt: entry.RecordedAt,
		})
	}

	return response, nil
}
