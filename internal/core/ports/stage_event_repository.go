package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// StageEventRepository defines the persistence contract for the append-only
// stage-event log.
type StageEventRepository interface {
	// Append inserts an event and assigns it the next sequence number of its
	// (order, track) log inside the current transaction. The unique index on
	// (order, track, seq) turns a concurrent append into a persistence error
	// the caller retries against fresh state.
	Append(ctx context.Context, event *order.StageEvent) error

	// GetByOrder retrieves every event of an order across all tracks,
	// ordered by track and sequence number.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.StageEvent, error)

	// FindRecent looks up an event with the same track, value and actor
	// recorded no earlier than since. Used to absorb client retries instead
	// of inserting a duplicate event.
	FindRecent(ctx context.Context, orderID kernel.UUID, track order.Track, value int, actorID kernel.UUID, since time.Time) (*order.StageEvent, error)
}
