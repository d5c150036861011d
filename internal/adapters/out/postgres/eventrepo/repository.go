package eventrepo

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStageEventRepository implements StageEventRepository using GORM.
type GormStageEventRepository struct {
	db *gorm.DB
}

// NewGormStageEventRepository creates a new GORM stage-event repository.
func NewGormStageEventRepository(db *gorm.DB) *GormStageEventRepository {
	return &GormStageEventRepository{db: db}
}

// Append assigns the event the next sequence number of its (order, track) log
// and inserts it. Both steps run on the caller's transaction, so two appends
// racing on the same track read the same maximum and the unique index rejects
// the second insert. The resulting persistence error signals the caller to
// reload the aggregate and retry.
func (r *GormStageEventRepository) Append(ctx context.Context, event *order.StageEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	var next int
	err := r.db.WithContext(ctx).
		Raw(
			"SELECT COALESCE(MAX(seq), 0) + 1 FROM stage_events WHERE order_id = ? AND track = ?",
			event.OrderID().Bytes(), int(event.Track()),
		).
		Scan(&next).Error
	if err != nil {
		return errs.NewPersistenceError("allocate stage event sequence", err)
	}

	if err := event.AssignSeq(next); err != nil {
		return err
	}

	dto := fromDomain(event)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("append stage event", err)
	}

	return nil
}

// GetByOrder retrieves every event of an order across all tracks,
// ordered by track and sequence number.
func (r *GormStageEventRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.StageEvent, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StageEventDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("track, seq").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewPersistenceError("get stage events", err)
	}

	events := make([]*order.StageEvent, 0, len(dtos))
	for _, dto := range dtos {
		event, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

// FindRecent looks up an event with the same track, value and actor recorded
// no earlier than since, or nil if none exists. Used to absorb client retries
// instead of appending a duplicate event.
func (r *GormStageEventRepository) FindRecent(
	ctx context.Context,
	orderID kernel.UUID,
	track order.Track,
	value int,
	actorID kernel.UUID,
	since time.Time,
) (*order.StageEvent, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := track.Validate(); err != nil {
		return nil, err
	}
	if err := actorID.Validate(); err != nil {
		return nil, err
	}

	var dto StageEventDTO
	err := r.db.WithContext(ctx).
		Where(
			"order_id = ? AND track = ? AND value = ? AND actor_id = ? AND recorded_at >= ?",
			orderID.Bytes(), int(track), value, actorID.Bytes(), since,
		).
		Order("seq DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.NewPersistenceError("find recent stage event", err)
	}

	return toDomain(dto)
}
