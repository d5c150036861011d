// Package eventrepo provides data transfer objects and mapping functions for the
// append-only stage-event log. Events are never updated or deleted; the composite
// unique index on (order_id, track, seq) is what makes concurrent appends to the
// same track collide instead of silently interleaving.
package eventrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// StageEventDTO represents the database structure for persisting stage events.
// The sequence number, not the recorded-at timestamp, defines ordering within
// a track.
type StageEventDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_stage_events_order_track_seq"`
	Track      int       `gorm:"uniqueIndex:idx_stage_events_order_track_seq"`
	Value      int
	Seq        int `gorm:"uniqueIndex:idx_stage_events_order_track_seq"`
	ActorID    uuid.UUID
	ActorRole  string
	ProofURL   string
	RecordedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for stage events.
func (StageEventDTO) TableName() string {
	return "stage_events"
}

// fromDomain converts a stage event to its database representation.
func fromDomain(event *order.StageEvent) StageEventDTO {
	return StageEventDTO{
		OrderID:    event.OrderID().Bytes(),
		Track:      int(event.Track()),
		Value:      event.Value(),
		Seq:        event.Seq(),
		ActorID:    event.Actor().ID().Bytes(),
		ActorRole:  string(event.Actor().Role()),
		ProofURL:   event.ProofURL(),
		RecordedAt: event.RecordedAt(),
	}
}

// toDomain converts a database DTO to a stage event.
func toDomain(dto StageEventDTO) (*order.StageEvent, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return nil, err
	}

	actor, err := order.NewActor(actorID, order.Role(dto.ActorRole))
	if err != nil {
		return nil, err
	}

	return order.RestoreStageEvent(
		orderID,
		order.Track(dto.Track),
		dto.Value,
		dto.Seq,
		actor,
		dto.ProofURL,
		dto.RecordedAt,
	)
}
