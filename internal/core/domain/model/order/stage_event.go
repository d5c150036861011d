package order

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/pkg/errs"
)

// ErrStageEventIsNotConstructed is returned when a StageEvent was not created
// through NewStageEvent or RestoreStageEvent.
var ErrStageEventIsNotConstructed = errs.NewValueIsRequiredError(
	"StageEvent must be created via NewStageEvent or RestoreStageEvent",
)

// StageEvent is one append-only record in an order's event log. The same
// shape is reused for every track: workflow tracks carry a Stage value,
// payment tracks carry a payment.State value.
//
// Ordering within a track is defined exclusively by the sequence number,
// which the persistence layer assigns inside the same transaction that
// inserts the event. The recorded-at timestamp is informational only and must
// never be used for "latest" determination, since clock skew between
// concurrent writers can silently misorder events.
type StageEvent struct {
	orderID    kernel.UUID
	track      Track
	value      int
	seq        int
	actor      Actor
	proofURL   string
	recordedAt time.Time

	isConstructed bool
}

// NewStageEvent creates an event that has not been persisted yet.
// The sequence number is zero until the store assigns one at append time.
func NewStageEvent(orderID kernel.UUID, track Track, value int, actor Actor, proofURL string) (*StageEvent, error) {
	event := &StageEvent{
		proofURL:      proofURL,
		recordedAt:    time.Now().UTC(),
		isConstructed: true,
	}

	if err := event.setOrderID(orderID); err != nil {
		return nil, err
	}
	if err := event.setTrackValue(track, value); err != nil {
		return nil, err
	}
	if err := event.setActor(actor); err != nil {
		return nil, err
	}

	return event, nil
}

// RestoreStageEvent reconstructs a persisted event, including its assigned
// sequence number.
func RestoreStageEvent(
	orderID kernel.UUID,
	track Track,
	value int,
	seq int,
	actor Actor,
	proofURL string,
	recordedAt time.Time,
) (*StageEvent, error) {
	event, err := NewStageEvent(orderID, track, value, actor, proofURL)
	if err != nil {
		return nil, err
	}

	if seq <= 0 {
		return nil, errs.NewValueIsInvalidError("sequence number must be positive")
	}
	event.seq = seq
	event.recordedAt = recordedAt

	return event, nil
}

// AssignSeq records the sequence number the store allocated for this event.
// It can be called exactly once, on an event that has not been persisted yet.
func (e *StageEvent) AssignSeq(seq int) error {
	if seq <= 0 {
		return errs.NewValueIsInvalidError("sequence number must be positive")
	}
	if e.seq != 0 {
		return errs.NewValueIsInvalidError("sequence number is already assigned")
	}

	e.seq = seq
	return nil
}

// Validate ensures the event was created through a constructor.
func (e *StageEvent) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrStageEventIsNotConstructed
	}
	return nil
}

// OrderID returns the order the event belongs to.
func (e *StageEvent) OrderID() kernel.UUID {
	return e.orderID
}

// Track returns the track the event was recorded on.
func (e *StageEvent) Track() Track {
	return e.track
}

// Value returns the raw recorded value.
// Use Stage or PaymentState for the typed view.
func (e *StageEvent) Value() int {
	return e.value
}

// Stage returns the recorded value as a workflow stage.
// Only meaningful for non-payment tracks.
func (e *StageEvent) Stage() Stage {
	return Stage(e.value)
}

// PaymentState returns the recorded value as a payment state.
// Only meaningful for payment tracks.
func (e *StageEvent) PaymentState() payment.State {
	return payment.State(e.value)
}

// Seq returns the per-order per-track sequence number, or zero if the event
// has not been persisted yet.
func (e *StageEvent) Seq() int {
	return e.seq
}

// Actor returns who recorded the event.
func (e *StageEvent) Actor() Actor {
	return e.actor
}

// ProofURL returns the attached proof reference, or empty.
func (e *StageEvent) ProofURL() string {
	return e.proofURL
}

// RecordedAt returns the informational wall-clock timestamp.
func (e *StageEvent) RecordedAt() time.Time {
	return e.recordedAt
}

func (e *StageEvent) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	e.orderID = orderID
	return nil
}

func (e *StageEvent) setTrackValue(track Track, value int) error {
	if err := track.Validate(); err != nil {
		return err
	}

	if track.IsPayment() {
		if err := payment.State(value).Validate(); err != nil {
			return err
		}
	} else {
		if err := Stage(value).Validate(); err != nil {
			return err
		}
	}

	e.track = track
	e.value = value
	return nil
}

func (e *StageEvent) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	e.actor = actor
	return nil
}
