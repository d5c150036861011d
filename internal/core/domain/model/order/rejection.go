package order

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// ErrRejectionIsNotConstructed is returned when a Rejection was not created
// through NewRejection.
var ErrRejectionIsNotConstructed = errs.NewValueIsRequiredError(
	"Rejection must be created via NewRejection constructor",
)

// Rejection records why an order was rejected. Its existence is
// bidirectionally tied to the order-status track being at Rejected: an order
// is rejected if and only if a rejection record exists for it.
type Rejection struct {
	orderID kernel.UUID
	reason  string
	note    string

	isConstructed bool
}

// NewRejection creates a validated rejection record.
// The reason is mandatory; the note is free text and optional.
func NewRejection(orderID kernel.UUID, reason, note string) (*Rejection, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("rejection reason")
	}

	return &Rejection{
		orderID:       orderID,
		reason:        reason,
		note:          note,
		isConstructed: true,
	}, nil
}

// Validate ensures the rejection was created through the constructor.
func (r *Rejection) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRejectionIsNotConstructed
	}
	return nil
}

// OrderID returns the rejected order's identity.
func (r *Rejection) OrderID() kernel.UUID {
	return r.orderID
}

// Reason returns the mandatory rejection reason.
func (r *Rejection) Reason() string {
	return r.reason
}

// Note returns the optional free-text note.
func (r *Rejection) Note() string {
	return r.note
}
