package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// StageNotification is the message published after a transition commits.
type StageNotification struct {
	OrderID    kernel.UUID
	Track      order.Track
	Value      int
	Seq        int
	ActorID    kernel.UUID
	ActorRole  order.Role
	RecordedAt time.Time
}

// NotificationPublisher pushes committed stage events to interested parties.
// Publishing happens after the transaction commits and is best-effort: a
// failed publish is logged, never rolled back into the workflow.
type NotificationPublisher interface {
	Publish(ctx context.Context, notification StageNotification) error
}

// PaymentReminder nudges a customer whose payment track has been awaiting
// confirmation past the reminder threshold.
type PaymentReminder struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	Track      order.Track
	Since      time.Time
}

// ReminderPublisher pushes payment reminders to the notification pipeline.
type ReminderPublisher interface {
	PublishReminder(ctx context.Context, reminder PaymentReminder) error
}
