package kafka

import (
	"context"
	"encoding/json"
	"time"

	"laundry/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// paymentReminderMessage is the wire shape of one published reminder.
type paymentReminderMessage struct {
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	Track      string    `json:"track"`
	Since      time.Time `json:"since"`
}

// ReminderPublisher implements ports.ReminderPublisher on a Kafka topic.
type ReminderPublisher struct {
	writer *kafka.Writer
	topic  string
}

// NewReminderPublisher creates a publisher writing to the given brokers and topic.
func NewReminderPublisher(brokers []string, topic string) *ReminderPublisher {
	return &ReminderPublisher{
		topic: topic,
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           100 * time.Millisecond,
		},
	}
}

// PublishReminder sends one payment reminder to the topic, keyed by customer
// so one customer's reminders stay ordered.
func (p *ReminderPublisher) PublishReminder(ctx context.Context, reminder ports.PaymentReminder) error {
	data, err := json.Marshal(paymentReminderMessage{
		OrderID:    reminder.OrderID.String(),
		CustomerID: reminder.CustomerID.String(),
		Track:      reminder.Track.String(),
		Since:      reminder.Since,
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(reminder.CustomerID.String()),
		Value: data,
	})
}

// Close flushes pending messages and releases the writer.
func (p *ReminderPublisher) Close() error {
	return p.writer.Close()
}
