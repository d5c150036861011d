// Package kafka publishes committed stage events to a Kafka topic so
// downstream consumers (customer notifications, analytics) can react to
// workflow progress without polling the store.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"laundry/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// stageEventMessage is the wire shape of one published notification.
// The key is the order id, so all events of one order land on one partition
// and consumers see them in commit order.
type stageEventMessage struct {
	OrderID    string    `json:"order_id"`
	Track      string    `json:"track"`
	Value      int       `json:"value"`
	Seq        int       `json:"seq"`
	ActorID    string    `json:"actor_id"`
	ActorRole  string    `json:"actor_role"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Publisher implements ports.NotificationPublisher on a Kafka topic.
type Publisher struct {
	writer *kafka.Writer
	topic  string
}

// NewPublisher creates a publisher writing to the given brokers and topic.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
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

// Publish sends one committed stage event to the topic.
func (p *Publisher) Publish(ctx context.Context, notification ports.StageNotification) error {
	data, err := json.Marshal(stageEventMessage{
		OrderID:    notification.OrderID.String(),
		Track:      notification.Track.String(),
		Value:      notification.Value,
		Seq:        notification.Seq,
		ActorID:    notification.ActorID.String(),
		ActorRole:  string(notification.ActorRole),
		RecordedAt: notification.RecordedAt,
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(notification.OrderID.String()),
		Value: data,
	})
}

// Close flushes pending messages and releases the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
