/*
Package events publishes user lifecycle events to Kafka.

Consumers use user.profile_write_failed to repair accounts whose profile attribute was not
stored; it carries the picture value that should have been written.
*/
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Type names an event.
type Type string

const (
	UserRegistered     Type = "user.registered"
	ProfileWriteFailed Type = "user.profile_write_failed"
)

// Event is the JSON message written to the topic.
type Event struct {
	ID             string    `json:"id"`
	Type           Type      `json:"type"`
	UserID         int64     `json:"user_id"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// New stamps an event with a fresh id and the current time.
func New(t Type, userID int64, profilePicture string) Event {
	return Event{
		ID:             uuid.NewString(),
		Type:           t,
		UserID:         userID,
		ProfilePicture: profilePicture,
		OccurredAt:     time.Now().UTC(),
	}
}

// Message encodes evt as a Kafka message keyed by user id, so events of one user stay ordered.
func Message(evt Event) (kafka.Message, error) {
	value, err := json.Marshal(evt)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode event %s: %w", evt.Type, err)
	}

	return kafka.Message{
		Key:     []byte(strconv.FormatInt(evt.UserID, 10)),
		Value:   value,
		Headers: []kafka.Header{{Key: "type", Value: []byte(evt.Type)}},
		Time:    evt.OccurredAt,
	}, nil
}

// KafkaPublisher writes events to a single topic.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher creates a publisher for topic on the given brokers.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish writes evt and waits for the broker acknowledgement.
func (p *KafkaPublisher) Publish(ctx context.Context, evt Event) error {
	msg, err := Message(evt)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s for user %d: %w", evt.Type, evt.UserID, err)
	}
	return nil
}

// Close flushes pending writes and releases the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
