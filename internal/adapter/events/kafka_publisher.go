// Package events publishes tracking domain events.
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"affiliate-tracker/internal/core/port"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes every event to one topic keyed by application id so
// that events for an application stay ordered within a partition.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
}

var _ port.EventPublisher = (*KafkaPublisher)(nil)

// NewKafkaPublisher builds a synchronous writer that flushes after at most
// batchTimeout. Callers bound each Publish with their own context deadline.
func NewKafkaPublisher(brokers []string, topic string, batchTimeout time.Duration) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher requires at least one broker")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka publisher requires a topic")
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			RequiredAcks:           kafka.RequireAll,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           batchTimeout,
			AllowAutoTopicCreation: true,
		},
		topic: topic,
	}, nil
}

// Publish writes one message keyed by key with an event_type header. It
// returns when the broker acknowledges or ctx expires.
func (p *KafkaPublisher) Publish(ctx context.Context, eventType, key string, payload []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	})
}

// Close flushes pending messages and closes the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops every event. It is used when no brokers are
// configured.
type NoopPublisher struct{}

var _ port.EventPublisher = NoopPublisher{}

func (NoopPublisher) Publish(context.Context, string, string, []byte) error { return nil }
