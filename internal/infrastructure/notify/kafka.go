package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"crmdesk/pkg/logger"
)

// KafkaConfig holds Kafka notifier configuration.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// KafkaNotifier publishes events to a Kafka topic. Delivery is
// fire-and-forget: a failed write is logged and the request proceeds.
type KafkaNotifier struct {
	writer *kafka.Writer
	topic  string
}

// NewKafkaNotifier creates a Kafka-backed notifier.
func NewKafkaNotifier(cfg KafkaConfig) (*KafkaNotifier, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("topic is required")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{}, // hash by key for partition affinity
		BatchTimeout:           100 * time.Millisecond,
		WriteTimeout:           5 * time.Second,
		Async:                  true,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}

	return &KafkaNotifier{writer: writer, topic: cfg.Topic}, nil
}

// Notify implements Notifier. Events are keyed by user so one user's
// activity stays ordered within a partition.
func (n *KafkaNotifier) Notify(ctx context.Context, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Error(ctx, "serialize activity event failed", "type", event.Type, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
		Time:  event.OccurredAt,
	}

	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		logger.Error(ctx, "publish activity event failed", "type", event.Type, "error", err)
	}
}

// Close closes the underlying writer.
func (n *KafkaNotifier) Close() error {
	if err := n.writer.Close(); err != nil {
		return fmt.Errorf("close kafka writer: %w", err)
	}
	return nil
}
