package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"foodieConsole/internal/modules/restaurants/domain"
)

// KafkaChangePublisher writes restaurant change events to a topic, keyed by resource id.
type KafkaChangePublisher struct {
	writer *kafka.Writer
}

func NewKafkaChangePublisher(brokers []string, topic string) *KafkaChangePublisher {
	return &KafkaChangePublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			BatchTimeout:           50 * time.Millisecond,
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *KafkaChangePublisher) PublishChange(ctx context.Context, event domain.ChangeEvent) error {
	msg, err := encodeChangeEvent(event)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish change event: %w", err)
	}
	slog.Debug("kafka change published", slog.String("topic", p.writer.Topic), slog.String("event", event.Topic()), slog.String("resourceId", event.ResourceID))
	return nil
}

func (p *KafkaChangePublisher) Close() error {
	return p.writer.Close()
}

// encodeChangeEvent builds the record for event, keyed by resource id.
func encodeChangeEvent(event domain.ChangeEvent) (kafka.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode change event: %w", err)
	}
	return kafka.Message{Key: []byte(event.ResourceID), Value: value, Time: event.OccurredAt}, nil
}
