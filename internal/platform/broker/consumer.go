package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"foodieConsole/internal/modules/restaurants/domain"
	"foodieConsole/internal/shared/normalization"
)

type KafkaConsumer struct {
	reader *kafka.Reader
}

func NewKafkaConsumer(brokers []string, groupID string, topic string) *KafkaConsumer {
	return &KafkaConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:     brokers,
			GroupID:     groupID,
			Topic:       topic,
			StartOffset: kafka.LastOffset,
			MaxWait:     time.Second,
		}),
	}
}

// Consume feeds every decodable change event to handler until ctx is cancelled.
func (c *KafkaConsumer) Consume(ctx context.Context, handler func(domain.ChangeEvent) error) error {
	defer c.reader.Close()
	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			slog.Warn("kafka read error", slog.Any("error", err))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(time.Second):
			}
			continue
		}
		event, err := decodeChangeEvent(m)
		if err != nil {
			slog.Warn("kafka message skipped", slog.String("topic", m.Topic), slog.Int64("offset", m.Offset), slog.Any("error", err))
			continue
		}
		slog.Info("kafka message consumed",
			slog.String("topic", m.Topic),
			slog.Int("partition", m.Partition),
			slog.Int64("offset", m.Offset),
			slog.String("entity", event.Entity),
			slog.String("action", event.Action),
			slog.String("resourceId", event.ResourceID),
			slog.String("origin", event.Origin),
		)
		if err := handler(event); err != nil {
			slog.Warn("kafka handler error", slog.Any("error", err))
		}
	}
}

func decodeChangeEvent(m kafka.Message) (domain.ChangeEvent, error) {
	var event domain.ChangeEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return domain.ChangeEvent{}, fmt.Errorf("decode change event: %w", err)
	}
	event.Entity = normalization.NormalizeEntity(event.Entity)
	if event.Entity == "" {
		event.Entity = domain.RestaurantEntity
	}
	if !normalization.IsValidEntity(event.Entity) {
		return domain.ChangeEvent{}, fmt.Errorf("decode change event: unsupported entity %q", event.Entity)
	}
	event.Action = strings.ToLower(strings.TrimSpace(event.Action))
	if event.Action == "" {
		event.Action = "unknown"
	}
	if event.ResourceID == "" && len(m.Key) > 0 {
		event.ResourceID = string(m.Key)
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = m.Time.UTC()
	}
	return event, nil
}
