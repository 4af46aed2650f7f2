package broker

import (
	"context"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodieConsole/internal/modules/restaurants/domain"
)

func TestDecodeChangeEvent(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	event, err := decodeChangeEvent(kafka.Message{
		Key:   []byte("r-1"),
		Value: []byte(`{"entity":"Restaurant","action":"Deleted","origin":"console-a"}`),
		Time:  at,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RestaurantEntity, event.Entity)
	assert.Equal(t, domain.ActionDeleted, event.Action)
	assert.Equal(t, "r-1", event.ResourceID)
	assert.Equal(t, "console-a", event.Origin)
	assert.Equal(t, at, event.OccurredAt)
}

func TestDecodeChangeEvent_Defaults(t *testing.T) {
	event, err := decodeChangeEvent(kafka.Message{Value: []byte(`{"resourceId":"r-2"}`)})
	require.NoError(t, err)
	assert.Equal(t, domain.RestaurantEntity, event.Entity)
	assert.Equal(t, "unknown", event.Action)
	assert.Equal(t, "r-2", event.ResourceID)
}

func TestDecodeChangeEvent_Rejects(t *testing.T) {
	_, err := decodeChangeEvent(kafka.Message{Value: []byte(`not json`)})
	assert.Error(t, err)

	_, err = decodeChangeEvent(kafka.Message{Value: []byte(`{"entity":"tables","action":"created"}`)})
	assert.Error(t, err)
}

func TestStartChangeConsumer_NoBrokers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wait := StartChangeConsumer(ctx, nil, "group", "topic", func(domain.ChangeEvent) error { return nil })
	wait()
}
