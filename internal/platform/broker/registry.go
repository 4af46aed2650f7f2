package broker

import (
	"context"
	"sync"

	"foodieConsole/internal/modules/restaurants/domain"
)

// StartChangeConsumer runs a reader for topic in the background and returns a function that
// waits for it to stop after ctx is cancelled. Nothing starts when no brokers are configured.
func StartChangeConsumer(
	ctx context.Context,
	brokers []string,
	groupID string,
	topic string,
	handler func(domain.ChangeEvent) error,
) (wait func()) {
	if len(brokers) == 0 || topic == "" {
		return func() {}
	}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		consumer := NewKafkaConsumer(brokers, groupID, topic)
		_ = consumer.Consume(ctx, handler)
	}()
	return wg.Wait
}
