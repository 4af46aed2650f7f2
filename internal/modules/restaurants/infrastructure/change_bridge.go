package infrastructure

import (
	"context"

	"foodieConsole/internal/modules/restaurants/domain"
)

// ChangeMessage wraps a change event for console clients. The event's own action travels
// in metadata; the topic is always restaurants.changed.
func ChangeMessage(event domain.ChangeEvent) *domain.Message {
	msg := domain.NewMessage(domain.RestaurantEntity, domain.ActionChanged, event)
	msg.ResourceID = event.ResourceID
	msg.Metadata = map[string]string{"change": event.Action}
	if event.Origin != "" {
		msg.Metadata["origin"] = event.Origin
	}
	return msg
}

// HubChangePublisher fans change events out to the consoles attached to this process.
type HubChangePublisher struct {
	hub *Hub
}

func NewHubChangePublisher(hub *Hub) *HubChangePublisher {
	return &HubChangePublisher{hub: hub}
}

func (p *HubChangePublisher) PublishChange(ctx context.Context, event domain.ChangeEvent) error {
	p.hub.Broadcast(ctx, ChangeMessage(event))
	return nil
}

// BroadcastChange is the consumer side of the bridge.
func (p *HubChangePublisher) BroadcastChange(event domain.ChangeEvent) error {
	return p.PublishChange(context.Background(), event)
}
