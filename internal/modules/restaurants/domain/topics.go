package domain

import (
	"strings"
	"time"
)

const (
	SystemEntity     = "system"
	RestaurantEntity = "restaurants"

	ActionConnected    = "connected"
	ActionPong         = "pong"
	ActionError        = "error"
	ActionState        = "state"
	ActionNotification = "notification"
	ActionConfirm      = "confirm"
	ActionChanged      = "changed"
	ActionCreated      = "created"
	ActionUpdated      = "updated"
	ActionDeleted      = "deleted"
)

var (
	TopicSystemConnected = buildEntityTopic(SystemEntity, ActionConnected)
	TopicSystemPong      = buildEntityTopic(SystemEntity, ActionPong)
	TopicSystemError     = buildEntityTopic(SystemEntity, ActionError)
	TopicState           = buildEntityTopic(RestaurantEntity, ActionState)
	TopicNotification    = buildEntityTopic(RestaurantEntity, ActionNotification)
	TopicConfirm         = buildEntityTopic(RestaurantEntity, ActionConfirm)
	TopicChanged         = buildEntityTopic(RestaurantEntity, ActionChanged)
)

// Message is the envelope pushed to console clients.
type Message struct {
	Topic      string            `json:"topic"`
	Entity     string            `json:"entity"`
	Action     string            `json:"action"`
	ResourceID string            `json:"resourceId,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Data       any               `json:"data,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

// ChangeEvent announces a completed mutation to other consoles.
type ChangeEvent struct {
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	ResourceID string    `json:"resourceId,omitempty"`
	Origin     string    `json:"origin,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Topic returns the entity.action topic of the event.
func (e ChangeEvent) Topic() string {
	return buildEntityTopic(e.Entity, e.Action)
}

// NewMessage stamps a console message for entity and action.
func NewMessage(entity, action string, data any) *Message {
	return &Message{
		Topic:     buildEntityTopic(entity, action),
		Entity:    strings.TrimSpace(entity),
		Action:    strings.TrimSpace(action),
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}

func buildEntityTopic(entity, action string) string {
	cleanEntity := strings.TrimSpace(entity)
	cleanAction := strings.TrimSpace(action)
	if cleanEntity == "" || cleanAction == "" {
		return ""
	}
	return cleanEntity + "." + cleanAction
}
