package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"foodieConsole/internal/modules/restaurants/domain"
)

// Command is one inbound console instruction.
type Command struct {
	Action  string          `json:"action"`
	Topic   string          `json:"topic,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func (c Command) actionKey() string {
	return normalizeAction(c.Action)
}

// Decode unmarshals the payload into target. An absent payload leaves target untouched.
func (c Command) Decode(target any) error {
	if len(c.Payload) == 0 || string(c.Payload) == "null" {
		return nil
	}
	if err := json.Unmarshal(c.Payload, target); err != nil {
		return fmt.Errorf("decode %s payload: %w", c.actionKey(), err)
	}
	return nil
}

type CommandHandler func(ctx context.Context, client *Client, cmd Command) error

// CommandProcessor routes commands by action. Handlers run on the reading goroutine so a
// client's commands are handled in the order they were sent.
type CommandProcessor struct {
	hub      *Hub
	handlers map[string]CommandHandler
}

func NewCommandProcessor(hub *Hub) *CommandProcessor {
	processor := &CommandProcessor{
		hub:      hub,
		handlers: make(map[string]CommandHandler),
	}
	processor.Register("subscribe", processor.handleSubscribe)
	processor.Register("unsubscribe", processor.handleUnsubscribe)
	processor.Register("ping", processor.handlePing)
	return processor
}

func (p *CommandProcessor) Register(action string, handler CommandHandler) {
	if handler == nil {
		return
	}
	key := normalizeAction(action)
	if key == "" {
		return
	}
	p.handlers[key] = handler
}

func (p *CommandProcessor) Process(client *Client, cmd Command) {
	if client == nil {
		return
	}

	action := cmd.actionKey()
	if action == "" {
		return
	}

	handler, ok := p.handlers[action]
	if !ok {
		slog.Debug("ws command ignored", slog.String("sessionId", client.sessionID), slog.String("action", action))
		client.SendDomainMessage(errorMessage(action, "unknown action"))
		return
	}
	if err := handler(context.Background(), client, cmd); err != nil {
		slog.Warn("ws command rejected", slog.String("sessionId", client.sessionID), slog.String("action", action), slog.Any("error", err))
		client.SendDomainMessage(errorMessage(action, err.Error()))
	}
}

func (p *CommandProcessor) handleSubscribe(_ context.Context, client *Client, cmd Command) error {
	topic := strings.TrimSpace(cmd.Topic)
	if topic == "" {
		return fmt.Errorf("missing topic")
	}
	p.hub.subscribe(client, topic)
	slog.Debug("ws subscribe", slog.String("sessionId", client.sessionID), slog.String("topic", topic))
	return nil
}

func (p *CommandProcessor) handleUnsubscribe(_ context.Context, client *Client, cmd Command) error {
	topic := strings.TrimSpace(cmd.Topic)
	if topic == "" {
		return nil
	}
	p.hub.unsubscribe(client, topic)
	slog.Debug("ws unsubscribe", slog.String("sessionId", client.sessionID), slog.String("topic", topic))
	return nil
}

func (p *CommandProcessor) handlePing(_ context.Context, client *Client, _ Command) error {
	client.SendDomainMessage(domain.NewMessage(domain.SystemEntity, domain.ActionPong, nil))
	return nil
}

func errorMessage(action, reason string) *domain.Message {
	msg := domain.NewMessage(domain.SystemEntity, domain.ActionError, map[string]any{
		"action": action,
		"error":  reason,
	})
	return msg
}

func normalizeAction(action string) string {
	return strings.ToLower(strings.TrimSpace(action))
}
