package transport

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"foodieConsole/internal/modules/restaurants/application/port"
	"foodieConsole/internal/modules/restaurants/domain"
)

var errConsoleClosed = errors.New("console connection closed")

type messageSender interface {
	SendDomainMessage(msg *domain.Message) bool
}

// ConsoleSession presents one controller to one console connection: it pushes views and
// notifications and runs the confirm exchange.
type ConsoleSession struct {
	sender messageSender

	mu      sync.Mutex
	pending map[string]chan bool
}

func NewConsoleSession(sender messageSender) *ConsoleSession {
	return &ConsoleSession{sender: sender, pending: make(map[string]chan bool)}
}

func (s *ConsoleSession) PublishView(view domain.View) {
	if !s.sender.SendDomainMessage(domain.NewMessage(domain.RestaurantEntity, domain.ActionState, view)) {
		slog.Warn("console view dropped", slog.Int("page", view.CurrentPage), slog.String("mode", string(view.Mode)))
	}
}

// Notify pushes n to the console. A console that cannot take it is detached by its client.
func (s *ConsoleSession) Notify(_ context.Context, n domain.Notification) {
	if !s.sender.SendDomainMessage(domain.NewMessage(domain.RestaurantEntity, domain.ActionNotification, n)) {
		slog.Warn("console notification dropped", slog.String("kind", string(n.Kind)), slog.String("message", n.Message))
	}
}

// Confirm sends the prompt and blocks until the console answers or ctx ends.
func (s *ConsoleSession) Confirm(ctx context.Context, req port.ConfirmationRequest) (bool, error) {
	answer := make(chan bool, 1)
	s.mu.Lock()
	s.pending[req.ID] = answer
	s.mu.Unlock()
	defer s.forget(req.ID)

	msg := domain.NewMessage(domain.RestaurantEntity, domain.ActionConfirm, req)
	msg.ResourceID = req.ResourceID
	if !s.sender.SendDomainMessage(msg) {
		return false, errConsoleClosed
	}

	select {
	case approved := <-answer:
		return approved, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Answer resolves a pending confirmation. It reports false for unknown or settled requests.
func (s *ConsoleSession) Answer(requestID string, approved bool) bool {
	requestID = strings.TrimSpace(requestID)
	s.mu.Lock()
	answer, ok := s.pending[requestID]
	delete(s.pending, requestID)
	s.mu.Unlock()
	if !ok {
		return false
	}
	answer <- approved
	return true
}

func (s *ConsoleSession) forget(requestID string) {
	s.mu.Lock()
	delete(s.pending, requestID)
	s.mu.Unlock()
}

var (
	_ port.Notifier  = (*ConsoleSession)(nil)
	_ port.Confirmer = (*ConsoleSession)(nil)
	_ port.ViewSink  = (*ConsoleSession)(nil)
)
