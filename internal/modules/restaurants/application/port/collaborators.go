package port

import (
	"context"

	"foodieConsole/internal/modules/restaurants/domain"
)

// Notifier presents success and failure notifications. It decides nothing about when
// they fire.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// ConfirmationRequest asks the operator a yes/no question.
type ConfirmationRequest struct {
	ID         string `json:"requestId"`
	ResourceID string `json:"resourceId"`
	Prompt     string `json:"prompt"`
}

// Confirmer exchanges a confirmation request for an answer. Implementations return
// false with ctx.Err() when the exchange is cancelled or times out.
type Confirmer interface {
	Confirm(ctx context.Context, req ConfirmationRequest) (bool, error)
}

// ViewSink receives every state projection produced by the controller.
type ViewSink interface {
	PublishView(view domain.View)
}

// ChangePublisher announces completed mutations to other consoles.
type ChangePublisher interface {
	PublishChange(ctx context.Context, event domain.ChangeEvent) error
}
