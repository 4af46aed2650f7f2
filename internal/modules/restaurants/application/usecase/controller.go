package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"foodieConsole/internal/modules/restaurants/application/port"
	"foodieConsole/internal/modules/restaurants/domain"
)

var ErrControllerRunning = errors.New("restaurant controller already running")

// ControllerOptions tunes a Controller. Zero values fall back to defaults.
type ControllerOptions struct {
	PageSize       int
	QueueSize      int
	ConfirmTimeout time.Duration
	Origin         string
	NewRequestID   func() string
	Logger         *slog.Logger
}

// Controller owns one console's restaurant state. Actions are processed one at a time
// on the goroutine running Run; remote calls run elsewhere and come back as actions.
type Controller struct {
	gateway   port.RestaurantGateway
	notifier  port.Notifier
	confirmer port.Confirmer
	views     port.ViewSink
	changes   port.ChangePublisher

	confirmTimeout time.Duration
	origin         string
	newRequestID   func() string
	logger         *slog.Logger

	actions chan domain.Action
	done    chan struct{}
	running atomic.Bool
	effects sync.WaitGroup

	state domain.State

	viewMu sync.RWMutex
	view   domain.View
}

func NewController(gateway port.RestaurantGateway, notifier port.Notifier, confirmer port.Confirmer, views port.ViewSink, changes port.ChangePublisher, opts ControllerOptions) *Controller {
	if opts.QueueSize <= 0 {
		opts.QueueSize = 64
	}
	if opts.ConfirmTimeout <= 0 {
		opts.ConfirmTimeout = 2 * time.Minute
	}
	if opts.NewRequestID == nil {
		opts.NewRequestID = uuid.NewString
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	state := domain.NewState(opts.PageSize)
	return &Controller{
		gateway:        gateway,
		notifier:       notifier,
		confirmer:      confirmer,
		views:          views,
		changes:        changes,
		confirmTimeout: opts.ConfirmTimeout,
		origin:         opts.Origin,
		newRequestID:   opts.NewRequestID,
		logger:         opts.Logger.With(slog.String("component", "restaurant-controller")),
		actions:        make(chan domain.Action, opts.QueueSize),
		done:           make(chan struct{}),
		state:          state,
		view:           state.View(),
	}
}

// Run fetches the first page and then processes actions until ctx is cancelled. It waits
// for in-flight remote calls before returning.
func (c *Controller) Run(ctx context.Context) error {
	if !c.running.CompareAndSwap(false, true) {
		return ErrControllerRunning
	}
	defer c.effects.Wait()
	defer close(c.done)

	c.apply(ctx, domain.Started{})
	for {
		select {
		case <-ctx.Done():
			return nil
		case action := <-c.actions:
			c.apply(ctx, action)
		}
	}
}

// Dispatch queues an action. It reports false once the controller has stopped.
func (c *Controller) Dispatch(action domain.Action) bool {
	if action == nil {
		return false
	}
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.actions <- action:
		return true
	case <-c.done:
		return false
	}
}

// View returns the latest state projection.
func (c *Controller) View() domain.View {
	c.viewMu.RLock()
	defer c.viewMu.RUnlock()
	return c.view
}

func (c *Controller) GoToPage(page int) bool {
	return c.Dispatch(domain.PageRequested{Page: page})
}

func (c *Controller) Next() bool        { return c.Dispatch(domain.PageStepped{Delta: 1}) }
func (c *Controller) Previous() bool    { return c.Dispatch(domain.PageStepped{Delta: -1}) }
func (c *Controller) Refresh() bool     { return c.Dispatch(domain.Refreshed{}) }
func (c *Controller) BeginCreate() bool { return c.Dispatch(domain.CreateOpened{}) }
func (c *Controller) Submit() bool      { return c.Dispatch(domain.SubmitRequested{}) }
func (c *Controller) Cancel() bool      { return c.Dispatch(domain.Cancelled{}) }

func (c *Controller) SetSearchTerm(term string) bool {
	return c.Dispatch(domain.SearchChanged{Term: term})
}

func (c *Controller) BeginEdit(id string) bool {
	return c.Dispatch(domain.EditOpened{ID: id})
}

func (c *Controller) UpdateField(name, value string, file *domain.ImageFile) bool {
	return c.Dispatch(domain.FieldChanged{Field: name, Value: value, File: file})
}

// DeleteResource starts a confirmed delete of id.
func (c *Controller) DeleteResource(id string) bool {
	return c.Dispatch(domain.DeleteRequested{ID: id, RequestID: c.newRequestID()})
}

func (c *Controller) apply(ctx context.Context, action domain.Action) {
	next, effects := domain.Reduce(c.state, action)
	c.state = next
	c.logger.Debug("restaurant action applied",
		slog.String("action", action.ActionName()),
		slog.Int("page", next.Pagination.CurrentPage),
		slog.Int("totalPages", next.Pagination.TotalPages),
		slog.String("mode", string(next.Session.Mode)),
		slog.Int("effects", len(effects)),
	)
	c.publish(next.View())
	for _, effect := range effects {
		c.execute(ctx, effect)
	}
}

func (c *Controller) publish(view domain.View) {
	c.viewMu.Lock()
	c.view = view
	c.viewMu.Unlock()
	if c.views != nil {
		c.views.PublishView(view)
	}
}

func (c *Controller) execute(ctx context.Context, effect domain.Effect) {
	switch e := effect.(type) {
	case domain.Notify:
		c.notify(ctx, e.Notification)
	case domain.FetchPage:
		c.spawn(ctx, func(ctx context.Context) { c.fetchPage(ctx, e) })
	case domain.FetchDraft:
		c.spawn(ctx, func(ctx context.Context) { c.fetchDraft(ctx, e) })
	case domain.CreateRemote:
		c.spawn(ctx, func(ctx context.Context) { c.create(ctx, e) })
	case domain.UpdateRemote:
		c.spawn(ctx, func(ctx context.Context) { c.update(ctx, e) })
	case domain.AskConfirmation:
		c.spawn(ctx, func(ctx context.Context) { c.askConfirmation(ctx, e) })
	case domain.DeleteRemote:
		c.spawn(ctx, func(ctx context.Context) { c.delete(ctx, e) })
	case domain.AnnounceChange:
		c.spawn(ctx, func(ctx context.Context) { c.announce(ctx, e) })
	default:
		c.logger.Warn("restaurant effect unsupported", slog.Any("effect", effect))
	}
}

func (c *Controller) spawn(ctx context.Context, fn func(context.Context)) {
	c.effects.Add(1)
	go func() {
		defer c.effects.Done()
		fn(ctx)
	}()
}

func (c *Controller) notify(ctx context.Context, n domain.Notification) {
	if c.notifier == nil {
		c.logger.Info("restaurant notification dropped", slog.String("kind", string(n.Kind)), slog.String("message", n.Message))
		return
	}
	c.notifier.Notify(ctx, n)
}

func (c *Controller) fetchPage(ctx context.Context, e domain.FetchPage) {
	page, err := c.gateway.ListRestaurants(ctx, e.Query)
	if err == nil && page == nil {
		err = port.ErrServer
	}
	if err != nil {
		fetchErr := &domain.FetchError{Op: domain.OpList, Err: err}
		c.logger.Error("restaurant list fetch failed", slog.Int("page", e.Query.Page), slog.Int("limit", e.Query.Limit), slog.Any("error", fetchErr))
		c.Dispatch(domain.FetchFailed{Seq: e.Seq, Err: fetchErr})
		return
	}
	c.logger.Info("restaurant list fetched", slog.Int("page", page.CurrentPage), slog.Int("totalPages", page.TotalPages), slog.Int("items", len(page.Items)))
	c.Dispatch(domain.FetchSucceeded{Seq: e.Seq, Page: *page})
}

func (c *Controller) fetchDraft(ctx context.Context, e domain.FetchDraft) {
	restaurant, err := c.gateway.GetRestaurant(ctx, e.ID)
	if err == nil && restaurant == nil {
		err = port.ErrNotFound
	}
	if err != nil {
		fetchErr := &domain.FetchError{Op: domain.OpGet, ID: e.ID, Err: err}
		c.logger.Error("restaurant detail fetch failed", slog.String("restaurantId", e.ID), slog.Any("error", fetchErr))
		c.Dispatch(domain.DraftLoadFailed{ID: e.ID, Seq: e.Seq, Err: fetchErr})
		return
	}
	c.Dispatch(domain.DraftLoaded{ID: e.ID, Seq: e.Seq, Restaurant: *restaurant})
}

func (c *Controller) create(ctx context.Context, e domain.CreateRemote) {
	created, err := c.gateway.CreateRestaurant(ctx, e.Draft)
	if err != nil {
		mutationErr := &domain.MutationError{Op: domain.OpCreate, Err: err}
		c.logger.Error("restaurant create failed", slog.Any("error", mutationErr))
		c.Dispatch(domain.SubmitFailed{Generation: e.Generation, Mode: domain.ModeCreating, Err: mutationErr})
		return
	}
	id := ""
	if created != nil {
		id = created.ID
	}
	c.logger.Info("restaurant created", slog.String("restaurantId", id))
	c.Dispatch(domain.SubmitSucceeded{Generation: e.Generation, Mode: domain.ModeCreating, ID: id})
}

func (c *Controller) update(ctx context.Context, e domain.UpdateRemote) {
	if _, err := c.gateway.UpdateRestaurant(ctx, e.ID, e.Draft); err != nil {
		mutationErr := &domain.MutationError{Op: domain.OpUpdate, ID: e.ID, Err: err}
		c.logger.Error("restaurant update failed", slog.String("restaurantId", e.ID), slog.Any("error", mutationErr))
		c.Dispatch(domain.SubmitFailed{Generation: e.Generation, Mode: domain.ModeEditing, Err: mutationErr})
		return
	}
	c.logger.Info("restaurant updated", slog.String("restaurantId", e.ID))
	c.Dispatch(domain.SubmitSucceeded{Generation: e.Generation, Mode: domain.ModeEditing, ID: e.ID})
}

func (c *Controller) askConfirmation(ctx context.Context, e domain.AskConfirmation) {
	approved := false
	if c.confirmer == nil {
		c.logger.Warn("restaurant delete confirmation unavailable", slog.String("restaurantId", e.ResourceID))
	} else {
		confirmCtx, cancel := context.WithTimeout(ctx, c.confirmTimeout)
		answer, err := c.confirmer.Confirm(confirmCtx, port.ConfirmationRequest{ID: e.RequestID, ResourceID: e.ResourceID, Prompt: e.Prompt})
		cancel()
		if err != nil {
			c.logger.Warn("restaurant delete confirmation abandoned", slog.String("restaurantId", e.ResourceID), slog.String("requestId", e.RequestID), slog.Any("error", err))
		}
		approved = answer && err == nil
	}
	c.Dispatch(domain.ConfirmationAnswered{RequestID: e.RequestID, Approved: approved})
}

func (c *Controller) delete(ctx context.Context, e domain.DeleteRemote) {
	if err := c.gateway.DeleteRestaurant(ctx, e.ID); err != nil {
		mutationErr := &domain.MutationError{Op: domain.OpDelete, ID: e.ID, Err: err}
		c.logger.Error("restaurant delete failed", slog.String("restaurantId", e.ID), slog.Any("error", mutationErr))
		c.Dispatch(domain.DeleteFailed{ID: e.ID, Err: mutationErr})
		return
	}
	c.logger.Info("restaurant deleted", slog.String("restaurantId", e.ID))
	c.Dispatch(domain.DeleteSucceeded{ID: e.ID})
}

func (c *Controller) announce(ctx context.Context, e domain.AnnounceChange) {
	if c.changes == nil {
		return
	}
	event := e.Event
	event.Origin = c.origin
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	if err := c.changes.PublishChange(ctx, event); err != nil {
		c.logger.Warn("restaurant change announce failed", slog.String("topic", event.Topic()), slog.String("restaurantId", event.ResourceID), slog.Any("error", err))
	}
}
