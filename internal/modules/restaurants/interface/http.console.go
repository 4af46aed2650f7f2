package transport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"foodieConsole/internal/modules/restaurants/application/port"
	"foodieConsole/internal/modules/restaurants/application/usecase"
	"foodieConsole/internal/modules/restaurants/domain"
	"foodieConsole/internal/modules/restaurants/infrastructure"
	"foodieConsole/internal/shared/auth"
	"foodieConsole/internal/shared/httputil"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

var authErrors = httputil.NewErrorMapper().
	WithMapping(auth.ErrMissingToken, http.StatusUnauthorized, "missing token").
	WithMapping(auth.ErrInvalidToken, http.StatusUnauthorized, "invalid or expired token").
	WithDefault(http.StatusUnauthorized, "unauthorized")

// ConsoleDependencies are shared by every console connection.
type ConsoleDependencies struct {
	Gateway    port.RestaurantGateway
	Changes    port.ChangePublisher
	Validator  auth.TokenValidator
	Options    usecase.ControllerOptions
	SendBuffer int
}

// NewConsoleWebsocketHandler exposes /ws/console. Each connection gets its own controller,
// which lives until the connection closes or ctx is cancelled.
func NewConsoleWebsocketHandler(ctx context.Context, hub *infrastructure.Hub, deps ConsoleDependencies) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Response().Header().Get(echo.HeaderXRequestID)
		peerIP := c.RealIP()

		token := auth.ExtractToken(c.Request(), "token")
		claims, err := deps.Validator.Validate(token)
		if err != nil {
			info := authErrors.Map(err)
			slog.Warn("console ws auth failed", slog.String("ip", peerIP), slog.String("reqID", requestID), slog.Any("error", err))
			return echo.NewHTTPError(info.Status, info.Message)
		}

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Error("console ws upgrade failed", slog.String("ip", peerIP), slog.String("reqID", requestID), slog.Any("error", err))
			return err
		}

		userID := claims.Subject
		sessionID := uuid.NewString()
		processor := infrastructure.NewCommandProcessor(hub)
		client := infrastructure.NewClient(hub, conn, userID, sessionID, deps.SendBuffer, processor)
		session := NewConsoleSession(client)

		opts := deps.Options
		opts.Origin = sessionID
		opts.Logger = slog.Default().With(slog.String("sessionId", sessionID), slog.String("userId", userID))
		ctrl := usecase.NewController(deps.Gateway, session, session, session, deps.Changes, opts)
		registerConsoleCommands(processor, ctrl, session)

		ctrlCtx, cancel := context.WithCancel(ctx)
		client.AddCloseHook(func(*infrastructure.Client) {
			cancel()
			slog.Info("console ws disconnected", slog.String("userId", userID), slog.String("sessionId", sessionID))
		})
		hub.AttachClient(client, []string{domain.TopicChanged})

		pageSize := opts.PageSize
		if pageSize <= 0 {
			pageSize = domain.DefaultPageSize
		}
		connected := domain.NewMessage(domain.SystemEntity, domain.ActionConnected, map[string]any{
			"topics":   []string{domain.TopicState, domain.TopicNotification, domain.TopicConfirm, domain.TopicChanged},
			"pageSize": pageSize,
		})
		connected.Metadata = map[string]string{"sessionId": sessionID, "userId": userID}
		client.SendDomainMessage(connected)

		go client.WritePump()
		go func() {
			if err := ctrl.Run(ctrlCtx); err != nil {
				slog.Error("console controller stopped", slog.String("sessionId", sessionID), slog.Any("error", err))
			}
		}()
		go client.ReadPump()

		slog.Info("console ws connected", slog.String("userId", userID), slog.String("sessionId", sessionID), slog.String("ip", peerIP), slog.String("reqID", requestID))
		return nil
	}
}

// NewHealthHandler reports liveness and the number of attached consoles.
func NewHealthHandler(hub *infrastructure.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":   "ok",
			"sessions": hub.ClientCount(),
			"time":     time.Now().UTC(),
		})
	}
}
