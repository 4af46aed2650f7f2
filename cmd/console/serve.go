package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"foodieConsole/internal/config"
	"foodieConsole/internal/modules/restaurants/application/port"
	"foodieConsole/internal/modules/restaurants/application/usecase"
	"foodieConsole/internal/modules/restaurants/infrastructure"
	transport "foodieConsole/internal/modules/restaurants/interface"
	"foodieConsole/internal/platform/broker"
	"foodieConsole/internal/shared/auth"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the restaurant console over websocket",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runServe(ctx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context, cfg *config.Config) error {
	validator, err := auth.NewTokenValidator(cfg.Security.JWTSecret, cfg.Security.JWTPublicKey)
	if err != nil {
		return fmt.Errorf("token validator: %w", err)
	}
	if _, anonymous := validator.(auth.AnonymousValidator); anonymous {
		slog.Warn("no JWT key configured; console connections are not authenticated")
	}

	hub := infrastructure.NewHub()
	local := infrastructure.NewHubChangePublisher(hub)

	var changes port.ChangePublisher = local
	waitConsumer := func() {}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher := broker.NewKafkaChangePublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer publisher.Close()
		changes = publisher
		// One group per instance so every instance sees every event.
		groupID := cfg.Kafka.GroupID + "-" + uuid.NewString()[:8]
		waitConsumer = broker.StartChangeConsumer(ctx, cfg.Kafka.Brokers, groupID, cfg.Kafka.Topic, local.BroadcastChange)
		slog.Info("kafka change bridge enabled", slog.Any("brokers", cfg.Kafka.Brokers), slog.String("topic", cfg.Kafka.Topic), slog.String("group", groupID))
	} else {
		slog.Info("kafka change bridge disabled; changes stay local")
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetOutput(log.Writer())
	e.GET("/ws/console", transport.NewConsoleWebsocketHandler(ctx, hub, transport.ConsoleDependencies{
		Gateway:   newGateway(cfg),
		Changes:   changes,
		Validator: validator,
		Options: usecase.ControllerOptions{
			PageSize:       cfg.Console.PageSize,
			ConfirmTimeout: cfg.Console.ConfirmTimeout,
		},
		SendBuffer: cfg.Console.SendBuffer,
	}))
	e.GET("/healthz", transport.NewHealthHandler(hub))

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("console listening", slog.String("port", cfg.Server.Port), slog.String("restBaseUrl", cfg.REST.BaseURL))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Warn("http server shutdown", slog.Any("error", err))
	}
	waitConsumer()
	return nil
}
