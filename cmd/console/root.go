package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"foodieConsole/internal/config"
	"foodieConsole/internal/modules/restaurants/infrastructure"
	"foodieConsole/internal/shared/logging"
)

var (
	cfg       *config.Config
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:          "console",
	Short:        "Restaurant management console for the Foodie Delight service",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("config load error: %w", err)
		}
		cfg = loaded

		closer, logger, err := logging.Setup(os.Stderr, logging.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: true,
			Directory: logDirectoryFor(cmd),
		})
		if err != nil {
			return fmt.Errorf("logging setup error: %w", err)
		}
		logCloser = closer
		slog.SetDefault(logger)
		slog.Debug("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser != nil {
			return logCloser.Close()
		}
		return nil
	},
}

// logDirectoryFor keeps one-shot commands off the log files.
func logDirectoryFor(cmd *cobra.Command) string {
	if cmd == serveCmd {
		return cfg.Logging.Directory
	}
	return ""
}

func newGateway(c *config.Config) *infrastructure.RestaurantHTTPClient {
	rest := infrastructure.NewRESTClient(c.REST.BaseURL, c.REST.Timeout, nil).WithToken(c.REST.Token)
	return infrastructure.NewRestaurantHTTPClient(rest, c.REST.Timeout)
}
