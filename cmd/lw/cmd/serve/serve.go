package serve

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"live-whisper/internal/app"
	"live-whisper/web"
)

var addr string
var environment string

func init() {
	Cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "listen address")
	Cmd.Flags().StringVarP(&environment, "env", "e", "development", "environment (development|production)")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the recording HTTP API",
	Long: `Serve the recording HTTP API.

- POST /api/recording/start and /stop drive the session lifecycle
- GET /api/recording/status is the polling surface for a UI
- GET /metrics exposes pipeline counters`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := web.DefaultConfig()
		cfg.Addr = addr
		cfg.Environment = environment

		server := app.InitializeServer(cfg)

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start()
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			if err != nil {
				log.Fatalf("server failed: %v\n", err)
			}
		case <-quit:
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				log.Fatalf("shutdown failed: %v\n", err)
			}
		}
	},
}
