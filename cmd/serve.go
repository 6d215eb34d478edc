package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"timeservice/internal/api"
	"timeservice/internal/api/handler/v1handler"
	"timeservice/internal/clock"
	"timeservice/internal/config"
	"timeservice/internal/timeops"
	"timeservice/internal/timezone"
	"timeservice/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupServer starts the HTTP server in the background and returns a
// function that shuts it down.
func setupServer(ctx context.Context, cfg *config.Config) func(ctx context.Context) {
	svc := timeops.New(timezone.NewResolver(), clock.System{})

	server, err := api.NewServer(api.Deps{
		Deps: v1handler.Deps{Time: svc},
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the time service API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			stopWebserver := setupServer(ctx, cfg)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
