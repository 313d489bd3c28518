package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"orgbook-backend/internal/api/routes"
	"orgbook-backend/internal/config"
	"orgbook-backend/internal/logger"
	"orgbook-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := logger.New().WithComponent("server")

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	collector := metrics.NewCollector()
	directory, closeStorage, err := openDirectory(cfg, collector)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStorage(); err != nil {
			log.WithError(err).Warn("Failed to close storage")
		}
	}()

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.SetupRoutes(directory, collector, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(map[string]interface{}{
			"port":           cfg.Port,
			"storage_driver": cfg.StorageDriver,
		}).Info("Starting server")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
