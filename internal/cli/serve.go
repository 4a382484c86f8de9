package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"TradingJournal/internal/app"
	"TradingJournal/internal/handlers"
	"TradingJournal/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// runServe starts the API and blocks until SIGINT or SIGTERM.
func runServe(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	server := handlers.NewServer(a.Journal, log, cfg.Server.CORSOrigin)
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           server.R,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server_started", zap.String("addr", srv.Addr), zap.String("version", app.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting_down")
	case err := <-errCh:
		if err != nil {
			a.Close(context.Background())
			return fmt.Errorf("server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server_shutdown_failed", zap.Error(err))
	}
	if err := a.Close(shutdownCtx); err != nil {
		log.Error("cleanup_failed", zap.Error(err))
	}
	log.Info("shutdown_complete")
	return nil
}
