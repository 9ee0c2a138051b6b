package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aosike91/Tennis-Ranking/internal/club"
	"github.com/aosike91/Tennis-Ranking/internal/config"
	"github.com/aosike91/Tennis-Ranking/internal/database"
	server "github.com/aosike91/Tennis-Ranking/internal/http"
	"github.com/aosike91/Tennis-Ranking/internal/metrics"
	"github.com/aosike91/Tennis-Ranking/internal/notifier/slack"
	"github.com/aosike91/Tennis-Ranking/internal/pubsub"
	"github.com/charmbracelet/log"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.SetFormatter(log.JSONFormatter)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config.Load()); err != nil {
		log.Fatal("Ranking server exited", "error", err)
	}
	log.Info("Ranking server stopped")
}

func run(ctx context.Context, cfg config.Config) error {
	startedAt := time.Now()

	db, closeDB, err := database.InitDB(cfg.DBName)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer closeDB()
	log.Info("Database ready", "path", cfg.DBName, "duration_ms", time.Since(startedAt).Milliseconds())

	ps, err := newPublisher(ctx, cfg.ProjectID)
	if err != nil {
		return err
	}
	defer ps.Close()

	metricsSvc := metrics.NewService()
	handler := server.NewServer(
		club.New(db),
		metricsSvc,
		metrics.New(db),
		metrics.NewMetricsHandler(),
		cfg,
		slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc),
		ps,
	)

	startup := time.Since(startedAt)
	metricsSvc.SetStartupTime(startup.Seconds())
	log.Info("Startup time recorded", "duration_ms", startup.Milliseconds())

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server started", "port", cfg.Port, "slack", cfg.Slack.Enabled())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("Server gracefully stopped")
	return nil
}

// newPublisher returns a Pub/Sub client, or a no-op one when no GCP project
// is configured.
func newPublisher(ctx context.Context, projectID string) (pubsub.PubSubClient, error) {
	if projectID == "" {
		log.Info("GCP_PROJECT not set, Pub/Sub publishing disabled")
		return pubsub.NewNoop(), nil
	}
	ps, err := pubsub.New(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("init pubsub: %w", err)
	}
	return ps, nil
}
