package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	slackadapter "github.com/skinnp91/karmamari/internal/adapter/slack"
	"github.com/skinnp91/karmamari/internal/config"
	"github.com/skinnp91/karmamari/internal/karma"
	"github.com/skinnp91/karmamari/internal/metrics"
	"github.com/skinnp91/karmamari/internal/platform/logging"
	"github.com/skinnp91/karmamari/internal/platform/version"
	"github.com/skinnp91/karmamari/internal/redis"
	"github.com/skinnp91/karmamari/internal/server"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupRedis(cfg *config.Config) *redis.Client {
	client, err := redis.NewClient(cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to create Redis client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}

	return client
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	// Initialize structured logging with a per-process instance id
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	instanceID := uuid.NewString()[:8]
	slog.SetDefault(slog.Default().With("instance_id", instanceID))
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	info := version.Get()
	metrics.BuildInfo.WithLabelValues(info.Version, info.Commit, info.BuildTime, info.GoVersion).Set(1)

	redisClient := setupRedis(cfg)
	defer func() { _ = redisClient.Close() }()

	store := redis.NewKarmaStore(redisClient)
	engine := karma.NewEngine(store, clock)
	adapter := slackadapter.New(cfg, engine)
	srv := server.NewServer(cfg, store, clock)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		if err := adapter.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("Slack adapter stopped", "error", err)
			cancel()
		}
	}()

	go func() {
		<-ctx.Done()
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	}()

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
}
