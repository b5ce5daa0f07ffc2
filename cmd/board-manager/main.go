// cmd/board-manager/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"internboard/internal/applications"
	"internboard/internal/board"
	"internboard/internal/common/config"
	"internboard/internal/common/database"
	"internboard/internal/common/logger"
	"internboard/internal/common/observability"
	"internboard/internal/jobs"
	"internboard/internal/match"
	"internboard/internal/profiles"
	"internboard/internal/registry"
	"internboard/internal/seed"
	"internboard/internal/store"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting board manager...",
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Redis with retry ---
	var rdb *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		rdb, err = database.NewRedis(cfg.Redis)
		if err != nil {
			return err
		}
		return rdb.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer rdb.Close()
	zapLog.Info("Redis connected successfully")

	// --- Wire the board core ---
	st := store.New(rdb.GetClient(), cfg.Storage.Namespace, log)
	profileRepo := profiles.NewRepository(st, log)
	jobRepo := jobs.NewRepository(st, log)
	appRepo := applications.NewRepository(st, log)
	identityRegistry := registry.New(st, profileRepo, log)
	scorer := match.NewScorer(match.NewNoise(cfg.Matching.NoiseSeed), log)

	svc := board.New(board.Dependencies{
		Registry:     identityRegistry,
		Profiles:     profileRepo,
		Jobs:         jobRepo,
		Applications: appRepo,
		Scorer:       scorer,
		Obs:          obs,
		Logger:       log,
	})

	if os.Getenv("BOARD_SEED_DEMO") == "true" {
		if err := seed.New(svc, log).Run(ctx); err != nil {
			zapLog.Warn("demo seed failed", zap.Error(err))
		}
	}

	// --- Metrics & health endpoints ---
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := rdb.Ping(r.Context()); err != nil {
			http.Error(w, "redis unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	server := &http.Server{
		Addr:    cfg.Metrics.ListenAddress,
		Handler: mux,
	}
	go func() {
		zapLog.Info("metrics server listening", zap.String("address", cfg.Metrics.ListenAddress))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Error("metrics server failed", zap.Error(err))
		}
	}()

	// --- Wait for shutdown signal ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	zapLog.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Warn("metrics server shutdown failed", zap.Error(err))
	}
}
