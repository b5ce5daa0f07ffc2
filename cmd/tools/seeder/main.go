// cmd/tools/seeder/main.go
//
// Loads the demo dataset into the configured store. Safe to run repeatedly:
// the seeder skips when jobs already exist.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"internboard/internal/applications"
	"internboard/internal/board"
	"internboard/internal/common/config"
	"internboard/internal/common/database"
	"internboard/internal/common/logger"
	"internboard/internal/jobs"
	"internboard/internal/match"
	"internboard/internal/profiles"
	"internboard/internal/registry"
	"internboard/internal/seed"
	"internboard/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	ctx := context.Background()

	rdb, err := database.NewRedis(cfg.Redis)
	if err != nil {
		zapLog.Fatal("redis client failed", zap.Error(err))
	}
	defer rdb.Close()
	if err := rdb.Ping(ctx); err != nil {
		zapLog.Fatal("redis unreachable", zap.Error(err))
	}

	st := store.New(rdb.GetClient(), cfg.Storage.Namespace, log)
	profileRepo := profiles.NewRepository(st, log)
	jobRepo := jobs.NewRepository(st, log)
	appRepo := applications.NewRepository(st, log)

	svc := board.New(board.Dependencies{
		Registry:     registry.New(st, profileRepo, log),
		Profiles:     profileRepo,
		Jobs:         jobRepo,
		Applications: appRepo,
		Scorer:       match.NewScorer(match.NewNoise(cfg.Matching.NoiseSeed), log),
		Logger:       log,
	})

	if err := seed.New(svc, log).Run(ctx); err != nil {
		zapLog.Fatal("seed failed", zap.Error(err))
	}

	zapLog.Info("seed complete")
}
