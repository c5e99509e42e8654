// Command cleanup physically removes interaction rows soft-deleted longer
// ago than the configured retention period, together with raw view events
// older than it. It is intended to be invoked by an external cron job, not
// as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/community-backend/internal/adapter/postgres"
	"github.com/heartmarshall/community-backend/internal/adapter/postgres/retention"
	"github.com/heartmarshall/community-backend/internal/app"
	"github.com/heartmarshall/community-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	threshold := time.Now().AddDate(0, 0, -cfg.Interaction.RetentionDays)

	result, err := retention.New(pool).Purge(ctx, threshold)
	if err != nil {
		logger.Error("purge failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	for table, n := range result {
		logger.Info("purged", slog.String("table", table), slog.Int64("rows", n))
	}

	logger.Info("purge completed",
		slog.Int64("deleted", result.Total()),
		slog.Time("threshold", threshold),
	)
}
