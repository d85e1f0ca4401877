// Command plansync refreshes the cached Addinteli plan catalog once and
// exits. It is intended to run from cron or a scheduler.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/mexared/carrier-gateway/internal/carrier/addinteli"
	"github.com/mexared/carrier-gateway/internal/infrastructure/cache"
	"github.com/mexared/carrier-gateway/internal/infrastructure/config"
	"github.com/mexared/carrier-gateway/internal/infrastructure/telemetry"
	"github.com/mexared/carrier-gateway/internal/metrics"
	"github.com/mexared/carrier-gateway/internal/service/plansync"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger, err := telemetry.SetupLogger(cfg.LogLevel, cfg.Environment)
	if err != nil {
		os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("plan catalog sync failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	reg := metrics.NewRegistry(prometheus.DefaultRegisterer)

	client, err := addinteli.New(cfg.Addinteli, logger, addinteli.WithMetrics(reg))
	if err != nil {
		return err
	}

	store, err := cache.NewRedisCache(&cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	svc := plansync.New(client, store, logger, cfg.Redis.CatalogTTL)

	catalog, err := svc.Sync(ctx)
	if err != nil {
		return err
	}

	logger.Info("plan catalog sync finished",
		zap.String("mode", client.Mode()),
		zap.Int("plans", len(catalog)))
	return nil
}
