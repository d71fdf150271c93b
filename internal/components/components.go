package components

import (
	"context"
	"fmt"
	"os"
	"time"

	"log/slog"

	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/api"
	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/config"
	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/redis"
	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/session"
	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/storage/postgres"
	syncctl "github.com/Antonio-Sitoe/safe-zone-mobile/internal/sync"
	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/workers"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Controller *syncctl.Controller
	Sessions   *session.Manager
	AlertQ     *redis.AlertQueue

	AlertSender *workers.AlertSender
	Refresher   *workers.ZoneRefresher
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	zoneCache := redis.NewZoneCache(redisClient)
	alertQueue := redis.NewAlertQueue(redisClient.Client, "alerts:queue")

	controller := syncctl.NewController(storage.Zones, zoneCache, logger, cfg.Zones.MergeThresholdMeters)

	// Serve the cached snapshot until the first authoritative fetch lands.
	controller.WarmFromCache(ctx)
	if err := controller.Refresh(ctx); err != nil {
		logger.Warn("initial zone fetch failed, starting from cache", slog.Any("error", err))
	}

	sessionMgr := session.NewManager()

	httpServer := api.NewServer(cfg, logger, controller, sessionMgr, alertQueue)
	logger.Info("Initialized server")

	var alertSender *workers.AlertSender
	if !cfg.Alerts.Disabled {
		alertSender = workers.NewAlertSender(logger, cfg.Alerts, alertQueue)
	}

	return &Components{
		logger:      logger,
		HttpServer:  httpServer,
		Postgres:    storage,
		Redis:       redisClient,
		Controller:  controller,
		Sessions:    sessionMgr,
		AlertQ:      alertQueue,
		AlertSender: alertSender,
		Refresher:   workers.NewZoneRefresher(logger, controller, cfg.Zones.RefreshInterval),
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
