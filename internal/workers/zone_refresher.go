package workers

import (
	"context"
	"time"

	"log/slog"

	syncctl "github.com/Antonio-Sitoe/safe-zone-mobile/internal/sync"
)

// ZoneRefresher periodically re-pulls the authoritative zone list so
// every session sees reports made through other instances.
type ZoneRefresher struct {
	logger     *slog.Logger
	controller *syncctl.Controller
	interval   time.Duration
}

func NewZoneRefresher(logger *slog.Logger, controller *syncctl.Controller, interval time.Duration) *ZoneRefresher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &ZoneRefresher{logger: logger, controller: controller, interval: interval}
}

func (w *ZoneRefresher) Run(ctx context.Context) {
	w.logger.Info("zoneRefresher STARTED", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("zoneRefresher STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			if err := w.controller.Refresh(ctx); err != nil {
				w.logger.Error("zone refresh failed", slog.Any("error", err))
			}
		}
	}
}
