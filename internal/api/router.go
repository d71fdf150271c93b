package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/api/handlers/http/sessions"
	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/api/handlers/http/sos"
	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/api/handlers/http/system"
	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/api/handlers/http/zones"
	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/config"
	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/middleware"
	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/redis"
	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/session"
	syncctl "github.com/Antonio-Sitoe/safe-zone-mobile/internal/sync"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, controller *syncctl.Controller, sessionMgr *session.Manager, alerts *redis.AlertQueue) *Server {
	zoneHandler := zones.NewHandler(logger, controller)
	sessionHandler := sessions.NewHandler(logger, sessionMgr, controller)
	sosHandler := sos.NewHandler(logger, alerts)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(zoneHandler, sessionHandler, sosHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(zoneHandler *zones.Handler, sessionHandler *sessions.Handler, sosHandler *sos.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// ZONES
		api.Route("/zones", func(zr chi.Router) {
			zr.Get("/", zoneHandler.ZoneList)
			zr.Get("/geojson", zoneHandler.ZoneGeoJSON)

			zr.Group(func(wr chi.Router) {
				wr.Use(middleware.RequireUser)
				wr.Use(middleware.Limit(5, 10, 10*time.Minute, logger))

				wr.Post("/", zoneHandler.ZoneCreate)
				wr.Post("/refresh", zoneHandler.ZoneRefresh)
				wr.Put("/{id}", zoneHandler.ZoneUpdate)
				wr.Delete("/{id}", zoneHandler.ZoneDelete)
			})
		})

		// SESSIONS
		api.Route("/session", func(sr chi.Router) {
			sr.Use(middleware.RequireUser)
			sr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			sr.Get("/", sessionHandler.SessionState)
			sr.Post("/long-press", sessionHandler.SessionLongPress)
			sr.Post("/type", sessionHandler.SessionChooseType)
			sr.Post("/selection", sessionHandler.SessionStartSelection)
			sr.Post("/ghost", sessionHandler.SessionMoveGhost)
			sr.Post("/ghost/confirm", sessionHandler.SessionConfirmGhost)
			sr.Post("/edit", sessionHandler.SessionEditZone)
			sr.Patch("/draft", sessionHandler.SessionDraft)
			sr.Post("/confirm", sessionHandler.SessionConfirm)
			sr.Post("/cancel", sessionHandler.SessionCancel)
		})

		// SOS
		api.Route("/sos", func(ar chi.Router) {
			ar.Use(middleware.RequireUser)
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))
			ar.Post("/", sosHandler.SendAlert)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("🚀 Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("🛑 Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
