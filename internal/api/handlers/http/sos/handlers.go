package sos

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"log/slog"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/domain"
	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/middleware"
	"github.com/Antonio-Sitoe/safe-zone-mobile/pkg/e"
	"github.com/Antonio-Sitoe/safe-zone-mobile/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type AlertEnqueuer interface {
	Enqueue(ctx context.Context, payload domain.AlertPayload) error
}

type Handler struct {
	logger *slog.Logger
	Alerts AlertEnqueuer
}

func NewHandler(logger *slog.Logger, alerts AlertEnqueuer) *Handler {
	return &Handler{
		logger: logger,
		Alerts: alerts,
	}
}

func (h *Handler) SendAlert(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("SendAlert", slog.String("remote", r.RemoteAddr))

	var req domain.SendAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	userID := middleware.UserID(r.Context())
	payload := domain.AlertPayload{
		UserID:     userID,
		ContactIDs: req.ContactIDs,
		Coordinate: req.Coordinate,
		SentAt:     time.Now().UTC(),
	}

	if err := h.Alerts.Enqueue(r.Context(), payload); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, e.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		l.Error("alert enqueue failed", slog.Any("error", err))
		h.writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	l.Info("SOS alert queued",
		slog.String("user_id", userID),
		slog.Int("contacts", len(payload.ContactIDs)),
	)
	h.writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
