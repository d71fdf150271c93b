package sessions

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/domain"
	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/session"
	"github.com/Antonio-Sitoe/safe-zone-mobile/pkg/e"
)

type coordinateRequest struct {
	Coordinate domain.Coordinate `json:"coordinates"`
}

type chooseTypeRequest struct {
	Type domain.ZoneType `json:"type" validate:"required,zone_type"`
}

type startSelectionRequest struct {
	Type   domain.ZoneType   `json:"type" validate:"required,zone_type"`
	Camera domain.Coordinate `json:"camera"`
}

type editZoneRequest struct {
	ZoneID string `json:"zoneId" validate:"required"`
}

type draftRequest struct {
	Description    *string                `json:"description"`
	Reports        *string                `json:"reports"`
	Date           *string                `json:"date"`
	Hour           *string                `json:"hour"`
	FeatureDetails *domain.FeatureDetails `json:"featureDetails"`
}

type stateResponse struct {
	State   session.State      `json:"state"`
	Pending *domain.Coordinate `json:"pending,omitempty"`
	Ghost   *domain.Coordinate `json:"ghost,omitempty"`
}

func toStateResponse(s *session.Session) stateResponse {
	return stateResponse{
		State:   s.State(),
		Pending: s.PendingCoordinate(),
		Ghost:   s.GhostCoordinate(),
	}
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch {
	case errors.Is(err, e.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, e.ErrNotZoneOwner):
		status = http.StatusForbidden
	case errors.Is(err, e.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, e.ErrNoPendingPoint),
		errors.Is(err, e.ErrEmptyDescription),
		errors.Is(err, e.ErrInvalidInput):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	h.log(r).Error("session request failed", slog.Int("status", status), slog.Any("error", err))
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
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
