package zones

import (
	"context"
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/domain"
	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/middleware"
	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/present"
	"github.com/Antonio-Sitoe/safe-zone-mobile/pkg/e"
	"github.com/Antonio-Sitoe/safe-zone-mobile/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ZoneManager interface {
	ListZones(filter *domain.ZoneType) []domain.Zone
	CreateZone(ctx context.Context, report domain.PendingReport, userID string) (domain.Zone, error)
	UpdateZone(ctx context.Context, id string, req domain.UpdateZoneRequest, userID string) (domain.Zone, error)
	DeleteZone(ctx context.Context, id string, userID string) error
	Refresh(ctx context.Context) error
}

type Handler struct {
	logger *slog.Logger
	Zones  ZoneManager
}

func NewHandler(logger *slog.Logger, zones ZoneManager) *Handler {
	return &Handler{
		logger: logger,
		Zones:  zones,
	}
}

func (h *Handler) ZoneList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ZoneList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	filter, err := parseTypeFilter(r.URL.Query().Get("type"))
	if err != nil {
		l.Warn("invalid type filter", slog.String("type", r.URL.Query().Get("type")))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "type must be SAFE, DANGER or CRITICAL"})
		return
	}

	zones := h.Zones.ListZones(filter)
	h.writeJSON(w, http.StatusOK, domain.ListZonesResponse{Zones: zones, Total: len(zones)})
}

func (h *Handler) ZoneGeoJSON(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ZoneGeoJSON", slog.String("remote", r.RemoteAddr))

	fc := present.ToFeatureCollection(h.Zones.ListZones(nil))
	h.writeJSON(w, http.StatusOK, fc)
}

func (h *Handler) ZoneCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ZoneCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateZoneRequest
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
	l.Info("creating zone report",
		slog.Float64("lat", req.Coordinate.Latitude),
		slog.Float64("lng", req.Coordinate.Longitude),
		slog.String("type", string(req.Type)),
		slog.String("user_id", userID),
	)

	zone, err := h.Zones.CreateZone(r.Context(), domain.PendingReport{
		Coordinate:     req.Coordinate,
		Description:    req.Description,
		Type:           req.Type,
		Reports:        req.Reports,
		Date:           req.Date,
		Hour:           req.Hour,
		Slug:           req.Slug,
		FeatureDetails: req.FeatureDetails,
	}, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("zone report resolved", slog.String("id", zone.ID), slog.String("slug", zone.Slug))
	h.writeJSON(w, http.StatusCreated, toZoneResponse(zone))
}

func (h *Handler) ZoneUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ZoneUpdate", slog.String("remote", r.RemoteAddr))

	id := chi.URLParam(r, "id")
	if id == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.UpdateZoneRequest
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

	zone, err := h.Zones.UpdateZone(r.Context(), id, req, middleware.UserID(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toZoneResponse(zone))
}

func (h *Handler) ZoneDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ZoneDelete", slog.String("remote", r.RemoteAddr))

	id := chi.URLParam(r, "id")
	if id == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if err := h.Zones.DeleteZone(r.Context(), id, middleware.UserID(r.Context())); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ZoneRefresh(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ZoneRefresh", slog.String("remote", r.RemoteAddr))

	if err := h.Zones.Refresh(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseTypeFilter(raw string) (*domain.ZoneType, error) {
	if raw == "" {
		return nil, nil
	}
	t := domain.ZoneType(raw)
	switch t {
	case domain.ZoneSafe, domain.ZoneDanger, domain.ZoneCritical:
		return &t, nil
	}
	return nil, e.ErrInvalidInput
}
