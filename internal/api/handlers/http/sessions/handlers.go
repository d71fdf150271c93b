package sessions

import (
	"context"
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/domain"
	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/middleware"
	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/session"
	"github.com/Antonio-Sitoe/safe-zone-mobile/pkg/e"
	"github.com/Antonio-Sitoe/safe-zone-mobile/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ZoneCommitter interface {
	Snapshot() []domain.Zone
	CreateZone(ctx context.Context, report domain.PendingReport, userID string) (domain.Zone, error)
	UpdateZone(ctx context.Context, id string, req domain.UpdateZoneRequest, userID string) (domain.Zone, error)
}

// Handler drives the per-user report interaction flow: long-press, type
// choice, ghost-marker selection, draft editing and the final commit.
type Handler struct {
	logger   *slog.Logger
	sessions *session.Manager
	Zones    ZoneCommitter
}

func NewHandler(logger *slog.Logger, sessions *session.Manager, zones ZoneCommitter) *Handler {
	return &Handler{
		logger:   logger,
		sessions: sessions,
		Zones:    zones,
	}
}

func (h *Handler) SessionState(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var resp stateResponse
	_ = h.sessions.With(userID, func(s *session.Session) error {
		resp = toStateResponse(s)
		return nil
	})

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) SessionLongPress(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("SessionLongPress", slog.String("remote", r.RemoteAddr))

	var req coordinateRequest
	if !h.decode(w, r, &req) {
		return
	}

	userID := middleware.UserID(r.Context())
	var resp stateResponse
	_ = h.sessions.With(userID, func(s *session.Session) error {
		s.LongPress(req.Coordinate)
		resp = toStateResponse(s)
		return nil
	})

	l.Info("long press registered",
		slog.String("user_id", userID),
		slog.Float64("lat", req.Coordinate.Latitude),
		slog.Float64("lng", req.Coordinate.Longitude),
	)
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) SessionChooseType(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("SessionChooseType", slog.String("remote", r.RemoteAddr))

	var req chooseTypeRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.transition(w, r, func(s *session.Session) error {
		return s.ChooseType(req.Type)
	})
}

func (h *Handler) SessionStartSelection(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("SessionStartSelection", slog.String("remote", r.RemoteAddr))

	var req startSelectionRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.transition(w, r, func(s *session.Session) error {
		return s.StartSelection(req.Type, req.Camera)
	})
}

func (h *Handler) SessionMoveGhost(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("SessionMoveGhost", slog.String("remote", r.RemoteAddr))

	var req coordinateRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.transition(w, r, func(s *session.Session) error {
		return s.MoveGhost(req.Coordinate)
	})
}

func (h *Handler) SessionConfirmGhost(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("SessionConfirmGhost", slog.String("remote", r.RemoteAddr))

	h.transition(w, r, func(s *session.Session) error {
		return s.ConfirmGhost()
	})
}

func (h *Handler) SessionEditZone(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("SessionEditZone", slog.String("remote", r.RemoteAddr))

	var req editZoneRequest
	if !h.decode(w, r, &req) {
		return
	}

	zone, ok := findZone(h.Zones.Snapshot(), req.ZoneID)
	if !ok {
		h.handleError(w, r, e.Wrap("sessions.SessionEditZone", e.ErrNotFound))
		return
	}

	userID := middleware.UserID(r.Context())
	h.transition(w, r, func(s *session.Session) error {
		return s.EditExisting(zone, userID)
	})
}

func (h *Handler) SessionDraft(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("SessionDraft", slog.String("remote", r.RemoteAddr))

	var req draftRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.transition(w, r, func(s *session.Session) error {
		if req.Description != nil {
			if err := s.SetDescription(*req.Description); err != nil {
				return err
			}
		}
		if req.Reports != nil {
			if err := s.SetReports(*req.Reports); err != nil {
				return err
			}
		}
		if req.Date != nil || req.Hour != nil {
			date, hour := "", ""
			if req.Date != nil {
				date = *req.Date
			}
			if req.Hour != nil {
				hour = *req.Hour
			}
			if err := s.SetDateHour(date, hour); err != nil {
				return err
			}
		}
		if req.FeatureDetails != nil {
			if err := s.SetCharacteristics(*req.FeatureDetails); err != nil {
				return err
			}
		}
		return nil
	})
}

func (h *Handler) SessionConfirm(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("SessionConfirm", slog.String("remote", r.RemoteAddr))

	userID := middleware.UserID(r.Context())

	var commit session.Commit
	if err := h.sessions.With(userID, func(s *session.Session) error {
		c, err := s.Confirm()
		if err != nil {
			return err
		}
		commit = c
		return nil
	}); err != nil {
		h.handleError(w, r, err)
		return
	}

	if commit.EditingZoneID != "" {
		zone, err := h.Zones.UpdateZone(r.Context(), commit.EditingZoneID, editPatch(commit.Report), userID)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		l.Info("zone edit committed", slog.String("id", zone.ID), slog.String("user_id", userID))
		h.writeJSON(w, http.StatusOK, zone)
		return
	}

	zone, err := h.Zones.CreateZone(r.Context(), commit.Report, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("zone report committed",
		slog.String("id", zone.ID),
		slog.String("slug", zone.Slug),
		slog.String("user_id", userID),
	)
	h.writeJSON(w, http.StatusCreated, zone)
}

func (h *Handler) SessionCancel(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("SessionCancel", slog.String("remote", r.RemoteAddr))

	userID := middleware.UserID(r.Context())
	var resp stateResponse
	_ = h.sessions.With(userID, func(s *session.Session) error {
		s.Cancel()
		resp = toStateResponse(s)
		return nil
	})

	h.writeJSON(w, http.StatusOK, resp)
}

// transition runs fn against the acting user's session and replies with
// the resulting state, mapping transition errors to HTTP statuses.
func (h *Handler) transition(w http.ResponseWriter, r *http.Request, fn func(s *session.Session) error) {
	userID := middleware.UserID(r.Context())

	var resp stateResponse
	if err := h.sessions.With(userID, func(s *session.Session) error {
		if err := fn(s); err != nil {
			return err
		}
		resp = toStateResponse(s)
		return nil
	}); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		h.log(r).Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	if err := validator.ValidateStruct(target); err != nil {
		h.log(r).Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return false
	}
	return true
}

func findZone(zones []domain.Zone, id string) (domain.Zone, bool) {
	for _, z := range zones {
		if z.ID == id {
			return z, true
		}
	}
	return domain.Zone{}, false
}

func editPatch(report domain.PendingReport) domain.UpdateZoneRequest {
	desc := report.Description
	typ := report.Type
	date := report.Date
	hour := report.Hour
	return domain.UpdateZoneRequest{
		Description: &desc,
		Type:        &typ,
		Date:        &date,
		Hour:        &hour,
	}
}
