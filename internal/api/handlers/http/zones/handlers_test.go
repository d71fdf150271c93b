package zones_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"

	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/api/handlers/http/zones"
	mock_zones "github.com/Antonio-Sitoe/safe-zone-mobile/internal/api/handlers/http/zones/mocks"
	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/domain"
	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/middleware"
	"github.com/Antonio-Sitoe/safe-zone-mobile/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// asUser routes the request through the auth middleware so the handler
// sees the acting user the same way it does in production.
func asUser(h http.HandlerFunc, userID string, rr *httptest.ResponseRecorder, req *http.Request) {
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	middleware.RequireUser(h).ServeHTTP(rr, req)
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func TestZoneList_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zonesSvc := mock_zones.NewMockZoneManager(ctrl)
	h := zones.NewHandler(newTestLogger(), zonesSvc)

	zonesSvc.EXPECT().
		ListZones(nil).
		Return([]domain.Zone{
			{ID: "z1", Slug: "dark-alley", Type: domain.ZoneDanger, Reports: 3},
			{ID: "z2", Slug: "central-park", Type: domain.ZoneSafe},
		}).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/zones/", nil)
	rr := httptest.NewRecorder()

	h.ZoneList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.ListZonesResponse](t, rr)
	if got.Total != 2 || len(got.Zones) != 2 {
		t.Fatalf("expected 2 zones, got total=%d len=%d", got.Total, len(got.Zones))
	}
}

func TestZoneList_FilterByType(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zonesSvc := mock_zones.NewMockZoneManager(ctrl)
	h := zones.NewHandler(newTestLogger(), zonesSvc)

	danger := domain.ZoneDanger
	zonesSvc.EXPECT().
		ListZones(&danger).
		Return([]domain.Zone{{ID: "z1", Type: domain.ZoneDanger}}).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/zones/?type=DANGER", nil)
	rr := httptest.NewRecorder()

	h.ZoneList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestZoneList_InvalidType_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := zones.NewHandler(newTestLogger(), mock_zones.NewMockZoneManager(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/zones/?type=SCARY", nil)
	rr := httptest.NewRecorder()

	h.ZoneList(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestZoneCreate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zonesSvc := mock_zones.NewMockZoneManager(ctrl)
	h := zones.NewHandler(newTestLogger(), zonesSvc)

	reqBody := `{"description":"broken streetlights","type":"DANGER","coordinates":{"latitude":-25.96553,"longitude":32.58322}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/zones/", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	zonesSvc.EXPECT().
		CreateZone(gomock.Any(), gomock.Any(), "user-1").
		DoAndReturn(func(_ context.Context, report domain.PendingReport, _ string) (domain.Zone, error) {
			if report.Description != "broken streetlights" || report.Type != domain.ZoneDanger {
				t.Fatalf("unexpected report: %+v", report)
			}
			return domain.Zone{ID: "temp-1", Slug: "broken-streetlights", Type: domain.ZoneDanger, Reports: 1, CreatedBy: "user-1"}, nil
		}).
		Times(1)

	asUser(h.ZoneCreate, "user-1", rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]any](t, rr)
	if got["displayType"] != "DANGER" {
		t.Fatalf("expected displayType=DANGER got=%v", got["displayType"])
	}
	if got["pending"] != true {
		t.Fatalf("expected pending=true for optimistic record, got=%v", got["pending"])
	}
}

func TestZoneCreate_NoUser_401(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := zones.NewHandler(newTestLogger(), mock_zones.NewMockZoneManager(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/zones/", bytes.NewBufferString(`{}`))
	rr := httptest.NewRecorder()

	asUser(h.ZoneCreate, "", rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestZoneCreate_MissingDescription_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := zones.NewHandler(newTestLogger(), mock_zones.NewMockZoneManager(ctrl))

	reqBody := `{"type":"DANGER","coordinates":{"latitude":-25.9,"longitude":32.5}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/zones/", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	asUser(h.ZoneCreate, "user-1", rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestZoneCreate_CriticalRejected_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := zones.NewHandler(newTestLogger(), mock_zones.NewMockZoneManager(ctrl))

	reqBody := `{"description":"x","type":"CRITICAL","coordinates":{"latitude":-25.9,"longitude":32.5}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/zones/", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	asUser(h.ZoneCreate, "user-1", rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestZoneUpdate_NotOwner_403(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zonesSvc := mock_zones.NewMockZoneManager(ctrl)
	h := zones.NewHandler(newTestLogger(), zonesSvc)

	zonesSvc.EXPECT().
		UpdateZone(gomock.Any(), "z1", gomock.Any(), "intruder").
		Return(domain.Zone{}, e.Wrap("sync.UpdateZone", e.ErrNotZoneOwner)).
		Times(1)

	reqBody := `{"description":"hijacked"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/zones/z1", bytes.NewBufferString(reqBody))
	req = addChiURLParam(req, "id", "z1")
	rr := httptest.NewRecorder()

	asUser(h.ZoneUpdate, "intruder", rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected %d got %d, body=%s", http.StatusForbidden, rr.Code, rr.Body.String())
	}
}

func TestZoneDelete_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zonesSvc := mock_zones.NewMockZoneManager(ctrl)
	h := zones.NewHandler(newTestLogger(), zonesSvc)

	zonesSvc.EXPECT().
		DeleteZone(gomock.Any(), "z1", "user-1").
		Return(nil).
		Times(1)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/zones/z1", nil)
	req = addChiURLParam(req, "id", "z1")
	rr := httptest.NewRecorder()

	asUser(h.ZoneDelete, "user-1", rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d, body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestZoneDelete_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zonesSvc := mock_zones.NewMockZoneManager(ctrl)
	h := zones.NewHandler(newTestLogger(), zonesSvc)

	zonesSvc.EXPECT().
		DeleteZone(gomock.Any(), "missing", "user-1").
		Return(e.Wrap("sync.DeleteZone", e.ErrNotFound)).
		Times(1)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/zones/missing", nil)
	req = addChiURLParam(req, "id", "missing")
	rr := httptest.NewRecorder()

	asUser(h.ZoneDelete, "user-1", rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d, body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestZoneGeoJSON_DerivedDisplayType(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zonesSvc := mock_zones.NewMockZoneManager(ctrl)
	h := zones.NewHandler(newTestLogger(), zonesSvc)

	zonesSvc.EXPECT().
		ListZones(nil).
		Return([]domain.Zone{
			{ID: "z1", Slug: "hotspot", Type: domain.ZoneDanger, Reports: 12,
				Coordinate: domain.Coordinate{Latitude: -25.9, Longitude: 32.5}},
		}).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/zones/geojson", nil)
	rr := httptest.NewRecorder()

	h.ZoneGeoJSON(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &fc); err != nil {
		t.Fatalf("invalid geojson: %v", err)
	}
	if fc.Type != "FeatureCollection" || len(fc.Features) != 1 {
		t.Fatalf("unexpected collection: %s", rr.Body.String())
	}
	if fc.Features[0].Properties["displayType"] != "CRITICAL" {
		t.Fatalf("expected CRITICAL displayType, got %v", fc.Features[0].Properties["displayType"])
	}
	coords := fc.Features[0].Geometry.Coordinates
	if len(coords) != 2 || coords[0] != 32.5 || coords[1] != -25.9 {
		t.Fatalf("expected [lng lat] order, got %v", coords)
	}
}
