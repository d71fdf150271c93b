package sync

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/domain"
	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/merge"
	"github.com/Antonio-Sitoe/safe-zone-mobile/pkg/e"
)

//go:generate mockgen -source=controller.go -destination=mocks/mock.go

// ZoneRepository is the remote store behind the in-memory collection. Every
// call may fail; the controller answers any failure with a rollback of the
// optimistic mutation it covers.
type ZoneRepository interface {
	List(ctx context.Context, filter *domain.ZoneType) ([]domain.Zone, error)
	Create(ctx context.Context, req domain.CreateZoneRequest, createdBy string) (domain.Zone, error)
	Update(ctx context.Context, id string, req domain.UpdateZoneRequest) (domain.Zone, error)
	Delete(ctx context.Context, id string) error
}

// ZoneCache holds the last authoritative snapshot for fast map loads.
type ZoneCache interface {
	GetZones(ctx context.Context) ([]domain.Zone, error)
	SetZones(ctx context.Context, zones []domain.Zone, ttl time.Duration) error
}

const cacheTTL = 5 * time.Minute

// Controller owns the shared zone collection. All mutations funnel through
// CreateZone/UpdateZone/DeleteZone: optimistic local apply, remote call,
// rollback of exactly that mutation on failure. Refresh replaces the
// collection with the authoritative list, folding still-pending optimistic
// records back in by slug.
type Controller struct {
	mu    sync.Mutex
	zones []domain.Zone

	repo      ZoneRepository
	cache     ZoneCache
	logger    *slog.Logger
	threshold float64
	now       func() time.Time
}

func NewController(repo ZoneRepository, cache ZoneCache, logger *slog.Logger, thresholdMeters float64) *Controller {
	if thresholdMeters <= 0 {
		thresholdMeters = merge.DefaultThresholdMeters
	}
	return &Controller{
		repo:      repo,
		cache:     cache,
		logger:    logger,
		threshold: thresholdMeters,
		now:       time.Now,
	}
}

// Snapshot returns a copy of the current collection.
func (c *Controller) Snapshot() []domain.Zone {
	c.mu.Lock()
	defer c.mu.Unlock()
	return snapshot(c.zones)
}

// ListZones serves from the local collection, optionally filtered by the
// stored zone type.
func (c *Controller) ListZones(filter *domain.ZoneType) []domain.Zone {
	zones := c.Snapshot()
	if filter == nil {
		return zones
	}
	out := make([]domain.Zone, 0, len(zones))
	for _, z := range zones {
		if z.Type == *filter {
			out = append(out, z)
		}
	}
	return out
}

// CreateZone resolves the report against the current collection, applies the
// result immediately, then issues the remote create. On remote failure the
// optimistic mutation is reverted: a merge restores the prior zone record, a
// fresh zone is removed by its temp id. On success the authoritative list is
// refetched.
func (c *Controller) CreateZone(ctx context.Context, report domain.PendingReport, userID string) (domain.Zone, error) {
	const op = "sync.CreateZone"

	if strings.TrimSpace(report.Description) == "" {
		return domain.Zone{}, e.Wrap(op, e.ErrEmptyDescription)
	}

	cand := domain.ReportCandidate{
		Coordinate:     report.Coordinate,
		Description:    strings.TrimSpace(report.Description),
		Type:           report.Type,
		ReporterID:     userID,
		Reports:        report.Reports,
		Slug:           report.Slug,
		Date:           report.Date,
		Hour:           report.Hour,
		FeatureDetails: report.FeatureDetails,
	}

	c.mu.Lock()
	prev := snapshot(c.zones)
	res := merge.ResolveReport(c.zones, cand, c.threshold, c.now())
	c.zones = res.Zones
	c.mu.Unlock()

	c.logger.Info("zone report applied optimistically",
		slog.String("slug", res.Zone.Slug),
		slog.Bool("merged", res.Merged),
		slog.String("user_id", userID),
	)

	payload := domain.CreateZoneRequest{
		Slug:           res.Zone.Slug,
		Date:           res.Zone.Date,
		Hour:           res.Zone.Hour,
		Description:    cand.Description,
		Type:           cand.Type,
		Reports:        res.Zone.Reports,
		Coordinate:     cand.Coordinate,
		FeatureDetails: cand.FeatureDetails,
	}

	created, err := c.repo.Create(ctx, payload, userID)
	if err != nil {
		c.rollbackCreate(prev, res)
		c.logger.Error("remote create failed, optimistic zone reverted",
			slog.String("slug", res.Zone.Slug),
			slog.Any("error", err),
		)
		return domain.Zone{}, e.Wrap(op, err)
	}

	if err := c.Refresh(ctx); err != nil {
		// The create itself succeeded; the optimistic record stands until
		// the next refresh lands.
		c.logger.Warn("refetch after create failed", slog.Any("error", err))
		return res.Zone, nil
	}
	return created, nil
}

func (c *Controller) rollbackCreate(prev []domain.Zone, res merge.Resolution) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !res.Merged {
		out := make([]domain.Zone, 0, len(c.zones))
		for _, z := range c.zones {
			if z.ID != res.Zone.ID {
				out = append(out, z)
			}
		}
		c.zones = out
		return
	}

	for i, z := range c.zones {
		if z.ID != res.Zone.ID {
			continue
		}
		for _, p := range prev {
			if p.ID == z.ID {
				c.zones[i] = p
				return
			}
		}
	}
}

// UpdateZone patches the zone optimistically after the ownership check,
// then issues the remote update. Failure restores the single pre-patch
// record.
func (c *Controller) UpdateZone(ctx context.Context, id string, req domain.UpdateZoneRequest, userID string) (domain.Zone, error) {
	const op = "sync.UpdateZone"

	c.mu.Lock()
	idx := indexByID(c.zones, id)
	if idx < 0 {
		c.mu.Unlock()
		return domain.Zone{}, e.Wrap(op, e.ErrNotFound)
	}
	if !c.zones[idx].CanMutate(userID) {
		c.mu.Unlock()
		return domain.Zone{}, e.Wrap(op, e.ErrNotZoneOwner)
	}

	before := c.zones[idx]
	patched := applyPatch(before, req, c.now())
	c.zones[idx] = patched
	c.mu.Unlock()

	if _, err := c.repo.Update(ctx, id, req); err != nil {
		c.restoreZone(before)
		c.logger.Error("remote update failed, zone restored",
			slog.String("id", id),
			slog.Any("error", err),
		)
		return domain.Zone{}, e.Wrap(op, err)
	}

	if err := c.Refresh(ctx); err != nil {
		c.logger.Warn("refetch after update failed", slog.Any("error", err))
	}
	return patched, nil
}

// DeleteZone removes the zone optimistically after the ownership check. A
// remote failure restores the full pre-delete list so position and content
// survive intact.
func (c *Controller) DeleteZone(ctx context.Context, id string, userID string) error {
	const op = "sync.DeleteZone"

	c.mu.Lock()
	idx := indexByID(c.zones, id)
	if idx < 0 {
		c.mu.Unlock()
		return e.Wrap(op, e.ErrNotFound)
	}
	if !c.zones[idx].CanMutate(userID) {
		c.mu.Unlock()
		return e.Wrap(op, e.ErrNotZoneOwner)
	}

	prev := snapshot(c.zones)
	c.zones = append(c.zones[:idx:idx], c.zones[idx+1:]...)
	c.mu.Unlock()

	if err := c.repo.Delete(ctx, id); err != nil {
		c.mu.Lock()
		c.zones = prev
		c.mu.Unlock()
		c.logger.Error("remote delete failed, list restored",
			slog.String("id", id),
			slog.Any("error", err),
		)
		return e.Wrap(op, err)
	}

	if err := c.Refresh(ctx); err != nil {
		c.logger.Warn("refetch after delete failed", slog.Any("error", err))
	}
	return nil
}

// Refresh replaces the collection with the authoritative list. Optimistic
// records whose create has not been acknowledged yet are folded back in by
// slug instead of being dropped in the consistency window.
func (c *Controller) Refresh(ctx context.Context) error {
	const op = "sync.Refresh"

	fetched, err := c.repo.List(ctx, nil)
	if err != nil {
		return e.Wrap(op, err)
	}

	c.mu.Lock()
	var kept []domain.Zone
	for _, z := range c.zones {
		if z.Pending() && !hasSlug(fetched, z.Slug) {
			kept = append(kept, z)
		}
	}
	c.zones = append(snapshot(fetched), kept...)
	zones := snapshot(c.zones)
	c.mu.Unlock()

	if c.cache != nil {
		if err := c.cache.SetZones(ctx, zones, cacheTTL); err != nil {
			c.logger.Warn("zone cache write failed", slog.Any("error", err))
		}
	}

	c.logger.Debug("zone collection refreshed",
		slog.Int("authoritative", len(fetched)),
		slog.Int("pending_kept", len(kept)),
	)
	return nil
}

// WarmFromCache seeds the collection from the cache at startup so the map is
// not empty while the first refresh is in flight.
func (c *Controller) WarmFromCache(ctx context.Context) {
	if c.cache == nil {
		return
	}
	zones, err := c.cache.GetZones(ctx)
	if err != nil || len(zones) == 0 {
		return
	}
	c.mu.Lock()
	if len(c.zones) == 0 {
		c.zones = zones
	}
	c.mu.Unlock()
	c.logger.Info("zone collection warmed from cache", slog.Int("zones", len(zones)))
}

func applyPatch(z domain.Zone, req domain.UpdateZoneRequest, now time.Time) domain.Zone {
	if req.Description != nil {
		z.Description = strings.TrimSpace(*req.Description)
	}
	if req.Type != nil {
		z.Type = *req.Type
	}
	if req.Date != nil {
		z.Date = *req.Date
	}
	if req.Hour != nil {
		z.Hour = *req.Hour
	}
	if req.Coordinate != nil {
		z.Coordinate = *req.Coordinate
	}
	z.UpdatedAt = now
	return z
}

func (c *Controller) restoreZone(before domain.Zone) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if idx := indexByID(c.zones, before.ID); idx >= 0 {
		c.zones[idx] = before
	}
}

func indexByID(zones []domain.Zone, id string) int {
	for i, z := range zones {
		if z.ID == id {
			return i
		}
	}
	return -1
}

func hasSlug(zones []domain.Zone, slug string) bool {
	for _, z := range zones {
		if z.Slug == slug {
			return true
		}
	}
	return false
}

func snapshot(zones []domain.Zone) []domain.Zone {
	out := make([]domain.Zone, len(zones))
	copy(out, zones)
	return out
}
