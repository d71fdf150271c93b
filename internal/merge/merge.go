package merge

import (
	"fmt"
	"time"

	slugify "github.com/gosimple/slug"

	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/domain"
	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/geo"
)

// DefaultThresholdMeters is the merge policy radius: a report closer than
// this to an existing zone folds into it instead of seeding a duplicate.
const DefaultThresholdMeters = 200.0

// Resolution is the outcome of resolving one report against a zone snapshot.
type Resolution struct {
	// Zones is the resulting collection. The input slice is never mutated.
	Zones []domain.Zone
	// Zone is the merged-into or newly created record.
	Zone domain.Zone
	// Merged is true when the report folded into an existing zone;
	// MergedInto then carries that zone's id (or slug while unpersisted).
	Merged     bool
	MergedInto string
}

// ResolveReport decides whether cand belongs to an existing zone or seeds a
// new one. The nearest zone strictly below thresholdMeters wins; a candidate
// at exactly the threshold creates a new zone. Ties keep the first zone in
// list order. Pure: no I/O, deterministic for a given now.
func ResolveReport(zones []domain.Zone, cand domain.ReportCandidate, thresholdMeters float64, now time.Time) Resolution {
	best := -1
	bestDist := thresholdMeters

	for i, z := range zones {
		d := geo.DistanceMeters(z.Coordinate, cand.Coordinate)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}

	if best >= 0 {
		return mergeInto(zones, best, cand, now)
	}

	created := newZone(zones, cand, now)
	out := make([]domain.Zone, 0, len(zones)+1)
	out = append(out, zones...)
	out = append(out, created)

	return Resolution{Zones: out, Zone: created}
}

func mergeInto(zones []domain.Zone, idx int, cand domain.ReportCandidate, now time.Time) Resolution {
	weight := cand.Reports
	if weight <= 0 {
		weight = 1
	}

	merged := zones[idx]
	merged.Reports += weight
	if cand.Description != "" {
		merged.Description = merged.Description + "\n• " + cand.Description
	}
	// The representative point stays where the first report put it.
	merged.UpdatedAt = now

	out := make([]domain.Zone, len(zones))
	copy(out, zones)
	out[idx] = merged

	key := merged.ID
	if key == "" {
		key = merged.Slug
	}

	return Resolution{Zones: out, Zone: merged, Merged: true, MergedInto: key}
}

func newZone(zones []domain.Zone, cand domain.ReportCandidate, now time.Time) domain.Zone {
	reports := cand.Reports
	if reports == 0 && cand.Type == domain.ZoneDanger {
		reports = 1
	}

	date := cand.Date
	if date == "" {
		date = geo.FormatDate(now)
	}
	hour := cand.Hour
	if hour == "" {
		hour = geo.FormatHour(now)
	}

	return domain.Zone{
		ID:             fmt.Sprintf("temp-%d", now.UnixMilli()),
		Slug:           zoneSlug(zones, cand, now),
		Date:           date,
		Hour:           hour,
		Description:    cand.Description,
		Type:           cand.Type,
		Reports:        reports,
		Coordinate:     cand.Coordinate,
		FeatureDetails: cand.FeatureDetails,
		CreatedBy:      cand.ReporterID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// zoneSlug derives a slug from the candidate, falling back to a
// timestamp-based one when the description slugifies to nothing or the slug
// is already taken.
func zoneSlug(zones []domain.Zone, cand domain.ReportCandidate, now time.Time) string {
	s := cand.Slug
	if s == "" {
		s = slugify.Make(cand.Description)
	}
	if s == "" || slugTaken(zones, s) {
		return fmt.Sprintf("zone-%d", now.UnixMilli())
	}
	return s
}

func slugTaken(zones []domain.Zone, s string) bool {
	for _, z := range zones {
		if z.Slug == s {
			return true
		}
	}
	return false
}
