package present_test

import (
	"testing"

	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/domain"
	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/present"
)

func TestToFeatureCollection(t *testing.T) {
	t.Parallel()

	zones := []domain.Zone{
		{
			ID:          "z-1",
			Slug:        "dark-street",
			Description: "dark street",
			Type:        domain.ZoneDanger,
			Reports:     4,
			Coordinate:  domain.Coordinate{Longitude: -8.61, Latitude: 41.14},
			CreatedBy:   "user-a",
		},
		{
			ID:          "z-2",
			Slug:        "old-market",
			Description: "old market",
			Type:        domain.ZoneDanger,
			Reports:     12,
			Coordinate:  domain.Coordinate{Longitude: -8.62, Latitude: 41.15},
			CreatedBy:   "user-b",
		},
	}

	fc := present.ToFeatureCollection(zones)

	if len(fc.Features) != 2 {
		t.Fatalf("features: got=%d want=2", len(fc.Features))
	}

	first := fc.Features[0]
	if !first.Geometry.IsPoint() {
		t.Fatalf("feature geometry must be a point")
	}
	if got := first.Geometry.Point; got[0] != -8.61 || got[1] != 41.14 {
		t.Fatalf("point must be [lng, lat]: got=%v", got)
	}
	if slug, _ := first.PropertyString("slug"); slug != "dark-street" {
		t.Fatalf("slug property: got=%q", slug)
	}
	if dt, _ := first.PropertyString("displayType"); dt != "DANGER" {
		t.Fatalf("displayType below threshold: got=%q", dt)
	}

	// The second zone crossed the report threshold: displayed CRITICAL even
	// though DANGER is stored.
	if dt, _ := fc.Features[1].PropertyString("displayType"); dt != "CRITICAL" {
		t.Fatalf("displayType at threshold: got=%q", dt)
	}
}

func TestToFeatureCollection_Empty(t *testing.T) {
	t.Parallel()

	fc := present.ToFeatureCollection(nil)
	if len(fc.Features) != 0 {
		t.Fatalf("empty input must produce an empty collection")
	}
}
