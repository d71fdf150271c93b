package geo_test

import (
	"math"
	"testing"
	"time"

	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/domain"
	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/geo"
)

func coord(lng, lat float64) domain.Coordinate {
	return domain.Coordinate{Longitude: lng, Latitude: lat}
}

func TestDistanceMeters_ZeroForSamePoint(t *testing.T) {
	t.Parallel()

	a := coord(-8.61398, 41.1413)
	if d := geo.DistanceMeters(a, a); d != 0 {
		t.Fatalf("distance to self: got=%v want=0", d)
	}
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b domain.Coordinate
	}{
		{"porto_pair", coord(-8.61398, 41.1413), coord(-8.6100, 41.1400)},
		{"equator_meridian", coord(0, 0), coord(1, 1)},
		{"hemispheres", coord(-170, -45), coord(170, 45)},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			ab := geo.DistanceMeters(c.a, c.b)
			ba := geo.DistanceMeters(c.b, c.a)
			if ab != ba {
				t.Fatalf("not symmetric: ab=%v ba=%v", ab, ba)
			}
			if ab <= 0 {
				t.Fatalf("distinct points must have positive distance, got %v", ab)
			}
		})
	}
}

func TestDistanceMeters_KnownDistance(t *testing.T) {
	t.Parallel()

	// One degree of latitude is ~111.19 km on a 6371 km sphere.
	d := geo.DistanceMeters(coord(0, 0), coord(0, 1))
	want := 111195.0
	if math.Abs(d-want) > 100 {
		t.Fatalf("1 degree latitude: got=%v want~%v", d, want)
	}
}

func TestParseReportCount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want int
	}{
		{"0", 0},
		{"7", 7},
		{" 12 ", 12},
		{"", 0},
		{"abc", 0},
		{"3.5", 0},
		{"-4", 0},
	}

	for _, c := range cases {
		if got := geo.ParseReportCount(c.raw); got != c.want {
			t.Fatalf("ParseReportCount(%q): got=%d want=%d", c.raw, got, c.want)
		}
	}
}

func TestFormatCoordinate(t *testing.T) {
	t.Parallel()

	got := geo.FormatCoordinate(coord(-8.61398, 41.1413))
	want := "Lat 41.14130, Lng -8.61398"
	if got != want {
		t.Fatalf("FormatCoordinate: got=%q want=%q", got, want)
	}
}

func TestFormatDateHour(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 12, 23, 9, 5, 0, 0, time.UTC)
	if got := geo.FormatDate(ts); got != "2025-12-23" {
		t.Fatalf("FormatDate: got=%q", got)
	}
	if got := geo.FormatHour(ts); got != "09:05" {
		t.Fatalf("FormatHour: got=%q", got)
	}
}
