package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/domain"
)

const earthRadiusMeters = 6371000.0

// DistanceMeters is the great-circle distance between a and b via the
// haversine formula. Symmetric, zero for identical points.
func DistanceMeters(a, b domain.Coordinate) float64 {
	dLat := deg2rad(b.Latitude - a.Latitude)
	dLng := deg2rad(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Latitude))*math.Cos(deg2rad(b.Latitude))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// ParseReportCount parses a decimal report count. Anything non-numeric,
// empty or negative degrades to 0; it never fails.
func ParseReportCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// FormatCoordinate renders a coordinate the way the map banner shows it.
func FormatCoordinate(c domain.Coordinate) string {
	return fmt.Sprintf("Lat %.5f, Lng %.5f", c.Latitude, c.Longitude)
}

// FormatDate and FormatHour produce the date/hour fields of a zone record.
func FormatDate(t time.Time) string { return t.Format("2006-01-02") }

func FormatHour(t time.Time) string { return t.Format("15:04") }
