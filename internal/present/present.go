package present

import (
	geojson "github.com/paulmach/go.geojson"

	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/domain"
)

// ToFeatureCollection projects the zone collection into the shape the map
// layer renders: one point feature per zone, with the displayed type derived
// from report volume. Stateless; recomputed whenever the collection changes.
func ToFeatureCollection(zones []domain.Zone) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, z := range zones {
		f := geojson.NewPointFeature([]float64{z.Coordinate.Longitude, z.Coordinate.Latitude})
		f.SetProperty("slug", z.Slug)
		f.SetProperty("description", z.Description)
		f.SetProperty("reports", z.Reports)
		f.SetProperty("displayType", string(z.EffectiveType()))
		f.SetProperty("createdBy", z.CreatedBy)
		fc.AddFeature(f)
	}
	return fc
}
