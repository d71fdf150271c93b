package domain

import (
	"time"
)

type ZoneType string

const (
	ZoneSafe     ZoneType = "SAFE"
	ZoneDanger   ZoneType = "DANGER"
	ZoneCritical ZoneType = "CRITICAL"
)

// CriticalReportThreshold is the report volume at which a zone is displayed
// as CRITICAL regardless of the type its reporters stored.
const CriticalReportThreshold = 10

// Coordinate is a (longitude, latitude) pair in degrees.
type Coordinate struct {
	Longitude float64 `json:"longitude" validate:"lng"`
	Latitude  float64 `json:"latitude" validate:"lat"`
}

type FeatureDetails struct {
	GoodLighting         bool `json:"goodLighting"`
	PolicePresence       bool `json:"policePresence"`
	PublicTransport      bool `json:"publicTransport"`
	InsufficientLighting bool `json:"insufficientLighting"`
	LackOfPolicing       bool `json:"lackOfPolicing"`
	AbandonedHouses      bool `json:"abandonedHouses"`
}

// Zone is a user-reported safe or dangerous point on the map.
//
// ID is a server-assigned uuid once persisted; while a create is in flight it
// carries a "temp-" prefixed placeholder. Slug doubles as the local key for
// reconciling optimistic records against the authoritative list before a
// server id exists.
type Zone struct {
	ID             string         `json:"id"`
	Slug           string         `json:"slug"`
	Date           string         `json:"date"`
	Hour           string         `json:"hour"`
	Description    string         `json:"description"`
	Type           ZoneType       `json:"type"`
	Reports        int            `json:"reports"`
	Coordinate     Coordinate     `json:"coordinates"`
	FeatureDetails FeatureDetails `json:"featureDetails"`
	CreatedBy      string         `json:"createdBy"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// EffectiveType is the displayed classification: CRITICAL once a zone has
// accumulated CriticalReportThreshold reports, otherwise the stored type.
func (z Zone) EffectiveType() ZoneType {
	if z.Reports >= CriticalReportThreshold {
		return ZoneCritical
	}
	return z.Type
}

// CanMutate reports whether userID may edit or delete the zone. Only the
// creator may mutate.
func (z Zone) CanMutate(userID string) bool {
	return z.CreatedBy != "" && z.CreatedBy == userID
}

// Pending reports whether the zone is an optimistic record that has not been
// acknowledged by the store yet.
func (z Zone) Pending() bool {
	return len(z.ID) >= 5 && z.ID[:5] == "temp-"
}
