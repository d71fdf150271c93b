package domain

type CreateZoneRequest struct {
	Slug           string         `json:"slug"`
	Date           string         `json:"date"`
	Hour           string         `json:"hour"`
	Description    string         `json:"description" validate:"required"`
	Type           ZoneType       `json:"type" validate:"required,zone_type"`
	Reports        int            `json:"reports" validate:"min=0"`
	Coordinate     Coordinate     `json:"coordinates"`
	FeatureDetails FeatureDetails `json:"featureDetails"`
}

type UpdateZoneRequest struct {
	Description *string     `json:"description" validate:"omitempty,min=1"`
	Type        *ZoneType   `json:"type" validate:"omitempty,zone_type"`
	Date        *string     `json:"date"`
	Hour        *string     `json:"hour"`
	Coordinate  *Coordinate `json:"coordinates"`
}

type ListZonesResponse struct {
	Zones []Zone `json:"zones"`
	Total int    `json:"total"`
}
