package validator

import "github.com/go-playground/validator/v10"

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
	validate.RegisterValidation("zone_type", validateZoneType)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

// Stored zone types only. CRITICAL is derived from report volume and is
// never accepted from a client.
func validateZoneType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "SAFE", "DANGER":
		return true
	}
	return false
}
