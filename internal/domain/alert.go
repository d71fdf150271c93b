package domain

import "time"

// AlertPayload is an SOS alert on its way to the contact dispatcher.
type AlertPayload struct {
	UserID     string     `json:"user_id"`
	ContactIDs []string   `json:"contact_ids"`
	Coordinate Coordinate `json:"coordinate"`
	SentAt     time.Time  `json:"sent_at"`
}

type SendAlertRequest struct {
	ContactIDs []string   `json:"contact_ids" validate:"required,min=1,dive,required"`
	Coordinate Coordinate `json:"coordinate"`
}
