package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertType is the category of a parent-facing alert.
type AlertType string

const (
	AlertTypeGeofenceEnter AlertType = "geofence_enter"
	AlertTypeGeofenceExit  AlertType = "geofence_exit"
	AlertTypeScreenTime    AlertType = "screen_time"
	AlertTypeAppBlocked    AlertType = "app_blocked"
)

// IsValid checks if the alert type is one of the known categories.
func (t AlertType) IsValid() bool {
	switch t {
	case AlertTypeGeofenceEnter, AlertTypeGeofenceExit, AlertTypeScreenTime, AlertTypeAppBlocked:
		return true
	}

	return false
}

// Alert is a persisted notification addressed to a parent. Only IsRead may
// change after creation, and only from false to true.
type Alert struct {
	ID        uuid.UUID `json:"id"`
	ParentID  uuid.UUID `json:"parent_id"`
	TeenID    uuid.UUID `json:"teen_id"`
	Type      AlertType `json:"type"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
