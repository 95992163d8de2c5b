// Package entity holds the monitoring domain's records.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ParentDevice is a parent's phone registered for offline alert pushes.
// DeviceID is chosen by the app and unique per parent; re-registering it
// replaces the FCM token.
type ParentDevice struct {
	ID        uuid.UUID `json:"id"`
	ParentID  uuid.UUID `json:"parent_id"`
	FCMToken  string    `json:"fcm_token"`
	DeviceID  string    `json:"device_id"`
	Platform  string    `json:"platform"` // ios or android
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
