package entity

import (
	"time"

	"github.com/google/uuid"
)

// Teen is a monitored subject. ParentID never changes after creation.
type Teen struct {
	ID               uuid.UUID         `json:"id"`
	ParentID         uuid.UUID         `json:"parent_id"`
	Name             string            `json:"name"`
	DeviceID         string            `json:"device_id"`
	PhoneNumber      *string           `json:"phone_number,omitempty"`
	Age              *int              `json:"age,omitempty"`
	ScreenTimeLimits map[string]int    `json:"screen_time_limits"` // day of week -> minutes
	BedtimeSchedule  map[string]string `json:"bedtime_schedule"`   // day of week -> "HH:MM"
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// OwnedBy reports whether the teen belongs to the given parent.
func (t *Teen) OwnedBy(parentID uuid.UUID) bool {
	return t != nil && t.ParentID == parentID
}
