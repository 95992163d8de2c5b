package model

import (
	"time"

	"github.com/google/uuid"
)

// ParentDeviceModel maps parent_devices. (parent_id, device_id) is unique so
// a phone re-registering refreshes its token instead of adding a row.
type ParentDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ParentID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_parent_devices_parent_device,priority:1"`
	FCMToken  string    `gorm:"type:varchar(255);not null"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_parent_devices_parent_device,priority:2"`
	Platform  string    `gorm:"type:varchar(16);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ParentDeviceModel) TableName() string {
	return "parent_devices"
}
