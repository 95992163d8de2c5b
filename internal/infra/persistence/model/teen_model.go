package model

import (
	"time"

	"github.com/google/uuid"
)

// TeenModel is the GORM-specific struct for the 'teens' table.
// Schedules are stored as JSONB keyed by day of week.
type TeenModel struct {
	ID               uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ParentID         uuid.UUID         `gorm:"type:uuid;not null;index"`
	Name             string            `gorm:"type:varchar(255);not null"`
	DeviceID         string            `gorm:"type:varchar(255);not null;uniqueIndex"`
	PhoneNumber      *string           `gorm:"type:varchar(50)"`
	Age              *int              `gorm:"type:integer"`
	ScreenTimeLimits map[string]int    `gorm:"type:jsonb;serializer:json;not null"`
	BedtimeSchedule  map[string]string `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (TeenModel) TableName() string {
	return "teens"
}
