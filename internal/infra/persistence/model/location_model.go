package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationSampleModel is the GORM-specific struct for the 'location_samples' table.
type LocationSampleModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TeenID    uuid.UUID `gorm:"type:uuid;not null;index:idx_location_samples_teen_ts,priority:1"`
	Latitude  float64   `gorm:"type:decimal(10,8);not null"`
	Longitude float64   `gorm:"type:decimal(11,8);not null"`
	Accuracy  *float64  `gorm:"type:double precision"`
	Address   *string   `gorm:"type:text"`
	Timestamp time.Time `gorm:"not null;index:idx_location_samples_teen_ts,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (LocationSampleModel) TableName() string {
	return "location_samples"
}
