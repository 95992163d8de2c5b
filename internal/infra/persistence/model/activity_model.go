package model

import (
	"time"

	"github.com/google/uuid"
)

// AppUsageModel is the GORM-specific struct for the 'app_usage' table.
type AppUsageModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TeenID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_app_usage_teen_pkg_date,priority:1"`
	AppName     string    `gorm:"type:varchar(255);not null"`
	PackageName string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_app_usage_teen_pkg_date,priority:2"`
	UsageTime   int       `gorm:"not null;default:0"`
	Date        string    `gorm:"type:char(10);not null;uniqueIndex:idx_app_usage_teen_pkg_date,priority:3"`
	LastUsed    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AppUsageModel) TableName() string {
	return "app_usage"
}

// AppControlModel is the GORM-specific struct for the 'app_controls' table.
type AppControlModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TeenID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_app_controls_teen_pkg,priority:1"`
	PackageName string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_app_controls_teen_pkg,priority:2"`
	IsBlocked   bool      `gorm:"not null;default:false"`
	TimeLimit   *int      `gorm:"type:integer"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AppControlModel) TableName() string {
	return "app_controls"
}

// WebHistoryModel is the GORM-specific struct for the 'web_history' table.
type WebHistoryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TeenID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_web_history_teen_url,priority:1"`
	URL        string    `gorm:"type:text;not null;uniqueIndex:idx_web_history_teen_url,priority:2"`
	Title      string    `gorm:"type:text;not null"`
	VisitCount int       `gorm:"not null;default:1"`
	Timestamp  time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (WebHistoryModel) TableName() string {
	return "web_history"
}
