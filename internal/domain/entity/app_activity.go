package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppUsage is the daily usage total of one app on a teen's device.
// There is at most one record per (teen, package, date).
type AppUsage struct {
	ID          uuid.UUID `json:"id"`
	TeenID      uuid.UUID `json:"teen_id"`
	AppName     string    `json:"app_name"`
	PackageName string    `json:"package_name"`
	UsageTime   int       `json:"usage_time"` // minutes
	Date        string    `json:"date"`       // YYYY-MM-DD
	LastUsed    time.Time `json:"last_used"`
}

// AppControl is a parent's rule for one app. There is at most one per (teen, package).
type AppControl struct {
	ID          uuid.UUID `json:"id"`
	TeenID      uuid.UUID `json:"teen_id"`
	PackageName string    `json:"package_name"`
	IsBlocked   bool      `json:"is_blocked"`
	TimeLimit   *int      `json:"time_limit,omitempty"` // minutes per day
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WebHistory is a visited URL. Re-reporting a URL increments VisitCount.
type WebHistory struct {
	ID         uuid.UUID `json:"id"`
	TeenID     uuid.UUID `json:"teen_id"`
	URL        string    `json:"url"`
	Title      string    `json:"title"`
	VisitCount int       `json:"visit_count"`
	Timestamp  time.Time `json:"timestamp"`
}
