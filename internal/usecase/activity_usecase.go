package usecase

import (
	"context"
	"time"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// AppUsageInput is a daily usage total reported by a teen's device
type AppUsageInput struct {
	TeenID      uuid.UUID  `json:"teen_id"`
	AppName     string     `json:"app_name"`
	PackageName string     `json:"package_name"`
	UsageTime   int        `json:"usage_time"`
	Date        string     `json:"date"`
	LastUsed    *time.Time `json:"last_used,omitempty"`
}

// AppControlInput is a parent's rule for one app
type AppControlInput struct {
	TeenID      uuid.UUID `json:"teen_id"`
	PackageName string    `json:"package_name"`
	IsBlocked   bool      `json:"is_blocked"`
	TimeLimit   *int      `json:"time_limit,omitempty"`
}

// WebVisitInput is a visited URL reported by a teen's device
type WebVisitInput struct {
	TeenID    uuid.UUID  `json:"teen_id"`
	URL       string     `json:"url"`
	Title     string     `json:"title"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// UpsertResult reports whether a device report created a record or updated one
type UpsertResult struct {
	ID      uuid.UUID
	Created bool
}

// ActivityUsecase defines the interface for app and web activity use cases
type ActivityUsecase interface {
	// RecordAppUsage is called by the teen's device
	RecordAppUsage(ctx context.Context, input *AppUsageInput) (*UpsertResult, error)
	ListAppUsage(ctx context.Context, parentID, teenID uuid.UUID, date string) ([]*entity.AppUsage, error)

	SetAppControl(ctx context.Context, parentID uuid.UUID, input *AppControlInput) (*entity.AppControl, error)
	ListAppControls(ctx context.Context, parentID, teenID uuid.UUID) ([]*entity.AppControl, error)

	// RecordWebVisit is called by the teen's device
	RecordWebVisit(ctx context.Context, input *WebVisitInput) (*UpsertResult, error)
	ListWebHistory(ctx context.Context, parentID, teenID uuid.UUID, limit int) ([]*entity.WebHistory, error)
}
