package usecase

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// Dashboard is the per-teen overview shown to a parent
type Dashboard struct {
	Teen             *entity.Teen             `json:"teen"`
	ScreenTimeToday  int                      `json:"screen_time_today"`
	AppUsageToday    []*entity.AppUsage       `json:"app_usage_today"`
	RecentLocations  []*entity.LocationSample `json:"recent_locations"`
	RecentWebHistory []*entity.WebHistory     `json:"recent_web_history"`
	Geofences        []*entity.Geofence       `json:"geofences"`
	UnreadAlerts     []*entity.Alert          `json:"unread_alerts"`
}

// DashboardUsecase defines the interface for the dashboard use case
type DashboardUsecase interface {
	GetDashboard(ctx context.Context, parentID, teenID uuid.UUID) (*Dashboard, error)
}
