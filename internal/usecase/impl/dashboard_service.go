package impl

import (
	"context"
	"time"

	"guardian/internal/domain/constants"
	"guardian/internal/domain/repository"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type dashboardService struct {
	teenRepo     repository.TeenRepository
	locationRepo repository.LocationRepository
	geofenceRepo repository.GeofenceRepository
	activityRepo repository.ActivityRepository
	alertRepo    repository.AlertRepository
	now          func() time.Time
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	TeenRepo     repository.TeenRepository
	LocationRepo repository.LocationRepository
	GeofenceRepo repository.GeofenceRepository
	ActivityRepo repository.ActivityRepository
	AlertRepo    repository.AlertRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		teenRepo:     params.TeenRepo,
		locationRepo: params.LocationRepo,
		geofenceRepo: params.GeofenceRepo,
		activityRepo: params.ActivityRepo,
		alertRepo:    params.AlertRepo,
		now:          time.Now,
	}
}

// GetDashboard gathers today's screen time, recent locations and web
// visits, fences and unread alerts for one teen.
func (srv *dashboardService) GetDashboard(ctx context.Context, parentID, teenID uuid.UUID) (*usecase.Dashboard, error) {
	teen, err := findOwnedTeen(ctx, srv.teenRepo, parentID, teenID)
	if err != nil {
		return nil, err
	}

	today := srv.now().UTC().Format(usageDateLayout)
	usage, err := srv.activityRepo.FindAppUsage(ctx, teenID, today)
	if err != nil {
		return nil, storageError(err, "failed to load today's app usage")
	}

	screenTime := 0
	for _, record := range usage {
		screenTime += record.UsageTime
	}

	locations, err := srv.locationRepo.FindLocationsByTeen(ctx, teenID, constants.DashboardRecentLocations)
	if err != nil {
		return nil, storageError(err, "failed to load recent locations")
	}

	history, err := srv.activityRepo.FindWebHistory(ctx, teenID, constants.DashboardRecentWebVisits)
	if err != nil {
		return nil, storageError(err, "failed to load recent web history")
	}

	fences, err := srv.geofenceRepo.FindGeofencesByTeen(ctx, teenID)
	if err != nil {
		return nil, storageError(err, "failed to load geofences")
	}

	unread, err := srv.alertRepo.FindUnreadAlertsByTeen(ctx, parentID, teenID, constants.DashboardUnreadAlerts)
	if err != nil {
		return nil, storageError(err, "failed to load unread alerts")
	}

	return &usecase.Dashboard{
		Teen:             teen,
		ScreenTimeToday:  screenTime,
		AppUsageToday:    usage,
		RecentLocations:  locations,
		RecentWebHistory: history,
		Geofences:        fences,
		UnreadAlerts:     unread,
	}, nil
}
