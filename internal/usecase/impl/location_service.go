package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/domain/constants"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/geofence"
	"guardian/internal/domain/repository"
	"guardian/internal/domain/service"
	"guardian/internal/infra/metrics"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type locationService struct {
	teenRepo     repository.TeenRepository
	locationRepo repository.LocationRepository
	geofenceRepo repository.GeofenceRepository
	alerts       usecase.AlertUsecase
	evaluator    *geofence.Evaluator
	tracker      service.OccupancyTracker
	notifier     service.LiveNotifier
	publisher    service.EventPublisher
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	TeenRepo     repository.TeenRepository
	LocationRepo repository.LocationRepository
	GeofenceRepo repository.GeofenceRepository
	Alerts       usecase.AlertUsecase
	Evaluator    *geofence.Evaluator
	Tracker      service.OccupancyTracker
	Notifier     service.LiveNotifier
	Publisher    service.EventPublisher `optional:"true"`
	Metrics      *metrics.Metrics       `optional:"true"`
	Logger       *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	evaluator := params.Evaluator
	if evaluator == nil {
		evaluator = geofence.DefaultEvaluator()
	}

	return &locationService{
		teenRepo:     params.TeenRepo,
		locationRepo: params.LocationRepo,
		geofenceRepo: params.GeofenceRepo,
		alerts:       params.Alerts,
		evaluator:    evaluator,
		tracker:      params.Tracker,
		notifier:     params.Notifier,
		publisher:    params.Publisher,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IngestLocation stores the sample and dispatches geofence alerts. Once the
// sample is stored every later failure is logged and the call succeeds.
func (srv *locationService) IngestLocation(ctx context.Context, input *usecase.IngestLocationInput) (*entity.LocationSample, error) {
	start := time.Now()

	teen, err := findTeen(ctx, srv.teenRepo, input.TeenID)
	if err != nil {
		return nil, err
	}

	timestamp := start.UTC()
	if input.Timestamp != nil && !input.Timestamp.IsZero() {
		timestamp = input.Timestamp.UTC()
	}

	sample := &entity.LocationSample{
		ID:        uuid.New(),
		TeenID:    teen.ID,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Accuracy:  input.Accuracy,
		Address:   input.Address,
		Timestamp: timestamp,
	}

	if err := srv.locationRepo.CreateLocation(ctx, sample); err != nil {
		srv.log(ctx).Error("Failed to store location sample",
			slog.String("teen_id", teen.ID.String()),
			slog.Any("error", err),
		)

		return nil, storageError(err, "failed to store location sample")
	}

	srv.evaluateGeofences(ctx, teen, sample)
	srv.metrics.ObserveIngest(start)

	return sample, nil
}

func (srv *locationService) evaluateGeofences(ctx context.Context, teen *entity.Teen, sample *entity.LocationSample) {
	logger := srv.log(ctx).With(
		slog.String("teen_id", teen.ID.String()),
		slog.String("location_id", sample.ID.String()),
	)

	fences, err := srv.geofenceRepo.FindGeofencesByTeen(ctx, teen.ID)
	if err != nil {
		logger.Warn("Failed to load geofences, skipping evaluation", slog.Any("error", err))

		return
	}
	if len(fences) == 0 {
		return
	}

	matched := srv.evaluator.Match(sample.Point(), fences)

	transitions, err := srv.tracker.Transitions(ctx, teen.ID, fences, matched)
	if err != nil {
		logger.Warn("Failed to resolve geofence transitions, skipping alerts",
			slog.Int("matched", len(matched)),
			slog.Any("error", err),
		)

		return
	}

	for _, transition := range transitions {
		srv.dispatch(ctx, logger, teen, transition)
	}
}

// dispatch records, pushes and publishes one transition. The live push is
// attempted even when recording fails.
func (srv *locationService) dispatch(ctx context.Context, logger *slog.Logger, teen *entity.Teen, transition geofence.Transition) {
	message := transition.Message(teen.Name)
	alertType := transition.AlertType()

	alertID, recordErr := srv.alerts.RecordAlert(ctx, teen.ParentID, teen.ID, alertType, message)
	if recordErr != nil {
		logger.Warn("Failed to record geofence alert",
			slog.String("geofence_id", transition.Fence.ID.String()),
			slog.Bool("storage_unavailable", errors.Is(recordErr, domainerrors.ErrStorageUnavailable)),
			slog.Any("error", recordErr),
		)
	}

	srv.notifier.Notify(ctx, teen.ParentID, service.GeofenceAlertMessage{
		Type:        constants.LiveMessageGeofenceAlert,
		SubjectName: teen.Name,
		FenceName:   transition.Fence.Name,
		Action:      string(transition.Action),
	})

	if recordErr != nil || srv.publisher == nil {
		return
	}

	event := &service.AlertEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		AlertID:   alertID.String(),
		ParentID:  teen.ParentID.String(),
		TeenID:    teen.ID.String(),
		TeenName:  teen.Name,
		FenceName: transition.Fence.Name,
		AlertType: string(alertType),
		Action:    string(transition.Action),
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	err := srv.publisher.PublishAlertEvent(ctx, event)
	srv.metrics.IncEventPublished(err == nil)
	if err != nil {
		logger.Warn("Failed to publish alert event",
			slog.String("alert_id", event.AlertID),
			slog.Any("error", err),
		)
	}
}

// GetLocationHistory returns up to limit samples, newest first.
func (srv *locationService) GetLocationHistory(ctx context.Context, parentID, teenID uuid.UUID, limit int) ([]*entity.LocationSample, error) {
	if _, err := findOwnedTeen(ctx, srv.teenRepo, parentID, teenID); err != nil {
		return nil, err
	}

	samples, err := srv.locationRepo.FindLocationsByTeen(ctx, teenID, clampLimit(limit, constants.DefaultLocationHistoryLimit))
	if err != nil {
		return nil, storageError(err, "failed to load location history")
	}

	return samples, nil
}

// GetCurrentLocation returns the newest sample.
func (srv *locationService) GetCurrentLocation(ctx context.Context, parentID, teenID uuid.UUID) (*entity.LocationSample, error) {
	if _, err := findOwnedTeen(ctx, srv.teenRepo, parentID, teenID); err != nil {
		return nil, err
	}

	sample, err := srv.locationRepo.FindLatestLocation(ctx, teenID)
	if errors.Is(err, repository.ErrLocationNotFound) {
		return nil, domainerrors.ErrLocationNotFound
	}
	if err != nil {
		return nil, storageError(err, "failed to load current location")
	}

	return sample, nil
}
