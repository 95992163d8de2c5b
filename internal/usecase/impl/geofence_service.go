package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/domain/service"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type geofenceService struct {
	txManager    repository.TransactionManager
	teenRepo     repository.TeenRepository
	geofenceRepo repository.GeofenceRepository
	tracker      service.OccupancyTracker
	logger       *slog.Logger
}

// GeofenceServiceParams holds dependencies for GeofenceService, injected by Fx.
type GeofenceServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	TeenRepo     repository.TeenRepository
	GeofenceRepo repository.GeofenceRepository
	Tracker      service.OccupancyTracker
	Logger       *slog.Logger
}

// NewGeofenceService creates a new geofence service instance
func NewGeofenceService(params GeofenceServiceParams) usecase.GeofenceUsecase {
	return &geofenceService{
		txManager:    params.TxManager,
		teenRepo:     params.TeenRepo,
		geofenceRepo: params.GeofenceRepo,
		tracker:      params.Tracker,
		logger:       params.Logger,
	}
}

func (srv *geofenceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// applyGeofenceInput copies the input onto fence, filling defaults for
// omitted type and notify flags.
func applyGeofenceInput(fence *entity.Geofence, input *usecase.GeofenceInput) error {
	if input.Radius <= 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("geofence radius must be positive")
	}

	fenceType := input.Type
	if fenceType == "" {
		fenceType = entity.GeofenceTypeSafe
	}
	if !fenceType.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown geofence type " + string(fenceType))
	}

	fence.TeenID = input.TeenID
	fence.Name = strings.TrimSpace(input.Name)
	fence.Latitude = input.Latitude
	fence.Longitude = input.Longitude
	fence.Radius = input.Radius
	fence.Type = fenceType
	fence.NotifyOnEnter = input.NotifyOnEnter == nil || *input.NotifyOnEnter
	fence.NotifyOnExit = input.NotifyOnExit == nil || *input.NotifyOnExit

	return nil
}

// CreateGeofence attaches a new fence to one of the parent's teens.
func (srv *geofenceService) CreateGeofence(ctx context.Context, parentID uuid.UUID, input *usecase.GeofenceInput) (*entity.Geofence, error) {
	now := time.Now().UTC()
	fence := &entity.Geofence{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := applyGeofenceInput(fence, input); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := findOwnedTeen(ctx, repoFactory.NewTeenRepository(), parentID, input.TeenID); err != nil {
			return err
		}

		return repoFactory.NewGeofenceRepository().CreateGeofence(ctx, fence)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrTeenNotFound) || errors.Is(err, repository.ErrTeenNotFound) {
			return nil, domainerrors.ErrTeenNotFound
		}

		return nil, storageError(err, "failed to create geofence")
	}

	srv.log(ctx).Info("Geofence created",
		slog.String("teen_id", fence.TeenID.String()),
		slog.String("geofence_id", fence.ID.String()),
	)

	return fence, nil
}

// ListGeofences returns the teen's fences in creation order.
func (srv *geofenceService) ListGeofences(ctx context.Context, parentID, teenID uuid.UUID) ([]*entity.Geofence, error) {
	if _, err := findOwnedTeen(ctx, srv.teenRepo, parentID, teenID); err != nil {
		return nil, err
	}

	fences, err := srv.geofenceRepo.FindGeofencesByTeen(ctx, teenID)
	if err != nil {
		return nil, storageError(err, "failed to list geofences")
	}

	return fences, nil
}

// ownedGeofence loads a fence whose teen belongs to the parent. Anything
// else is reported as not found.
func (srv *geofenceService) ownedGeofence(ctx context.Context, parentID, fenceID uuid.UUID) (*entity.Geofence, error) {
	fence, err := srv.geofenceRepo.FindGeofenceByID(ctx, fenceID)
	if errors.Is(err, repository.ErrGeofenceNotFound) {
		return nil, domainerrors.ErrGeofenceNotFound
	}
	if err != nil {
		return nil, storageError(err, "failed to load geofence")
	}

	if _, err := findOwnedTeen(ctx, srv.teenRepo, parentID, fence.TeenID); err != nil {
		if errors.Is(err, domainerrors.ErrTeenNotFound) {
			return nil, domainerrors.ErrGeofenceNotFound
		}

		return nil, err
	}

	return fence, nil
}

// ReplaceGeofence overwrites every field of the fence. Moving a fence to
// another teen requires that teen to belong to the parent too.
func (srv *geofenceService) ReplaceGeofence(ctx context.Context, parentID, fenceID uuid.UUID, input *usecase.GeofenceInput) (*entity.Geofence, error) {
	existing, err := srv.ownedGeofence(ctx, parentID, fenceID)
	if err != nil {
		return nil, err
	}

	if input.TeenID == uuid.Nil {
		input.TeenID = existing.TeenID
	}
	if input.TeenID != existing.TeenID {
		if _, err := findOwnedTeen(ctx, srv.teenRepo, parentID, input.TeenID); err != nil {
			return nil, err
		}
	}

	replaced := &entity.Geofence{
		ID:        existing.ID,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}
	if err := applyGeofenceInput(replaced, input); err != nil {
		return nil, err
	}

	if err := srv.geofenceRepo.ReplaceGeofence(ctx, replaced); err != nil {
		if errors.Is(err, repository.ErrGeofenceNotFound) {
			return nil, domainerrors.ErrGeofenceNotFound
		}

		return nil, storageError(err, "failed to replace geofence")
	}

	// Occupancy was computed against the old shape.
	if replaced.TeenID != existing.TeenID || replaced.Center() != existing.Center() || replaced.Radius != existing.Radius {
		srv.forgetOccupancy(ctx, existing.TeenID, existing.ID)
	}

	return replaced, nil
}

// DeleteGeofence removes the fence and its occupancy state.
func (srv *geofenceService) DeleteGeofence(ctx context.Context, parentID, fenceID uuid.UUID) error {
	fence, err := srv.ownedGeofence(ctx, parentID, fenceID)
	if err != nil {
		return err
	}

	if err := srv.geofenceRepo.DeleteGeofence(ctx, fence.ID); err != nil {
		if errors.Is(err, repository.ErrGeofenceNotFound) {
			return domainerrors.ErrGeofenceNotFound
		}

		return storageError(err, "failed to delete geofence")
	}

	srv.forgetOccupancy(ctx, fence.TeenID, fence.ID)

	return nil
}

func (srv *geofenceService) forgetOccupancy(ctx context.Context, teenID, fenceID uuid.UUID) {
	if err := srv.tracker.Forget(ctx, teenID, fenceID); err != nil {
		srv.log(ctx).Warn("Failed to clear geofence occupancy",
			slog.String("teen_id", teenID.String()),
			slog.String("geofence_id", fenceID.String()),
			slog.Any("error", err),
		)
	}
}
