package postgres

import (
	"context"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type geofenceRepository struct {
	db *gorm.DB
}

// NewGeofenceRepository is the constructor for geofenceRepository.
func NewGeofenceRepository(db *gorm.DB) repository.GeofenceRepository {
	return &geofenceRepository{
		db: db,
	}
}

// CreateGeofence persists a new fence.
func (repo *geofenceRepository) CreateGeofence(ctx context.Context, fence *entity.Geofence) error {
	fenceM := fromGeofenceDomain(fence)

	if err := repo.db.WithContext(ctx).Create(fenceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTeenNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("geofence radius must be positive")
		}

		return domainerrors.NewStorageError(err, "failed to create geofence")
	}

	fence.ID = fenceM.ID
	fence.CreatedAt = fenceM.CreatedAt
	fence.UpdatedAt = fenceM.UpdatedAt

	return nil
}

// FindGeofenceByID retrieves a fence by ID.
func (repo *geofenceRepository) FindGeofenceByID(ctx context.Context, id uuid.UUID) (*entity.Geofence, error) {
	var fenceM model.GeofenceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&fenceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGeofenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find geofence by ID")
	}

	return toGeofenceDomain(&fenceM), nil
}

// FindGeofencesByTeen returns the teen's fences ordered by creation time.
func (repo *geofenceRepository) FindGeofencesByTeen(ctx context.Context, teenID uuid.UUID) ([]*entity.Geofence, error) {
	var fenceModels []*model.GeofenceModel

	if err := repo.db.WithContext(ctx).
		Where("teen_id = ?", teenID).
		Order("created_at ASC, id ASC").
		Find(&fenceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find geofences by teen")
	}

	fences := make([]*entity.Geofence, 0, len(fenceModels))
	for _, fenceM := range fenceModels {
		fences = append(fences, toGeofenceDomain(fenceM))
	}

	return fences, nil
}

// ReplaceGeofence overwrites every mutable field of an existing fence.
func (repo *geofenceRepository) ReplaceGeofence(ctx context.Context, fence *entity.Geofence) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GeofenceModel{}).
		Where("id = ?", fence.ID).
		Updates(map[string]any{
			"name":            fence.Name,
			"latitude":        fence.Latitude,
			"longitude":       fence.Longitude,
			"radius":          fence.Radius,
			"type":            string(fence.Type),
			"notify_on_enter": fence.NotifyOnEnter,
			"notify_on_exit":  fence.NotifyOnExit,
			"updated_at":      gorm.Expr("NOW()"),
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("geofence radius must be positive")
		}

		return domainerrors.NewStorageError(result.Error, "failed to replace geofence")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGeofenceNotFound
	}

	return nil
}

// DeleteGeofence removes a fence.
func (repo *geofenceRepository) DeleteGeofence(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.GeofenceModel{})

	if result.Error != nil {
		return domainerrors.NewStorageError(result.Error, "failed to delete geofence")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGeofenceNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toGeofenceDomain(data *model.GeofenceModel) *entity.Geofence {
	if data == nil {
		return nil
	}

	return &entity.Geofence{
		ID:            data.ID,
		TeenID:        data.TeenID,
		Name:          data.Name,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		Radius:        data.Radius,
		Type:          entity.GeofenceType(data.Type),
		NotifyOnEnter: data.NotifyOnEnter,
		NotifyOnExit:  data.NotifyOnExit,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromGeofenceDomain(data *entity.Geofence) *model.GeofenceModel {
	if data == nil {
		return nil
	}

	return &model.GeofenceModel{
		ID:            data.ID,
		TeenID:        data.TeenID,
		Name:          data.Name,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		Radius:        data.Radius,
		Type:          string(data.Type),
		NotifyOnEnter: data.NotifyOnEnter,
		NotifyOnExit:  data.NotifyOnExit,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
