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

type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// CreateLocation appends a sample.
func (repo *locationRepository) CreateLocation(ctx context.Context, sample *entity.LocationSample) error {
	sampleM := fromLocationDomain(sample)

	if err := repo.db.WithContext(ctx).Create(sampleM).Error; err != nil {
		return domainerrors.NewStorageError(err, "failed to create location sample")
	}

	sample.ID = sampleM.ID

	return nil
}

// FindLocationsByTeen returns up to limit samples, newest first.
func (repo *locationRepository) FindLocationsByTeen(ctx context.Context, teenID uuid.UUID, limit int) ([]*entity.LocationSample, error) {
	var sampleModels []*model.LocationSampleModel

	query := repo.db.WithContext(ctx).
		Where("teen_id = ?", teenID).
		Order("timestamp DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&sampleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find locations by teen")
	}

	samples := make([]*entity.LocationSample, 0, len(sampleModels))
	for _, sampleM := range sampleModels {
		samples = append(samples, toLocationDomain(sampleM))
	}

	return samples, nil
}

// FindLatestLocation returns the newest sample by timestamp.
func (repo *locationRepository) FindLatestLocation(ctx context.Context, teenID uuid.UUID) (*entity.LocationSample, error) {
	var sampleM model.LocationSampleModel

	if err := repo.db.WithContext(ctx).
		Where("teen_id = ?", teenID).
		Order("timestamp DESC").
		First(&sampleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest location")
	}

	return toLocationDomain(&sampleM), nil
}

// --- Mapper Functions ---

func toLocationDomain(data *model.LocationSampleModel) *entity.LocationSample {
	if data == nil {
		return nil
	}

	return &entity.LocationSample{
		ID:        data.ID,
		TeenID:    data.TeenID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Accuracy:  data.Accuracy,
		Address:   data.Address,
		Timestamp: data.Timestamp,
	}
}

func fromLocationDomain(data *entity.LocationSample) *model.LocationSampleModel {
	if data == nil {
		return nil
	}

	return &model.LocationSampleModel{
		ID:        data.ID,
		TeenID:    data.TeenID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Accuracy:  data.Accuracy,
		Address:   data.Address,
		Timestamp: data.Timestamp,
	}
}
