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

type teenRepository struct {
	db *gorm.DB
}

// NewTeenRepository is the constructor for teenRepository.
func NewTeenRepository(db *gorm.DB) repository.TeenRepository {
	return &teenRepository{
		db: db,
	}
}

// CreateTeen persists a new teen.
func (repo *teenRepository) CreateTeen(ctx context.Context, teen *entity.Teen) error {
	teenM := fromTeenDomain(teen)

	if err := repo.db.WithContext(ctx).Create(teenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTeenDevice
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required teen information")
		}

		return domainerrors.NewStorageError(err, "failed to create teen")
	}

	teen.ID = teenM.ID
	teen.CreatedAt = teenM.CreatedAt
	teen.UpdatedAt = teenM.UpdatedAt

	return nil
}

// FindTeenByID retrieves a teen by ID.
func (repo *teenRepository) FindTeenByID(ctx context.Context, id uuid.UUID) (*entity.Teen, error) {
	var teenM model.TeenModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&teenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTeenNotFound
		}

		return nil, errors.Wrap(err, "failed to find teen by ID")
	}

	return toTeenDomain(&teenM), nil
}

// FindTeensByParent retrieves all teens of a parent, oldest first.
func (repo *teenRepository) FindTeensByParent(ctx context.Context, parentID uuid.UUID) ([]*entity.Teen, error) {
	var teenModels []*model.TeenModel

	if err := repo.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("created_at ASC").
		Find(&teenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find teens by parent")
	}

	teens := make([]*entity.Teen, 0, len(teenModels))
	for _, teenM := range teenModels {
		teens = append(teens, toTeenDomain(teenM))
	}

	return teens, nil
}

// --- Mapper Functions ---

func toTeenDomain(data *model.TeenModel) *entity.Teen {
	if data == nil {
		return nil
	}

	return &entity.Teen{
		ID:               data.ID,
		ParentID:         data.ParentID,
		Name:             data.Name,
		DeviceID:         data.DeviceID,
		PhoneNumber:      data.PhoneNumber,
		Age:              data.Age,
		ScreenTimeLimits: data.ScreenTimeLimits,
		BedtimeSchedule:  data.BedtimeSchedule,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromTeenDomain(data *entity.Teen) *model.TeenModel {
	if data == nil {
		return nil
	}

	limits := data.ScreenTimeLimits
	if limits == nil {
		limits = map[string]int{}
	}
	schedule := data.BedtimeSchedule
	if schedule == nil {
		schedule = map[string]string{}
	}

	return &model.TeenModel{
		ID:               data.ID,
		ParentID:         data.ParentID,
		Name:             data.Name,
		DeviceID:         data.DeviceID,
		PhoneNumber:      data.PhoneNumber,
		Age:              data.Age,
		ScreenTimeLimits: limits,
		BedtimeSchedule:  schedule,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
