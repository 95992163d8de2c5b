// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// parentRepository implements the repository.ParentRepository interface.
type parentRepository struct {
	db *gorm.DB
}

// NewParentRepository is the constructor for parentRepository.
func NewParentRepository(db *gorm.DB) repository.ParentRepository {
	return &parentRepository{
		db: db,
	}
}

// CreateParent persists a new parent account.
func (repo *parentRepository) CreateParent(ctx context.Context, parent *entity.Parent) error {
	parentM := fromParentDomain(parent)

	if err := repo.db.WithContext(ctx).Create(parentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewStorageError(err, "failed to create parent")
	}

	parent.ID = parentM.ID
	parent.CreatedAt = parentM.CreatedAt
	parent.UpdatedAt = parentM.UpdatedAt

	return nil
}

// FindParentByID retrieves a parent by its unique ID.
func (repo *parentRepository) FindParentByID(ctx context.Context, id uuid.UUID) (*entity.Parent, error) {
	var parentM model.ParentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&parentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrParentNotFound
		}

		return nil, errors.Wrap(err, "failed to find parent by ID")
	}

	return toParentDomain(&parentM), nil
}

// FindParentByEmail retrieves a parent by email.
func (repo *parentRepository) FindParentByEmail(ctx context.Context, email string) (*entity.Parent, error) {
	var parentM model.ParentModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&parentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrParentNotFound
		}

		return nil, errors.Wrap(err, "failed to find parent by email")
	}

	return toParentDomain(&parentM), nil
}

// --- Mapper Functions ---

func toParentDomain(data *model.ParentModel) *entity.Parent {
	if data == nil {
		return nil
	}

	return &entity.Parent{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromParentDomain(data *entity.Parent) *model.ParentModel {
	if data == nil {
		return nil
	}

	return &model.ParentModel{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
