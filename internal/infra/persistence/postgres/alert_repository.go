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

type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// CreateAlert appends an alert.
func (repo *alertRepository) CreateAlert(ctx context.Context, alert *entity.Alert) error {
	alertM := fromAlertDomain(alert)

	if err := repo.db.WithContext(ctx).Create(alertM).Error; err != nil {
		return domainerrors.NewStorageError(err, "failed to create alert")
	}

	alert.ID = alertM.ID
	alert.CreatedAt = alertM.CreatedAt

	return nil
}

// FindAlertsByParent returns up to limit alerts, newest first.
func (repo *alertRepository) FindAlertsByParent(ctx context.Context, parentID uuid.UUID, unreadOnly bool, limit int) ([]*entity.Alert, error) {
	var alertModels []*model.AlertModel

	query := repo.db.WithContext(ctx).
		Where("parent_id = ?", parentID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}
	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alerts by parent")
	}

	alerts := make([]*entity.Alert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, toAlertDomain(alertM))
	}

	return alerts, nil
}

// FindUnreadAlertsByTeen returns up to limit unread alerts for one teen of a parent, newest first.
func (repo *alertRepository) FindUnreadAlertsByTeen(ctx context.Context, parentID, teenID uuid.UUID, limit int) ([]*entity.Alert, error) {
	var alertModels []*model.AlertModel

	query := repo.db.WithContext(ctx).
		Where("parent_id = ? AND teen_id = ? AND is_read = ?", parentID, teenID, false).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find unread alerts by teen")
	}

	alerts := make([]*entity.Alert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, toAlertDomain(alertM))
	}

	return alerts, nil
}

// MarkAlertRead sets is_read on an alert owned by the parent. The update
// matches read alerts too, so repeating it is not an error.
func (repo *alertRepository) MarkAlertRead(ctx context.Context, parentID, alertID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Where("id = ? AND parent_id = ?", alertID, parentID).
		Update("is_read", true)

	if result.Error != nil {
		return domainerrors.NewStorageError(result.Error, "failed to mark alert read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAlertNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAlertDomain(data *model.AlertModel) *entity.Alert {
	if data == nil {
		return nil
	}

	return &entity.Alert{
		ID:        data.ID,
		ParentID:  data.ParentID,
		TeenID:    data.TeenID,
		Type:      entity.AlertType(data.Type),
		Message:   data.Message,
		IsRead:    data.IsRead,
		CreatedAt: data.CreatedAt,
	}
}

func fromAlertDomain(data *entity.Alert) *model.AlertModel {
	if data == nil {
		return nil
	}

	return &model.AlertModel{
		ID:        data.ID,
		ParentID:  data.ParentID,
		TeenID:    data.TeenID,
		Type:      string(data.Type),
		Message:   data.Message,
		IsRead:    data.IsRead,
		CreatedAt: data.CreatedAt,
	}
}
