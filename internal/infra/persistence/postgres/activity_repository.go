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
	"gorm.io/gorm/clause"
)

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

// UpsertAppUsage creates or overwrites the record for (teen, package, date)
// and reloads the stored row into usage. created is false when an existing
// record was overwritten.
func (repo *activityRepository) UpsertAppUsage(ctx context.Context, usage *entity.AppUsage) (bool, error) {
	usageM := fromAppUsageDomain(usage)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "teen_id"}, {Name: "package_name"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"app_name", "usage_time", "last_used"}),
		}).
		Create(usageM).Error
	if err != nil {
		return false, domainerrors.NewStorageError(err, "failed to upsert app usage")
	}

	var stored model.AppUsageModel
	if err := repo.db.WithContext(ctx).
		Where("teen_id = ? AND package_name = ? AND date = ?", usage.TeenID, usage.PackageName, usage.Date).
		First(&stored).Error; err != nil {
		return false, errors.Wrap(err, "failed to reload app usage")
	}
	created := stored.ID == usage.ID
	*usage = *toAppUsageDomain(&stored)

	return created, nil
}

// FindAppUsage returns usage records for a teen, optionally for one date.
func (repo *activityRepository) FindAppUsage(ctx context.Context, teenID uuid.UUID, date string) ([]*entity.AppUsage, error) {
	var usageModels []*model.AppUsageModel

	query := repo.db.WithContext(ctx).Where("teen_id = ?", teenID)
	if date != "" {
		query = query.Where("date = ?", date)
	}

	if err := query.Order("date DESC, usage_time DESC").Find(&usageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find app usage")
	}

	usages := make([]*entity.AppUsage, 0, len(usageModels))
	for _, usageM := range usageModels {
		usages = append(usages, toAppUsageDomain(usageM))
	}

	return usages, nil
}

// UpsertAppControl creates or overwrites the control for (teen, package)
// and reloads the stored row into control.
func (repo *activityRepository) UpsertAppControl(ctx context.Context, control *entity.AppControl) (bool, error) {
	controlM := fromAppControlDomain(control)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "teen_id"}, {Name: "package_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_blocked", "time_limit", "updated_at"}),
		}).
		Create(controlM).Error
	if err != nil {
		return false, domainerrors.NewStorageError(err, "failed to upsert app control")
	}

	var stored model.AppControlModel
	if err := repo.db.WithContext(ctx).
		Where("teen_id = ? AND package_name = ?", control.TeenID, control.PackageName).
		First(&stored).Error; err != nil {
		return false, errors.Wrap(err, "failed to reload app control")
	}
	created := stored.ID == control.ID
	*control = *toAppControlDomain(&stored)

	return created, nil
}

// FindAppControls returns all controls for a teen.
func (repo *activityRepository) FindAppControls(ctx context.Context, teenID uuid.UUID) ([]*entity.AppControl, error) {
	var controlModels []*model.AppControlModel

	if err := repo.db.WithContext(ctx).
		Where("teen_id = ?", teenID).
		Order("package_name ASC").
		Find(&controlModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find app controls")
	}

	controls := make([]*entity.AppControl, 0, len(controlModels))
	for _, controlM := range controlModels {
		controls = append(controls, toAppControlDomain(controlM))
	}

	return controls, nil
}

// RecordWebVisit inserts a URL or increments its visit count, then reloads
// the stored row into visit. created is false when the URL was already known.
func (repo *activityRepository) RecordWebVisit(ctx context.Context, visit *entity.WebHistory) (bool, error) {
	visitM := fromWebHistoryDomain(visit)
	if visitM.VisitCount < 1 {
		visitM.VisitCount = 1
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "teen_id"}, {Name: "url"}},
			DoUpdates: clause.Assignments(map[string]any{
				"visit_count": gorm.Expr("web_history.visit_count + 1"),
				"title":       visitM.Title,
				"timestamp":   visitM.Timestamp,
			}),
		}).
		Create(visitM).Error
	if err != nil {
		return false, domainerrors.NewStorageError(err, "failed to record web visit")
	}

	var stored model.WebHistoryModel
	if err := repo.db.WithContext(ctx).
		Where("teen_id = ? AND url = ?", visitM.TeenID, visitM.URL).
		First(&stored).Error; err != nil {
		return false, errors.Wrap(err, "failed to reload web visit")
	}
	created := stored.ID == visit.ID
	*visit = *toWebHistoryDomain(&stored)

	return created, nil
}

// FindWebHistory returns up to limit entries, newest first.
func (repo *activityRepository) FindWebHistory(ctx context.Context, teenID uuid.UUID, limit int) ([]*entity.WebHistory, error) {
	var historyModels []*model.WebHistoryModel

	query := repo.db.WithContext(ctx).
		Where("teen_id = ?", teenID).
		Order("timestamp DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&historyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find web history")
	}

	history := make([]*entity.WebHistory, 0, len(historyModels))
	for _, historyM := range historyModels {
		history = append(history, toWebHistoryDomain(historyM))
	}

	return history, nil
}

// --- Mapper Functions ---

func toAppUsageDomain(data *model.AppUsageModel) *entity.AppUsage {
	return &entity.AppUsage{
		ID:          data.ID,
		TeenID:      data.TeenID,
		AppName:     data.AppName,
		PackageName: data.PackageName,
		UsageTime:   data.UsageTime,
		Date:        data.Date,
		LastUsed:    data.LastUsed,
	}
}

func fromAppUsageDomain(data *entity.AppUsage) *model.AppUsageModel {
	return &model.AppUsageModel{
		ID:          data.ID,
		TeenID:      data.TeenID,
		AppName:     data.AppName,
		PackageName: data.PackageName,
		UsageTime:   data.UsageTime,
		Date:        data.Date,
		LastUsed:    data.LastUsed,
	}
}

func toAppControlDomain(data *model.AppControlModel) *entity.AppControl {
	return &entity.AppControl{
		ID:          data.ID,
		TeenID:      data.TeenID,
		PackageName: data.PackageName,
		IsBlocked:   data.IsBlocked,
		TimeLimit:   data.TimeLimit,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromAppControlDomain(data *entity.AppControl) *model.AppControlModel {
	return &model.AppControlModel{
		ID:          data.ID,
		TeenID:      data.TeenID,
		PackageName: data.PackageName,
		IsBlocked:   data.IsBlocked,
		TimeLimit:   data.TimeLimit,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toWebHistoryDomain(data *model.WebHistoryModel) *entity.WebHistory {
	return &entity.WebHistory{
		ID:         data.ID,
		TeenID:     data.TeenID,
		URL:        data.URL,
		Title:      data.Title,
		VisitCount: data.VisitCount,
		Timestamp:  data.Timestamp,
	}
}

func fromWebHistoryDomain(data *entity.WebHistory) *model.WebHistoryModel {
	return &model.WebHistoryModel{
		ID:         data.ID,
		TeenID:     data.TeenID,
		URL:        data.URL,
		Title:      data.Title,
		VisitCount: data.VisitCount,
		Timestamp:  data.Timestamp,
	}
}
