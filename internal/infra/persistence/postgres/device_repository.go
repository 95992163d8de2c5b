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

type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

// deviceRefresh is what a re-registration of the same (parent, device_id) overwrites.
var deviceRefresh = clause.OnConflict{
	Columns:   []clause.Column{{Name: "parent_id"}, {Name: "device_id"}},
	DoUpdates: clause.AssignmentColumns([]string{"fcm_token", "platform", "is_active", "updated_at"}),
}

// UpsertDevice writes device and reads back the stored row, so a refreshed
// registration keeps its original ID and created_at.
func (repo *deviceRepository) UpsertDevice(ctx context.Context, device *entity.ParentDevice) error {
	row := deviceRow(device)

	err := repo.db.WithContext(ctx).
		Clauses(deviceRefresh, clause.Returning{}).
		Create(row).Error
	switch {
	case err == nil:
		*device = *toDeviceEntity(row)

		return nil
	case isForeignKeyConstraintViolation(err):
		return repository.ErrParentNotFound
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
	default:
		return domainerrors.NewStorageError(err, "upsert device")
	}
}

func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.ParentDevice, error) {
	var row model.ParentDeviceModel

	err := repo.db.WithContext(ctx).Take(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrDeviceNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find device")
	}

	return toDeviceEntity(&row), nil
}

func (repo *deviceRepository) FindDevicesByParent(ctx context.Context, parentID uuid.UUID) ([]*entity.ParentDevice, error) {
	return repo.list(ctx, ownedBy(parentID))
}

// FindActiveDevicesByParent returns the devices the push worker may target.
func (repo *deviceRepository) FindActiveDevicesByParent(ctx context.Context, parentID uuid.UUID) ([]*entity.ParentDevice, error) {
	return repo.list(ctx, ownedBy(parentID), activeDevices)
}

func (repo *deviceRepository) DeactivateDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ParentDeviceModel{}).
		Where("id = ?", id).
		Update("is_active", false)

	return deviceWriteResult(result, "deactivate device")
}

func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ParentDeviceModel{}, "id = ?", id)

	return deviceWriteResult(result, "delete device")
}

func (repo *deviceRepository) list(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]*entity.ParentDevice, error) {
	var rows []model.ParentDeviceModel

	if err := repo.db.WithContext(ctx).Scopes(scopes...).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list devices")
	}

	devices := make([]*entity.ParentDevice, len(rows))
	for i := range rows {
		devices[i] = toDeviceEntity(&rows[i])
	}

	return devices, nil
}

func ownedBy(parentID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("parent_id = ?", parentID)
	}
}

func activeDevices(db *gorm.DB) *gorm.DB {
	return db.Where("is_active")
}

func deviceWriteResult(result *gorm.DB, op string) error {
	if result.Error != nil {
		return errors.Wrap(result.Error, op)
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func deviceRow(d *entity.ParentDevice) *model.ParentDeviceModel {
	return &model.ParentDeviceModel{
		ID:        d.ID,
		ParentID:  d.ParentID,
		FCMToken:  d.FCMToken,
		DeviceID:  d.DeviceID,
		Platform:  d.Platform,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toDeviceEntity(m *model.ParentDeviceModel) *entity.ParentDevice {
	return &entity.ParentDevice{
		ID:        m.ID,
		ParentID:  m.ParentID,
		FCMToken:  m.FCMToken,
		DeviceID:  m.DeviceID,
		Platform:  m.Platform,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
