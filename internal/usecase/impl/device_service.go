package impl

import (
	"context"
	"strings"
	"time"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers a new device or refreshes the token of an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, parentID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.ParentDevice, error) {
	now := time.Now().UTC()
	device := &entity.ParentDevice{
		ID:        uuid.New(),
		ParentID:  parentID,
		FCMToken:  deviceInfo.FCMToken,
		DeviceID:  deviceInfo.DeviceID,
		Platform:  strings.ToLower(deviceInfo.Platform),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.deviceRepo.UpsertDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrParentNotFound) {
			return nil, domainerrors.ErrParentNotFound
		}

		return nil, storageError(err, "failed to register device")
	}

	return device, nil
}

// GetParentDevices retrieves all active devices for a parent
func (s *deviceService) GetParentDevices(ctx context.Context, parentID uuid.UUID) ([]*entity.ParentDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByParent(ctx, parentID)
	if err != nil {
		return nil, storageError(err, "failed to find active devices by parent")
	}

	return devices, nil
}

// RemoveDevice deletes a device after verifying ownership
func (s *deviceService) RemoveDevice(ctx context.Context, parentID, deviceID uuid.UUID) error {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return storageError(err, "failed to find device by ID")
	}

	// Another parent's device is reported as missing.
	if device.ParentID != parentID {
		return domainerrors.ErrDeviceNotFound
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return storageError(err, "failed to delete device")
	}

	return nil
}
