package usecase

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo is what the parent app reports when it registers for pushes.
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

type DeviceUsecase interface {
	RegisterDevice(ctx context.Context, parentID uuid.UUID, deviceInfo *DeviceInfo) (*entity.ParentDevice, error)

	// GetParentDevices lists only active devices.
	GetParentDevices(ctx context.Context, parentID uuid.UUID) ([]*entity.ParentDevice, error)

	// RemoveDevice answers ErrDeviceNotFound for another parent's device.
	RemoveDevice(ctx context.Context, parentID, deviceID uuid.UUID) error
}
