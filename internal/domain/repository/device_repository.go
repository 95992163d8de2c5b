package repository

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// UpsertDevice registers a parent's device, refreshing the token and
	// reactivating it when the (parent, device_id) pair already exists.
	UpsertDevice(ctx context.Context, device *entity.ParentDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.ParentDevice, error)

	// FindDevicesByParent retrieves all devices for a parent (including inactive).
	FindDevicesByParent(ctx context.Context, parentID uuid.UUID) ([]*entity.ParentDevice, error)

	// FindActiveDevicesByParent retrieves all active devices for a parent.
	FindActiveDevicesByParent(ctx context.Context, parentID uuid.UUID) ([]*entity.ParentDevice, error)

	// DeactivateDevice marks a device inactive, used when FCM rejects its token.
	DeactivateDevice(ctx context.Context, id uuid.UUID) error

	// DeleteDevice removes a device by its ID.
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
