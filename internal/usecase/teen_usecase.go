package usecase

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTeenInput represents the input for adding a monitored teen
type CreateTeenInput struct {
	Name             string            `json:"name"`
	DeviceID         string            `json:"device_id"`
	PhoneNumber      *string           `json:"phone_number,omitempty"`
	Age              *int              `json:"age,omitempty"`
	ScreenTimeLimits map[string]int    `json:"screen_time_limits,omitempty"`
	BedtimeSchedule  map[string]string `json:"bedtime_schedule,omitempty"`
}

// TeenUsecase defines the interface for teen management use cases
type TeenUsecase interface {
	CreateTeen(ctx context.Context, parentID uuid.UUID, input *CreateTeenInput) (*entity.Teen, error)
	ListTeens(ctx context.Context, parentID uuid.UUID) ([]*entity.Teen, error)

	// GetTeen returns the teen if it belongs to the parent, ErrTeenNotFound otherwise
	GetTeen(ctx context.Context, parentID, teenID uuid.UUID) (*entity.Teen, error)

	// GetPairingQR renders the QR code a teen's device scans to pair
	GetPairingQR(ctx context.Context, parentID, teenID uuid.UUID) ([]byte, error)
}
