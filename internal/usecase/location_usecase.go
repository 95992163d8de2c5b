package usecase

import (
	"context"
	"time"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// IngestLocationInput is one position report from a teen's device
type IngestLocationInput struct {
	TeenID    uuid.UUID  `json:"teen_id"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Accuracy  *float64   `json:"accuracy,omitempty"`
	Address   *string    `json:"address,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// LocationUsecase defines the interface for location use cases
type LocationUsecase interface {
	// IngestLocation stores the sample, evaluates the teen's geofences and
	// dispatches an alert for every notifiable transition. Only a missing
	// teen or a failure to store the sample is reported to the caller.
	IngestLocation(ctx context.Context, input *IngestLocationInput) (*entity.LocationSample, error)

	// GetLocationHistory returns up to limit samples, newest first
	GetLocationHistory(ctx context.Context, parentID, teenID uuid.UUID, limit int) ([]*entity.LocationSample, error)

	// GetCurrentLocation returns the newest sample
	GetCurrentLocation(ctx context.Context, parentID, teenID uuid.UUID) (*entity.LocationSample, error)
}
