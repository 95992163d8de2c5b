package repository

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrLocationNotFound is returned when a teen has no location samples.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository stores location samples. Samples are never updated.
type LocationRepository interface {
	// CreateLocation appends a sample.
	CreateLocation(ctx context.Context, sample *entity.LocationSample) error

	// FindLocationsByTeen returns up to limit samples, newest first.
	FindLocationsByTeen(ctx context.Context, teenID uuid.UUID, limit int) ([]*entity.LocationSample, error)

	// FindLatestLocation returns the newest sample by timestamp.
	FindLatestLocation(ctx context.Context, teenID uuid.UUID) (*entity.LocationSample, error)
}
