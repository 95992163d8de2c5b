package repository

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrGeofenceNotFound is returned when a geofence is not found.
var ErrGeofenceNotFound = errors.New("geofence not found")

// GeofenceRepository defines geofence persistence.
type GeofenceRepository interface {
	// CreateGeofence persists a new fence.
	CreateGeofence(ctx context.Context, fence *entity.Geofence) error

	// FindGeofenceByID retrieves a fence by ID.
	FindGeofenceByID(ctx context.Context, id uuid.UUID) (*entity.Geofence, error)

	// FindGeofencesByTeen returns the teen's fences ordered by creation time.
	FindGeofencesByTeen(ctx context.Context, teenID uuid.UUID) ([]*entity.Geofence, error)

	// ReplaceGeofence overwrites every mutable field of an existing fence.
	ReplaceGeofence(ctx context.Context, fence *entity.Geofence) error

	// DeleteGeofence removes a fence.
	DeleteGeofence(ctx context.Context, id uuid.UUID) error
}
