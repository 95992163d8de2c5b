package usecase

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// GeofenceInput is the full definition of a fence, used for create and replace.
// Nil notify flags default to true.
type GeofenceInput struct {
	TeenID        uuid.UUID           `json:"teen_id"`
	Name          string              `json:"name"`
	Latitude      float64             `json:"latitude"`
	Longitude     float64             `json:"longitude"`
	Radius        float64             `json:"radius"`
	Type          entity.GeofenceType `json:"type,omitempty"`
	NotifyOnEnter *bool               `json:"notify_on_enter,omitempty"`
	NotifyOnExit  *bool               `json:"notify_on_exit,omitempty"`
}

// GeofenceUsecase defines the interface for geofence management use cases
type GeofenceUsecase interface {
	CreateGeofence(ctx context.Context, parentID uuid.UUID, input *GeofenceInput) (*entity.Geofence, error)
	ListGeofences(ctx context.Context, parentID, teenID uuid.UUID) ([]*entity.Geofence, error)
	ReplaceGeofence(ctx context.Context, parentID, fenceID uuid.UUID, input *GeofenceInput) (*entity.Geofence, error)
	DeleteGeofence(ctx context.Context, parentID, fenceID uuid.UUID) error
}
