package service

import (
	"context"

	"guardian/internal/domain/entity"
	"guardian/internal/domain/geofence"

	"github.com/google/uuid"
)

// OccupancyTracker turns the fences matched by one sample into the
// transitions that should produce alerts.
type OccupancyTracker interface {
	// Transitions returns the notifiable transitions for a sample, given the
	// teen's full fence set and the subset containing the sample.
	Transitions(ctx context.Context, teenID uuid.UUID, fences, matched []*entity.Geofence) ([]geofence.Transition, error)

	// Forget drops any occupancy state held for a fence.
	Forget(ctx context.Context, teenID, fenceID uuid.UUID) error
}
