package impl

import (
	"io"
	"log/slog"
	"time"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestTeen(parentID uuid.UUID, name string) *entity.Teen {
	return &entity.Teen{
		ID:               uuid.New(),
		ParentID:         parentID,
		Name:             name,
		DeviceID:         "device-" + name,
		ScreenTimeLimits: map[string]int{},
		BedtimeSchedule:  map[string]string{},
		CreatedAt:        time.Now().UTC(),
		UpdatedAt:        time.Now().UTC(),
	}
}

func newTestFence(teenID uuid.UUID, name string, lat, lon, radius float64) *entity.Geofence {
	return &entity.Geofence{
		ID:            uuid.New(),
		TeenID:        teenID,
		Name:          name,
		Latitude:      lat,
		Longitude:     lon,
		Radius:        radius,
		Type:          entity.GeofenceTypeSafe,
		NotifyOnEnter: true,
		NotifyOnExit:  true,
	}
}
