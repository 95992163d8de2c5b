package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// GeofenceType classifies a fence for display purposes.
type GeofenceType string

const (
	GeofenceTypeSafe       GeofenceType = "safe"
	GeofenceTypeRestricted GeofenceType = "restricted"
)

// IsValid checks if the geofence type is one of the known values.
func (t GeofenceType) IsValid() bool {
	switch t {
	case GeofenceTypeSafe, GeofenceTypeRestricted:
		return true
	}

	return false
}

// Geofence is a circular region around a center point attached to one teen.
type Geofence struct {
	ID            uuid.UUID    `json:"id"`
	TeenID        uuid.UUID    `json:"teen_id"`
	Name          string       `json:"name"`
	Latitude      float64      `json:"latitude"`
	Longitude     float64      `json:"longitude"`
	Radius        float64      `json:"radius"` // meters
	Type          GeofenceType `json:"type"`
	NotifyOnEnter bool         `json:"notify_on_enter"`
	NotifyOnExit  bool         `json:"notify_on_exit"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// Center returns the fence center as an orb point (lon, lat).
func (g *Geofence) Center() orb.Point {
	return orb.Point{g.Longitude, g.Latitude}
}
