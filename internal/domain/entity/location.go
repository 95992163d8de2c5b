package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// LocationSample is one position report from a teen's device. Samples are
// append-only and may arrive out of order.
type LocationSample struct {
	ID        uuid.UUID `json:"id"`
	TeenID    uuid.UUID `json:"teen_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  *float64  `json:"accuracy,omitempty"` // meters
	Address   *string   `json:"address,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Point returns the sample position as an orb point (lon, lat).
func (s *LocationSample) Point() orb.Point {
	return orb.Point{s.Longitude, s.Latitude}
}
