// Package geofence evaluates location samples against circular geofences.
package geofence

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
)

// MetersPerDegree converts a planar distance in degrees to meters. Latitude
// and longitude degrees are treated alike, which overestimates east-west
// distances away from the equator.
const MetersPerDegree = 111000.0

// Model names a distance computation.
type Model string

const (
	ModelPlanar    Model = "planar"
	ModelHaversine Model = "haversine"
)

// ErrUnknownModel is returned for an unsupported distance model name.
var ErrUnknownModel = errors.New("unknown distance model")

// DistanceMeters returns the flat-earth distance between two points in
// meters. It is symmetric and zero for identical points.
func DistanceMeters(a, b orb.Point) float64 {
	return planar.Distance(a, b) * MetersPerDegree
}

// Evaluator computes distances with a configured model.
type Evaluator struct {
	model           Model
	metersPerDegree float64
}

// NewEvaluator builds an evaluator. An empty model selects planar and a
// non-positive metersPerDegree selects MetersPerDegree.
func NewEvaluator(model string, metersPerDegree float64) (*Evaluator, error) {
	m := Model(model)
	if m == "" {
		m = ModelPlanar
	}
	if m != ModelPlanar && m != ModelHaversine {
		return nil, errors.Wrapf(ErrUnknownModel, "model %q", model)
	}
	if metersPerDegree <= 0 {
		metersPerDegree = MetersPerDegree
	}

	return &Evaluator{model: m, metersPerDegree: metersPerDegree}, nil
}

// DefaultEvaluator returns the planar evaluator with MetersPerDegree.
func DefaultEvaluator() *Evaluator {
	return &Evaluator{model: ModelPlanar, metersPerDegree: MetersPerDegree}
}

// Model returns the configured model.
func (e *Evaluator) Model() Model {
	return e.model
}

// Distance returns the distance between a and b in meters.
func (e *Evaluator) Distance(a, b orb.Point) float64 {
	if e.model == ModelHaversine {
		return geo.DistanceHaversine(a, b)
	}

	return planar.Distance(a, b) * e.metersPerDegree
}
