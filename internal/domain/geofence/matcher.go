package geofence

import (
	"guardian/internal/domain/entity"

	"github.com/paulmach/orb"
)

// Match returns the fences containing point using the default evaluator.
func Match(point orb.Point, fences []*entity.Geofence) []*entity.Geofence {
	return DefaultEvaluator().Match(point, fences)
}

// Match returns every fence whose center lies within its radius of point,
// boundary inclusive, in input order. A NaN distance never matches.
func (e *Evaluator) Match(point orb.Point, fences []*entity.Geofence) []*entity.Geofence {
	matched := make([]*entity.Geofence, 0, len(fences))
	for _, fence := range fences {
		if fence == nil {
			continue
		}
		if e.Distance(point, fence.Center()) <= fence.Radius {
			matched = append(matched, fence)
		}
	}

	return matched
}
