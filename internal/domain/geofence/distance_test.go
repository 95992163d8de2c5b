package geofence

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceMeters_SymmetricAndZeroOnSamePoint(t *testing.T) {
	points := []orb.Point{
		{-122.4194, 37.7749},
		{121.5654, 25.0330},
		{0, 0},
		{-180, -90},
		{179.9999, 89.9999},
	}

	for _, a := range points {
		assert.Zero(t, DistanceMeters(a, a))
		for _, b := range points {
			ab := DistanceMeters(a, b)
			assert.Equal(t, ab, DistanceMeters(b, a))
			assert.GreaterOrEqual(t, ab, 0.0)
			assert.False(t, math.IsInf(ab, 0) || math.IsNaN(ab))
		}
	}
}

func TestDistanceMeters_UsesDegreeConversion(t *testing.T) {
	a := orb.Point{0, 0}
	b := orb.Point{0, 0.001}

	assert.InDelta(t, 111.0, DistanceMeters(a, b), 1e-9)
	assert.InDelta(t, MetersPerDegree, DistanceMeters(orb.Point{10, 10}, orb.Point{11, 10}), 1e-6)
}

func TestNewEvaluator(t *testing.T) {
	t.Run("defaults to planar", func(t *testing.T) {
		e, err := NewEvaluator("", 0)
		require.NoError(t, err)
		assert.Equal(t, ModelPlanar, e.Model())
		assert.InDelta(t, MetersPerDegree, e.Distance(orb.Point{0, 0}, orb.Point{1, 0}), 1e-6)
	})

	t.Run("custom meters per degree", func(t *testing.T) {
		e, err := NewEvaluator("planar", 100000)
		require.NoError(t, err)
		assert.InDelta(t, 100000.0, e.Distance(orb.Point{0, 0}, orb.Point{0, 1}), 1e-6)
	})

	t.Run("haversine", func(t *testing.T) {
		e, err := NewEvaluator("haversine", 0)
		require.NoError(t, err)
		// orb uses the WGS84 equatorial radius for its sphere
		assert.InDelta(t, 111319.49, e.Distance(orb.Point{0, 0}, orb.Point{0, 1}), 1)
	})

	t.Run("unknown model", func(t *testing.T) {
		_, err := NewEvaluator("manhattan", 0)
		assert.ErrorIs(t, err, ErrUnknownModel)
	})
}
