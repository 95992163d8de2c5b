package geofence

import (
	"math"
	"testing"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFence(name string, lat, lon, radius float64) *entity.Geofence {
	return &entity.Geofence{
		ID:            uuid.New(),
		TeenID:        uuid.New(),
		Name:          name,
		Latitude:      lat,
		Longitude:     lon,
		Radius:        radius,
		Type:          entity.GeofenceTypeSafe,
		NotifyOnEnter: true,
		NotifyOnExit:  true,
	}
}

func TestMatch_SampleAtCenterAlwaysMatches(t *testing.T) {
	for _, radius := range []float64{0, 1, 100, 5000} {
		fence := newFence("Home", 37.7749, -122.4194, radius)

		matched := Match(orb.Point{-122.4194, 37.7749}, []*entity.Geofence{fence})

		require.Len(t, matched, 1)
		assert.Same(t, fence, matched[0])
	}
}

func TestMatch_OutsideRadiusNeverMatches(t *testing.T) {
	fence := newFence("School", 37.7749, -122.4194, 100)

	// 0.001 deg north is 111 m away
	matched := Match(orb.Point{-122.4194, 37.7759}, []*entity.Geofence{fence})

	assert.Empty(t, matched)
}

func TestMatch_BoundaryIsInclusive(t *testing.T) {
	fence := newFence("Park", 0, 0, 111)

	matched := Match(orb.Point{0, 0.001}, []*entity.Geofence{fence})

	assert.Len(t, matched, 1)
}

func TestMatch_PreservesInputOrder(t *testing.T) {
	a := newFence("A", 10, 10, 1000)
	b := newFence("B", 50, 50, 10)
	c := newFence("C", 10.001, 10, 1000)
	d := newFence("D", 10, 10.002, 1000)

	matched := Match(orb.Point{10, 10}, []*entity.Geofence{a, b, c, d})

	assert.Equal(t, []*entity.Geofence{a, c, d}, matched)
}

func TestMatch_EmptyAndDegenerateInput(t *testing.T) {
	assert.Empty(t, Match(orb.Point{0, 0}, nil))
	assert.Empty(t, Match(orb.Point{0, 0}, []*entity.Geofence{nil}))
	assert.Empty(t, Match(orb.Point{math.NaN(), 0}, []*entity.Geofence{newFence("X", 0, 0, 100)}))
	assert.Empty(t, Match(orb.Point{0, 0}, []*entity.Geofence{newFence("Negative", 0, 0, -1)}))
}

func TestEvaluatorMatch_Haversine(t *testing.T) {
	e, err := NewEvaluator(string(ModelHaversine), 0)
	require.NoError(t, err)

	// 0.0009 deg latitude is about 100 m
	fence := newFence("Library", 25.0330, 121.5654, 105)

	assert.Len(t, e.Match(orb.Point{121.5654, 25.0339}, []*entity.Geofence{fence}), 1)
	assert.Empty(t, e.Match(orb.Point{121.5654, 25.0350}, []*entity.Geofence{fence}))
}
