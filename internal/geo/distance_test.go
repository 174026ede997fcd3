package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myhalal/directory/internal/model"
)

func TestHaversine_KnownDistances(t *testing.T) {
	nyc := model.Coordinate{Lat: 40.7128, Lng: -74.0060}
	philly := model.Coordinate{Lat: 39.9526, Lng: -75.1652}

	// NYC to Philadelphia is roughly 130 km.
	d := Haversine(nyc, philly)
	assert.InDelta(t, 130.0, d, 5.0)
}

func TestHaversine_ZeroDistance(t *testing.T) {
	p := model.Coordinate{Lat: 41.8781, Lng: -87.6298}
	assert.InDelta(t, 0.0, Haversine(p, p), 1e-9)
}

func TestHaversine_Symmetric(t *testing.T) {
	a := model.Coordinate{Lat: 33.749, Lng: -84.388}
	b := model.Coordinate{Lat: 29.7604, Lng: -95.3698}
	assert.InDelta(t, Haversine(a, b), Haversine(b, a), 1e-9)
}

func TestHaversine_InvalidCoordinates(t *testing.T) {
	good := model.Coordinate{Lat: 40, Lng: -74}
	cases := []model.Coordinate{
		{Lat: math.NaN(), Lng: 0},
		{Lat: 0, Lng: math.Inf(1)},
		{Lat: 91, Lng: 0},
		{Lat: 0, Lng: -181},
	}
	for _, bad := range cases {
		assert.True(t, math.IsInf(Haversine(good, bad), 1))
		assert.True(t, math.IsInf(Haversine(bad, good), 1))
	}
}

func TestNearby_InclusiveBoundary(t *testing.T) {
	origin := model.Coordinate{Lat: 0, Lng: 0}

	// One degree of longitude at the equator, near the 100 km boundary.
	degPerKm := 180.0 / (math.Pi * 6371.0)
	edge := &model.Place{ID: 1, Name: "edge", Lat: 0, Lng: 100.0 * degPerKm}
	beyond := &model.Place{ID: 2, Name: "past", Lat: 0, Lng: 100.5 * degPerKm}
	inside := &model.Place{ID: 3, Name: "near", Lat: 0, Lng: 10.0 * degPerKm}

	// Use the edge place's true distance as the radius so the boundary
	// comparison is exact.
	radius := Haversine(origin, model.Coordinate{Lat: edge.Lat, Lng: edge.Lng})
	assert.InDelta(t, 100.0, radius, 1e-6)

	matches := Nearby(origin, []*model.Place{edge, beyond, inside}, radius)

	require.Len(t, matches, 2)
	assert.Equal(t, int64(1), matches[0].Place.ID, "boundary distance is included")
	assert.Equal(t, int64(3), matches[1].Place.ID)
}

func TestNearby_PreservesInputOrder(t *testing.T) {
	origin := model.Coordinate{Lat: 40.0, Lng: -75.0}
	places := []*model.Place{
		{ID: 10, Lat: 40.5, Lng: -75.0},
		{ID: 20, Lat: 40.1, Lng: -75.0},
		{ID: 30, Lat: 40.3, Lng: -75.0},
	}
	matches := Nearby(origin, places, 100.0)
	require.Len(t, matches, 3)
	assert.Equal(t, int64(10), matches[0].Place.ID)
	assert.Equal(t, int64(20), matches[1].Place.ID)
	assert.Equal(t, int64(30), matches[2].Place.ID)
}

func TestNearby_InvalidPlaceSkipped(t *testing.T) {
	origin := model.Coordinate{Lat: 40.0, Lng: -75.0}
	places := []*model.Place{
		{ID: 1, Lat: math.NaN(), Lng: -75.0},
		{ID: 2, Lat: 40.0, Lng: -75.0},
	}
	matches := Nearby(origin, places, 100.0)
	require.Len(t, matches, 1)
	assert.Equal(t, int64(2), matches[0].Place.ID)
}

func TestNearby_Empty(t *testing.T) {
	assert.Empty(t, Nearby(model.Coordinate{}, nil, 100.0))
}
