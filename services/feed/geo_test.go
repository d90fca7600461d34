package feed

import (
	"math"
	"testing"

	"joino/models"

	"github.com/stretchr/testify/require"
)

func TestHaversineZeroDistance(t *testing.T) {
	require.Equal(t, 0.0, Haversine(30.0444, 31.2357, 30.0444, 31.2357))
}

func TestHaversineKnownDistance(t *testing.T) {
	// Cairo to Alexandria is roughly 180 km as the crow flies.
	d := Haversine(30.0444, 31.2357, 31.2001, 29.9187)
	require.InDelta(t, 180, d, 5)
}

func TestHaversineSymmetry(t *testing.T) {
	a := Haversine(30.0, 31.0, 31.2, 29.9)
	b := Haversine(31.2, 29.9, 30.0, 31.0)
	require.InDelta(t, a, b, 1e-9)
}

func TestDistanceToMissingCoordinates(t *testing.T) {
	origin := models.GeoPoint{Latitude: 30, Longitude: 31}
	ev := makeEvent("e1", "2025-06-10")
	require.True(t, math.IsInf(distanceTo(origin, &ev), 1))
}

func TestDistanceToWithCoordinates(t *testing.T) {
	origin := models.GeoPoint{Latitude: 30, Longitude: 31}
	ev := makeEvent("e1", "2025-06-10", withCoords(30.001, 31.001))
	require.Less(t, distanceTo(origin, &ev), 0.2)
}
