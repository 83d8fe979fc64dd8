package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	p := Point{Latitude: 51.5074, Longitude: -0.1278}
	require.Equal(t, 0.0, DistanceKm(p, p))
}

func TestDistanceKm_OneKilometerEast(t *testing.T) {
	// 0.0089 degrees of longitude at the equator is roughly 990 m.
	a := Point{Latitude: 0, Longitude: 0}
	b := Point{Latitude: 0, Longitude: 0.0089}

	d := DistanceKm(a, b)
	require.InDelta(t, 0.99, d, 0.02)
	require.LessOrEqual(t, d, 1.0)
}

func TestDistanceKm_TwoKilometersEast(t *testing.T) {
	a := Point{Latitude: 0, Longitude: 0}
	b := Point{Latitude: 0, Longitude: 0.02}

	d := DistanceKm(a, b)
	require.InDelta(t, 2.22, d, 0.05)
	require.Greater(t, d, 1.0)
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := Point{Latitude: 10, Longitude: 10}
	b := Point{Latitude: 10.005, Longitude: 10.005}
	require.InDelta(t, DistanceKm(a, b), DistanceKm(b, a), 1e-12)
}

func TestDistanceKm_KnownCities(t *testing.T) {
	// London to Paris is about 344 km.
	london := Point{Latitude: 51.5074, Longitude: -0.1278}
	paris := Point{Latitude: 48.8566, Longitude: 2.3522}
	require.InDelta(t, 344, DistanceKm(london, paris), 5)
}
