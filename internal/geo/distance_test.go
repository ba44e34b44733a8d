package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKmZeroForSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, HaversineKm(51.5074, -0.1278, 51.5074, -0.1278))
	assert.Equal(t, 0.0, HaversineKm(0, 0, 0, 0))
}

func TestHaversineKmSymmetry(t *testing.T) {
	cases := [][4]float64{
		{51.5074, -0.1278, 48.8566, 2.3522},
		{-33.8688, 151.2093, 40.7128, -74.0060},
		{12.9716, 77.5946, 28.7041, 77.1025},
	}
	for _, cs := range cases {
		ab := HaversineKm(cs[0], cs[1], cs[2], cs[3])
		ba := HaversineKm(cs[2], cs[3], cs[0], cs[1])
		assert.InDelta(t, ab, ba, 1e-9)
	}
}

func TestHaversineKmKnownDistances(t *testing.T) {
	// London to Paris is roughly 344 km
	assert.InDelta(t, 344, HaversineKm(51.5074, -0.1278, 48.8566, 2.3522), 5)
	// One degree of latitude at the equator is roughly 111 km
	assert.InDelta(t, 111.2, HaversineKm(0, 0, 1, 0), 1)
}

func TestHaversineKmOutOfRangeDoesNotPanic(t *testing.T) {
	// Inputs outside valid ranges are not validated and must not panic
	assert.NotPanics(t, func() {
		_ = HaversineKm(200, 500, -300, 720)
	})
}
