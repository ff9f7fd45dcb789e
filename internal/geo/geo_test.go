package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Distance(t *testing.T) {
	t.Run("distance to self is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, Distance(40.4168, -3.7038, 40.4168, -3.7038))
	})

	t.Run("symmetric", func(t *testing.T) {
		d1 := Distance(40.4168, -3.7038, 41.3874, 2.1686)
		d2 := Distance(41.3874, 2.1686, 40.4168, -3.7038)
		assert.Equal(t, d1, d2)
	})

	t.Run("quarter great-circle", func(t *testing.T) {
		// (0,0) to (0,90) spans a quarter of the equator.
		assert.InDelta(t, 10007.54, Distance(0, 0, 0, 90), 0.01)
	})

	t.Run("short distance", func(t *testing.T) {
		assert.InDelta(t, 1.11, Distance(0, 0, 0, 0.01), 0.01)
	})

	t.Run("rounded to two decimals", func(t *testing.T) {
		d := Distance(40.4168, -3.7038, 41.3874, 2.1686)
		assert.InDelta(t, math.Round(d*100), d*100, 1e-9)
	})
}

func Test_IsWithinRadius(t *testing.T) {
	assert.True(t, IsWithinRadius(0, 0, 0, 0.01, 5.0))
	assert.False(t, IsWithinRadius(0, 0, 0, 1, 5.0))

	// boundary is inclusive
	assert.True(t, IsWithinRadius(0, 0, 0, 0.01, 1.11))
}

func Test_IsValidCoordinate(t *testing.T) {
	assert.True(t, IsValidCoordinate(0, 0))
	assert.True(t, IsValidCoordinate(-90, -180))
	assert.True(t, IsValidCoordinate(90, 180))

	assert.False(t, IsValidCoordinate(90.1, 0))
	assert.False(t, IsValidCoordinate(-90.1, 0))
	assert.False(t, IsValidCoordinate(0, 180.1))
	assert.False(t, IsValidCoordinate(0, -180.1))
}
