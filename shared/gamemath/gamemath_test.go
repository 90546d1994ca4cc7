package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangesTouch(t *testing.T) {
	touching, gap := RangesTouch(0, 10, 11)
	assert.True(t, touching)
	assert.Zero(t, gap)

	touching, gap = RangesTouch(0, 10, 10)
	assert.True(t, touching)
	assert.Zero(t, gap)

	touching, gap = RangesTouch(15, 0, 10)
	assert.False(t, touching)
	assert.InDelta(t, 5.0, gap, 1e-9)

	assert.InDelta(t, 5.0, DistanceToContact(-15, 0, 10), 1e-9)
}

func TestDriftTowards(t *testing.T) {
	assert.Equal(t, 3.0, DriftTowards(10, 0, 3))
	assert.Equal(t, 10.0, DriftTowards(10, 9, 3))
	assert.Equal(t, 7.0, DriftTowards(0, 10, 3))
	assert.Equal(t, 0.0, DriftTowards(0, 1, 3))
	assert.Equal(t, 4.0, DriftTowards(4, 4, 3))
}

func TestSnapToGrid(t *testing.T) {
	assert.Equal(t, 11.0, SnapToGrid(15, 22, 11))
	assert.Equal(t, 33.0, SnapToGrid(23, 22, 11))
	assert.Equal(t, 2, CellOf(56, 22, 11))
	assert.Equal(t, 55.0, CellCenter(2, 22, 11))
}

func TestSignAndClamp(t *testing.T) {
	assert.Equal(t, -1.0, Sign(-0.2))
	assert.Equal(t, 0.0, Sign(0))
	assert.Equal(t, 1.0, Sign(7))
	assert.Equal(t, 5.0, ClampSpeed(9, 5))
	assert.Equal(t, -5.0, ClampSpeed(-9, 5))
}
