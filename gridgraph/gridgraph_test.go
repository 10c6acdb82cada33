package gridgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPathfinder_DimensionMismatch(t *testing.T) {
	_, err := NewPathfinder(3, 3, make([]float32, 8), DefaultPathfinderOptions())
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestNewPathfinderFromGrid_Errors(t *testing.T) {
	_, err := NewPathfinderFromGrid(nil, DefaultPathfinderOptions())
	assert.ErrorIs(t, err, ErrEmptyGrid, "nil grid")

	_, err = NewPathfinderFromGrid([][]float32{{1}, {}}, DefaultPathfinderOptions())
	assert.ErrorIs(t, err, ErrNonRectangular, "ragged grid")
}

func TestNewPathfinderFromGrid_Flattens(t *testing.T) {
	grid := [][]float32{
		{1, 2, 3},
		{4, 5, 6},
	}
	pf, err := NewPathfinderFromGrid(grid, DefaultPathfinderOptions())
	require.NoError(t, err)
	require.Equal(t, 3, pf.Width())
	require.Equal(t, 2, pf.Height())
	assert.Equal(t, float32(6), pf.cost[pf.index(2, 1)])
}

func TestInBounds(t *testing.T) {
	pf, err := NewPathfinder(3, 2, make([]float32, 6), DefaultPathfinderOptions())
	require.NoError(t, err)

	valid := []Point{{0, 0}, {2, 1}, {1, 1}}
	for _, p := range valid {
		assert.True(t, pf.InBounds(p.X, p.Y), "InBounds(%d,%d)", p.X, p.Y)
	}
	invalid := []Point{{-1, 0}, {3, 0}, {1, 2}}
	for _, p := range invalid {
		assert.False(t, pf.InBounds(p.X, p.Y), "InBounds(%d,%d)", p.X, p.Y)
	}
}

func TestCoordinateRoundTrip(t *testing.T) {
	pf, err := NewPathfinder(4, 5, make([]float32, 20), DefaultPathfinderOptions())
	require.NoError(t, err)

	for y := 0; y < 5; y++ {
		for x := 0; x < 4; x++ {
			idx := pf.index(x, y)
			gx, gy := pf.Coordinate(idx)
			assert.Equal(t, x, gx, "Coordinate(index(%d,%d)).X", x, y)
			assert.Equal(t, y, gy, "Coordinate(index(%d,%d)).Y", x, y)
		}
	}
}

func TestDispose(t *testing.T) {
	pf, err := NewPathfinder(3, 3, make([]float32, 9), DefaultPathfinderOptions())
	require.NoError(t, err)

	pf.Dispose()
	assert.Nil(t, pf.predecessor)
	assert.Nil(t, pf.distance)
	assert.Nil(t, pf.openSet)
	assert.Nil(t, pf.cost)
}
