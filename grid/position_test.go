package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsearch/grid"
)

// TestPosition_Arithmetic covers Add, Sub and Distance.
func TestPosition_Arithmetic(t *testing.T) {
	a, b := grid.Pos(3, -2), grid.Pos(-1, 4)
	assert.Equal(t, grid.Pos(2, 2), a.Add(b))
	assert.Equal(t, grid.Pos(4, -6), a.Sub(b))
	assert.Equal(t, 10, a.Distance(b))
	assert.Equal(t, a.Distance(b), b.Distance(a))
	assert.Zero(t, a.Distance(a))
}

// TestNeighbors4 checks order and the negative-coordinate filter.
func TestNeighbors4(t *testing.T) {
	require.Equal(t,
		[]grid.Position{{2, 1}, {0, 1}, {1, 0}, {1, 2}},
		grid.Pos(1, 1).Neighbors4())
	require.Equal(t,
		[]grid.Position{{1, 0}, {0, 1}},
		grid.Pos(0, 0).Neighbors4())
}

// TestNeighbors8 checks that diagonals are included and negatives dropped.
func TestNeighbors8(t *testing.T) {
	require.Len(t, grid.Pos(5, 5).Neighbors8(), 8)
	require.Equal(t,
		[]grid.Position{{1, 0}, {0, 1}, {1, 1}},
		grid.Pos(0, 0).Neighbors8())
	for _, n := range grid.Pos(5, 5).Neighbors8() {
		assert.LessOrEqual(t, n.Distance(grid.Pos(5, 5)), 2)
	}
}

// TestNeighbors_Dispatch routes on Connectivity.
func TestNeighbors_Dispatch(t *testing.T) {
	p := grid.Pos(4, 4)
	assert.Equal(t, p.Neighbors4(), p.Neighbors(grid.Conn4))
	assert.Equal(t, p.Neighbors8(), p.Neighbors(grid.Conn8))
}

// TestPosition_String uses the "(x, y)" form.
func TestPosition_String(t *testing.T) {
	assert.Equal(t, "(3, -7)", grid.Pos(3, -7).String())
}

// TestConnectivity_String names both modes.
func TestConnectivity_String(t *testing.T) {
	assert.Equal(t, "conn4", grid.Conn4.String())
	assert.Equal(t, "conn8", grid.Conn8.String())
}
