package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grid2d/grid"
)

// TestRotateExample checks the 2×3 reference rotations.
func TestRotateExample(t *testing.T) {
	g := MustGrid(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	cw := g.RotatedCW()
	requireCells(t, cw, [][]int{{4, 1}, {5, 2}, {6, 3}})

	ccw := g.RotatedCCW()
	requireCells(t, ccw, [][]int{{3, 6}, {2, 5}, {1, 4}})

	// Copy mode leaves the receiver alone.
	requireCells(t, g, [][]int{{1, 2, 3}, {4, 5, 6}})

	g.RotateCW()
	requireCells(t, g, [][]int{{4, 1}, {5, 2}, {6, 3}})
}

// TestRotateGroupOfOrderFour: four clockwise turns are the identity, as is CW then CCW.
func TestRotateGroupOfOrderFour(t *testing.T) {
	shapes := [][2]int{{1, 1}, {1, 4}, {3, 1}, {2, 3}, {4, 4}, {3, 5}}
	for _, sh := range shapes {
		g := grid.New[int](sh[0], sh[1])
		for i := range g.Backing() {
			g.Backing()[i] = i + 1
		}
		orig := g.Clone()

		for i := 0; i < 4; i++ {
			g.RotateCW()
		}
		require.True(t, g.Equal(orig), "4×CW on %dx%d", sh[0], sh[1])

		g.RotateCW()
		g.RotateCCW()
		require.True(t, g.Equal(orig), "CW+CCW on %dx%d", sh[0], sh[1])
	}
}

// TestRotateDispatch covers Rotate/Rotated and direction tokens.
func TestRotateDispatch(t *testing.T) {
	g := MustGrid(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	out, err := g.Rotated(grid.CCW)
	require.NoError(t, err)
	requireCells(t, out, [][]int{{3, 6}, {2, 5}, {1, 4}})

	for _, tok := range []any{"cw", 0, grid.CW, int64(0)} {
		dir, err := grid.ParseDirection(tok)
		require.NoError(t, err, "%v", tok)
		assert.Equal(t, grid.CW, dir)
	}
	for _, tok := range []any{"ccw", 1, grid.CCW, float64(1)} {
		dir, err := grid.ParseDirection(tok)
		require.NoError(t, err, "%v", tok)
		assert.Equal(t, grid.CCW, dir)
	}
	for _, tok := range []any{"CW", "left", 2, -1, 0.5, nil, true, grid.Direction(7)} {
		_, err := grid.ParseDirection(tok)
		require.ErrorIs(t, err, grid.ErrInvalidInput, "%v", tok)
	}

	require.ErrorIs(t, g.Rotate(grid.Direction(2)), grid.ErrInvalidInput)
	_, err = g.Rotated(grid.Direction(-1))
	require.ErrorIs(t, err, grid.ErrInvalidInput)
	requireCells(t, g, [][]int{{1, 2, 3}, {4, 5, 6}})

	require.NoError(t, g.Rotate(grid.CW))
	requireCells(t, g, [][]int{{4, 1}, {5, 2}, {6, 3}})
	assert.Equal(t, "cw", grid.CW.String())
	assert.Equal(t, "ccw", grid.CCW.String())
}
