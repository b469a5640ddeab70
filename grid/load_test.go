package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grid2d/grid"
)

// TestLoadNestedRoundTrip: Load(nested) then Nested() reproduces the input.
func TestLoadNestedRoundTrip(t *testing.T) {
	in := grid.Nested[int]{{1, 2, 3}, {4, 5, 6}}
	g := grid.New[int](1, 1)

	require.NoError(t, g.Load(2, 3, in))
	assert.Equal(t, in, g.Nested())

	// The input is copied, never retained.
	in[0][0] = 100
	v, err := g.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

// TestLoadFlatRoundTrip: Backing() then Load(flat) reproduces the original order.
func TestLoadFlatRoundTrip(t *testing.T) {
	src := MustGrid(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	flat := append(grid.Flat[int](nil), src.Backing()...)

	dst := grid.New[int](3, 3)
	require.NoError(t, dst.Load(2, 3, flat))
	assert.True(t, dst.Equal(src))
}

// TestLoadFailures walks the validation order; the grid is never touched.
func TestLoadFailures(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		in         grid.Input[int]
		want       error
		msg        string
	}{
		{"nil input", 2, 3, nil, grid.ErrInvalidInput, ""},
		{"empty flat", 2, 3, grid.Flat[int]{}, grid.ErrInvalidInput, ""},
		{"empty nested", 2, 3, grid.Nested[int]{}, grid.ErrInvalidInput, ""},
		{"zero rows", 0, 3, grid.Flat[int]{1}, grid.ErrInvalidShape, ""},
		{"negative cols", 2, -1, grid.Flat[int]{1}, grid.ErrInvalidShape, ""},
		{"zero rows empty input", 0, 3, grid.Flat[int]{}, grid.ErrInvalidShape, ""},
		{"cell count overflows", 3, math.MaxInt/2 + 1, grid.Flat[int]{1, 2}, grid.ErrInvalidShape, ""},
		{"above max cells", grid.MaxCells, 2, grid.Flat[int]{1, 2}, grid.ErrInvalidShape, ""},
		{"flat too short", 2, 3, grid.Flat[int]{1, 2, 3, 4, 5}, grid.ErrShapeMismatch, ""},
		{"flat too long", 1, 1, grid.Flat[int]{1, 2}, grid.ErrShapeMismatch, ""},
		{"nested wrong row count", 3, 3, grid.Nested[int]{{1, 2, 3}}, grid.ErrShapeMismatch, "rows"},
		{"nested ragged", 2, 3, grid.Nested[int]{{1, 2, 3}, {4, 5}}, grid.ErrShapeMismatch, "row 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := MustGrid(t, [][]int{{9, 9}})
			err := g.Load(tc.rows, tc.cols, tc.in)
			require.ErrorIs(t, err, tc.want)
			if tc.msg != "" {
				assert.Contains(t, err.Error(), tc.msg)
			}
			requireCells(t, g, [][]int{{9, 9}})
		})
	}
}

// TestReplaceKeepsShape ensures Replace validates against the current shape only.
func TestReplaceKeepsShape(t *testing.T) {
	g := MustGrid(t, [][]int{{1, 2}, {3, 4}})

	require.NoError(t, g.Replace(grid.Flat[int]{5, 6, 7, 8}))
	requireCells(t, g, [][]int{{5, 6}, {7, 8}})

	require.NoError(t, g.Replace(grid.Nested[int]{{0, 1}, {2, 3}}))
	requireCells(t, g, [][]int{{0, 1}, {2, 3}})

	require.ErrorIs(t, g.Replace(grid.Flat[int]{1, 2, 3}), grid.ErrShapeMismatch)
	require.ErrorIs(t, g.Replace(grid.Nested[int]{{1, 2, 3}, {4, 5, 6}}), grid.ErrShapeMismatch)
	require.ErrorIs(t, g.Replace(nil), grid.ErrInvalidInput)
	requireCells(t, g, [][]int{{0, 1}, {2, 3}})
}

// TestLoadFiniteOnly ensures the policy applies to bulk loads atomically.
func TestLoadFiniteOnly(t *testing.T) {
	g := grid.New[float64](1, 2, grid.WithFiniteOnly())
	err := g.Load(2, 2, grid.Flat[float64]{1, 2, math.NaN(), 4})
	require.ErrorIs(t, err, grid.ErrInvalidInput)
	requireCells(t, g, [][]float64{{0, 0}})
}
