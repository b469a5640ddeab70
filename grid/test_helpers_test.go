// SPDX-License-Identifier: MIT
// Package grid_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures shared across the grid tests.

package grid_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grid2d/grid"
)

// MustGrid builds a rows×cols grid loaded from nested rows or fails the test.
func MustGrid(t *testing.T, rows [][]int, opts ...grid.Option) *grid.Grid[int] {
	t.Helper()
	g, err := grid.NewFrom[int](len(rows), len(rows[0]), grid.Nested[int](rows), opts...)
	require.NoError(t, err)

	return g
}

// requireCells asserts shape and nested content in one go.
func requireCells[T grid.Number](t *testing.T, g *grid.Grid[T], want [][]T) {
	t.Helper()
	require.Equal(t, len(want), g.Rows(), "rows")
	require.Equal(t, len(want[0]), g.Cols(), "cols")
	require.Equal(t, grid.Nested[T](want), g.Nested())
	require.Len(t, g.Backing(), g.Rows()*g.Cols(), "shape invariant")
}

// captureLogger returns a logger writing text records into the returned buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	h := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	return slog.New(h), buf
}
