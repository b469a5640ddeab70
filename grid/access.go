// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"log/slog"
)

// At returns the value at (r, c).
// Errors: ErrOutOfRange when 0 <= r < Rows and 0 <= c < Cols does not hold.
// Complexity: O(1).
func (g *Grid[T]) At(r, c int) (T, error) {
	off, err := g.indexOf(r, c)
	if err != nil {
		var zero T
		return zero, g.fail(ctxAt, gridErrorf(ctxAt, fmt.Sprintf("%d,%d", r, c), err),
			slog.Int("row", r), slog.Int("col", c))
	}

	return g.data[off], nil
}

// Set stores v at (r, c).
// MAIN DESCRIPTION:
//   - Safe element write; the bounds check strictly precedes the write.
//
// Errors:
//   - ErrOutOfRange for bounds.
//   - ErrInvalidInput for NaN/±Inf when the grid was built WithFiniteOnly.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Grid[T]) Set(r, c int, v T) error {
	detail := fmt.Sprintf("%d,%d", r, c)
	off, err := g.indexOf(r, c)
	if err != nil {
		return g.fail(ctxSet, gridErrorf(ctxSet, detail, err), slog.Int("row", r), slog.Int("col", c))
	}
	if _, err = g.checkFinite(v); err != nil {
		return g.fail(ctxSet, gridErrorf(ctxSet, detail, err), slog.Any("value", v))
	}
	g.data[off] = v

	return nil
}

// Row returns a copy of row r.
// Errors: ErrOutOfRange.
// Complexity: O(cols).
func (g *Grid[T]) Row(r int) ([]T, error) {
	if err := g.validateRowIndex(r); err != nil {
		return nil, g.fail(ctxRow, gridErrorf(ctxRow, fmt.Sprint(r), err), slog.Int("row", r))
	}
	out := make([]T, g.cols)
	copy(out, g.data[r*g.cols:(r+1)*g.cols])

	return out, nil
}

// SetRow overwrites row r with values.
// MAIN DESCRIPTION:
//   - Validates index, then length, then numeric policy; writes only after all pass.
//
// Errors:
//   - ErrOutOfRange for r; ErrShapeMismatch when len(values) != Cols;
//     ErrInvalidInput for non-finite values under the finite-only policy.
//
// Complexity:
//   - Time O(cols), Space O(1).
func (g *Grid[T]) SetRow(r int, values []T) error {
	detail := fmt.Sprint(r)
	if err := g.validateRowIndex(r); err != nil {
		return g.fail(ctxSetRow, gridErrorf(ctxSetRow, detail, err), slog.Int("row", r))
	}
	if len(values) != g.cols {
		err := fmt.Errorf("expected %d values, found %d: %w", g.cols, len(values), ErrShapeMismatch)
		return g.fail(ctxSetRow, gridErrorf(ctxSetRow, detail, err), expectFound(g.cols, len(values))...)
	}
	if i, err := g.checkFinite(values...); err != nil {
		return g.fail(ctxSetRow, gridErrorf(ctxSetRow, detail, err), slog.Int("index", i))
	}
	copy(g.data[r*g.cols:(r+1)*g.cols], values)

	return nil
}

// Col returns a copy of column c.
// Errors: ErrOutOfRange.
// Complexity: O(rows).
func (g *Grid[T]) Col(c int) ([]T, error) {
	if err := g.validateColIndex(c); err != nil {
		return nil, g.fail(ctxCol, gridErrorf(ctxCol, fmt.Sprint(c), err), slog.Int("col", c))
	}
	out := make([]T, g.rows)
	for r, off := 0, c; r < g.rows; r, off = r+1, off+g.cols {
		out[r] = g.data[off]
	}

	return out, nil
}

// SetCol overwrites column c with values; symmetric to SetRow with len(values) == Rows.
func (g *Grid[T]) SetCol(c int, values []T) error {
	detail := fmt.Sprint(c)
	if err := g.validateColIndex(c); err != nil {
		return g.fail(ctxSetCol, gridErrorf(ctxSetCol, detail, err), slog.Int("col", c))
	}
	if len(values) != g.rows {
		err := fmt.Errorf("expected %d values, found %d: %w", g.rows, len(values), ErrShapeMismatch)
		return g.fail(ctxSetCol, gridErrorf(ctxSetCol, detail, err), expectFound(g.rows, len(values))...)
	}
	if i, err := g.checkFinite(values...); err != nil {
		return g.fail(ctxSetCol, gridErrorf(ctxSetCol, detail, err), slog.Int("index", i))
	}
	for r, off := 0, c; r < g.rows; r, off = r+1, off+g.cols {
		g.data[off] = values[r]
	}

	return nil
}

// Backing returns the live row-major buffer.
//
// The returned Flat ALIASES the grid: writes into it mutate the grid (and any
// grid linked by AssignFrom). It stays attached only until the grid installs
// a new buffer (Load, Replace, in-place Add, in-place rotation, AssignFrom).
func (g *Grid[T]) Backing() Flat[T] { return g.data }

// Nested returns a freshly materialized copy of the rows.
// Complexity: O(r*c).
func (g *Grid[T]) Nested() Nested[T] {
	out := make(Nested[T], g.rows)
	for r := 0; r < g.rows; r++ {
		row := make([]T, g.cols)
		copy(row, g.data[r*g.cols:(r+1)*g.cols])
		out[r] = row
	}

	return out
}

// Get returns the cells in the requested dimensionality.
//   - DimFlat (1): the aliased buffer, as Backing.
//   - DimNested (2): a deep copy, as Nested.
//
// Errors: ErrInvalidInput for any other dim.
func (g *Grid[T]) Get(dim int) (Input[T], error) {
	switch dim {
	case DimFlat:
		return g.Backing(), nil
	case DimNested:
		return g.Nested(), nil
	default:
		return nil, g.fail(ctxGet, gridErrorf(ctxGet, fmt.Sprint(dim), ErrInvalidInput), slog.Int("dim", dim))
	}
}
