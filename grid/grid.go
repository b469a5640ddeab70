// SPDX-License-Identifier: MIT

// Package grid - Grid storage (row-major), construction and sharing.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula r*cols + c.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Keep shape invariants: rows >= 1, cols >= 1, len(data) == rows*cols after every call.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); AssignFrom: O(1).

package grid

import "log/slog"

// MaxCells caps rows*cols for every shape a grid can take.
const MaxCells = 1 << 30

// New creates a rows×cols zero grid.
// MAIN DESCRIPTION:
//   - Public constructor; never fails. Non-positive dimensions are clamped to 1.
//
// Implementation:
//   - Stage 1: clamp rows, cols to >= 1.
//   - Stage 2: a shape above MaxCells cells falls back to 1×1.
//   - Stage 3: allocate a zero-filled buffer and resolve options.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Number](rows, cols int, opts ...Option) *Grid[T] {
	rows = max(rows, 1)
	cols = max(cols, 1)
	if validateShape(rows, cols) != nil {
		rows, cols = 1, 1
	}

	return &Grid[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
		opts: gatherOptions(opts...),
	}
}

// NewFrom creates a grid and bulk-loads in with the requested shape.
// Unlike New, a non-positive or oversized shape is an error (ErrInvalidShape), as in Load.
func NewFrom[T Number](rows, cols int, in Input[T], opts ...Option) (*Grid[T], error) {
	g := New[T](rows, cols, opts...)
	if err := g.Load(rows, cols, in); err != nil {
		return nil, err
	}

	return g, nil
}

// Rows returns the row count.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the column count.
func (g *Grid[T]) Cols() int { return g.cols }

// Shape packs Rows() and Cols() into a single call.
func (g *Grid[T]) Shape() (rows, cols int) { return g.rows, g.cols }

// Len returns rows*cols.
func (g *Grid[T]) Len() int { return len(g.data) }

// Diagnostics reports whether failed operations emit diagnostic records.
func (g *Grid[T]) Diagnostics() bool { return g.opts.diagnostics }

// Clone returns a deep copy (new buffer, same shape and options).
// Mutations on either side never affect the other.
func (g *Grid[T]) Clone() *Grid[T] {
	cp := make([]T, len(g.data))
	copy(cp, g.data)

	return &Grid[T]{
		rows: g.rows,
		cols: g.cols,
		data: cp,
		opts: g.opts,
	}
}

// AssignFrom makes g a shallow copy of src.
// MAIN DESCRIPTION:
//   - rows and cols are copied by value; the backing buffer is SHARED, not duplicated.
//
// Behavior highlights:
//   - After the call, Set/SetRow/SetCol/ScalarAdd/ScalarMul through either grid are
//     visible through the other, as are writes into a Flat obtained from Backing/Get(1).
//   - The link breaks as soon as either grid installs a new buffer: Load, Replace,
//     in-place Add, RotateCW/RotateCCW/Rotate, or another AssignFrom.
//   - g keeps its own options (diagnostics, policy).
//
// Errors:
//   - ErrTypeMismatch when src is nil.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Grid[T]) AssignFrom(src *Grid[T]) error {
	if src == nil {
		return g.fail(ctxAssignFrom, gridErrorf(ctxAssignFrom, "", ErrTypeMismatch))
	}
	g.rows = src.rows
	g.cols = src.cols
	g.data = src.data // aliased

	return nil
}

// Equal reports whether other has the same shape and cells.
// Note that NaN cells never compare equal.
func (g *Grid[T]) Equal(other *Grid[T]) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, v := range g.data {
		if other.data[i] != v {
			return false
		}
	}

	return true
}

// Do visits each cell (r,c) in row-major order and calls f(r,c,v).
// Stops early when f returns false.
func (g *Grid[T]) Do(f func(r, c int, v T) bool) {
	var r, c, base int
	for r = 0; r < g.rows; r++ {
		base = r * g.cols
		for c = 0; c < g.cols; c++ {
			if !f(r, c, g.data[base+c]) {
				return
			}
		}
	}
}

// commit installs a validated buffer and shape in one step.
func (g *Grid[T]) commit(rows, cols int, data []T) {
	g.rows, g.cols, g.data = rows, cols, data
}

// shapeAttrs describes a requested shape for diagnostics.
func shapeAttrs(rows, cols int) []slog.Attr {
	return []slog.Attr{slog.Int("want_rows", rows), slog.Int("want_cols", cols)}
}
