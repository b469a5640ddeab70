// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//   - Scalar and elementwise arithmetic over the flat buffer.
//
// Determinism & Performance:
//   - Single flat pass 0..n-1; shapes are identical so offsets coincide.
//   - Scalar ops write in place (visible through aliases); Add/Sum build a
//     fresh buffer.

package grid

import (
	"fmt"
	"log/slog"
)

// ScalarAdd adds s to every cell in place.
// Errors: ErrInvalidInput under WithFiniteOnly when s, or any result, is non-finite;
// in that case no cell is changed.
// Complexity: O(r*c).
func (g *Grid[T]) ScalarAdd(s T) error {
	return g.scalarApply(ctxScalarAdd, s, func(v T) T { return v + s })
}

// ScalarMul multiplies every cell by s in place. Same policy as ScalarAdd.
func (g *Grid[T]) ScalarMul(s T) error {
	return g.scalarApply(ctxScalarMul, s, func(v T) T { return v * s })
}

// scalarApply validates s and, under the finite policy, pre-checks every result
// before the first write so failure never leaves a half-updated grid.
func (g *Grid[T]) scalarApply(op string, s T, f func(T) T) error {
	if _, err := g.checkFinite(s); err != nil {
		return g.fail(op, gridErrorf(op, fmt.Sprint(s), err), slog.Any("scalar", s))
	}
	if g.opts.finiteOnly {
		for i, v := range g.data {
			if isNonFinite(f(v)) {
				err := fmt.Errorf("cell %d overflows: %w", i, ErrInvalidInput)
				return g.fail(op, gridErrorf(op, fmt.Sprint(s), err), slog.Int("index", i))
			}
		}
	}
	for i, v := range g.data {
		g.data[i] = f(v)
	}

	return nil
}

// Add replaces g's buffer with the elementwise sum g + other (assign mode).
// MAIN DESCRIPTION:
//   - The sum is computed into a temporary which then becomes g's buffer; any
//     AssignFrom link held by g is broken, the shape is unchanged.
//
// Errors:
//   - ErrTypeMismatch when other is nil.
//   - ErrShapeMismatch when rows or cols differ.
//   - ErrInvalidInput under WithFiniteOnly when a sum is non-finite.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (g *Grid[T]) Add(other *Grid[T]) error {
	sum, err := g.sum(ctxAdd, other)
	if err != nil {
		return err
	}
	g.commit(g.rows, g.cols, sum)

	return nil
}

// Sum returns a new grid holding g + other (copy mode); g and other are unchanged.
// The result has g's shape and options. Errors as Add.
func (g *Grid[T]) Sum(other *Grid[T]) (*Grid[T], error) {
	sum, err := g.sum(ctxSum, other)
	if err != nil {
		return nil, err
	}

	return &Grid[T]{rows: g.rows, cols: g.cols, data: sum, opts: g.opts}, nil
}

// sum validates operands and returns the elementwise sum buffer.
func (g *Grid[T]) sum(op string, other *Grid[T]) ([]T, error) {
	if other == nil {
		return nil, g.fail(op, gridErrorf(op, "", ErrTypeMismatch))
	}
	if err := validateSameShape(g, other); err != nil {
		detail := fmt.Sprintf("%dx%d vs %dx%d", g.rows, g.cols, other.rows, other.cols)
		return nil, g.fail(op, gridErrorf(op, detail, err),
			slog.Int("other_rows", other.rows), slog.Int("other_cols", other.cols))
	}

	out := make([]T, len(g.data))
	for i := range out {
		out[i] = g.data[i] + other.data[i]
	}
	if i, err := g.checkFinite(out...); err != nil {
		return nil, g.fail(op, gridErrorf(op, "", fmt.Errorf("cell %d: %w", i, err)), slog.Int("index", i))
	}

	return out, nil
}
