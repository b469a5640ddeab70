// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//   - Single source of truth for shape, index and numeric-policy checks.
//   - Return plain sentinels (no wrapping) so call sites wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing.

package grid

import "math"

// validateShape requires rows >= 1, cols >= 1 and rows*cols <= MaxCells.
// The product is never computed, so huge requests cannot overflow.
func validateShape(rows, cols int) error {
	if rows < 1 || cols < 1 || cols > MaxCells/rows {
		return ErrInvalidShape
	}

	return nil
}

// validateRowIndex checks 0 <= r < g.rows.
func (g *Grid[T]) validateRowIndex(r int) error {
	if r < 0 || r >= g.rows {
		return ErrOutOfRange
	}

	return nil
}

// validateColIndex checks 0 <= c < g.cols.
func (g *Grid[T]) validateColIndex(c int) error {
	if c < 0 || c >= g.cols {
		return ErrOutOfRange
	}

	return nil
}

// indexOf bounds-checks (r,c) and returns the row-major offset r*cols + c.
func (g *Grid[T]) indexOf(r, c int) (int, error) {
	if err := g.validateRowIndex(r); err != nil {
		return 0, err
	}
	if err := g.validateColIndex(c); err != nil {
		return 0, err
	}

	return r*g.cols + c, nil
}

// validateSameShape requires identical rows and cols.
func validateSameShape[T Number](a, b *Grid[T]) error {
	if a.rows != b.rows || a.cols != b.cols {
		return ErrShapeMismatch
	}

	return nil
}

// isNonFinite reports NaN or ±Inf. Always false for integer kinds.
func isNonFinite[T Number](v T) bool {
	f := float64(v)

	return math.IsNaN(f) || math.IsInf(f, 0)
}

// firstNonFinite returns the index of the first NaN/±Inf in vs, or -1.
func firstNonFinite[T Number](vs []T) int {
	for i, v := range vs {
		if isNonFinite(v) {
			return i
		}
	}

	return -1
}

// checkFinite applies the finite-only policy to vs. Returns ErrInvalidInput
// and the offending index when the policy is on and a value is non-finite.
func (g *Grid[T]) checkFinite(vs ...T) (int, error) {
	if !g.opts.finiteOnly {
		return -1, nil
	}
	if i := firstNonFinite(vs); i >= 0 {
		return i, ErrInvalidInput
	}

	return -1, nil
}
