// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every public operation
// returns one of these (wrapped with call-site context) and tests MUST match
// them via errors.Is. No operation panics on user-triggered error conditions.

package grid

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "grid: ..." for easy grepping across logs.
// Call sites wrap with fmt.Errorf("Grid.<Method>(...): %w", ErrX); callers
// still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// missing input -> shape request -> empty input -> index -> length mismatch -> numeric policy.

var (
	// ErrInvalidInput is returned for a missing or empty input sequence, a
	// non-numeric value at a parse boundary, a non-finite value under the
	// finite-only policy, or an unknown direction/dimension token.
	ErrInvalidInput = errors.New("grid: invalid input")

	// ErrInvalidShape is returned when a requested shape has a non-positive
	// row or column count, or more than MaxCells cells (Load, NewFrom).
	ErrInvalidShape = errors.New("grid: invalid shape")

	// ErrShapeMismatch indicates that sequence lengths disagree with the
	// required row/column counts, or that two grids differ in shape.
	ErrShapeMismatch = errors.New("grid: shape mismatch")

	// ErrOutOfRange indicates a row or column index outside current bounds.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrTypeMismatch indicates that an operand expected to be a grid is nil.
	ErrTypeMismatch = errors.New("grid: operand is not a grid")
)
