// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//   - Bulk replacement of the whole buffer from Flat or Nested input.
//   - All-or-nothing: validation completes before rows, cols and data are
//     swapped together; input slices are copied, never retained.

package grid

import (
	"fmt"
	"log/slog"
)

// Load replaces shape and cells from in.
// MAIN DESCRIPTION:
//   - Reshape-and-fill in one atomic step.
//
// Implementation:
//   - Stage 1: nil input -> ErrInvalidInput.
//   - Stage 2: rows < 1, cols < 1 or rows*cols > MaxCells -> ErrInvalidShape.
//   - Stage 2b: empty input -> ErrInvalidInput.
//   - Stage 3: flatten against (rows, cols); see flatten for the length rules.
//   - Stage 4: numeric policy over the flattened cells.
//   - Stage 5: commit rows, cols and the new buffer together.
//
// Errors:
//   - ErrInvalidInput, ErrInvalidShape, ErrShapeMismatch (naming the row for Nested input).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (g *Grid[T]) Load(rows, cols int, in Input[T]) error {
	if in == nil {
		return g.fail(ctxLoad, gridErrorf(ctxLoad, "", fmt.Errorf("missing input: %w", ErrInvalidInput)))
	}
	if err := validateShape(rows, cols); err != nil {
		return g.fail(ctxLoad, gridErrorf(ctxLoad, fmt.Sprintf("%d,%d", rows, cols), err), shapeAttrs(rows, cols)...)
	}
	if in.Len() == 0 {
		return g.fail(ctxLoad, gridErrorf(ctxLoad, "", fmt.Errorf("empty input: %w", ErrInvalidInput)))
	}
	data, err := g.flattenChecked(ctxLoad, rows, cols, in)
	if err != nil {
		return err
	}
	g.commit(rows, cols, data)

	return nil
}

// Replace swaps the cells from in while keeping the current shape.
// Same validation as Load minus the shape request.
func (g *Grid[T]) Replace(in Input[T]) error {
	if in == nil || in.Len() == 0 {
		return g.fail(ctxReplace, gridErrorf(ctxReplace, "", fmt.Errorf("empty input: %w", ErrInvalidInput)))
	}
	data, err := g.flattenChecked(ctxReplace, g.rows, g.cols, in)
	if err != nil {
		return err
	}
	g.commit(g.rows, g.cols, data)

	return nil
}

// flattenChecked runs flatten and the finite policy, emitting diagnostics under op.
func (g *Grid[T]) flattenChecked(op string, rows, cols int, in Input[T]) ([]T, error) {
	data, err := flatten[T](rows, cols, in)
	if err != nil {
		return nil, g.fail(op, gridErrorf(op, "", err), shapeAttrs(rows, cols)...)
	}
	if i, err := g.checkFinite(data...); err != nil {
		return nil, g.fail(op, gridErrorf(op, "", fmt.Errorf("cell %d: %w", i, err)), slog.Int("index", i))
	}

	return data, nil
}

// flatten copies in into a new row-major buffer of exactly rows*cols cells.
//   - Nested: outer length must equal rows; each row length must equal cols.
//   - Flat: length must equal rows*cols.
//
// Returns plain ErrShapeMismatch-wrapped errors; the caller adds method context.
func flatten[T Number](rows, cols int, in Input[T]) ([]T, error) {
	n := rows * cols // bounded by validateShape
	var out []T

	switch v := in.(type) {
	case Nested[T]:
		if len(v) != rows {
			return nil, fmt.Errorf("expected %d rows, found %d: %w", rows, len(v), ErrShapeMismatch)
		}
		out = make([]T, 0, n)
		for i, row := range v {
			if len(row) != cols {
				return nil, fmt.Errorf("row %d: expected %d columns, found %d: %w", i, cols, len(row), ErrShapeMismatch)
			}
			out = append(out, row...)
		}
	case Flat[T]:
		if len(v) != n {
			return nil, fmt.Errorf("expected %d cells, found %d: %w", n, len(v), ErrShapeMismatch)
		}
		out = make([]T, n)
		copy(out, v)
	default:
		return nil, fmt.Errorf("unsupported input %T: %w", in, ErrInvalidInput)
	}

	// Final length re-check before anything is committed.
	if len(out) != n {
		return nil, fmt.Errorf("flattened %d cells, expected %d: %w", len(out), n, ErrShapeMismatch)
	}

	return out, nil
}
