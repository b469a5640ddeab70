// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"log/slog"
)

// rotateCW builds the clockwise quarter turn of an R×C buffer as a C×R buffer.
// For destination row i (source column i) walk the source rows bottom-up:
//
//	out(i, j) = in(R-1-j, i)
//
// Complexity: O(r*c).
func (g *Grid[T]) rotateCW() []T {
	out := make([]T, 0, len(g.data))
	for i := 0; i < g.cols; i++ {
		for off := (g.rows-1)*g.cols + i; off >= 0; off -= g.cols {
			out = append(out, g.data[off])
		}
	}

	return out
}

// rotateCCW builds the counterclockwise quarter turn of an R×C buffer as a C×R buffer:
//
//	out(i, j) = in(j, C-1-i)
//
// Destination row i is source column C-1-i walked top-down.
func (g *Grid[T]) rotateCCW() []T {
	out := make([]T, 0, len(g.data))
	for i := g.cols - 1; i >= 0; i-- {
		for off := i; off < len(g.data); off += g.cols {
			out = append(out, g.data[off])
		}
	}

	return out
}

// RotateCW rotates g 90 degrees clockwise in place: shape becomes Cols×Rows and a
// new buffer is installed (any AssignFrom link is broken).
func (g *Grid[T]) RotateCW() { g.commit(g.cols, g.rows, g.rotateCW()) }

// RotateCCW rotates g 90 degrees counterclockwise in place.
func (g *Grid[T]) RotateCCW() { g.commit(g.cols, g.rows, g.rotateCCW()) }

// RotatedCW returns a new clockwise-rotated grid; g is unchanged.
func (g *Grid[T]) RotatedCW() *Grid[T] {
	return &Grid[T]{rows: g.cols, cols: g.rows, data: g.rotateCW(), opts: g.opts}
}

// RotatedCCW returns a new counterclockwise-rotated grid; g is unchanged.
func (g *Grid[T]) RotatedCCW() *Grid[T] {
	return &Grid[T]{rows: g.cols, cols: g.rows, data: g.rotateCCW(), opts: g.opts}
}

// Rotate dispatches to RotateCW or RotateCCW.
// Errors: ErrInvalidInput for an unknown direction; g is unchanged.
// Use ParseDirection to accept "cw"/"ccw"/0/1 tokens from foreign input.
func (g *Grid[T]) Rotate(dir Direction) error {
	switch dir {
	case CW:
		g.RotateCW()
	case CCW:
		g.RotateCCW()
	default:
		return g.fail(ctxRotate, gridErrorf(ctxRotate, fmt.Sprint(int(dir)), ErrInvalidInput),
			slog.Int("direction", int(dir)))
	}

	return nil
}

// Rotated is the copy-mode counterpart of Rotate.
func (g *Grid[T]) Rotated(dir Direction) (*Grid[T], error) {
	switch dir {
	case CW:
		return g.RotatedCW(), nil
	case CCW:
		return g.RotatedCCW(), nil
	default:
		return nil, g.fail(ctxRotated, gridErrorf(ctxRotated, fmt.Sprint(int(dir)), ErrInvalidInput),
			slog.Int("direction", int(dir)))
	}
}
