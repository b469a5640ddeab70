// SPDX-License-Identifier: MIT
// Package grid - convenience facades.
//
// Purpose:
//   - Thin, intention-revealing entry points composed from Grid methods.
//   - No loop duplication: each facade delegates to the canonical method.

package grid

// ZerosLike returns a zero grid with g's shape and options.
// Complexity: O(r*c).
func ZerosLike[T Number](g *Grid[T]) *Grid[T] {
	z := New[T](g.rows, g.cols)
	z.opts = g.opts

	return z
}

// Rotations returns g turned clockwise by 90, 180 and 270 degrees.
// g is unchanged; each result is independent.
// Complexity: O(r*c) per result.
func Rotations[T Number](g *Grid[T]) (r90, r180, r270 *Grid[T]) {
	r90 = g.RotatedCW()
	r180 = r90.RotatedCW()
	r270 = g.RotatedCCW()

	return r90, r180, r270
}
