// SPDX-License-Identifier: MIT

// Package gridgraph treats a grid.Grid as a graph of cells so boards can be
// analysed for contiguous regions ("islands").
//
// What:
//
//   - Map is an immutable land/water snapshot of a grid: a cell is land when
//     its value is >= the land threshold.
//   - Components finds connected islands of land cells.
//   - Bridge computes the cheapest chain of water conversions joining two
//     islands (0-1 BFS).
//
// Cells are addressed in row-major order, matching grid.Grid.Backing:
// index = row*cols + col.
//
// Complexity:
//
//   - FromGrid:   O(R×C), Memory: O(R×C).
//   - Components: O(R×C×d), Memory: O(R×C)    (d = number of neighbours, 4 or 8).
//   - Bridge:     O(R×C×d), Memory: O(R×C).
//
// Errors:
//
//   - ErrNilGrid: FromGrid was handed a nil grid.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between the components.
package gridgraph
