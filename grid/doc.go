// Package grid provides Grid, a dense two-dimensional container for numeric
// cells, aimed at game boards, tile maps and image-like buffers.
//
// A Grid keeps rows×cols cells in one row-major slice (cell (r,c) lives at
// r*cols + c) and offers:
//
//   - element, row and column reads and writes (At/Set, Row/SetRow, Col/SetCol),
//   - bulk replacement from Flat or Nested input (Load, Replace),
//   - scalar and elementwise arithmetic (ScalarAdd, ScalarMul, Add, Sum),
//   - quarter-turn rotations (RotateCW, RotateCCW, Rotate and their copy-mode
//     Rotated* forms),
//   - a plain text rendering (Text).
//
// Every validation failure is returned as an error wrapping one of the package
// sentinels (ErrInvalidInput, ErrInvalidShape, ErrShapeMismatch, ErrOutOfRange,
// ErrTypeMismatch); nothing panics on bad indices or shapes, and a failed call
// leaves the grid untouched.
//
// Sharing. Clone is a deep copy. AssignFrom and Backing (Get(DimFlat)) share the
// live buffer instead: writes through one are visible through the other until
// either side installs a new buffer (Load, Replace, Add, in-place rotation,
// AssignFrom).
//
// Concurrency. A Grid is not synchronized. Guard concurrent use with a lock,
// and use the same lock for every grid sharing a buffer.
//
// Diagnostics. WithDiagnostics(true) makes each failed call emit one log/slog
// record (level Warn) describing the operation and the offending values.
//
//	g := grid.New[int](2, 3)
//	_ = g.Load(2, 3, grid.Nested[int]{{1, 2, 3}, {4, 5, 6}})
//	g.RotateCW() // [[4 1] [5 2] [6 3]]
package grid
