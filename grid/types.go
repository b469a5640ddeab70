// SPDX-License-Identifier: MIT

package grid

// Number is the set of element types a Grid can hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Grid is a dense row-major two-dimensional container.
//   - rows, cols hold dimensions (both >= 1 at all times).
//   - data is a flat buffer of length rows*cols (offset = r*cols + c).
//   - data may be shared with another Grid after AssignFrom, or with a
//     caller holding the Flat returned by Backing/Get(1).
//
// A Grid is not safe for concurrent use. Because of buffer sharing, two
// grids linked by AssignFrom must be guarded by the same lock.
type Grid[T Number] struct {
	rows, cols int
	data       []T
	opts       Options
}

// Input is the bulk-load payload: either Flat or Nested.
// The interface is sealed; only this package provides implementations.
type Input[T Number] interface {
	// Len reports the outer length of the sequence.
	Len() int
	isInput()
}

// Flat holds every cell in row-major order.
type Flat[T Number] []T

// Nested holds one slice per row.
type Nested[T Number] [][]T

// Len reports the number of cells.
func (f Flat[T]) Len() int { return len(f) }

// Len reports the number of rows.
func (n Nested[T]) Len() int { return len(n) }

func (Flat[T]) isInput()   {}
func (Nested[T]) isInput() {}

// Compile-time assertions.
var (
	_ Input[float64] = Flat[float64](nil)
	_ Input[float64] = Nested[float64](nil)
)

// Direction selects a quarter-turn rotation.
type Direction int

const (
	// CW rotates 90 degrees clockwise. Token forms: "cw", 0.
	CW Direction = iota
	// CCW rotates 90 degrees counterclockwise. Token forms: "ccw", 1.
	CCW
)

// String returns the symbolic token of d.
func (d Direction) String() string {
	switch d {
	case CW:
		return "cw"
	case CCW:
		return "ccw"
	default:
		return "unknown"
	}
}

// Dimensionality selectors for Get.
const (
	DimFlat   = 1 // aliased row-major buffer
	DimNested = 2 // freshly materialized rows
)
