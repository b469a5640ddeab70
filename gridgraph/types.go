// SPDX-License-Identifier: MIT

package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrNilGrid indicates FromGrid received a nil grid.
	ErrNilGrid = errors.New("gridgraph: grid is nil")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Neighbour offsets as (dRow, dCol).
var (
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// Map is a land/water snapshot of a grid. It is immutable once built and
// does not observe later edits to the source grid.
type Map struct {
	rows, cols int
	land       []bool // row-major
	conn       Connectivity
}
