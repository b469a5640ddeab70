// SPDX-License-Identifier: MIT

package gridgraph

import (
	"github.com/katalvlaran/grid2d/grid"
)

// FromGrid snapshots g into a Map. Cells with value >= land are land, all
// others water. Any Connectivity other than Conn8 behaves as Conn4.
// Complexity: O(R×C) time and memory.
func FromGrid[T grid.Number](g *grid.Grid[T], land T, conn Connectivity) (*Map, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	rows, cols := g.Shape()
	m := &Map{rows: rows, cols: cols, land: make([]bool, rows*cols), conn: conn}
	for i, v := range g.Backing() {
		m.land[i] = v >= land
	}

	return m, nil
}

// Shape returns (rows, cols).
func (m *Map) Shape() (int, int) { return m.rows, m.cols }

// InBounds reports whether (r, c) lies within the map.
func (m *Map) InBounds(r, c int) bool {
	return r >= 0 && r < m.rows && c >= 0 && c < m.cols
}

// IsLand reports whether (r, c) is an in-bounds land cell.
func (m *Map) IsLand(r, c int) bool {
	return m.InBounds(r, c) && m.land[m.index(r, c)]
}

// Coordinate converts a row-major index back to (row, col).
func (m *Map) Coordinate(i int) (int, int) {
	return i / m.cols, i % m.cols
}

func (m *Map) index(r, c int) int { return r*m.cols + c }

func (m *Map) neighborOffsets() [][2]int {
	if m.conn == Conn8 {
		return offsets8
	}

	return offsets4
}
