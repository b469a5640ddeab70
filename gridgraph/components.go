// SPDX-License-Identifier: MIT

package gridgraph

// Components finds all contiguous regions ("islands") of land cells under
// the map's connectivity. Islands are ordered by their first cell in
// row-major order; cells inside an island are in BFS order from that cell.
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C) for visited flags and output.
func (m *Map) Components() [][]int {
	seen := make([]bool, len(m.land))
	var comps [][]int
	offsets := m.neighborOffsets()

	for i0, isLand := range m.land {
		if !isLand || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ur, uc := m.Coordinate(queue[qi])
			for _, d := range offsets {
				vr, vc := ur+d[0], uc+d[1]
				if !m.IsLand(vr, vc) {
					continue
				}
				if vi := m.index(vr, vc); !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Count returns the number of islands.
func (m *Map) Count() int { return len(m.Components()) }
