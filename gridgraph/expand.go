// SPDX-License-Identifier: MIT

package gridgraph

import (
	"container/list"
	"fmt"
)

// Bridge finds a minimum-conversion path of water cells connecting any cell
// of island src to any cell of island dst, as numbered by Components.
// Each water cell on the path costs 1; land costs 0. The returned path lists
// row-major cell indices from a src cell to a dst cell, both inclusive.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all src cells.
//  3. Stop when any dst cell is reached.
//  4. Reconstruct the path via predecessors.
//
// Complexity: O(R·C·d) time, O(R·C) memory.
func (m *Map) Bridge(src, dst int) (path []int, cost int, err error) {
	comps := m.Components()
	if src < 0 || src >= len(comps) || dst < 0 || dst >= len(comps) {
		return nil, 0, fmt.Errorf("Bridge(%d, %d) of %d islands: %w", src, dst, len(comps), ErrComponentIndex)
	}
	dstSet := make(map[int]struct{}, len(comps[dst]))
	for _, i := range comps[dst] {
		dstSet[i] = struct{}{}
	}

	const inf = int(^uint(0) >> 1)
	dist := make([]int, len(m.land))
	prev := make([]int, len(m.land))
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// cost-0 steps go to the front, cost-1 steps to the back
	dq := list.New()
	for _, i := range comps[src] {
		dist[i] = 0
		dq.PushFront(i)
	}

	offsets := m.neighborOffsets()
	target := -1
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if _, ok := dstSet[u]; ok {
			target = u
			break
		}
		ur, uc := m.Coordinate(u)
		for _, d := range offsets {
			vr, vc := ur+d[0], uc+d[1]
			if !m.InBounds(vr, vc) {
				continue
			}
			v := m.index(vr, vc)
			step := 1
			if m.land[v] {
				step = 0
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append([]int{at}, path...)
	}

	return path, dist[target], nil
}
