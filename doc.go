// Package grid2d is a small toolkit for rectangular boards of numbers:
// game boards, tile maps and image-like buffers.
//
// Packages:
//
//   - grid:      flat-backed Grid[T] with element/row/column access, bulk
//     load, elementwise arithmetic and 90-degree rotation.
//   - gridgraph: island components and bridges over a grid snapshot.
//   - render:    draws any grid onto a tcell screen.
//   - cmd/gridview: interactive terminal demo tying the three together.
//
// Quick start:
//
//	g, err := grid.NewFrom[int](2, 3, grid.Nested[int]{{1, 2, 3}, {4, 5, 6}})
//	if err != nil {
//		return err
//	}
//	g.RotateCW()
//	fmt.Print(g.Text()) // "4 1\r\n5 2\r\n6 3\r\n"
package grid2d
