// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/grid2d/grid"
)

// Tile is the on-screen look of one cell value.
type Tile struct {
	Text  string
	Style tcell.Style
}

// TileGlyph maps exact cell values to tiles (tile-map style boards).
// Values missing from tiles render as fallback.
func TileGlyph[T grid.Number](tiles map[T]Tile, fallback Tile) Glyph[T] {
	return func(_, _ int, v T) (string, tcell.Style) {
		if t, ok := tiles[v]; ok {
			return t.Text, t.Style
		}

		return fallback.Text, fallback.Style
	}
}
