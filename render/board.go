// SPDX-License-Identifier: MIT

// Package render draws grids onto a terminal cell screen.
//
// A Board owns nothing but a tcell.Screen and layout settings; each Draw call
// reads the grid through its public API (Nested) and writes one fixed-width
// text cell per grid cell, optionally framed by a box border. Cells that fall
// outside the screen are clipped. Draw does not call Show.
package render

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/grid2d/grid"
)

// ErrNilGrid is returned when Draw is handed a nil grid.
var ErrNilGrid = errors.New("render: grid is nil")

// Defaults.
const (
	DefaultCellWidth = 3
	DefaultGap       = 1
)

const panicCellWidth = "render: WithCellWidth: width must be >= 1"

// Glyph turns a cell value into its on-screen text and style.
type Glyph[T grid.Number] func(r, c int, v T) (string, tcell.Style)

// Option configures a Board.
type Option func(*options)

type options struct {
	x0, y0    int
	cellWidth int
	gap       int
	border    bool
	style     tcell.Style
}

// WithOrigin places the top-left corner of the board (border included) at (x, y).
func WithOrigin(x, y int) Option {
	return func(o *options) { o.x0, o.y0 = x, y }
}

// WithCellWidth sets the column width of every cell. Panics when w < 1.
func WithCellWidth(w int) Option {
	if w < 1 {
		panic(panicCellWidth)
	}

	return func(o *options) { o.cellWidth = w }
}

// WithGap sets the blank columns between adjacent cells (negative is treated as 0).
func WithGap(n int) Option {
	return func(o *options) { o.gap = max(n, 0) }
}

// WithBorder frames the board with a single-line box.
func WithBorder() Option {
	return func(o *options) { o.border = true }
}

// WithStyle sets the base style used by the default glyph and the border.
func WithStyle(s tcell.Style) Option {
	return func(o *options) { o.style = s }
}

// Board renders grids of T onto a screen.
type Board[T grid.Number] struct {
	screen tcell.Screen
	glyph  Glyph[T]
	opts   options
}

// NewBoard returns a Board drawing on s with the default "%v" glyph.
func NewBoard[T grid.Number](s tcell.Screen, opts ...Option) *Board[T] {
	o := options{cellWidth: DefaultCellWidth, gap: DefaultGap, style: tcell.StyleDefault}
	for _, fn := range opts {
		fn(&o)
	}
	b := &Board[T]{screen: s, opts: o}
	b.glyph = b.defaultGlyph

	return b
}

// SetGlyph replaces the cell formatter; nil restores the default.
func (b *Board[T]) SetGlyph(f Glyph[T]) {
	if f == nil {
		f = b.defaultGlyph
	}
	b.glyph = f
}

func (b *Board[T]) defaultGlyph(_, _ int, v T) (string, tcell.Style) {
	return fmt.Sprintf("%v", v), b.opts.style
}

// Size reports the screen footprint (width, height) of g, border included.
func (b *Board[T]) Size(g *grid.Grid[T]) (w, h int) {
	rows, cols := g.Shape()
	w = cols*b.opts.cellWidth + (cols-1)*b.opts.gap
	h = rows
	if b.opts.border {
		w += 2
		h += 2
	}

	return w, h
}

// Draw writes g onto the screen and returns the number of cells fully or
// partially visible. Text longer than the cell width is truncated; shorter text
// is right-aligned.
func (b *Board[T]) Draw(g *grid.Grid[T]) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	sw, sh := b.screen.Size()
	x0, y0 := b.opts.x0, b.opts.y0
	if b.opts.border {
		b.drawBorder(g)
		x0++
		y0++
	}

	drawn := 0
	step := b.opts.cellWidth + b.opts.gap
	for r, row := range g.Nested() {
		y := y0 + r
		if y < 0 || y >= sh {
			continue
		}
		for c, v := range row {
			x := x0 + c*step
			if x >= sw || x+b.opts.cellWidth <= 0 {
				continue
			}
			text, style := b.glyph(r, c, v)
			b.putCell(x, y, text, style)
			drawn++
		}
	}

	return drawn, nil
}

// putCell right-aligns text in a cellWidth field starting at x.
func (b *Board[T]) putCell(x, y int, text string, style tcell.Style) {
	runes := []rune(text)
	if len(runes) > b.opts.cellWidth {
		runes = runes[:b.opts.cellWidth]
	}
	pad := b.opts.cellWidth - len(runes)
	for i := 0; i < pad; i++ {
		b.screen.SetContent(x+i, y, ' ', nil, style)
	}
	for i, ch := range runes {
		b.screen.SetContent(x+pad+i, y, ch, nil, style)
	}
}

func (b *Board[T]) drawBorder(g *grid.Grid[T]) {
	w, h := b.Size(g)
	x0, y0, x1, y1 := b.opts.x0, b.opts.y0, b.opts.x0+w-1, b.opts.y0+h-1
	st := b.opts.style
	for x := x0 + 1; x < x1; x++ {
		b.screen.SetContent(x, y0, tcell.RuneHLine, nil, st)
		b.screen.SetContent(x, y1, tcell.RuneHLine, nil, st)
	}
	for y := y0 + 1; y < y1; y++ {
		b.screen.SetContent(x0, y, tcell.RuneVLine, nil, st)
		b.screen.SetContent(x1, y, tcell.RuneVLine, nil, st)
	}
	b.screen.SetContent(x0, y0, tcell.RuneULCorner, nil, st)
	b.screen.SetContent(x1, y0, tcell.RuneURCorner, nil, st)
	b.screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, st)
	b.screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, st)
}

// DrawText writes s starting at (x, y) with style st, clipped by the screen.
// Used for captions and status lines next to a board.
func DrawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, st)
	}
}
