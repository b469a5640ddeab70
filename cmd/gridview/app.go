package main

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/grid2d/grid"
	"github.com/katalvlaran/grid2d/gridgraph"
	"github.com/katalvlaran/grid2d/render"
)

const helpLine = "r/→ cw  l/← ccw  +/- add  * double  a add initial  c reset  q quit"

// app holds the board being edited and its pristine copy.
type app struct {
	screen  tcell.Screen
	board   *render.Board[int]
	g       *grid.Grid[int]
	initial *grid.Grid[int]
	log     *slog.Logger
	land    int
	status  string
}

// demoBoard numbers cells 1..rows*cols in row-major order.
func demoBoard(rows, cols int, opts ...grid.Option) *grid.Grid[int] {
	g := grid.New[int](rows, cols, opts...)
	for i := range g.Backing() {
		g.Backing()[i] = i + 1
	}

	return g
}

func newApp(s tcell.Screen, cfg Config, log *slog.Logger) *app {
	g := demoBoard(cfg.Rows, cfg.Cols, grid.WithDiagnostics(cfg.Diagnostics), grid.WithLogger(log))
	board := render.NewBoard[int](s, render.WithOrigin(0, 2), render.WithBorder(), render.WithCellWidth(cfg.CellWidth))
	board.SetGlyph(landGlyph(cfg.Land))

	return &app{
		screen:  s,
		board:   board,
		g:       g,
		initial: g.Clone(),
		log:     log,
		land:    cfg.Land,
		status:  "ready",
	}
}

// landGlyph highlights cells at or above the land threshold.
func landGlyph(land int) render.Glyph[int] {
	return func(_, _ int, v int) (string, tcell.Style) {
		if v >= land {
			return fmt.Sprint(v), tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
		}

		return fmt.Sprint(v), tcell.StyleDefault
	}
}

// islands summarises 4-connected land regions on the current board: the
// island count and, when there are at least two, the number of water cells
// to convert to join the first two.
func (a *app) islands() string {
	m, err := gridgraph.FromGrid(a.g, a.land, gridgraph.Conn4)
	if err != nil {
		return err.Error()
	}
	n := m.Count()
	if n < 2 {
		return fmt.Sprintf("islands >= %d: %d", a.land, n)
	}
	_, cost, err := m.Bridge(0, 1)
	if err != nil {
		return fmt.Sprintf("islands >= %d: %d", a.land, n)
	}

	return fmt.Sprintf("islands >= %d: %d, bridge 0-1: %d", a.land, n, cost)
}

// handleKey applies the command bound to ev and reports whether to quit.
func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRight:
		a.rotate(grid.CW)
		return false
	case tcell.KeyLeft:
		a.rotate(grid.CCW)
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	switch ev.Rune() {
	case 'q':
		return true
	case 'r':
		a.rotate(grid.CW)
	case 'l':
		a.rotate(grid.CCW)
	case '+':
		a.report("add 1", a.g.ScalarAdd(1))
	case '-':
		a.report("add -1", a.g.ScalarAdd(-1))
	case '*':
		a.report("double", a.g.ScalarMul(2))
	case 'a':
		a.report("add initial", a.g.Add(a.initial))
	case 'c':
		a.report("reset", a.g.AssignFrom(a.initial.Clone()))
	}

	return false
}

func (a *app) rotate(dir grid.Direction) {
	a.report("rotate "+dir.String(), a.g.Rotate(dir))
}

// report records the outcome of op in the status line and the log.
func (a *app) report(op string, err error) {
	if err != nil {
		a.status = fmt.Sprintf("%s: %v", op, err)
		a.log.Info("command rejected", slog.String("op", op), slog.Any("error", err))
		return
	}
	rows, cols := a.g.Shape()
	a.status = fmt.Sprintf("%s: %dx%d", op, rows, cols)
	a.log.Debug("command applied", slog.String("op", op), slog.Int("rows", rows), slog.Int("cols", cols))
}

func (a *app) draw() {
	a.screen.Clear()
	render.DrawText(a.screen, 0, 0, helpLine, tcell.StyleDefault)
	render.DrawText(a.screen, 0, 1, fmt.Sprintf("%s  [%s]", a.status, a.islands()), tcell.StyleDefault.Bold(true))
	if _, err := a.board.Draw(a.g); err != nil {
		a.log.Error("draw failed", slog.Any("error", err))
	}
	a.screen.Show()
}

// run is the event loop; it returns when the user quits.
func (a *app) run() {
	a.draw()
	for {
		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return // screen finalized
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			if a.handleKey(ev) {
				return
			}
		}
		a.draw()
	}
}
