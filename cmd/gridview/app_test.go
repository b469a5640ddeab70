package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grid2d/grid"
)

func newTestApp(t *testing.T, rows, cols int) (*app, *bytes.Buffer) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 20)
	t.Cleanup(s.Fini)

	buf := &bytes.Buffer{}
	log := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := Config{Rows: rows, Cols: cols, CellWidth: 3, Diagnostics: true, LogFormat: "text", Land: 4}

	return newApp(s, cfg, log), buf
}

func key(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestAppRotateAndReset(t *testing.T) {
	a, _ := newTestApp(t, 2, 3)
	require.Equal(t, grid.Nested[int]{{1, 2, 3}, {4, 5, 6}}, a.g.Nested())

	assert.False(t, a.handleKey(key('r')))
	assert.Equal(t, grid.Nested[int]{{4, 1}, {5, 2}, {6, 3}}, a.g.Nested())
	assert.Equal(t, "rotate cw: 3x2", a.status)

	assert.False(t, a.handleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
	assert.Equal(t, grid.Nested[int]{{1, 2, 3}, {4, 5, 6}}, a.g.Nested())

	assert.False(t, a.handleKey(key('*')))
	assert.False(t, a.handleKey(key('+')))
	assert.Equal(t, grid.Nested[int]{{3, 5, 7}, {9, 11, 13}}, a.g.Nested())

	assert.False(t, a.handleKey(key('c')))
	assert.Equal(t, grid.Nested[int]{{1, 2, 3}, {4, 5, 6}}, a.g.Nested())

	// Reset shares a fresh clone, so edits never reach the pristine copy.
	assert.False(t, a.handleKey(key('-')))
	assert.Equal(t, grid.Nested[int]{{1, 2, 3}, {4, 5, 6}}, a.initial.Nested())
}

func TestAppAddShapeMismatchReported(t *testing.T) {
	a, buf := newTestApp(t, 2, 3)

	assert.False(t, a.handleKey(key('a')))
	assert.Equal(t, grid.Nested[int]{{2, 4, 6}, {8, 10, 12}}, a.g.Nested())

	a.handleKey(key('r'))
	a.handleKey(key('a'))
	assert.Contains(t, a.status, "shape mismatch")
	assert.Contains(t, buf.String(), "command rejected")
	assert.Contains(t, buf.String(), "grid: operation failed") // grid diagnostics share the logger
}

func TestAppQuitKeys(t *testing.T) {
	a, _ := newTestApp(t, 1, 1)
	assert.True(t, a.handleKey(key('q')))
	assert.True(t, a.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, a.handleKey(key('x')))
}

func TestAppDraw(t *testing.T) {
	a, _ := newTestApp(t, 1, 2)
	a.draw()

	cells, w, _ := a.screen.(tcell.SimulationScreen).GetContents()
	row := make([]rune, 0, 8)
	for x := 0; x < 8; x++ {
		c := cells[3*w+x] // board row 0 sits below two text lines and the border
		if len(c.Runes) == 0 {
			row = append(row, ' ')
			continue
		}
		row = append(row, c.Runes[0])
	}
	assert.Equal(t, []rune{tcell.RuneVLine, ' ', ' ', '1', ' ', ' ', ' ', '2'}, row)
}

func TestAppIslands(t *testing.T) {
	a, _ := newTestApp(t, 2, 3)
	assert.Equal(t, "islands >= 4: 1", a.islands()) // 4 5 6 on the bottom row

	require.NoError(t, a.g.Set(1, 1, 0))
	assert.Equal(t, "islands >= 4: 2, bridge 0-1: 1", a.islands())

	a.draw()
	cells, w, _ := a.screen.(tcell.SimulationScreen).GetContents()
	status := make([]rune, 0, w)
	for x := 0; x < w; x++ {
		r := cells[w+x].Runes
		if len(r) == 0 {
			status = append(status, ' ')
			continue
		}
		status = append(status, r[0])
	}
	assert.Contains(t, string(status), "[islands >= 4: 2, bridge 0-1: 1]")
}
