// SPDX-License-Identifier: MIT

package grid

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_textSep     = " "
	_textEOL     = "\r\n" // historical line ending, kept for byte-compatible output
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Text renders every cell row by row: values separated by a single space, each
// row terminated by "\r\n", numbers in their default %v form.
// Output only; there is no parser for it.
//
// With diagnostics enabled the rendering is also logged at Debug level.
func (g *Grid[T]) Text() string {
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		base := r * g.cols
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				b.WriteString(_textSep)
			}
			fmt.Fprintf(&b, "%v", g.data[base+c])
		}
		b.WriteString(_textEOL)
	}
	out := b.String()
	if g.opts.diagnostics {
		g.logger().LogAttrs(context.Background(), slog.LevelDebug, "grid: text", slog.String("text", out))
	}

	return out
}

// String is a bracketed row dump for debugging: "[1, 2]\n[3, 4]\n".
func (g *Grid[T]) String() string {
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		b.WriteString(_fmtRowOpen)
		base := r * g.cols
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprintf(&b, "%v", g.data[base+c])
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Grid[float64])(nil)
