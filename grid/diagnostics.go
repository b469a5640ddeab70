// SPDX-License-Identifier: MIT

package grid

import (
	"context"
	"fmt"
	"log/slog"
)

// ---------- error context tags ----------

const (
	ctxAt         = "At"
	ctxSet        = "Set"
	ctxRow        = "Row"
	ctxSetRow     = "SetRow"
	ctxCol        = "Col"
	ctxSetCol     = "SetCol"
	ctxGet        = "Get"
	ctxLoad       = "Load"
	ctxReplace    = "Replace"
	ctxAssignFrom = "AssignFrom"
	ctxScalarAdd  = "ScalarAdd"
	ctxScalarMul  = "ScalarMul"
	ctxAdd        = "Add"
	ctxSum        = "Sum"
	ctxRotate     = "Rotate"
	ctxRotated    = "Rotated"
)

const diagMessage = "grid: operation failed"

// gridErrorf wraps a sentinel with a uniform "Grid.<method>" prefix.
// Format args describe the call site (indices, lengths) and precede the sentinel.
func gridErrorf(method, detail string, err error) error {
	if detail == "" {
		return fmt.Errorf("Grid.%s: %w", method, err)
	}

	return fmt.Errorf("Grid.%s(%s): %w", method, detail, err)
}

// logger resolves the diagnostics sink at call time.
func (g *Grid[T]) logger() *slog.Logger {
	if g.opts.logger != nil {
		return g.opts.logger
	}

	return slog.Default()
}

// fail emits one diagnostic record when enabled and returns err unchanged.
// The record carries the op tag, the error, the current shape and attrs.
func (g *Grid[T]) fail(op string, err error, attrs ...slog.Attr) error {
	if !g.opts.diagnostics {
		return err
	}
	base := []slog.Attr{
		slog.String("op", op),
		slog.Any("error", err),
		slog.Int("rows", g.rows),
		slog.Int("cols", g.cols),
	}
	g.logger().LogAttrs(context.Background(), slog.LevelWarn, diagMessage, append(base, attrs...)...)

	return err
}

// expectFound builds the usual actual/expected attribute pair.
func expectFound(expected, found int) []slog.Attr {
	return []slog.Attr{slog.Int("expected", expected), slog.Int("found", found)}
}
