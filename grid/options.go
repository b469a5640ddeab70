// SPDX-License-Identifier: MIT

// Package grid: functional configuration for Grid construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Options are fixed at construction; Clone and the copy-mode operations
//     (Sum, RotatedCW, ...) propagate them to the new grid.
//   - Diagnostics are a side channel: they never change return values.
package grid

import "log/slog"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDiagnostics toggles slog records for failed operations.
	DefaultDiagnostics = false

	// DefaultFiniteOnly toggles rejection of NaN/±Inf on every write path.
	// Off by default: the container stores whatever numbers it is given.
	DefaultFiniteOnly = false
)

const panicNilLogger = "grid: WithLogger: logger must not be nil"

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	diagnostics bool
	finiteOnly  bool
	logger      *slog.Logger
}

// WithDiagnostics enables or disables diagnostic records for failed operations.
func WithDiagnostics(on bool) Option {
	return func(o *Options) { o.diagnostics = on }
}

// WithLogger sets the diagnostics sink. It does not by itself enable
// diagnostics; combine with WithDiagnostics(true).
//
// Panics when l is nil (programmer error).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithFiniteOnly makes every write path reject NaN and ±Inf with ErrInvalidInput.
// Integer element types are unaffected in practice.
func WithFiniteOnly() Option {
	return func(o *Options) { o.finiteOnly = true }
}

// gatherOptions applies setters over the documented defaults.
// The logger is resolved lazily so slog.SetDefault after construction still applies.
func gatherOptions(opts ...Option) Options {
	o := Options{
		diagnostics: DefaultDiagnostics,
		finiteOnly:  DefaultFiniteOnly,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
