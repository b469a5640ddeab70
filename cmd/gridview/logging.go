package main

import (
	"io"
	"log/slog"
	"os"
)

// newLogger builds the program logger. The terminal belongs to the UI, so
// records go to cfg.LogFile, or nowhere when it is empty.
func newLogger(cfg Config) (*slog.Logger, io.Closer, error) {
	var (
		out    io.Writer = io.Discard
		closer io.Closer = io.NopCloser(nil)
	)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		out, closer = f, f
	}

	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}

	return slog.New(h).With(slog.String("component", "gridview")), closer, nil
}
