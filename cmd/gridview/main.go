// Command gridview shows a numbered board in the terminal and lets you rotate
// it and apply scalar and elementwise arithmetic interactively.
//
// Configuration comes from GRIDVIEW_* environment variables (see Config),
// optionally seeded from a .env file in the working directory.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, closer, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("gridview: open log: %w", err)
	}
	defer closer.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("gridview: screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("gridview: screen init: %w", err)
	}
	defer screen.Fini()

	log.Info("started", slog.Int("rows", cfg.Rows), slog.Int("cols", cfg.Cols))
	newApp(screen, cfg, log).run()
	log.Info("stopped")

	return nil
}
