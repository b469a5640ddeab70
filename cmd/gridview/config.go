package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig wraps env parsing and validation failures.
var ErrParsingConfig = errors.New("gridview: failed to parse config")

// Config is read from GRIDVIEW_* environment variables, optionally seeded from a .env file.
type Config struct {
	Rows        int        `env:"GRIDVIEW_ROWS" envDefault:"4"`
	Cols        int        `env:"GRIDVIEW_COLS" envDefault:"6"`
	Diagnostics bool       `env:"GRIDVIEW_DIAGNOSTICS" envDefault:"false"`
	CellWidth   int        `env:"GRIDVIEW_CELL_WIDTH" envDefault:"4"`
	Land        int        `env:"GRIDVIEW_LAND" envDefault:"13"`
	LogLevel    slog.Level `env:"GRIDVIEW_LOG_LEVEL" envDefault:"info"`
	LogFormat   string     `env:"GRIDVIEW_LOG_FORMAT" envDefault:"text"`
	LogFile     string     `env:"GRIDVIEW_LOG_FILE"`
}

// loadConfig loads .env files (missing files are fine) and parses the environment.
func loadConfig(dotenv ...string) (Config, error) {
	// Ignore errors - the .env file might not exist and that's ok
	_ = godotenv.Load(dotenv...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("board shape %dx%d: rows and columns must be > 0", c.Rows, c.Cols)
	}
	if c.CellWidth < 1 {
		return fmt.Errorf("cell width %d: must be > 0", c.CellWidth)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log format %q: must be \"text\" or \"json\"", c.LogFormat)
	}

	return nil
}
