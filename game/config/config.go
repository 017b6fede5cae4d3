package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Input modes
const (
	InputAuto = "auto"
	InputKey  = "key"
	InputLine = "line"
)

// Log formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the runtime settings. The game rules themselves are fixed.
type Config struct {
	// Seed for board placement; 0 picks one at startup
	Seed      uint64 `env:"GEMDUEL_SEED"`
	Debug     bool   `env:"GEMDUEL_DEBUG"`
	Input     string `env:"GEMDUEL_INPUT"      envDefault:"auto"`
	LogFormat string `env:"GEMDUEL_LOG_FORMAT" envDefault:"text"`
}

// Load reads an optional .env file from the working directory and parses
// the environment into a Config. Callers merge overrides such as command-line
// flags and then call Validate.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &cfg, nil
}

// Validate checks the enumerated settings
func (c *Config) Validate() error {
	switch c.Input {
	case InputAuto, InputKey, InputLine:
	default:
		return fmt.Errorf("%w: input must be one of %s, %s, %s, got %q", ErrInvalidConfig, InputAuto, InputKey, InputLine, c.Input)
	}

	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: log format must be %s or %s, got %q", ErrInvalidConfig, FormatText, FormatJSON, c.LogFormat)
	}

	return nil
}
