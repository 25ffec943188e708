// Package config loads settings for the guess CLI.
//
// Sources, lowest precedence first: built-in defaults, an optional YAML file,
// environment variables (after .env has been loaded by main), then flags,
// which the command applies on top of Load's result.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/guess/internal/game"
)

// ErrInvalid marks configuration errors so callers can map them to an exit code.
var ErrInvalid = errors.New("invalid configuration")

// DefaultDailySalt keys the daily secret when no salt is configured.
const DefaultDailySalt = "guess-daily"

// Config holds every tunable of a run.
// Env tags carry no defaults; defaults come from Default so a YAML value is
// not overwritten by an unset variable.
type Config struct {
	Low          int    `yaml:"low" env:"GUESS_LOW"`
	High         int    `yaml:"high" env:"GUESS_HIGH"`
	Seed         int64  `yaml:"seed" env:"GUESS_SEED"`
	Daily        bool   `yaml:"daily" env:"GUESS_DAILY"`
	DailySalt    string `yaml:"daily_salt" env:"GUESS_DAILY_SALT"`
	Reveal       bool   `yaml:"reveal" env:"GUESS_REVEAL"`
	Rounds       int    `yaml:"rounds" env:"GUESS_ROUNDS"`
	NoColor      bool   `yaml:"no_color"`
	LogLevel     string `yaml:"log_level" env:"LOG_LEVEL"`
	MessagesFile string `yaml:"messages_file" env:"GUESS_MESSAGES_FILE"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Low:       game.DefaultRange.Low,
		High:      game.DefaultRange.High,
		DailySalt: DefaultDailySalt,
		Rounds:    1,
		LogLevel:  "warn",
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment. NO_COLOR follows the no-color.org
// convention: any non-empty value disables color.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read config %s: %w", ErrInvalid, path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: parse config %s: %w", ErrInvalid, path, err)
	}
	return nil
}

// Range returns the configured secret range.
func (c Config) Range() game.Range {
	return game.Range{Low: c.Low, High: c.High}
}

// Level parses LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	return lvl, nil
}

// Validate checks the final configuration, after flags are applied.
func (c Config) Validate() error {
	if err := c.Range().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Rounds < 1 {
		return fmt.Errorf("%w: rounds must be at least 1, got %d", ErrInvalid, c.Rounds)
	}
	if c.Daily && c.Seed != 0 {
		return fmt.Errorf("%w: --daily and --seed are mutually exclusive", ErrInvalid)
	}
	if c.Daily && c.Rounds > 1 {
		return fmt.Errorf("%w: the daily secret cannot be played for more than one round", ErrInvalid)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}
