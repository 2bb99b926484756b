// Package config loads the translator command configuration from the
// environment and command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config holds the translator command configuration. Flags override the
// environment.
type Config struct {
	// Input is the JSON document to translate; "-" reads standard input.
	Input string `env:"ENERGYMODEL_INPUT" envDefault:"-"`
	// Schema is an optional schema file replacing the embedded one.
	Schema    string `env:"ENERGYMODEL_SCHEMA"`
	Dump      bool   `env:"ENERGYMODEL_DUMP"`
	LogLevel  string `env:"ENERGYMODEL_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"ENERGYMODEL_LOG_FORMAT" envDefault:"console"`
	MaxDepth  int    `env:"ENERGYMODEL_MAX_DEPTH"  envDefault:"32"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Input, "input", cfg.Input, "JSON document to translate (- for stdin)")
	fs.StringVar(&cfg.Schema, "schema", cfg.Schema, "schema YAML file (default: embedded schema)")
	fs.BoolVar(&cfg.Dump, "dump", cfg.Dump, "dump every created object")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: console or json")
	fs.IntVar(&cfg.MaxDepth, "max-depth", cfg.MaxDepth, "maximum reference nesting depth")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Input == "" {
		return Config{}, errors.New("input is required")
	}

	if cfg.MaxDepth < 0 {
		return Config{}, fmt.Errorf("max depth must not be negative, got %d", cfg.MaxDepth)
	}

	return cfg, nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
