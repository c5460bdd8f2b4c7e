// Package config loads process configuration from the environment.
//
// The opening window is fixed in package schedule and is not configurable.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds the site process configuration.
type Config struct {
	HTTPAddr  string `env:"BUSINESS_HOURS_HTTP_ADDR" envDefault:":3000"`
	LogLevel  string `env:"BUSINESS_HOURS_LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"BUSINESS_HOURS_LOG_PRETTY" envDefault:"false"`
}

// Load reads an optional .env file from the working directory and then parses
// the process environment. Variables already set win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse(env.ToMap(os.Environ()))
}

// Parse builds a Config from the given variables, applying defaults.
func Parse(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.HTTPAddr == "" {
		return Config{}, errors.New("http address is required")
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level returns the configured zerolog level.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
