// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config loads the simulator settings from YAML files and
// environment variables.
package config

import (
	"os"
	"strconv"

	"github.com/db47h/switchsim"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding file settings.
const (
	EnvMaxRounds = "SWITCHSIM_MAX_ROUNDS"
	EnvWorkers   = "SWITCHSIM_WORKERS"
	EnvLogLevel  = "SWITCHSIM_LOG_LEVEL"
)

// Config contains all switchsim settings.
type Config struct {
	Sim     SimConfig     `json:"sim" yaml:"sim"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// SimConfig configures the scheduler.
type SimConfig struct {
	// MaxRounds is the round cap of a run.
	MaxRounds int `json:"max_rounds" yaml:"max_rounds"`

	// Workers is the number of goroutines evaluating each round. 1 runs
	// everything on the calling goroutine.
	Workers int `json:"workers" yaml:"workers"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	Level string `json:"level" yaml:"level"`

	// Format is "text" (default) or "json".
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Sim: SimConfig{
			MaxRounds: switchsim.DefaultMaxRounds,
			Workers:   1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads the configuration.
// Order: defaults -> path, if not empty -> environment variables
func Load(path string) (*Config, error) {
	config := Default()
	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		config = fileConfig
	}
	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file. Missing
// settings keep their default value.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(err, "parsing config file")
	}
	return config, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Sim.MaxRounds < 1 {
		return errors.Errorf("max_rounds must be positive, got %d", c.Sim.MaxRounds)
	}
	if c.Sim.Workers < 1 {
		return errors.Errorf("workers must be positive, got %d", c.Sim.Workers)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return errors.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return errors.Errorf("invalid log format: %s (valid: text, json)", c.Logging.Format)
	}
	return nil
}

func applyEnvOverrides(config *Config) error {
	if v := os.Getenv(EnvMaxRounds); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, EnvMaxRounds)
		}
		config.Sim.MaxRounds = n
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, EnvWorkers)
		}
		config.Sim.Workers = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		config.Logging.Level = v
	}
	return nil
}
