// Package config loads service configuration from an optional YAML file with
// environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config controls the HTTP listener, history retention, and the cosmetic
// defaults applied when a solve request omits them.
type Config struct {
	Addr string `yaml:"addr"` // listen address, e.g. ":8080"

	History struct {
		Capacity int    `yaml:"capacity"` // max retained calculations
		File     string `yaml:"file"`     // JSON persistence path; empty disables
	} `yaml:"history"`

	Defaults struct {
		Scale float64 `yaml:"scale"` // drawing scale, units per cm
		Unit  string  `yaml:"unit"`  // unit label: N, m, m/s, m/s²
	} `yaml:"defaults"`
}

// Default returns the built-in configuration.
func Default() Config {
	var c Config
	c.Addr = ":8080"
	c.History.Capacity = 50
	c.Defaults.Scale = 10
	c.Defaults.Unit = "N"
	return c
}

// Load reads the YAML file at path, falling back to defaults when the file
// does not exist, then applies environment overrides (LISTEN_ADDR,
// HISTORY_FILE, HISTORY_CAPACITY).
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	case err != nil:
		return Config{}, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config: %w", err)
		}
	}

	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("HISTORY_FILE"); v != "" {
		cfg.History.File = v
	}
	if v := os.Getenv("HISTORY_CAPACITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parsing HISTORY_CAPACITY: %w", err)
		}
		cfg.History.Capacity = n
	}

	return cfg, nil
}
