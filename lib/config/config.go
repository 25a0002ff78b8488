// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/cat/lib/bufsize"
)

// EnvironmentVariable names the config file when --config is absent.
const EnvironmentVariable = "BUREAU_CAT_CONFIG"

// Config is the bureau-cat configuration.
type Config struct {
	// Buffer tunes the raw copy buffer size.
	Buffer BufferConfig `yaml:"buffer" json:"buffer"`

	// Logging configures diagnostics on stderr.
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// BufferConfig mirrors [bufsize.Tuning].
type BufferConfig struct {
	// MaxSize is the hard cap on the buffer, in bytes.
	// Default: 2 MiB
	MaxSize int `yaml:"max_size" json:"max_size"`

	// SmallSize is the default for regular-file output, in bytes.
	// Default: 128 KiB
	SmallSize int `yaml:"small_size" json:"small_size"`

	// MemoryThresholdPages is the physical page count above which
	// regular-file output gets the large size.
	// Default: 32768
	MemoryThresholdPages int64 `yaml:"memory_threshold_pages" json:"memory_threshold_pages"`

	// LargeMultiplier scales SmallSize to the large size.
	// Default: 8
	LargeMultiplier int `yaml:"large_multiplier" json:"large_multiplier"`
}

// LoggingConfig configures the stderr logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: info
	Level string `yaml:"level" json:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	tuning := bufsize.DefaultTuning()
	return &Config{
		Buffer: BufferConfig{
			MaxSize:              tuning.MaxSize,
			SmallSize:            tuning.SmallSize,
			MemoryThresholdPages: tuning.MemoryThresholdPages,
			LargeMultiplier:      tuning.LargeMultiplier,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads the file named by BUREAU_CAT_CONFIG, or returns [Default]
// when the variable is unset.
func Load() (*Config, error) {
	path := os.Getenv(EnvironmentVariable)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads and validates the file at path. Fields the file omits
// keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		err = json.Unmarshal(jsonc.ToJSON(data), cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Tuning().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("buffer: %w", err))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Tuning returns the buffer settings in the form the sizing policy
// takes.
func (c *Config) Tuning() bufsize.Tuning {
	return bufsize.Tuning{
		MaxSize:              c.Buffer.MaxSize,
		SmallSize:            c.Buffer.SmallSize,
		MemoryThresholdPages: c.Buffer.MemoryThresholdPages,
		LargeMultiplier:      c.Buffer.LargeMultiplier,
	}
}

// Level parses Logging.Level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("logging.level: %w", err)
	}
	return level, nil
}
