// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable [Load] reads the config path
// from.
const EnvVar = "GEOBLOB_CONFIG"

// DefaultMaxBlobBytes is the default limit on the size of a blob file
// the CLI will read: 1 GiB.
const DefaultMaxBlobBytes int64 = 1 << 30

// Colour modes for inspect output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the configuration for the geoblob CLI.
type Config struct {
	// Log configures the command logger.
	Log LogConfig `yaml:"log"`

	// Limits bounds the input the CLI accepts.
	Limits LimitsConfig `yaml:"limits"`

	// Inspect configures inspect output.
	Inspect InspectConfig `yaml:"inspect"`

	// Intent configures the design-intent cross-check.
	Intent IntentConfig `yaml:"intent"`

	// Output configures where generated files are written.
	Output OutputConfig `yaml:"output"`
}

// LogConfig configures the command logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: info
	Level string `yaml:"level"`
}

// LimitsConfig bounds the input the CLI accepts.
type LimitsConfig struct {
	// MaxBlobBytes rejects blob files larger than this before they are
	// read into memory.
	// Default: 1 GiB
	MaxBlobBytes int64 `yaml:"max_blob_bytes"`
}

// InspectConfig configures inspect output.
type InspectConfig struct {
	// Color is auto (style when stdout is a terminal), always, or never.
	// Default: auto
	Color string `yaml:"color"`
}

// IntentConfig configures the design-intent cross-check.
type IntentConfig struct {
	// RequirePieceNames makes the cross-check require every blob piece
	// and attached curve to be named in the intent, not only the piece
	// count to agree.
	// Default: true
	RequirePieceNames bool `yaml:"require_piece_names"`
}

// OutputConfig configures where generated files are written.
type OutputConfig struct {
	// Dir is the directory upgrade and manifest write into when no
	// explicit output path is given. Empty means next to the input.
	Dir string `yaml:"dir"`
}

// Default returns the default configuration. The CLI uses it unchanged
// when neither --config nor GEOBLOB_CONFIG is given, and as the base a
// config file is merged over.
func Default() *Config {
	return &Config{
		Log:     LogConfig{Level: "info"},
		Limits:  LimitsConfig{MaxBlobBytes: DefaultMaxBlobBytes},
		Inspect: InspectConfig{Color: ColorAuto},
		Intent:  IntentConfig{RequirePieceNames: true},
	}
}

// Load loads configuration from the GEOBLOB_CONFIG environment
// variable. There are no fallbacks: if it is not set, this fails.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvVar)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your geoblob.yaml config file, or use --config flag", EnvVar)
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, merged over
// [Default]. Unknown keys are rejected so that a misspelled setting
// does not silently fall back to its default. The only expansion
// performed is ${VAR} and ${VAR:-default} in output.dir.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.expandVariables()

	return cfg, nil
}

// loadFile loads a single configuration file, merging into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	c.Output.Dir = expandVars(c.Output.Dir)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}
	return level, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}

	if c.Limits.MaxBlobBytes <= 0 {
		errs = append(errs, fmt.Errorf("limits.max_blob_bytes must be positive, got %d", c.Limits.MaxBlobBytes))
	}

	colorValues := []string{ColorAuto, ColorAlways, ColorNever}
	if !slices.Contains(colorValues, c.Inspect.Color) {
		errs = append(errs, fmt.Errorf("inspect.color must be one of: %v", colorValues))
	}

	if c.Output.Dir != "" {
		info, err := os.Stat(c.Output.Dir)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("output.dir: %w", err))
		case !info.IsDir():
			errs = append(errs, fmt.Errorf("output.dir %s is not a directory", c.Output.Dir))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
