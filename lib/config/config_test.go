// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "geoblob.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return configPath
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Log.Level != "info" {
		t.Errorf("expected log.level=info, got %s", cfg.Log.Level)
	}
	if cfg.Limits.MaxBlobBytes != 1<<30 {
		t.Errorf("expected max_blob_bytes=1GiB, got %d", cfg.Limits.MaxBlobBytes)
	}
	if cfg.Inspect.Color != ColorAuto {
		t.Errorf("expected inspect.color=auto, got %s", cfg.Inspect.Color)
	}
	if !cfg.Intent.RequirePieceNames {
		t.Error("expected require_piece_names=true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoad_RequiresGeoblobConfig(t *testing.T) {
	t.Setenv(EnvVar, "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when GEOBLOB_CONFIG not set, got nil")
	}

	expectedMsg := "GEOBLOB_CONFIG environment variable not set"
	if !strings.HasPrefix(err.Error(), expectedMsg) {
		t.Errorf("expected error message to start with %q, got %q", expectedMsg, err.Error())
	}
}

func TestLoad_WithGeoblobConfig(t *testing.T) {
	configPath := writeConfig(t, `
log:
  level: debug
`)
	t.Setenv(EnvVar, configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log.level=debug, got %s", cfg.Log.Level)
	}
	// Unset keys keep their defaults.
	if cfg.Limits.MaxBlobBytes != DefaultMaxBlobBytes {
		t.Errorf("expected default max_blob_bytes, got %d", cfg.Limits.MaxBlobBytes)
	}
}

func TestLoadFile(t *testing.T) {
	outputDir := t.TempDir()
	t.Setenv("GEOBLOB_TEST_OUT", outputDir)

	configPath := writeConfig(t, `
log:
  level: warn

limits:
  max_blob_bytes: 4096

inspect:
  color: never

intent:
  require_piece_names: false

output:
  dir: ${GEOBLOB_TEST_OUT}
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Limits.MaxBlobBytes != 4096 {
		t.Errorf("expected max_blob_bytes=4096, got %d", cfg.Limits.MaxBlobBytes)
	}
	if cfg.Inspect.Color != ColorNever {
		t.Errorf("expected inspect.color=never, got %s", cfg.Inspect.Color)
	}
	if cfg.Intent.RequirePieceNames {
		t.Error("expected require_piece_names=false")
	}
	if cfg.Output.Dir != outputDir {
		t.Errorf("expected output.dir=%s, got %s", outputDir, cfg.Output.Dir)
	}
	level, err := cfg.LogLevel()
	if err != nil {
		t.Fatalf("LogLevel: %v", err)
	}
	if level != slog.LevelWarn {
		t.Errorf("expected warn level, got %v", level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadFile_RejectsUnknownKeys(t *testing.T) {
	configPath := writeConfig(t, `
inspect:
  colour: never
`)
	if _, err := LoadFile(configPath); err == nil {
		t.Fatal("expected error for misspelled key, got nil")
	}
}

func TestLoadFile_Empty(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadFile on empty file: %v", err)
	}
	if cfg.Inspect.Color != ColorAuto {
		t.Errorf("expected defaults from an empty file, got color=%s", cfg.Inspect.Color)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestExpandVars(t *testing.T) {
	t.Setenv("GEOBLOB_TEST_SET", "/set")
	t.Setenv("GEOBLOB_TEST_EMPTY", "")

	tests := []struct {
		input string
		want  string
	}{
		{"${GEOBLOB_TEST_SET}/out", "/set/out"},
		{"${GEOBLOB_TEST_EMPTY:-/fallback}", "/fallback"},
		{"${GEOBLOB_TEST_UNSET_VARIABLE}", ""},
		{"/plain/path", "/plain/path"},
	}
	for _, test := range tests {
		if got := expandVars(test.input); got != test.want {
			t.Errorf("expandVars(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "loud"
	cfg.Limits.MaxBlobBytes = 0
	cfg.Inspect.Color = "sometimes"
	cfg.Output.Dir = filepath.Join(t.TempDir(), "missing")

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors, got nil")
	}
	for _, fragment := range []string{"log.level", "max_blob_bytes", "inspect.color", "output.dir"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("validation error %q does not mention %s", err, fragment)
		}
	}
}
