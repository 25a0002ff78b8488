// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/cat/lib/bufsize"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Tuning() != bufsize.DefaultTuning() {
		t.Errorf("default tuning = %+v, want %+v", cfg.Tuning(), bufsize.DefaultTuning())
	}
	if level, err := cfg.Level(); err != nil || level != slog.LevelInfo {
		t.Errorf("default level = %v, %v", level, err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad_UnsetUsesDefault(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Buffer.MaxSize != bufsize.DefaultMaxSize {
		t.Errorf("expected default max_size, got %d", cfg.Buffer.MaxSize)
	}
}

func TestLoad_WithEnvironmentVariable(t *testing.T) {
	path := writeConfig(t, "cat.yaml", `
buffer:
  small_size: 65536
logging:
  level: debug
`)
	t.Setenv(EnvironmentVariable, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Buffer.SmallSize != 65536 {
		t.Errorf("expected small_size=65536, got %d", cfg.Buffer.SmallSize)
	}
	// Fields the file omits keep their defaults.
	if cfg.Buffer.MaxSize != bufsize.DefaultMaxSize {
		t.Errorf("expected default max_size, got %d", cfg.Buffer.MaxSize)
	}
	if level, _ := cfg.Level(); level != slog.LevelDebug {
		t.Errorf("expected level=debug, got %v", level)
	}
}

func TestLoadFile_JSONC(t *testing.T) {
	path := writeConfig(t, "cat.jsonc", `{
  // Smaller cap for a constrained host.
  "buffer": {
    "max_size": 1048576,
    "large_multiplier": 4,
  },
}`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if cfg.Buffer.MaxSize != 1048576 || cfg.Buffer.LargeMultiplier != 4 {
		t.Errorf("buffer = %+v", cfg.Buffer)
	}
	if cfg.Buffer.SmallSize != bufsize.DefaultSmallSize {
		t.Errorf("expected default small_size, got %d", cfg.Buffer.SmallSize)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"malformed yaml", "cat.yaml", "buffer: [", "parsing"},
		{"malformed json", "cat.json", `{"buffer": }`, "parsing"},
		{"small above max", "cat.yaml", "buffer:\n  small_size: 4194304\n", "exceeds max size"},
		{"zero multiplier", "cat.yaml", "buffer:\n  large_multiplier: 0\n", "large multiplier"},
		{"unknown level", "cat.yaml", "logging:\n  level: loud\n", "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
