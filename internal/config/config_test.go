package config

import (
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid defaults",
			config:  Config{DBPath: "./test.db", Currency: "€", LogLevel: "info"},
			wantErr: false,
		},
		{
			name:    "dollar currency",
			config:  Config{DBPath: "./test.db", Currency: "$", LogLevel: "debug"},
			wantErr: false,
		},
		{
			name:        "empty db path",
			config:      Config{DBPath: "", Currency: "€", LogLevel: "info"},
			wantErr:     true,
			errorString: "database path cannot be empty",
		},
		{
			name:        "blank currency",
			config:      Config{DBPath: "./test.db", Currency: "  ", LogLevel: "info"},
			wantErr:     true,
			errorString: "currency symbol cannot be empty",
		},
		{
			name:        "bad log level",
			config:      Config{DBPath: "./test.db", Currency: "€", LogLevel: "verbose"},
			wantErr:     true,
			errorString: "invalid log level 'verbose'",
		},
		{
			name:        "multiple errors reported together",
			config:      Config{DBPath: "", Currency: "", LogLevel: "nope"},
			wantErr:     true,
			errorString: "currency symbol cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("error %q does not contain %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected ok, got %v", err)
			}
		})
	}
}

func TestConfig_ValidateCreatesDBDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	cfg := Config{DBPath: filepath.Join(dir, "fintrack.db"), Currency: "€", LogLevel: "info"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
}

func TestConfig_SlogLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
	}
	for _, tc := range cases {
		cfg := Config{LogLevel: tc.in}
		if got := cfg.SlogLevel(); got != tc.want {
			t.Fatalf("%q: got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.DBPath == "" || cfg.Currency == "" || cfg.LogLevel == "" {
		t.Fatalf("defaults missing: %+v", cfg)
	}
}
