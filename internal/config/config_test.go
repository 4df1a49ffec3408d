package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"studytrack/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "studytrack")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Paths.LogDir != filepath.Join(wantData, "logs") {
		t.Fatalf("unexpected log dir: %q", cfg.Paths.LogDir)
	}
	if cfg.Paths.CatalogPath != "" {
		t.Fatalf("expected empty catalog path, got %q", cfg.Paths.CatalogPath)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Notifications.NtfyTopic != "" {
		t.Fatalf("expected notifications disabled by default, got topic %q", cfg.Notifications.NtfyTopic)
	}
	if !cfg.Notifications.Milestones || !cfg.Notifications.Streaks || !cfg.Notifications.CourseComplete {
		t.Fatalf("expected all notification events enabled by default: %+v", cfg.Notifications)
	}
	if cfg.Defaults.Speed != 1.0 || cfg.Defaults.Theme != "light" || cfg.Defaults.Language != "en" {
		t.Fatalf("unexpected settings defaults: %+v", cfg.Defaults)
	}
	if cfg.DatabasePath() != filepath.Join(wantData, "studytrack.db") {
		t.Fatalf("unexpected database path: %q", cfg.DatabasePath())
	}
}

func TestLoadReadsExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := strings.Join([]string{
		"[paths]",
		`data_dir = "` + filepath.Join(dir, "data") + `"`,
		"[logging]",
		`format = "json"`,
		`level = "debug"`,
		"[defaults]",
		"speed = 1.5",
		`theme = "dark"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected config at %q to be used, got %q exists=%v", path, resolved, exists)
	}
	if cfg.Paths.DataDir != filepath.Join(dir, "data") {
		t.Fatalf("unexpected data dir: %q", cfg.Paths.DataDir)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
	if cfg.Defaults.Speed != 1.5 || cfg.Defaults.Theme != "dark" {
		t.Fatalf("unexpected defaults: %+v", cfg.Defaults)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name     string
		contents string
		want     string
	}{
		{
			name:     "bad format",
			contents: "[logging]\nformat = \"xml\"\n",
			want:     "logging.format",
		},
		{
			name:     "bad level",
			contents: "[logging]\nlevel = \"trace\"\n",
			want:     "logging.level",
		},
		{
			name:     "bad theme",
			contents: "[defaults]\ntheme = \"sepia\"\n",
			want:     "defaults.theme",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.contents), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestCreateSampleWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[paths]") {
		t.Fatal("sample config missing [paths] section")
	}

	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config should load cleanly: %v", err)
	}
}
