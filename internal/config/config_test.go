package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFrom_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Theme != "default" || cfg.HistorySize != 50 || cfg.InputCapacity != 1024 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Agent != "echo" {
		t.Fatalf("expected echo agent default, got %s", cfg.Agent)
	}
}

func TestLoadFrom_ParsesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
theme: light
history_size: 10
agent: anthropic
model: some-model
no_color: true
activity_log:
  enabled: true
  path: /tmp/claw-activity.jsonl
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Theme != "light" || cfg.HistorySize != 10 || cfg.Agent != "anthropic" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if !cfg.NoColor || !cfg.ActivityLog.Enabled {
		t.Fatalf("expected no_color and activity log enabled: %+v", cfg)
	}
	// Unset fields still get defaults.
	if cfg.InputCapacity != 1024 {
		t.Fatalf("expected default input capacity, got %d", cfg.InputCapacity)
	}
}

func TestLoadFrom_RejectsUnknownTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("theme: neon\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := LoadFrom(path)
	if err == nil || !strings.Contains(err.Error(), "theme") {
		t.Fatalf("expected theme error, got %v", err)
	}
}

func TestLoadFrom_RejectsUnknownAgent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("agent: psychic\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := LoadFrom(path)
	if err == nil || !strings.Contains(err.Error(), "agent") {
		t.Fatalf("expected agent error, got %v", err)
	}
}

func TestLoadFrom_RejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("theme: [broken\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestPath_EnvOverride(t *testing.T) {
	t.Setenv("CLAW_CONFIG", "/tmp/custom.yaml")
	if got := Path(); got != "/tmp/custom.yaml" {
		t.Fatalf("expected env override, got %s", got)
	}
}
