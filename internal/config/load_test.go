package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rowjay/hour-window/internal/window"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadYAMLWindows(t *testing.T) {
	path := writeConfig(t, "hw.yaml", `
global:
  log_level: debug
windows:
  business:
    start: 9
    end: 17
  night:
    start: 22
    end: 5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Global.LogLevel != "debug" {
		t.Fatalf("unexpected log level: %s", cfg.Global.LogLevel)
	}
	if cfg.Global.LogFormat != "json" {
		t.Fatalf("expected default log format, got %s", cfg.Global.LogFormat)
	}
	if got := cfg.Windows["business"]; got != (window.Range{Start: 9, End: 17}) {
		t.Fatalf("unexpected business window: %+v", got)
	}
	if got := cfg.Windows["night"]; got != (window.Range{Start: 22, End: 5}) {
		t.Fatalf("unexpected night window: %+v", got)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "hw.toml", `
[windows.always]
start = 5
end = 5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Windows["always"].IsWholeDay() {
		t.Fatalf("expected whole-day window: %+v", cfg.Windows["always"])
	}
}

func TestLoadRejectsInvalidHour(t *testing.T) {
	path := writeConfig(t, "hw.yaml", `
windows:
  broken:
    start: 9
    end: 24
`)
	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !window.IsInvalidHour(err) || !strings.Contains(err.Error(), "broken") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "hw.yaml", "global:\n  log_level: info\n")
	t.Setenv("HW_GLOBAL_LOG_FORMAT", "console")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Global.LogFormat != "console" {
		t.Fatalf("expected env override, got %s", cfg.Global.LogFormat)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
