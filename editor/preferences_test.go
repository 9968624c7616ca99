package editor_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vsariola/surface/editor"
)

func setConfigDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)
}

func writeConfig(t *testing.T, name, contents string) {
	t.Helper()
	path, err := editor.ConfigPath(name)
	if err != nil {
		t.Fatalf("ConfigPath failed: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultPreferences(t *testing.T) {
	p := editor.DefaultPreferences()
	if p.Tracks.Height <= 0 || p.Panels.TitleBarHeight <= 0 {
		t.Errorf("defaults have no track or title bar height: %+v", p)
	}
	if p.AnimationDuration() != 180*time.Millisecond {
		t.Errorf("animation duration %v, want 180ms", p.AnimationDuration())
	}
	cfg := p.WindowConfig("x", "X")
	if cfg.MinSize.Width > cfg.Size.Width || cfg.MinSize.Height > cfg.Size.Height {
		t.Errorf("default panel smaller than its minimum: %+v", cfg)
	}
}

func TestUserPreferencesOverrideDefaults(t *testing.T) {
	setConfigDir(t)
	writeConfig(t, "preferences.yml", "grid: 16\ntracks:\n  top: 0\n  height: 64\n")
	p := editor.MakePreferences()
	if p.YmlError != nil {
		t.Fatalf("unexpected error: %v", p.YmlError)
	}
	if p.Grid != 16 || p.Tracks.Height != 64 {
		t.Errorf("overrides not applied: %+v", p)
	}
	if p.Panels != editor.DefaultPreferences().Panels {
		t.Errorf("panel defaults lost: %+v", p.Panels)
	}
}

func TestUserPreferencesWithUnknownKey(t *testing.T) {
	setConfigDir(t)
	writeConfig(t, "preferences.yml", "gird: 16\n")
	if p := editor.MakePreferences(); p.YmlError == nil {
		t.Error("misspelled key was accepted")
	}
}

func TestMissingUserPreferences(t *testing.T) {
	setConfigDir(t)
	p := editor.MakePreferences()
	if p.YmlError != nil {
		t.Errorf("missing preferences.yml reported %v", p.YmlError)
	}
}
