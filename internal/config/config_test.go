package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("WAYPOINT_CONFIG", filepath.Join(dir, "config.toml"))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := filepath.Join(dir, ".local", "share", "waypoint", "catalog.db"); cfg.Database.Path != want {
		t.Errorf("database path = %q, want %q", cfg.Database.Path, want)
	}
	if !cfg.UI.Animation {
		t.Error("animation should default on")
	}
	if cfg.UI.AnimationMs != 300 {
		t.Errorf("animation_ms = %d, want 300", cfg.UI.AnimationMs)
	}
	if cfg.UI.FPS != 30 {
		t.Errorf("fps = %d, want 30", cfg.UI.FPS)
	}
	if cfg.Profile.Name == "" {
		t.Error("profile name should have a default")
	}
}

func TestEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("WAYPOINT_UI_FPS", "60")
	t.Setenv("WAYPOINT_DATABASE_PATH", "/tmp/other.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.FPS != 60 {
		t.Errorf("fps = %d, want env override 60", cfg.UI.FPS)
	}
	if cfg.Database.Path != "/tmp/other.db" {
		t.Errorf("database path = %q, want env override", cfg.Database.Path)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.UI.Animation = false
	cfg.UI.AnimationMs = 150
	cfg.Profile.Name = "Ada"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.toml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.UI.Animation {
		t.Error("animation should persist as off")
	}
	if got.UI.AnimationMs != 150 {
		t.Errorf("animation_ms = %d, want 150", got.UI.AnimationMs)
	}
	if got.Profile.Name != "Ada" {
		t.Errorf("profile name = %q, want Ada", got.Profile.Name)
	}
}

func TestTransitionDuration(t *testing.T) {
	u := UIConfig{AnimationMs: 300}
	if got := u.TransitionDuration(); got != 300*time.Millisecond {
		t.Fatalf("duration = %v", got)
	}
	if got := (UIConfig{}).TransitionDuration(); got != 0 {
		t.Fatalf("zero config duration = %v, want 0", got)
	}
}
