package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if cfg.Animation.Acceleration != 3000 {
		t.Errorf("expected acceleration 3000, got %f", cfg.Animation.Acceleration)
	}
	if cfg.Animation.AccelerationModifier != 1.3 {
		t.Errorf("expected modifier 1.3, got %f", cfg.Animation.AccelerationModifier)
	}
	if cfg.Animation.Drag != 7 {
		t.Errorf("expected drag 7, got %f", cfg.Animation.Drag)
	}
	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		t.Errorf("expected positive screen dimensions, got %dx%d",
			cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Demo.Widgets <= 0 {
		t.Errorf("expected positive widget count, got %d", cfg.Demo.Widgets)
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	overlay := []byte("animation:\n  drag: 4\n")
	if err := os.WriteFile(path, overlay, 0644); err != nil {
		t.Fatalf("writing overlay: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading overlay: %v", err)
	}

	// Overridden field
	if cfg.Animation.Drag != 4 {
		t.Errorf("expected overridden drag 4, got %f", cfg.Animation.Drag)
	}
	// Untouched fields keep embedded defaults
	if cfg.Animation.Acceleration != 3000 {
		t.Errorf("expected default acceleration 3000, got %f", cfg.Animation.Acceleration)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	cfg.Animation.Drag = 5.5

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reloading config: %v", err)
	}
	if back.Animation.Drag != 5.5 {
		t.Errorf("expected drag 5.5 after roundtrip, got %f", back.Animation.Drag)
	}
}
