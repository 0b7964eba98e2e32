package config

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/san-kum/bitraster/internal/raster"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 0 {
		t.Errorf("expected auto width 0, got %d", cfg.Width)
	}
	if cfg.DelayMS != 250 {
		t.Errorf("expected delay 250ms, got %d", cfg.DelayMS)
	}
	if cfg.Reverse {
		t.Error("default bit order should be msb-first")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"aligned width", func(c *Config) { c.Width = 512 }, false},
		{"unaligned width", func(c *Config) { c.Width = 100 }, true},
		{"negative width", func(c *Config) { c.Width = -8 }, true},
		{"negative offset", func(c *Config) { c.Offset = -1 }, true},
		{"negative delay", func(c *Config) { c.DelayMS = -1 }, true},
		{"zero delay", func(c *Config) { c.DelayMS = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bitraster.yaml")
	content := "width: 128\nreverse: true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 128 {
		t.Errorf("width = %d, want 128", cfg.Width)
	}
	if !cfg.Reverse {
		t.Error("reverse not loaded")
	}
	// Unset fields keep their defaults.
	if cfg.DelayMS != 250 {
		t.Errorf("delay = %d, want default 250", cfg.DelayMS)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("theme = %q, want default %q", cfg.Theme, DefaultTheme)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	want := &Config{Width: 320, Offset: 4096, DelayMS: 50, Reverse: true, Theme: "green"}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestDelay(t *testing.T) {
	cfg := &Config{DelayMS: 50}
	if cfg.Delay() != 50*time.Millisecond {
		t.Errorf("Delay() = %v, want 50ms", cfg.Delay())
	}
}

func TestOrder(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Order() != raster.MSBFirst {
		t.Error("default order should be msb-first")
	}
	cfg.Reverse = true
	if cfg.Order() != raster.LSBFirst {
		t.Error("reverse should map to lsb-first")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("rom")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Width != 512 {
		t.Errorf("expected width 512, got %d", cfg.Width)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("presets not sorted: %v", names)
	}
	for _, name := range names {
		if GetPreset(name) == nil {
			t.Errorf("listed preset %q not resolvable", name)
		}
	}
}

func TestPresetsValidate(t *testing.T) {
	for name, cfg := range Presets {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q invalid: %v", name, err)
		}
	}
}
