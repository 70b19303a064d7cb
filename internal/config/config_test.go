package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v, expected nil", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("parse(defaultYAML) error = %v", err)
	}
	def := DefaultConfig()

	if cfg.Player != def.Player {
		t.Errorf("player = %+v, expected %+v", cfg.Player, def.Player)
	}
	if cfg.Physics != def.Physics {
		t.Errorf("physics = %+v, expected %+v", cfg.Physics, def.Physics)
	}
	if cfg.Scoring != def.Scoring {
		t.Errorf("scoring = %+v, expected %+v", cfg.Scoring, def.Scoring)
	}
	if len(cfg.Levels.Order) != len(def.Levels.Order) {
		t.Errorf("levels.order = %v, expected %v", cfg.Levels.Order, def.Levels.Order)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("player:\n  max_velocity: 200\nlevels:\n  on_last: wrap\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Player.MaxVelocity != 200 {
		t.Errorf("MaxVelocity = %v, expected 200", cfg.Player.MaxVelocity)
	}
	if cfg.Levels.OnLast != OnLastWrap {
		t.Errorf("OnLast = %q, expected %q", cfg.Levels.OnLast, OnLastWrap)
	}
	// Untouched keys keep defaults
	if cfg.Player.JumpVelocity != 400 {
		t.Errorf("JumpVelocity = %v, expected default 400", cfg.Player.JumpVelocity)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Load() with missing file should fail")
	}
}

func TestLoadInvalidCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("input:\n  jump_mode: sometimes\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Player.Width = 0 }},
		{"negative max velocity", func(c *Config) { c.Player.MaxVelocity = -1 }},
		{"damping above one", func(c *Config) { c.Player.Damping = 1.5 }},
		{"air control negative", func(c *Config) { c.Player.AirControl = -0.1 }},
		{"zero max score", func(c *Config) { c.Scoring.MaxScore = 0 }},
		{"negative pickup points", func(c *Config) { c.Scoring.PickupPoints = -5 }},
		{"empty viewport", func(c *Config) { c.Viewport.Height = 0 }},
		{"unknown on_last", func(c *Config) { c.Levels.OnLast = "loop" }},
		{"unknown jump mode", func(c *Config) { c.Input.JumpMode = "" }},
		{"negative hold", func(c *Config) { c.Input.HoldMS = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestOverridesApply(t *testing.T) {
	cfg := DefaultConfig()

	if err := (Overrides{JumpMode: JumpPress}).Apply(&cfg); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if cfg.Input.JumpMode != JumpPress {
		t.Errorf("JumpMode = %q, expected %q", cfg.Input.JumpMode, JumpPress)
	}
	if cfg.Levels.OnLast != OnLastStop {
		t.Errorf("empty override should keep OnLast, got %q", cfg.Levels.OnLast)
	}

	if err := (Overrides{OnLast: "bogus"}).Apply(&cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Apply() with bad on_last = %v, expected ErrInvalidConfig", err)
	}
}
