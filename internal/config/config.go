// Package config provides YAML-based configuration loading for the
// platformer: player tunables, physics constants, scoring, viewport, layer
// roles, level order and input behaviour.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate when a value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Jump modes.
const (
	JumpHeld  = "held"  // jump re-applies every frame while held and grounded
	JumpPress = "press" // jump fires once per key press
)

// End-of-list policies for advancing past the last level.
const (
	OnLastStop = "stop"
	OnLastWrap = "wrap"
)

// Config contains all configuration for the game.
type Config struct {
	Player   PlayerConfig   `yaml:"player"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Viewport ViewportConfig `yaml:"viewport"`
	Layers   LayersConfig   `yaml:"layers"`
	Levels   LevelsConfig   `yaml:"levels"`
	Input    InputConfig    `yaml:"input"`
}

// PlayerConfig defines the actor's size, spawn point and movement tunables.
// Velocities are in pixels per second.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	SpawnX       float64 `yaml:"spawn_x"`
	SpawnY       float64 `yaml:"spawn_y"`
	MaxVelocity  float64 `yaml:"max_velocity"`
	JumpVelocity float64 `yaml:"jump_velocity"`
	Damping      float64 `yaml:"damping"`
	AirControl   float64 `yaml:"air_control"` // fraction of max velocity applied mid-air
}

// PhysicsConfig defines per-frame physics constants.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`        // added to vertical velocity every frame, before dt scaling
	FallThreshold float64 `yaml:"fall_threshold"` // scaled downward speed that clears grounded
	MinSpeed      float64 `yaml:"min_speed"`      // horizontal speeds below this snap to zero
}

// ScoringConfig defines the score budget of a level.
type ScoringConfig struct {
	MaxScore     int     `yaml:"max_score"`
	PickupPoints int     `yaml:"pickup_points"`
	PitchStep    float64 `yaml:"pitch_step"`
}

// ViewportConfig is the visible area in pixels; camera bounds derive from it.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LayersConfig names the layer playing each role in a level.
type LayersConfig struct {
	Background string `yaml:"background"`
	Trigger    string `yaml:"trigger"`
	Collision  string `yaml:"collision"`
	Pickup     string `yaml:"pickup"`
}

// LevelsConfig controls which levels are played and in what order.
type LevelsConfig struct {
	Order  []string `yaml:"order"`
	OnLast string   `yaml:"on_last"`
}

// InputConfig controls how key presses become held actions.
type InputConfig struct {
	JumpMode string `yaml:"jump_mode"`
	HoldMS   int    `yaml:"hold_ms"` // how long a key counts as held after its last press
}

// Validate checks that the configuration can drive a simulation.
func (c Config) Validate() error {
	switch {
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size %gx%g", ErrInvalidConfig, c.Player.Width, c.Player.Height)
	case c.Player.MaxVelocity <= 0:
		return fmt.Errorf("%w: player.max_velocity %g", ErrInvalidConfig, c.Player.MaxVelocity)
	case c.Player.Damping < 0 || c.Player.Damping > 1:
		return fmt.Errorf("%w: player.damping %g not in [0,1]", ErrInvalidConfig, c.Player.Damping)
	case c.Player.AirControl < 0 || c.Player.AirControl > 1:
		return fmt.Errorf("%w: player.air_control %g not in [0,1]", ErrInvalidConfig, c.Player.AirControl)
	case c.Scoring.MaxScore <= 0:
		return fmt.Errorf("%w: scoring.max_score %d", ErrInvalidConfig, c.Scoring.MaxScore)
	case c.Scoring.PickupPoints < 0:
		return fmt.Errorf("%w: scoring.pickup_points %d", ErrInvalidConfig, c.Scoring.PickupPoints)
	case c.Viewport.Width <= 0 || c.Viewport.Height <= 0:
		return fmt.Errorf("%w: viewport %gx%g", ErrInvalidConfig, c.Viewport.Width, c.Viewport.Height)
	case c.Levels.OnLast != OnLastStop && c.Levels.OnLast != OnLastWrap:
		return fmt.Errorf("%w: levels.on_last %q", ErrInvalidConfig, c.Levels.OnLast)
	case c.Input.JumpMode != JumpHeld && c.Input.JumpMode != JumpPress:
		return fmt.Errorf("%w: input.jump_mode %q", ErrInvalidConfig, c.Input.JumpMode)
	case c.Input.HoldMS < 0:
		return fmt.Errorf("%w: input.hold_ms %d", ErrInvalidConfig, c.Input.HoldMS)
	}
	return nil
}
