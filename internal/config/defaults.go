package config

import (
	_ "embed"
)

//go:embed defaults/minimalism.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration, matching the tuning of
// the shipped levels.
func DefaultConfig() Config {
	return Config{
		Player: PlayerConfig{
			Width:        32,
			Height:       32,
			SpawnX:       32,
			SpawnY:       32,
			MaxVelocity:  360,
			JumpVelocity: 400,
			Damping:      0.6,
			AirControl:   0.25,
		},
		Physics: PhysicsConfig{
			Gravity:       -9,
			FallThreshold: 1,
			MinSpeed:      1,
		},
		Scoring: ScoringConfig{
			MaxScore:     1000000,
			PickupPoints: 100000,
			PitchStep:    0.01,
		},
		Viewport: ViewportConfig{
			Width:  1024,
			Height: 728,
		},
		Layers: LayersConfig{
			Background: "background",
			Trigger:    "trigger",
			Collision:  "collision",
			Pickup:     "pickup",
		},
		Levels: LevelsConfig{
			Order:  []string{"level02", "level03", "level04", "level01", "ending"},
			OnLast: OnLastStop,
		},
		Input: InputConfig{
			JumpMode: JumpHeld,
			HoldMS:   150,
		},
	}
}
