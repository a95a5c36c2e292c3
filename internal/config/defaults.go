package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultGameConfig returns the default platformer configuration.
// These are the reference constants the levels were authored against.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Physics: PhysicsConfig{
			Gravity:      0.6,
			MaxFallSpeed: 15,
			BaseSpeed:    5,
			JumpImpulse:  -13,
		},
		Timing: TimingConfig{
			CoyoteTimeMS:         120,
			RespawnInvincibleMS:  1200,
			LevelCompleteDelayMS: 3000,
			MessageDurationMS:    1500,
		},
		Powerups: PowerupConfig{
			DoubleJumpMS:     15000,
			SpeedBoostMS:     8000,
			InvincibilityMS:  6000,
			SpeedBoostFactor: 1.8,
		},
		Viewport: ViewportConfig{
			Width:  800,
			Height: 600,
		},
		Gameplay: PresetParams(DifficultyNormal),
	}
}

// GetDefaultYAML returns the embedded default config YAML.
func GetDefaultYAML() []byte {
	return defaultPlatformerYAML
}
