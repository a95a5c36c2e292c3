// Package config provides YAML-based game configuration loading and
// difficulty presets for the platformer.
package config

// GameConfig contains all tunable configuration for the platformer.
// Every timing and physics constant the simulation consumes lives here so
// behavior is externally configurable rather than hardcoded.
type GameConfig struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Timing   TimingConfig   `yaml:"timing"`
	Powerups PowerupConfig  `yaml:"powerups"`
	Viewport ViewportConfig `yaml:"viewport"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// PhysicsConfig defines the integration constants, in world pixels per tick.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // px/tick^2
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // terminal velocity, px/tick
	BaseSpeed    float64 `yaml:"base_speed"`     // horizontal speed, px/tick
	JumpImpulse  float64 `yaml:"jump_impulse"`   // negative = upward, px/tick
}

// TimingConfig defines the millisecond windows for time-based state.
type TimingConfig struct {
	CoyoteTimeMS         int64 `yaml:"coyote_time_ms"`          // jump grace after leaving ground
	RespawnInvincibleMS  int64 `yaml:"respawn_invincible_ms"`   // post-respawn damage grace
	LevelCompleteDelayMS int64 `yaml:"level_complete_delay_ms"` // pause before advancing levels
	MessageDurationMS    int64 `yaml:"message_duration_ms"`     // default transient message lifetime
}

// PowerupConfig defines base powerup durations and effect magnitudes.
// Durations are scaled by the difficulty powerup multiplier at apply time.
type PowerupConfig struct {
	DoubleJumpMS     int64   `yaml:"double_jump_ms"`
	SpeedBoostMS     int64   `yaml:"speed_boost_ms"`
	InvincibilityMS  int64   `yaml:"invincibility_ms"`
	SpeedBoostFactor float64 `yaml:"speed_boost_factor"` // speed multiplier while boosted
}

// ViewportConfig defines the camera viewport size in world pixels.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GameplayConfig holds difficulty-derived gameplay values. The loaded values
// are the Normal baseline; ApplyPreset overwrites them from a preset.
type GameplayConfig struct {
	Lives          int     `yaml:"lives"`
	EnemySpeedMult float64 `yaml:"enemy_speed_mult"`
	PowerupMult    float64 `yaml:"powerup_mult"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// PresetParams returns the gameplay values for a difficulty preset.
// Unknown presets fall back to Normal.
func PresetParams(preset DifficultyPreset) GameplayConfig {
	switch preset {
	case DifficultyEasy:
		return GameplayConfig{Lives: 5, EnemySpeedMult: 0.85, PowerupMult: 1.25}
	case DifficultyHard:
		return GameplayConfig{Lives: 2, EnemySpeedMult: 1.25, PowerupMult: 0.85}
	default:
		return GameplayConfig{Lives: 3, EnemySpeedMult: 1.0, PowerupMult: 1.0}
	}
}

// ApplyPreset overwrites the gameplay section from a named preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	cfg.Gameplay = PresetParams(preset)
}

// ScaledPowerupDuration returns a base duration scaled by the difficulty
// powerup multiplier, truncated to whole milliseconds.
func (g GameplayConfig) ScaledPowerupDuration(baseMS int64) int64 {
	return int64(float64(baseMS) * g.PowerupMult)
}
