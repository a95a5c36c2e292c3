package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPresetParams(t *testing.T) {
	tests := []struct {
		preset         DifficultyPreset
		lives          int
		enemySpeedMult float64
		powerupMult    float64
	}{
		{DifficultyEasy, 5, 0.85, 1.25},
		{DifficultyNormal, 3, 1.0, 1.0},
		{DifficultyHard, 2, 1.25, 0.85},
		{"nonsense", 3, 1.0, 1.0}, // unknown falls back to normal
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			p := PresetParams(tc.preset)
			if p.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", p.Lives, tc.lives)
			}
			if p.EnemySpeedMult != tc.enemySpeedMult {
				t.Errorf("EnemySpeedMult = %f, expected %f", p.EnemySpeedMult, tc.enemySpeedMult)
			}
			if p.PowerupMult != tc.powerupMult {
				t.Errorf("PowerupMult = %f, expected %f", p.PowerupMult, tc.powerupMult)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultGameConfig()

	ApplyPreset(&cfg, DifficultyHard)

	if cfg.Gameplay.Lives != 2 {
		t.Errorf("Hard preset should set 2 lives, got %d", cfg.Gameplay.Lives)
	}
	// Other sections untouched
	if cfg.Physics.Gravity != 0.6 {
		t.Errorf("Preset should not touch physics, gravity = %f", cfg.Physics.Gravity)
	}
	if cfg.Powerups.SpeedBoostMS != 8000 {
		t.Errorf("Preset should not touch powerup base durations, got %d", cfg.Powerups.SpeedBoostMS)
	}
}

func TestScaledPowerupDuration(t *testing.T) {
	tests := []struct {
		name     string
		mult     float64
		baseMS   int64
		expected int64
	}{
		{"normal keeps base", 1.0, 8000, 8000},
		{"easy lengthens", 1.25, 8000, 10000},
		{"hard shortens", 0.85, 8000, 6800},
		{"hard double jump", 0.85, 15000, 12750},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := GameplayConfig{PowerupMult: tc.mult}
			if got := g.ScaledPowerupDuration(tc.baseMS); got != tc.expected {
				t.Errorf("ScaledPowerupDuration(%d) = %d, expected %d", tc.baseMS, got, tc.expected)
			}
		})
	}
}

func TestDefaultGameConfig(t *testing.T) {
	cfg := DefaultGameConfig()

	if cfg.Physics.Gravity != 0.6 {
		t.Errorf("Gravity = %f, expected 0.6", cfg.Physics.Gravity)
	}
	if cfg.Physics.MaxFallSpeed != 15 {
		t.Errorf("MaxFallSpeed = %f, expected 15", cfg.Physics.MaxFallSpeed)
	}
	if cfg.Physics.JumpImpulse != -13 {
		t.Errorf("JumpImpulse = %f, expected -13", cfg.Physics.JumpImpulse)
	}
	if cfg.Viewport.Width != 800 || cfg.Viewport.Height != 600 {
		t.Errorf("Viewport = %dx%d, expected 800x600", cfg.Viewport.Width, cfg.Viewport.Height)
	}
	if cfg.Timing.LevelCompleteDelayMS != 3000 {
		t.Errorf("LevelCompleteDelayMS = %d, expected 3000", cfg.Timing.LevelCompleteDelayMS)
	}
	if cfg.Gameplay.Lives != 3 {
		t.Errorf("Default lives = %d, expected 3 (normal)", cfg.Gameplay.Lives)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// The embedded YAML and the hardcoded fallback must agree, otherwise
	// behavior depends on which load path was taken.
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "platformer.yaml")
	if err := os.WriteFile(path, GetDefaultYAML(), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}

	loaded, err := LoadGame(path)
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}

	if loaded != DefaultGameConfig() {
		t.Errorf("embedded default differs from hardcoded default:\nloaded:   %+v\nhardcoded: %+v",
			loaded, DefaultGameConfig())
	}
}

func TestLoadGameCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	custom := `
physics:
  gravity: 0.8
  max_fall_speed: 20
  base_speed: 6
  jump_impulse: -15
viewport:
  width: 1024
  height: 768
`
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}

	cfg, err := LoadGame(path)
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.8 {
		t.Errorf("Gravity = %f, expected 0.8", cfg.Physics.Gravity)
	}
	if cfg.Viewport.Width != 1024 {
		t.Errorf("Viewport width = %d, expected 1024", cfg.Viewport.Width)
	}
}

func TestLoadGameMissingCustomPath(t *testing.T) {
	_, err := LoadGame("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("LoadGame with a missing custom path should return an error")
	}
}

func TestLoadGameMalformedCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [not a map"), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}

	_, err := LoadGame(path)
	if err == nil {
		t.Error("LoadGame with malformed YAML should return an error")
	}
}
