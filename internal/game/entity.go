package game

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// PowerupType represents the closed set of time-limited player modifiers.
type PowerupType int

const (
	PowerupDoubleJump PowerupType = iota
	PowerupSpeedBoost
	PowerupInvincibility
	powerupCount // Sentinel for counting types
)

// String returns the wire/display name of the powerup type.
func (p PowerupType) String() string {
	switch p {
	case PowerupDoubleJump:
		return "double_jump"
	case PowerupSpeedBoost:
		return "speed_boost"
	case PowerupInvincibility:
		return "invincibility"
	default:
		return "?"
	}
}

// Glyph returns the display character for a powerup type.
func (p PowerupType) Glyph() rune {
	switch p {
	case PowerupDoubleJump:
		return 'J'
	case PowerupSpeedBoost:
		return 'S'
	case PowerupInvincibility:
		return '*'
	default:
		return '?'
	}
}

// ParsePowerupType maps a document type tag to a PowerupType.
func ParsePowerupType(s string) (PowerupType, bool) {
	switch s {
	case "double_jump":
		return PowerupDoubleJump, true
	case "speed_boost":
		return PowerupSpeedBoost, true
	case "invincibility":
		return PowerupInvincibility, true
	default:
		return 0, false
	}
}

// EntityKind tags the closed set of collectible/interactive entity kinds.
type EntityKind int

const (
	KindPresent EntityKind = iota
	KindPowerup
)

// String returns the name of the entity kind.
func (k EntityKind) String() string {
	switch k {
	case KindPresent:
		return "present"
	case KindPowerup:
		return "powerup"
	default:
		return "?"
	}
}

// Entity is the uniform shape for collectible level entities: a bounding
// rectangle, a kind tag, and a kind-specific payload.
type Entity struct {
	Rect core.Rect
	Kind EntityKind

	// Texture is the render tag for presents (present, present1..present3).
	Texture string

	// Power is the powerup type when Kind == KindPowerup.
	Power PowerupType
}
