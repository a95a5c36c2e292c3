package game

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Player dimensions in world pixels.
const (
	playerWidth  = 40
	playerHeight = 60
)

// Player holds the player's continuous position, velocity, and all timed
// state: jump/coyote bookkeeping, powerup expiries, and the post-respawn
// invincibility window. Position is float for sub-pixel integration; Rect is
// the integer-snapped bounding box used for collision.
type Player struct {
	X, Y   float64
	VX, VY float64
	Rect   core.Rect

	BaseSpeed    float64
	Speed        float64 // current speed, boosted while speed_boost is active
	JumpStrength float64 // negative = upward

	MaxJumps       int
	JumpsRemaining int
	FacingRight    bool

	// Coyote time: LastGroundMS marks the last instant the player was
	// confirmed grounded. Not reset when leaving ground.
	OnGround     bool
	LastGroundMS int64

	// Powerup expiry timestamps, indexed by PowerupType.
	PowerUntil [powerupCount]int64

	// Post-respawn damage grace, independent of the invincibility powerup.
	HitInvincibleUntil int64

	coyoteMS    int64
	boostFactor float64
}

// NewPlayer creates a player at the given start position.
func NewPlayer(startX, startY int, phys config.PhysicsConfig, timing config.TimingConfig, powerups config.PowerupConfig) *Player {
	return &Player{
		X:              float64(startX),
		Y:              float64(startY),
		Rect:           core.NewRect(startX, startY, playerWidth, playerHeight),
		BaseSpeed:      phys.BaseSpeed,
		Speed:          phys.BaseSpeed,
		JumpStrength:   phys.JumpImpulse,
		MaxJumps:       1,
		JumpsRemaining: 1,
		FacingRight:    true,
		coyoteMS:       timing.CoyoteTimeMS,
		boostFactor:    powerups.SpeedBoostFactor,
	}
}

// CanJump reports whether a jump may be activated at nowMS.
// A jump is allowed with jumps remaining when grounded, within the coyote
// window after leaving ground, or at any time while double jump is active.
func (p *Player) CanJump(nowMS int64) bool {
	if p.JumpsRemaining <= 0 {
		return false
	}
	if p.OnGround {
		return true
	}
	if nowMS-p.LastGroundMS <= p.coyoteMS {
		return true
	}
	return p.MaxJumps > 1
}

// Jump activates a jump: upward impulse and one jump consumed.
// Callers must check CanJump first.
func (p *Player) Jump() {
	p.VY = p.JumpStrength
	p.JumpsRemaining--
}

// Land records a confirmed grounding at nowMS: jumps refill completely.
func (p *Player) Land(nowMS int64) {
	p.OnGround = true
	p.LastGroundMS = nowMS
	p.JumpsRemaining = p.MaxJumps
}

// UpdatePowerups re-derives the transient attributes from the expiry
// timestamps. Called once per tick before physics.
func (p *Player) UpdatePowerups(nowMS int64) {
	if nowMS < p.PowerUntil[PowerupSpeedBoost] {
		p.Speed = p.BaseSpeed * p.boostFactor
	} else {
		p.Speed = p.BaseSpeed
	}

	if nowMS < p.PowerUntil[PowerupDoubleJump] {
		p.MaxJumps = 2
	} else {
		p.MaxJumps = 1
	}

	if p.JumpsRemaining > p.MaxJumps {
		p.JumpsRemaining = p.MaxJumps
	}
	// invincibility is read on demand via IsInvincible
}

// ApplyPowerup sets the expiry for a powerup type. Gaining double jump
// immediately refills jumps to the current maximum so an airborne player can
// use the pickup right away; this is a special case for that type only.
func (p *Player) ApplyPowerup(ptype PowerupType, durationMS, nowMS int64) {
	p.PowerUntil[ptype] = nowMS + durationMS
	if ptype == PowerupDoubleJump && p.JumpsRemaining < p.MaxJumps {
		p.JumpsRemaining = p.MaxJumps
	}
}

// IsInvincible reports whether the player takes no damage at nowMS, from
// either the invincibility powerup or the post-respawn grace window.
func (p *Player) IsInvincible(nowMS int64) bool {
	return nowMS < p.PowerUntil[PowerupInvincibility] || nowMS < p.HitInvincibleUntil
}

// PowerupRemainingMS returns milliseconds until a powerup expires, 0 if
// inactive.
func (p *Player) PowerupRemainingMS(ptype PowerupType, nowMS int64) int64 {
	remaining := p.PowerUntil[ptype] - nowMS
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Respawn resets position and velocity, clears ground state, and grants the
// timed hit-invincibility window.
func (p *Player) Respawn(startX, startY int, nowMS, invincibleMS int64) {
	p.X = float64(startX)
	p.Y = float64(startY)
	p.Rect.X = startX
	p.Rect.Y = startY
	p.VX = 0
	p.VY = 0
	p.HitInvincibleUntil = nowMS + invincibleMS
	p.LastGroundMS = 0
	p.OnGround = false
}

// SyncRectX snaps the integer rect from the float x position.
func (p *Player) SyncRectX() {
	p.Rect.X = int(p.X)
}

// SyncRectY snaps the integer rect from the float y position.
func (p *Player) SyncRectY() {
	p.Rect.Y = int(p.Y)
}

// Center returns the center of the player's bounding box.
func (p *Player) Center() (int, int) {
	return p.Rect.Center()
}

// Moving reports whether the player has horizontal velocity, used for the
// walk animation phase.
func (p *Player) Moving() bool {
	return p.VX != 0
}
