package game

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

func testPlayer() *Player {
	cfg := config.DefaultGameConfig()
	return NewPlayer(100, 500, cfg.Physics, cfg.Timing, cfg.Powerups)
}

func TestNewPlayerDefaults(t *testing.T) {
	p := testPlayer()

	if p.Speed != 5 || p.BaseSpeed != 5 {
		t.Errorf("Speed = %f, expected 5", p.Speed)
	}
	if p.JumpStrength != -13 {
		t.Errorf("JumpStrength = %f, expected -13", p.JumpStrength)
	}
	if p.MaxJumps != 1 || p.JumpsRemaining != 1 {
		t.Errorf("jumps = %d/%d, expected 1/1", p.JumpsRemaining, p.MaxJumps)
	}
	if !p.FacingRight {
		t.Error("player should start facing right")
	}
	if p.Rect.W != 40 || p.Rect.H != 60 {
		t.Errorf("player size = %dx%d, expected 40x60", p.Rect.W, p.Rect.H)
	}
}

func TestJumpConsumesAndImpulses(t *testing.T) {
	p := testPlayer()
	p.Land(1000)

	if !p.CanJump(1000) {
		t.Fatal("grounded player with a jump should be able to jump")
	}

	p.Jump()
	if p.VY != -13 {
		t.Errorf("VY after jump = %f, expected -13", p.VY)
	}
	if p.JumpsRemaining != 0 {
		t.Errorf("JumpsRemaining after jump = %d, expected 0", p.JumpsRemaining)
	}
}

func TestCoyoteTimeWindow(t *testing.T) {
	p := testPlayer()
	p.Land(1000)
	p.OnGround = false // walked off an edge

	if !p.CanJump(1100) {
		t.Error("jump within the coyote window should be allowed")
	}
	if !p.CanJump(1120) {
		t.Error("jump at the edge of the coyote window should be allowed")
	}
	if p.CanJump(1121) {
		t.Error("jump after the coyote window should be rejected")
	}
}

func TestCanJumpRequiresJumpsRemaining(t *testing.T) {
	p := testPlayer()
	p.Land(1000)
	p.Jump()

	// Still grounded by state, but no jumps left
	if p.CanJump(1000) {
		t.Error("jump with zero jumps remaining should be rejected")
	}
}

func TestLandRefillsJumps(t *testing.T) {
	p := testPlayer()
	p.MaxJumps = 2
	p.JumpsRemaining = 0

	p.Land(2000)

	if !p.OnGround {
		t.Error("Land should set OnGround")
	}
	if p.LastGroundMS != 2000 {
		t.Errorf("LastGroundMS = %d, expected 2000", p.LastGroundMS)
	}
	if p.JumpsRemaining != 2 {
		t.Errorf("JumpsRemaining = %d, expected full refill to 2", p.JumpsRemaining)
	}
}

func TestDoubleJumpPickupAirborne(t *testing.T) {
	p := testPlayer()

	// Airborne with no jumps left, past the coyote window
	p.Land(0)
	p.OnGround = false
	p.Jump()
	now := int64(5000)

	if p.CanJump(now) {
		t.Fatal("exhausted airborne player should not be able to jump")
	}

	// Picking up double jump refills to the current maximum immediately,
	// so the airborne player gets exactly one jump back.
	p.ApplyPowerup(PowerupDoubleJump, 15000, now)
	if p.JumpsRemaining != 1 {
		t.Errorf("JumpsRemaining after pickup = %d, expected 1", p.JumpsRemaining)
	}

	// The next tick's timer pass raises the maximum, making it usable.
	p.UpdatePowerups(now)
	if p.MaxJumps != 2 {
		t.Errorf("MaxJumps while double jump active = %d, expected 2", p.MaxJumps)
	}
	if !p.CanJump(now) {
		t.Error("airborne jump should be allowed while double jump is active")
	}
}

func TestDoubleJumpPickupDoesNotExceedMax(t *testing.T) {
	p := testPlayer()
	p.UpdatePowerups(0)
	p.ApplyPowerup(PowerupDoubleJump, 15000, 0)
	p.UpdatePowerups(0)

	// Grounded refill, then re-pickup: stays at the maximum
	p.Land(100)
	p.ApplyPowerup(PowerupDoubleJump, 15000, 100)
	if p.JumpsRemaining != 2 {
		t.Errorf("JumpsRemaining = %d, expected 2", p.JumpsRemaining)
	}
}

func TestSpeedBoostDerivation(t *testing.T) {
	p := testPlayer()

	// Hard preset scales the 8000ms base down to 6800ms
	duration := config.PresetParams(config.DifficultyHard).ScaledPowerupDuration(8000)
	p.ApplyPowerup(PowerupSpeedBoost, duration, 1000)

	p.UpdatePowerups(1000)
	if p.Speed != 5*1.8 {
		t.Errorf("boosted speed = %f, expected %f", p.Speed, 5*1.8)
	}

	p.UpdatePowerups(7799)
	if p.Speed != 5*1.8 {
		t.Errorf("speed one ms before expiry = %f, expected boosted", p.Speed)
	}

	p.UpdatePowerups(7800)
	if p.Speed != 5 {
		t.Errorf("speed at expiry = %f, expected base 5", p.Speed)
	}
}

func TestDoubleJumpExpiryClampsJumps(t *testing.T) {
	p := testPlayer()
	p.ApplyPowerup(PowerupDoubleJump, 15000, 0)
	p.UpdatePowerups(0)
	p.Land(0) // JumpsRemaining = 2

	p.UpdatePowerups(15000)
	if p.MaxJumps != 1 {
		t.Errorf("MaxJumps after expiry = %d, expected 1", p.MaxJumps)
	}
	if p.JumpsRemaining != 1 {
		t.Errorf("JumpsRemaining after expiry = %d, expected clamp to 1", p.JumpsRemaining)
	}
}

func TestInvincibilitySources(t *testing.T) {
	p := testPlayer()

	if p.IsInvincible(0) {
		t.Error("player should not start invincible")
	}

	p.ApplyPowerup(PowerupInvincibility, 6000, 1000)
	if !p.IsInvincible(1000) || !p.IsInvincible(6999) {
		t.Error("invincibility powerup should protect until expiry")
	}
	if p.IsInvincible(7000) {
		t.Error("invincibility should lapse at expiry")
	}

	// Respawn grace is independent of the powerup
	p.Respawn(100, 500, 10000, 1200)
	if !p.IsInvincible(10000) || !p.IsInvincible(11199) {
		t.Error("respawn grace should protect until its window closes")
	}
	if p.IsInvincible(11200) {
		t.Error("respawn grace should lapse at its window")
	}
}

func TestPowerupRemainingMS(t *testing.T) {
	p := testPlayer()
	p.ApplyPowerup(PowerupSpeedBoost, 8000, 1000)

	if got := p.PowerupRemainingMS(PowerupSpeedBoost, 3000); got != 6000 {
		t.Errorf("remaining = %d, expected 6000", got)
	}
	if got := p.PowerupRemainingMS(PowerupSpeedBoost, 20000); got != 0 {
		t.Errorf("remaining after expiry = %d, expected 0", got)
	}
	if got := p.PowerupRemainingMS(PowerupDoubleJump, 3000); got != 0 {
		t.Errorf("remaining for inactive type = %d, expected 0", got)
	}
}

func TestRespawnResetsMotion(t *testing.T) {
	p := testPlayer()
	p.VX = 5
	p.VY = -10
	p.X = 700
	p.Y = 100
	p.OnGround = true
	p.LastGroundMS = 4000

	p.Respawn(120, 480, 5000, 1200)

	if p.X != 120 || p.Y != 480 {
		t.Errorf("position = (%f, %f), expected (120, 480)", p.X, p.Y)
	}
	if p.Rect.X != 120 || p.Rect.Y != 480 {
		t.Errorf("rect = (%d, %d), expected (120, 480)", p.Rect.X, p.Rect.Y)
	}
	if p.VX != 0 || p.VY != 0 {
		t.Errorf("velocity = (%f, %f), expected zero", p.VX, p.VY)
	}
	if p.OnGround {
		t.Error("respawn should clear ground state")
	}
	if p.LastGroundMS != 0 {
		t.Error("respawn should clear the coyote reference")
	}
}
