package game

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// placePlayer positions a test player with the given float coordinates and
// velocity, keeping the rect in sync.
func placePlayer(x, y, vx, vy float64) *Player {
	p := testPlayer()
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.SyncRectX()
	p.SyncRectY()
	return p
}

func TestResolveVerticalLanding(t *testing.T) {
	ground := core.NewRect(0, 560, 800, 40)

	// Falling player whose feet have passed into the ground this tick
	p := placePlayer(100, 510, 0, 12)

	landed := ResolveVertical(p, []core.Rect{ground})

	if !landed {
		t.Fatal("falling into a solid should land")
	}
	if p.Rect.Bottom() != 560 {
		t.Errorf("bottom = %d, expected snap to 560", p.Rect.Bottom())
	}
	if p.VY != 0 {
		t.Errorf("VY = %f, expected 0 after landing", p.VY)
	}
	if p.JumpsRemaining != p.MaxJumps {
		t.Error("landing should refill jumps")
	}
	if p.Y != float64(p.Rect.Y) {
		t.Error("float y should be resynced to the snapped rect")
	}
}

func TestResolveVerticalUnderside(t *testing.T) {
	platform := core.NewRect(80, 300, 200, 20)

	// Rising player whose head has passed into the platform
	p := placePlayer(100, 310, 0, -10)

	landed := ResolveVertical(p, []core.Rect{platform})

	if landed {
		t.Error("hitting the underside is not a landing")
	}
	if p.Rect.Y != 320 {
		t.Errorf("y = %d, expected push to the platform bottom 320", p.Rect.Y)
	}
	if p.VY != 0 {
		t.Errorf("VY = %f, expected 0 after head bump", p.VY)
	}
}

func TestResolveHorizontalBlocks(t *testing.T) {
	wall := core.NewRect(200, 400, 40, 200)

	// Moving right into the wall
	p := placePlayer(170, 500, 5, 0)
	ResolveHorizontal(p, []core.Rect{wall})
	if p.Rect.Right() != 200 {
		t.Errorf("right edge = %d, expected snap to 200", p.Rect.Right())
	}
	if p.VX != 5 {
		t.Errorf("VX = %f, expected horizontal velocity untouched", p.VX)
	}

	// Moving left into the wall
	p = placePlayer(210, 500, -5, 0)
	ResolveHorizontal(p, []core.Rect{wall})
	if p.Rect.X != 240 {
		t.Errorf("x = %d, expected snap to wall right 240", p.Rect.X)
	}
	if p.VX != -5 {
		t.Errorf("VX = %f, expected horizontal velocity untouched", p.VX)
	}
}

func TestResolveOrderFirstSolidWins(t *testing.T) {
	// Two overlapping solids at different heights; the fall resolves
	// against the first in list order.
	upper := core.NewRect(0, 540, 800, 40)
	lower := core.NewRect(0, 560, 800, 40)

	p := placePlayer(100, 500, 0, 12)
	ResolveVertical(p, []core.Rect{upper, lower})

	if p.Rect.Bottom() != 540 {
		t.Errorf("bottom = %d, expected landing on the first solid at 540", p.Rect.Bottom())
	}
}

func TestRestingPlayerDoesNotSink(t *testing.T) {
	ground := core.NewRect(0, 560, 800, 40)

	// At rest on the ground: one tick of gravity moves the float position
	// by less than a pixel, so the snapped rect does not re-enter the
	// solid. Ground contact flickers; the coyote window covers the gap.
	p := placePlayer(100, 500, 0, 0)
	p.VY += 0.6
	p.Y += p.VY

	landed := ResolveVertical(p, []core.Rect{ground})

	if landed {
		t.Error("sub-pixel fall should not report a landing")
	}
	if p.Rect.Y != 500 {
		t.Errorf("y = %d, expected unchanged 500", p.Rect.Y)
	}
	if p.VY != 0.6 {
		t.Errorf("VY = %f, expected accumulated 0.6", p.VY)
	}
}

func TestClampToLevelSides(t *testing.T) {
	p := placePlayer(-10, 300, -5, 0)
	ClampToLevel(p, 800, 600)
	if p.Rect.X != 0 {
		t.Errorf("x = %d, expected clamp to 0", p.Rect.X)
	}

	p = placePlayer(790, 300, 5, 0)
	ClampToLevel(p, 800, 600)
	if p.Rect.Right() != 800 {
		t.Errorf("right = %d, expected clamp to 800", p.Rect.Right())
	}
	if p.VX != 5 {
		t.Errorf("VX = %f, side clamp should not touch velocity", p.VX)
	}
}

func TestClampToLevelTop(t *testing.T) {
	p := placePlayer(100, -20, 0, -8)
	ClampToLevel(p, 800, 600)
	if p.Rect.Y != 0 {
		t.Errorf("y = %d, expected clamp to 0", p.Rect.Y)
	}
	if p.VY != -8 {
		t.Errorf("VY = %f, top clamp should not touch velocity", p.VY)
	}
}

func TestClampToLevelFloor(t *testing.T) {
	p := placePlayer(100, 580, 0, 15)
	p.JumpsRemaining = 0

	hitFloor := ClampToLevel(p, 800, 600)

	if !hitFloor {
		t.Fatal("crossing the bottom bound should report a floor hit")
	}
	if p.Rect.Bottom() != 600 {
		t.Errorf("bottom = %d, expected clamp to 600", p.Rect.Bottom())
	}
	if p.VY != 0 {
		t.Errorf("VY = %f, expected 0 after floor hit", p.VY)
	}
	if p.JumpsRemaining != p.MaxJumps {
		t.Error("floor hit should refill jumps like a landing")
	}
}
