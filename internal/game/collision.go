package game

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Collision resolution runs in two independent axis passes per tick, each
// against the full solids list (ground + platforms + runtime-spawned
// platforms). The horizontal pass must run against the previous tick's
// vertical position, and the vertical pass against the already-corrected x;
// the game loop interleaves the passes with the two integration steps.
//
// Overlapping two solids at once resolves against the first match in list
// order; ground is always entry 0.

// ResolveHorizontal snaps the rect from the float x and pushes the player
// out of any overlapping solid. Position-only correction: vx is untouched
// (next tick's input overwrites it).
func ResolveHorizontal(p *Player, solids []core.Rect) {
	p.SyncRectX()
	for _, solid := range solids {
		if !p.Rect.Intersects(solid) {
			continue
		}
		if p.VX > 0 {
			p.Rect.SetRight(solid.X)
		} else if p.VX < 0 {
			p.Rect.X = solid.Right()
		}
		p.X = float64(p.Rect.X)
	}
}

// ResolveVertical snaps the rect from the float y and resolves vertical
// overlaps: falling lands on top (vy zeroed, jumps refilled), rising hits
// the underside (vy zeroed). Returns whether a landing occurred this tick.
func ResolveVertical(p *Player, solids []core.Rect) bool {
	p.SyncRectY()
	landed := false
	for _, solid := range solids {
		if !p.Rect.Intersects(solid) {
			continue
		}
		if p.VY > 0 {
			// falling -> land on top
			p.Rect.SetBottom(solid.Y)
			p.VY = 0
			p.Y = float64(p.Rect.Y)
			landed = true
			p.JumpsRemaining = p.MaxJumps
		} else if p.VY < 0 {
			// rising -> hit the underside
			p.Rect.Y = solid.Bottom()
			p.VY = 0
			p.Y = float64(p.Rect.Y)
		}
	}
	return landed
}

// ClampToLevel keeps the player within the level bounds. Hitting the bottom
// bound is treated as a landing (vy zeroed, jumps refilled) so players never
// fall through an unbounded level; side and top bounds clamp position only.
// Returns whether the bottom bound was hit.
func ClampToLevel(p *Player, levelWidth, levelHeight int) bool {
	if p.Rect.X < 0 {
		p.Rect.X = 0
		p.X = float64(p.Rect.X)
	}
	if p.Rect.Right() > levelWidth {
		p.Rect.SetRight(levelWidth)
		p.X = float64(p.Rect.X)
	}

	if p.Rect.Y < 0 {
		p.Rect.Y = 0
		p.Y = float64(p.Rect.Y)
	}

	hitFloor := false
	if p.Rect.Bottom() > levelHeight {
		p.Rect.SetBottom(levelHeight)
		p.Y = float64(p.Rect.Y)
		p.VY = 0
		p.JumpsRemaining = p.MaxJumps
		hitFloor = true
	}

	// keep rect synchronized with the float position
	p.SyncRectX()
	p.SyncRectY()
	return hitFloor
}
