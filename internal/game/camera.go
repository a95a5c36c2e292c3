package game

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Camera computes a world-space offset that follows the player, clamped to
// the level bounds. It has no independent lifecycle: the offset is recomputed
// every tick from the player center.
type Camera struct {
	X, Y  int
	ViewW int // viewport size in world pixels
	ViewH int
}

// NewCamera creates a camera for the given viewport size.
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewW: viewW, ViewH: viewH}
}

// Update centers the viewport on the player and clamps to level bounds.
// Clamping is max(0, min(bound, v)) so levels smaller than the viewport pin
// the camera at 0 instead of producing a negative range.
func (c *Camera) Update(playerCenterX, playerCenterY, levelWidth, levelHeight int) {
	c.X = playerCenterX - c.ViewW/2
	c.Y = playerCenterY - c.ViewH/2

	c.X = core.Max(0, core.Min(levelWidth-c.ViewW, c.X))
	c.Y = core.Max(0, core.Min(levelHeight-c.ViewH, c.Y))
}

// Apply converts a world rectangle to viewport coordinates.
func (c *Camera) Apply(r core.Rect) core.Rect {
	return core.NewRect(r.X-c.X, r.Y-c.Y, r.W, r.H)
}

// ApplyPos converts a world position to viewport coordinates.
func (c *Camera) ApplyPos(x, y int) (int, int) {
	return x - c.X, y - c.Y
}
