package game

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Enemy patrols horizontally between two x-bounds at constant speed,
// reversing direction at each bound. No vertical motion and no platform
// collision: level authoring positions patrols on their surface.
type Enemy struct {
	Rect      core.Rect
	VX        float64
	PatrolMin int
	PatrolMax int
	Speed     float64

	x float64 // continuous position, rect.X is the snapped value
}

// NewEnemy creates a patrolling enemy. Initial direction is rightward.
func NewEnemy(x, y, w, h, patrolMin, patrolMax int, speed float64) *Enemy {
	return &Enemy{
		Rect:      core.NewRect(x, y, w, h),
		VX:        speed,
		PatrolMin: patrolMin,
		PatrolMax: patrolMax,
		Speed:     speed,
		x:         float64(x),
	}
}

// ScaleSpeed applies a difficulty multiplier, re-signing vx to preserve the
// current direction.
func (e *Enemy) ScaleSpeed(mult float64) {
	e.Speed *= mult
	if e.VX >= 0 {
		e.VX = e.Speed
	} else {
		e.VX = -e.Speed
	}
}

// Update advances the patrol one tick, clamping to the bounds and flipping
// direction on overshoot.
func (e *Enemy) Update() {
	e.x += e.VX
	if e.x < float64(e.PatrolMin) {
		e.x = float64(e.PatrolMin)
		e.VX = abs(e.Speed)
	} else if e.x > float64(e.PatrolMax) {
		e.x = float64(e.PatrolMax)
		e.VX = -abs(e.Speed)
	}
	e.Rect.X = int(e.x)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
