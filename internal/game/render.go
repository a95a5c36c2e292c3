package game

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Display characters for world objects.
const (
	GroundChar   = '█'
	PlatformChar = '▀'
	GoalChar     = '♠'
	PresentChar  = '◆'
	EnemyChar    = 'Ω'
	PlayerHead   = '☺'
	PlayerBody   = '█'
	PlayerStride = '▓' // alternate body frame while walking
)

// hudRows is the number of screen rows reserved at the top for the HUD.
const hudRows = 2

// Render draws the current game state to the screen. World pixels are
// projected through the camera viewport onto the terminal cell grid, so the
// same simulation renders at any terminal size.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.level == nil {
		dst.DrawTextCentered(dst.Height()/2, "No level loaded")
		return
	}

	worldH := dst.Height() - hudRows
	if worldH < 1 || dst.Width() < 1 {
		return
	}

	scaleX := float64(dst.Width()) / float64(g.camera.ViewW)
	scaleY := float64(worldH) / float64(g.camera.ViewH)

	// World geometry
	g.drawWorldRect(dst, g.level.Ground, GroundChar, core.ColorWhite, scaleX, scaleY)
	for _, p := range g.level.Platforms {
		g.drawWorldRect(dst, p, PlatformChar, core.ColorCyan, scaleX, scaleY)
	}
	g.drawWorldRect(dst, g.level.Goal, GoalChar, core.ColorGreen, scaleX, scaleY)

	// Entities
	for _, p := range g.level.Presents {
		g.drawWorldRect(dst, p.Rect, PresentChar, core.ColorRed, scaleX, scaleY)
	}
	for _, pu := range g.level.Powerups {
		g.drawWorldRect(dst, pu.Rect, pu.Power.Glyph(), core.ColorYellow, scaleX, scaleY)
	}
	for _, cp := range g.level.Checkpoints {
		if !cp.Triggered {
			g.drawWorldRect(dst, cp.Rect, '¶', core.ColorBlue, scaleX, scaleY)
		}
	}
	for _, e := range g.level.Enemies {
		g.drawWorldRect(dst, e.Rect, EnemyChar, core.ColorMagenta, scaleX, scaleY)
	}

	g.drawPlayer(dst, scaleX, scaleY)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.campaignDone {
		g.drawCenteredMessage(dst, "YOU SAVED CHRISTMAS!",
			fmt.Sprintf("Presents: %d  |  Press R to play again", g.totalScore))
	} else if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Presents: %d  |  Press R to restart", g.totalScore))
	}
}

// drawWorldRect projects a world-space rect into screen cells and fills it.
// Rects smaller than one cell still draw a single cell so small entities stay
// visible.
func (g *Game) drawWorldRect(dst *core.Screen, r core.Rect, fill rune, c core.Color, scaleX, scaleY float64) {
	vx, vy := g.camera.ApplyPos(r.X, r.Y)

	x0 := int(float64(vx) * scaleX)
	y0 := int(float64(vy)*scaleY) + hudRows
	x1 := int(float64(vx+r.W) * scaleX)
	y1 := int(float64(vy+r.H)*scaleY) + hudRows

	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColor(x, y, fill, c)
		}
	}
}

// drawPlayer renders the player with a distinct head cell so facing reads at
// terminal resolution.
func (g *Game) drawPlayer(dst *core.Screen, scaleX, scaleY float64) {
	color := core.ColorRed
	if g.player.IsInvincible(g.now()) {
		// Flash while damage is disabled
		if (g.tick/6)%2 == 0 {
			color = core.ColorYellow
		}
	}
	body := PlayerBody
	if g.player.Moving() && (g.tick/8)%2 == 1 {
		body = PlayerStride
	}
	g.drawWorldRect(dst, g.player.Rect, body, color, scaleX, scaleY)

	vx, vy := g.camera.ApplyPos(g.player.Rect.X, g.player.Rect.Y)
	headX := int(float64(vx) * scaleX)
	if g.player.FacingRight {
		headX = int(float64(vx+g.player.Rect.W)*scaleX) - 1
	}
	headY := int(float64(vy)*scaleY) + hudRows
	dst.SetColor(headX, headY, PlayerHead, color)
}

// drawHUD renders the two reserved top rows: lives/progress/powerup timers on
// the first, the current transient message on the second.
func (g *Game) drawHUD(dst *core.Screen) {
	hud := g.HUD()

	line := fmt.Sprintf(" Lives: %d  Presents: %d/%d  Level %d: %s ",
		hud.Lives, hud.Presents, hud.TotalPresents, hud.LevelIndex+1, hud.LevelName)
	dst.DrawText(0, 0, line)

	x := dst.Width()
	for i := len(hud.Powerups) - 1; i >= 0; i-- {
		p := hud.Powerups[i]
		if p.RemainingSec <= 0 {
			continue
		}
		tag := fmt.Sprintf(" %c %.1fs ", p.Type.Glyph(), p.RemainingSec)
		x -= len(tag)
		dst.DrawTextColor(x, 0, tag, core.ColorYellow)
	}

	if hud.Message != "" {
		dst.DrawTextCentered(1, hud.Message)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
