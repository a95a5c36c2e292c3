// Package game implements the platformer simulation core: a fixed-tick,
// deterministic side-scroller where the player collects presents, avoids
// patrolling enemies, picks up timed powerups, and reaches the goal tree.
// Rendering, input devices, and persistence live in the platform layer.
package game

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Game implements the platformer game logic. One iteration of Step is one
// simulation tick; all timers compare against a single millisecond counter
// derived from the tick count, so every expiry check within a tick is
// consistent and runs are reproducible.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.GameConfig

	campaign levels.CampaignData
	loadDiag error // non-nil when the fallback campaign was substituted

	level  *Level
	player *Player
	camera *Camera
	rng    *SimpleRNG

	lives      int
	levelScore int // presents collected on the current level
	totalScore int // presents collected across the run
	tick       int64

	paused       bool
	gameOver     bool
	campaignDone bool

	// completeAtMS is when the current level was completed; the switch to
	// the next level is deferred by the configured delay.
	completeAtMS int64

	messages MessageQueue

	// pendingInterlude holds a dialogue sequence handed back by a
	// checkpoint, for the platform to consume.
	pendingInterlude []levels.DialogueLine
}

// Package-level options set via CLI before game creation.
var (
	configPath       string
	campaignPath     string
	difficultyPreset config.DifficultyPreset
	startLevel       int
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetCampaignPath sets the custom campaign document path.
func SetCampaignPath(path string) {
	campaignPath = path
}

// SetDifficultyPreset sets the difficulty preset ("" keeps config values).
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	default:
		difficultyPreset = ""
	}
}

// SetStartLevel sets the zero-based level index to start at.
func SetStartLevel(index int) {
	startLevel = index
}

// New creates a new platformer game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "santa"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Santa Platformer"
}

// LoadDiagnostic returns the campaign-load error when the builtin fallback
// campaign was substituted, nil otherwise. For operator-facing logging.
func (g *Game) LoadDiagnostic() error {
	return g.loadDiag
}

// Reset initializes or restarts the run: loads config and campaign, applies
// the difficulty preset, and starts the selected level with fresh lives.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}

	cfg, err := config.LoadGame(configPath)
	if err != nil {
		cfg = config.DefaultGameConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.campaign, g.loadDiag = levels.Load(campaignPath)

	g.rng = NewSimpleRNG(runtime.Seed)
	g.camera = NewCamera(cfg.Viewport.Width, cfg.Viewport.Height)

	g.lives = cfg.Gameplay.Lives
	g.totalScore = 0
	g.tick = 0
	g.paused = false
	g.gameOver = false
	g.campaignDone = false
	g.messages.Clear()
	g.pendingInterlude = nil

	index := startLevel
	if index < 0 || index >= len(g.campaign.Levels) {
		index = 0
	}
	g.loadLevel(index)
}

// loadLevel rebuilds all level state and spawns a fresh player at the level
// start. Unconditional scripted events fire immediately.
func (g *Game) loadLevel(index int) {
	g.level = NewLevel(g.campaign.Levels[index], index, g.cfg.Gameplay.EnemySpeedMult, g.rng)
	g.player = NewPlayer(g.level.PlayerStart[0], g.level.PlayerStart[1], g.cfg.Physics, g.cfg.Timing, g.cfg.Powerups)
	g.levelScore = 0
	g.completeAtMS = 0
	g.level.FireUnconditionalEvents()
}

// now returns the simulation clock in milliseconds, derived from the tick
// counter. Sampled once per Step and passed to every timer comparison.
func (g *Game) now() int64 {
	return g.tick * 1000 / int64(g.runtime.TickRate)
}

// Step advances the simulation by one fixed tick:
// input -> physics -> collision -> interactions -> camera.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	now := g.now()

	// Timers first so a powerup picked up last tick is usable this tick.
	g.player.UpdatePowerups(now)

	// Input intent
	if in.Has(core.ActionJump) && g.player.CanJump(now) {
		g.player.Jump()
	}

	g.player.VX = 0
	if in.Has(core.ActionLeft) {
		g.player.VX = -g.player.Speed
		g.player.FacingRight = false
	}
	if in.Has(core.ActionRight) {
		g.player.VX = g.player.Speed
		g.player.FacingRight = true
	}

	// Physics
	g.player.VY += g.cfg.Physics.Gravity
	if g.player.VY > g.cfg.Physics.MaxFallSpeed {
		g.player.VY = g.cfg.Physics.MaxFallSpeed
	}

	solids := g.level.Solids()
	g.player.X += g.player.VX
	ResolveHorizontal(g.player, solids)
	g.player.Y += g.player.VY
	landed := ResolveVertical(g.player, solids)
	hitFloor := ClampToLevel(g.player, g.level.Width, g.level.Height)

	if landed || hitFloor {
		g.player.Land(now)
	} else {
		g.player.OnGround = false
	}

	// Enemies patrol
	for _, e := range g.level.Enemies {
		e.Update()
	}

	// Entity interactions
	g.collectPickups(now)
	g.handleCheckpoints(now)
	g.handleEnemyContact(now)
	g.handleGoal(now)
	g.maybeAdvanceLevel(now)

	// Camera follows the (possibly respawned) player
	cx, cy := g.player.Center()
	g.camera.Update(cx, cy, g.level.Width, g.level.Height)

	g.messages.Prune(now)

	return core.StepResult{State: g.State()}
}

// collectPickups removes overlapped presents and powerups and applies their
// effects. Each item is consumed at most once.
func (g *Game) collectPickups(now int64) {
	if n := g.level.CollectPresents(g.player.Rect); n > 0 {
		g.levelScore += n
		g.totalScore += n
		g.postMessage("Present collected!", now)
		g.level.FirePresentEvents(g.levelScore)
	}

	for _, pu := range g.level.CollectPowerups(g.player.Rect) {
		duration := g.cfg.Gameplay.ScaledPowerupDuration(g.powerupBaseDuration(pu.Power))
		g.player.ApplyPowerup(pu.Power, duration, now)
		g.postMessage(fmt.Sprintf("Powerup: %s", pu.Power), now)
	}
}

// powerupBaseDuration returns the configured base duration for a type.
func (g *Game) powerupBaseDuration(ptype PowerupType) int64 {
	switch ptype {
	case PowerupDoubleJump:
		return g.cfg.Powerups.DoubleJumpMS
	case PowerupSpeedBoost:
		return g.cfg.Powerups.SpeedBoostMS
	case PowerupInvincibility:
		return g.cfg.Powerups.InvincibilityMS
	default:
		return 0
	}
}

// handleCheckpoints activates the first untriggered checkpoint under the
// player, relocating the respawn point and firing bound events.
func (g *Game) handleCheckpoints(now int64) {
	cp := g.level.HitCheckpoint(g.player.Rect)
	if cp == nil {
		return
	}
	storyKey := g.level.ActivateCheckpoint(cp)
	g.level.FireCheckpointEvents(cp.ID)
	g.postMessage("Checkpoint reached!", now)
	if storyKey != "" {
		g.pendingInterlude = g.level.Interlude(storyKey)
	}
}

// handleEnemyContact costs a life on enemy overlap unless invincible; at
// zero lives the run ends, otherwise the player respawns with a grace
// window.
func (g *Game) handleEnemyContact(now int64) {
	if g.player.IsInvincible(now) {
		return
	}
	for _, e := range g.level.Enemies {
		if !g.player.Rect.Intersects(e.Rect) {
			continue
		}
		g.lives--
		if g.lives <= 0 {
			g.gameOver = true
			g.postMessage("Game Over!", now)
		} else {
			g.player.Respawn(g.level.RespawnPoint[0], g.level.RespawnPoint[1], now, g.cfg.Timing.RespawnInvincibleMS)
			g.postMessage("You lost a life!", now)
		}
		return
	}
}

// handleGoal completes the level when the player reaches the goal with every
// present collected. Completion is idempotent on repeated overlap.
func (g *Game) handleGoal(now int64) {
	if !g.player.Rect.Intersects(g.level.Goal) {
		return
	}
	if g.levelScore >= g.level.TotalPresents {
		if !g.level.Completed {
			g.level.Completed = true
			g.completeAtMS = now
			g.postMessage("Level Complete!", now)
		}
	} else {
		g.postMessage("Collect all presents before the tree!", now)
	}
}

// maybeAdvanceLevel switches to the next level once the completion delay has
// elapsed; finishing the last level ends the campaign.
func (g *Game) maybeAdvanceLevel(now int64) {
	if !g.level.Completed || now-g.completeAtMS <= g.cfg.Timing.LevelCompleteDelayMS {
		return
	}
	next := g.level.Index + 1
	if next < len(g.campaign.Levels) {
		g.loadLevel(next)
	} else {
		g.campaignDone = true
		g.gameOver = true
		g.postMessageFor("You saved Christmas!", now, 2*g.cfg.Timing.MessageDurationMS)
	}
}

// postMessage queues a transient message with the configured default
// lifetime, unless it is already showing.
func (g *Game) postMessage(text string, now int64) {
	g.postMessageFor(text, now, g.cfg.Timing.MessageDurationMS)
}

func (g *Game) postMessageFor(text string, now, durationMS int64) {
	if g.messages.Current(now) == text {
		return
	}
	g.messages.Post(text, now, durationMS)
}

// TakeInterlude returns and clears the pending checkpoint dialogue, nil if
// none. Sequencing is the platform's concern.
func (g *Game) TakeInterlude() []levels.DialogueLine {
	seq := g.pendingInterlude
	g.pendingInterlude = nil
	return seq
}

// IntroStory returns the current level's intro dialogue.
func (g *Game) IntroStory() []levels.DialogueLine {
	if g.level == nil {
		return nil
	}
	return g.level.Story.Intro
}

// RunInfo summarizes the run for persistence: how far the player got, at
// which difficulty, and whether the campaign was finished.
func (g *Game) RunInfo() core.RunInfo {
	info := core.RunInfo{
		Presents:   g.totalScore,
		Lives:      g.lives,
		Difficulty: string(difficultyPreset),
		Completed:  g.campaignDone,
		DurationMS: g.now(),
	}
	if info.Difficulty == "" {
		info.Difficulty = string(config.DifficultyNormal)
	}
	if g.level != nil {
		info.LevelID = g.level.ID
		info.LevelIndex = g.level.Index
	}
	return info
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.totalScore,
		Lives:    g.lives,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("santa", func() registry.Game {
		return New()
	})
}
