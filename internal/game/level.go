package game

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levels"
)

// Checkpoint is a level location that, once reached, becomes the respawn
// point. Triggers at most once.
type Checkpoint struct {
	ID        string
	Rect      core.Rect
	Respawn   [2]int
	Story     string // interlude key handed to the platform, may be empty
	Triggered bool
}

// Level is the runtime state of one level: static geometry, live entity
// lists, checkpoints, scripted events, and completion state. The level owns
// its entity lists; entities are removed exactly once on pickup and only
// re-added through event effects.
type Level struct {
	Index  int
	ID     string
	Name   string
	Width  int
	Height int

	Ground           core.Rect
	Platforms        []core.Rect
	DynamicPlatforms []core.Rect // runtime-spawned, also present in Platforms

	Presents []Entity
	Powerups []Entity
	Enemies  []*Enemy

	Checkpoints []*Checkpoint
	Events      []*ScriptedEvent
	Story       levels.StoryDef

	Goal          core.Rect
	PlayerStart   [2]int
	RespawnPoint  [2]int
	TotalPresents int
	Completed     bool
}

// presentTextures are the render tags randomly assigned to presents.
var presentTextures = []string{"present", "present1", "present2", "present3"}

// NewLevel builds runtime level state from a level definition. The
// difficulty enemy-speed multiplier is applied uniformly, preserving each
// enemy's direction. Present textures are assigned from the seeded RNG so
// loads are deterministic.
func NewLevel(def levels.LevelData, index int, enemySpeedMult float64, rng *SimpleRNG) *Level {
	l := &Level{
		Index:  index,
		ID:     def.ID,
		Name:   def.Name,
		Width:  def.Width,
		Height: def.Height,
		Story:  def.Story,
	}
	if l.Name == "" {
		l.Name = fmt.Sprintf("Level %d", index+1)
	}

	if len(def.Ground) >= 4 {
		l.Ground = rectFromSlice(def.Ground)
	} else {
		l.Ground = core.NewRect(0, l.Height-40, l.Width, 40)
	}

	for _, p := range def.Platforms {
		l.Platforms = append(l.Platforms, rectFromSlice(p))
	}

	for _, p := range def.Presents {
		l.Presents = append(l.Presents, Entity{
			Rect:    rectFromSlice(p),
			Kind:    KindPresent,
			Texture: presentTextures[rng.Intn(len(presentTextures))],
		})
	}

	for _, pu := range def.Powerups {
		power, ok := ParsePowerupType(pu.Type)
		if !ok {
			continue
		}
		l.Powerups = append(l.Powerups, Entity{
			Rect:  rectFromSlice(pu.Rect),
			Kind:  KindPowerup,
			Power: power,
		})
	}

	for _, e := range def.Enemies {
		enemy := NewEnemy(int(e[0]), int(e[1]), int(e[2]), int(e[3]), int(e[4]), int(e[5]), e[6])
		if enemySpeedMult != 1.0 {
			enemy.ScaleSpeed(enemySpeedMult)
		}
		l.Enemies = append(l.Enemies, enemy)
	}

	for i, cp := range def.Checkpoints {
		if len(cp.Rect) < 4 {
			continue
		}
		checkpoint := &Checkpoint{
			ID:    cp.ID,
			Rect:  rectFromSlice(cp.Rect),
			Story: cp.Story,
		}
		if checkpoint.ID == "" {
			checkpoint.ID = fmt.Sprintf("checkpoint_%d", i)
		}
		if len(cp.Respawn) >= 2 {
			checkpoint.Respawn = [2]int{cp.Respawn[0], cp.Respawn[1]}
		} else {
			checkpoint.Respawn = [2]int{def.PlayerStart[0], def.PlayerStart[1]}
		}
		l.Checkpoints = append(l.Checkpoints, checkpoint)
	}

	for _, ev := range def.Events {
		if parsed := parseEvent(ev); parsed != nil {
			l.Events = append(l.Events, parsed)
		}
	}

	l.Goal = rectFromSlice(def.Goal)
	l.PlayerStart = [2]int{def.PlayerStart[0], def.PlayerStart[1]}
	l.RespawnPoint = l.PlayerStart
	l.TotalPresents = len(l.Presents)

	return l
}

// Solids returns the collidable geometry in resolution order: ground first,
// then platforms in list order (runtime-spawned platforms last).
func (l *Level) Solids() []core.Rect {
	solids := make([]core.Rect, 0, len(l.Platforms)+1)
	solids = append(solids, l.Ground)
	solids = append(solids, l.Platforms...)
	return solids
}

// CollectPresents removes every present overlapping the rect and returns how
// many were collected. Removal happens in the same tick as detection, so an
// overlap contributes at most once.
func (l *Level) CollectPresents(rect core.Rect) int {
	collected := 0
	remaining := l.Presents[:0]
	for _, p := range l.Presents {
		if rect.Intersects(p.Rect) {
			collected++
		} else {
			remaining = append(remaining, p)
		}
	}
	l.Presents = remaining
	return collected
}

// CollectPowerups removes every powerup overlapping the rect and returns the
// collected entries in list order.
func (l *Level) CollectPowerups(rect core.Rect) []Entity {
	var collected []Entity
	remaining := l.Powerups[:0]
	for _, pu := range l.Powerups {
		if rect.Intersects(pu.Rect) {
			collected = append(collected, pu)
		} else {
			remaining = append(remaining, pu)
		}
	}
	l.Powerups = remaining
	return collected
}

// HitCheckpoint returns the first untriggered checkpoint overlapping the
// rect, or nil.
func (l *Level) HitCheckpoint(rect core.Rect) *Checkpoint {
	for _, cp := range l.Checkpoints {
		if !cp.Triggered && rect.Intersects(cp.Rect) {
			return cp
		}
	}
	return nil
}

// ActivateCheckpoint marks a checkpoint triggered and relocates the respawn
// point. Returns the checkpoint's story key ("" if none). Activating an
// already-triggered checkpoint is a no-op.
func (l *Level) ActivateCheckpoint(cp *Checkpoint) string {
	if cp.Triggered {
		return ""
	}
	cp.Triggered = true
	l.RespawnPoint = cp.Respawn
	return cp.Story
}

// FirePresentEvents fires unfired events whose presents_collected threshold
// is met and applies their effects. Returns the fired events.
func (l *Level) FirePresentEvents(collected int) []*ScriptedEvent {
	return l.fire(func(ev *ScriptedEvent) bool {
		return ev.Trigger == TriggerPresentsCollected && collected >= ev.Threshold
	})
}

// FireCheckpointEvents fires unfired events bound to the given checkpoint.
func (l *Level) FireCheckpointEvents(checkpointID string) []*ScriptedEvent {
	return l.fire(func(ev *ScriptedEvent) bool {
		return ev.Trigger == TriggerCheckpointReached && ev.CheckpointID == checkpointID
	})
}

// FireUnconditionalEvents fires events with no trigger predicate. Called
// once at level start.
func (l *Level) FireUnconditionalEvents() []*ScriptedEvent {
	return l.fire(func(ev *ScriptedEvent) bool {
		return ev.Trigger == TriggerAlways
	})
}

func (l *Level) fire(match func(*ScriptedEvent) bool) []*ScriptedEvent {
	var fired []*ScriptedEvent
	for _, ev := range l.Events {
		if ev.Fired || !match(ev) {
			continue
		}
		ev.Fired = true
		l.ApplyEffect(ev.Effect)
		fired = append(fired, ev)
	}
	return fired
}

// ApplyEffect dispatches a typed event effect onto the level.
func (l *Level) ApplyEffect(effect EventEffect) {
	switch e := effect.(type) {
	case SpawnPowerupEffect:
		l.Powerups = append(l.Powerups, Entity{
			Rect:  e.Rect,
			Kind:  KindPowerup,
			Power: e.Power,
		})
	case SpawnPlatformsEffect:
		for _, plat := range e.Platforms {
			l.Platforms = append(l.Platforms, plat)
			l.DynamicPlatforms = append(l.DynamicPlatforms, plat)
		}
	}
}

// Interlude returns the dialogue sequence for an interlude key, or nil.
func (l *Level) Interlude(key string) []levels.DialogueLine {
	for _, in := range l.Story.Interludes {
		if in.ID == key {
			return in.Sequence
		}
	}
	return nil
}

// SimpleRNG is a deterministic pseudo-random number generator (LCG), used
// for cosmetic choices so loads are reproducible from the runtime seed.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed)
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}
