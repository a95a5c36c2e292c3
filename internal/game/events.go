package game

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levels"
)

// TriggerType is the closed set of scripted-event trigger predicates.
type TriggerType int

const (
	TriggerAlways TriggerType = iota
	TriggerPresentsCollected
	TriggerCheckpointReached
)

// EventEffect is the closed set of level mutations a scripted event can
// apply. Adding a new effect kind is a compile-time change: a new variant
// plus a case in Level.ApplyEffect.
type EventEffect interface {
	isEffect()
}

// SpawnPowerupEffect adds a powerup pickup to the level.
type SpawnPowerupEffect struct {
	Rect  core.Rect
	Power PowerupType
}

// SpawnPlatformsEffect appends platforms to the level's solid geometry.
// Spawned platforms are tracked separately from authored ones.
type SpawnPlatformsEffect struct {
	Platforms []core.Rect
}

func (SpawnPowerupEffect) isEffect()   {}
func (SpawnPlatformsEffect) isEffect() {}

// ScriptedEvent fires at most once when its trigger predicate matches.
type ScriptedEvent struct {
	Trigger      TriggerType
	Threshold    int    // presents_collected target
	CheckpointID string // checkpoint_reached target
	Fired        bool
	Effect       EventEffect
}

// parseEvent converts a document event into a typed ScriptedEvent.
// Events with unknown effects or malformed payloads are dropped (nil).
func parseEvent(def levels.EventDef) *ScriptedEvent {
	ev := &ScriptedEvent{}

	triggerType, triggerValue := splitTrigger(def.Trigger)
	switch triggerType {
	case "presents_collected":
		n, err := strconv.Atoi(triggerValue)
		if err != nil {
			return nil
		}
		ev.Trigger = TriggerPresentsCollected
		ev.Threshold = n
	case "checkpoint_reached":
		ev.Trigger = TriggerCheckpointReached
		ev.CheckpointID = triggerValue
	default:
		ev.Trigger = TriggerAlways
	}

	switch def.Effect {
	case "spawn_powerup":
		power, ok := ParsePowerupType(def.Payload.Type)
		if !ok || len(def.Payload.Rect) < 4 {
			return nil
		}
		ev.Effect = SpawnPowerupEffect{
			Rect:  rectFromSlice(def.Payload.Rect),
			Power: power,
		}
	case "spawn_platforms":
		var plats []core.Rect
		for _, p := range def.Payload.Platforms {
			if len(p) >= 4 {
				plats = append(plats, rectFromSlice(p))
			}
		}
		if len(plats) == 0 {
			return nil
		}
		ev.Effect = SpawnPlatformsEffect{Platforms: plats}
	default:
		return nil
	}

	return ev
}

// splitTrigger splits "presents_collected:3" into type and value.
func splitTrigger(trigger string) (string, string) {
	if idx := strings.IndexByte(trigger, ':'); idx >= 0 {
		return trigger[:idx], trigger[idx+1:]
	}
	return trigger, ""
}

func rectFromSlice(v []int) core.Rect {
	return core.NewRect(v[0], v[1], v[2], v[3])
}
