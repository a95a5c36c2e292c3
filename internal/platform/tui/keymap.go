package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Bindings maps key strings (as produced by tea.KeyMsg.String) to game
// actions. The table is data, so alternative layouts can be injected without
// touching the mapper.
type Bindings map[string]core.Action

// DefaultBindings returns the standard key layout: arrows or A/D to move,
// space/W/up to jump.
func DefaultBindings() Bindings {
	return Bindings{
		"left":  core.ActionLeft,
		"a":     core.ActionLeft,
		"right": core.ActionRight,
		"d":     core.ActionRight,
		" ":     core.ActionJump,
		"w":     core.ActionJump,
		"up":    core.ActionJump,
		"enter": core.ActionConfirm,
		"b":     core.ActionBack,
		"esc":   core.ActionBack,
		"p":     core.ActionPause,
		"r":     core.ActionRestart,
	}
}

// KeyMapper translates Bubble Tea key messages to game actions through an
// injectable binding table.
type KeyMapper struct {
	bindings Bindings
}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{bindings: DefaultBindings()}
}

// NewKeyMapperWith creates a key mapper with custom bindings. Keys absent
// from the table fall back to no action; quit keys are always global.
func NewKeyMapperWith(b Bindings) *KeyMapper {
	if b == nil {
		b = DefaultBindings()
	}
	return &KeyMapper{bindings: b}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	if a, ok := km.bindings[key]; ok {
		return a, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
