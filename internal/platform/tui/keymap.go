package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ie-die/internal/config"
	"github.com/vovakirdan/ie-die/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// This centralizes bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "1", "e":
		return core.ActionEasy, false
	case "2", "m":
		return core.ActionMedium, false
	case "3", "h":
		return core.ActionHard, false
	case "tab":
		return core.ActionScoreboard, false
	case "b", "esc":
		return core.ActionBack, false
	case "ctrl+s":
		return core.ActionScreenshot, false
	}

	return core.ActionNone, false
}

// LevelFor returns the difficulty a start action selects.
func LevelFor(action core.Action) (config.Level, bool) {
	switch action {
	case core.ActionEasy:
		return config.LevelEasy, true
	case core.ActionMedium:
		return config.LevelMedium, true
	case core.ActionHard:
		return config.LevelHard, true
	}
	return config.LevelEasy, false
}

// MapMouse classifies a mouse message. Only the primary button is used:
// press and drag destroy shapes, release completes a menu click.
// Coordinates stay in cells; the surface converts them.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.PointerEvent {
	ev := core.PointerEvent{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			ev.Action = core.PointerPress
		}
	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft {
			ev.Action = core.PointerDrag
		}
	case tea.MouseActionRelease:
		// Legacy terminals report releases without a button.
		if msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone {
			ev.Action = core.PointerRelease
		}
	}

	return ev
}
