package core

// Action is a semantic command derived from a key press.
type Action int

const (
	ActionNone       Action = iota
	ActionEasy              // 1, e - start an Easy session from the menu
	ActionMedium            // 2, m - start a Medium session from the menu
	ActionHard              // 3, h - start a Hard session from the menu
	ActionScoreboard        // Tab - open the high score table
	ActionBack              // B, Escape - leave the scoreboard
	ActionScreenshot        // Ctrl+S - dump the screen to a file
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionEasy:
		return "Easy"
	case ActionMedium:
		return "Medium"
	case ActionHard:
		return "Hard"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionBack:
		return "Back"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerAction classifies a pointer event.
type PointerAction int

const (
	PointerNone    PointerAction = iota
	PointerPress                 // primary button went down
	PointerDrag                  // moved while the primary button is held
	PointerRelease               // primary button went up (completes a click)
)

// PointerEvent is a pointer event already translated into canvas coordinates.
type PointerEvent struct {
	X, Y   int
	Action PointerAction
}
