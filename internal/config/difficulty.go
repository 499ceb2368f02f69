package config

import (
	"fmt"
	"strings"
)

// Level names one of the three difficulty presets.
type Level int

const (
	LevelEasy Level = iota
	LevelMedium
	LevelHard
)

// Levels returns all levels in menu order.
func Levels() []Level {
	return []Level{LevelEasy, LevelMedium, LevelHard}
}

// String returns the lower-case name used in flags and score ids.
func (l Level) String() string {
	switch l {
	case LevelEasy:
		return "easy"
	case LevelMedium:
		return "medium"
	case LevelHard:
		return "hard"
	default:
		return "unknown"
	}
}

// Title returns the label shown on the menu button.
func (l Level) Title() string {
	switch l {
	case LevelEasy:
		return "Easy"
	case LevelMedium:
		return "Medium"
	case LevelHard:
		return "Hard"
	default:
		return "?"
	}
}

// ParseLevel converts a flag value into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "e", "1":
		return LevelEasy, nil
	case "medium", "normal", "m", "2":
		return LevelMedium, nil
	case "hard", "h", "3":
		return LevelHard, nil
	default:
		return LevelEasy, fmt.Errorf("config: unknown difficulty %q", s)
	}
}
