package core

import "strings"

// Color is the foreground color of a screen cell.
// The platform maps each value to a concrete terminal color.
type Color uint8

// Palette used by the menu, the overlays and the sprites.
const (
	ColorDefault Color = iota
	ColorTitle
	ColorEasyButton
	ColorMediumButton
	ColorHardButton
	ColorButtonText
	ColorScores
	ColorLives
	ColorGameOver
	ColorEnemy
	ColorFirefox
	ColorChrome
	ColorOpera
)

var colorNames = map[string]Color{
	"default": ColorDefault,
	"title":   ColorTitle,
	"easy":    ColorEasyButton,
	"medium":  ColorMediumButton,
	"hard":    ColorHardButton,
	"button":  ColorButtonText,
	"scores":  ColorScores,
	"lives":   ColorLives,
	"over":    ColorGameOver,
	"enemy":   ColorEnemy,
	"firefox": ColorFirefox,
	"chrome":  ColorChrome,
	"opera":   ColorOpera,
}

// ParseColor looks up a palette entry by name (case-insensitive).
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}
