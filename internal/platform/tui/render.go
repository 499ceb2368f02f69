package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ie-die/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
// lipgloss degrades the hex values on terminals without true color.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorTitle:        lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true),
	core.ColorEasyButton:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F46033")),
	core.ColorMediumButton: lipgloss.NewStyle().Foreground(lipgloss.Color("#CD1F1F")),
	core.ColorHardButton:   lipgloss.NewStyle().Foreground(lipgloss.Color("#B00000")),
	core.ColorButtonText:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true),
	core.ColorScores:       lipgloss.NewStyle().Foreground(lipgloss.Color("#127043")).Bold(true),
	core.ColorLives:        lipgloss.NewStyle().Foreground(lipgloss.Color("#880C12")).Bold(true),
	core.ColorGameOver:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FB111C")).Bold(true),
	core.ColorEnemy:        lipgloss.NewStyle().Foreground(lipgloss.Color("#1EBBEE")),
	core.ColorFirefox:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FF9500")),
	core.ColorChrome:       lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")),
	core.ColorOpera:        lipgloss.NewStyle().Foreground(lipgloss.Color("#FF1B2D")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
