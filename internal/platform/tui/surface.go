package tui

import (
	"strconv"

	"github.com/vovakirdan/ie-die/internal/core"
	"github.com/vovakirdan/ie-die/internal/view"
)

const overlayWidth = 14 // Wide enough for "Scores: 99999"

// Surface draws the logical canvas onto a terminal cell buffer.
// Canvas coordinates are scaled to the current screen size on every call,
// so a resize only needs a redraw.
type Surface struct {
	screen  *core.Screen
	canvasW int
	canvasH int
	hint    string
}

var _ view.Surface = (*Surface)(nil)

// NewSurface wraps a screen buffer showing a canvas of the given size.
func NewSurface(screen *core.Screen, canvasW, canvasH int) *Surface {
	return &Surface{
		screen:  screen,
		canvasW: canvasW,
		canvasH: canvasH,
		hint:    "1/2/3 or click a button to start   tab scores   q quit",
	}
}

// Size returns the logical canvas size.
func (s *Surface) Size() (int, int) {
	return s.canvasW, s.canvasH
}

func (s *Surface) scale() (float64, float64) {
	return float64(s.screen.Width()) / float64(s.canvasW),
		float64(s.screen.Height()) / float64(s.canvasH)
}

// ToCanvas converts a cell position into canvas coordinates, using the
// center of the cell.
func (s *Surface) ToCanvas(cellX, cellY int) (int, int) {
	sx, sy := s.scale()
	if sx == 0 || sy == 0 {
		return 0, 0
	}
	return int((float64(cellX) + 0.5) / sx), int((float64(cellY) + 0.5) / sy)
}

// Clear blanks the whole screen.
func (s *Surface) Clear() {
	s.screen.Clear()
}

// DrawSprite draws the sprite art centered in the shape's box, cropped to it.
func (s *Surface) DrawSprite(sp view.Sprite) {
	box := sp.Bounds.Scale(s.scale())
	art := sp.Art

	offX := (box.W - art.Width()) / 2
	offY := (box.H - art.Height()) / 2

	for row, line := range art.Art {
		y := box.Y + offY + row
		if y < box.Y || y >= box.Bottom() {
			continue
		}
		col := 0
		for _, r := range line {
			x := box.X + offX + col
			col++
			if r == ' ' || x < box.X || x >= box.Right() {
				continue
			}
			s.screen.SetColored(x, y, r, art.Color)
		}
	}
}

// DrawScores writes the score in the bottom-right corner.
func (s *Surface) DrawScores(scores int) {
	text := padLeft(view.ScoresLabel+strconv.Itoa(scores), overlayWidth)
	s.screen.DrawText(s.screen.Width()-len(text)-1, s.screen.Height()-1, text, core.ColorScores)
}

// DrawLives writes the remaining lives in the bottom-left corner.
func (s *Surface) DrawLives(lives int) {
	text := padRight(view.LivesLabel+strconv.Itoa(lives), overlayWidth)
	s.screen.DrawText(1, s.screen.Height()-1, text, core.ColorLives)
}

// DrawMenu draws the title, the difficulty buttons and a key hint.
func (s *Surface) DrawMenu(title string, buttons []view.Button) {
	h := s.screen.Height()
	s.screen.DrawTextCentered(h/4, title, core.ColorTitle)

	sx, sy := s.scale()
	for _, b := range buttons {
		box := b.Bounds.Scale(sx, sy)
		s.screen.DrawRect(box, '█', b.Color)

		label := b.Level.Title()
		x := box.X + (box.W-len(label))/2
		s.screen.DrawText(core.Max(x, box.X), box.Y+box.H/2, label, core.ColorButtonText)
	}

	s.screen.DrawTextCentered(h-2, s.hint, core.ColorDefault)
}

// DrawGameOver draws the banner across the middle of the screen.
func (s *Surface) DrawGameOver(text string) {
	s.screen.DrawTextCentered(s.screen.Height()/2, text, core.ColorGameOver)
}

func padLeft(s string, width int) string {
	for len(s) < width {
		s = " " + s
	}
	return s
}

func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}
