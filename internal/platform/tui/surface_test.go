package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ie-die/internal/assets"
	"github.com/vovakirdan/ie-die/internal/core"
	"github.com/vovakirdan/ie-die/internal/view"
)

func TestSurfaceToCanvas(t *testing.T) {
	s := NewSurface(core.NewScreen(80, 24), 1024, 860)

	tests := []struct {
		cellX, cellY int
		wantX, wantY int
	}{
		{0, 0, 6, 17},
		{40, 12, 518, 447},
		{79, 23, 1017, 842},
	}

	for _, tc := range tests {
		x, y := s.ToCanvas(tc.cellX, tc.cellY)
		if x != tc.wantX || y != tc.wantY {
			t.Errorf("ToCanvas(%d, %d) = (%d, %d), want (%d, %d)",
				tc.cellX, tc.cellY, x, y, tc.wantX, tc.wantY)
		}
	}
}

func TestSurfaceOverlays(t *testing.T) {
	screen := core.NewScreen(80, 24)
	s := NewSurface(screen, 1024, 860)

	s.DrawScores(120)
	s.DrawLives(7)

	bottom := screen.Row(23)
	if !strings.HasSuffix(strings.TrimRight(bottom, " "), "Scores: 120") {
		t.Errorf("scores not right-aligned: %q", bottom)
	}
	if !strings.HasPrefix(bottom, " Lives: 7") {
		t.Errorf("lives not left-aligned: %q", bottom)
	}
	if screen.GetCell(1, 23).Color != core.ColorLives {
		t.Error("lives drawn with the wrong color")
	}

	// A shorter value must overwrite the longer one.
	s.DrawScores(5)
	if strings.Contains(screen.Row(23), "Scores: 520") {
		t.Errorf("stale digits left behind: %q", screen.Row(23))
	}
}

func TestSurfaceDrawSpriteCentersAndCrops(t *testing.T) {
	screen := core.NewScreen(80, 24)
	s := NewSurface(screen, 80, 24) // 1:1 scale

	art := assets.Sprite{Color: core.ColorEnemy, Art: []string{"abc", "def", "ghi"}}
	s.DrawSprite(view.Sprite{Bounds: core.NewRect(10, 5, 7, 5), Art: art, Loaded: true})

	if got := screen.Get(12, 6); got != 'a' {
		t.Errorf("top-left of art at (12,6) = %q, want 'a'", got)
	}
	if got := screen.Get(14, 8); got != 'i' {
		t.Errorf("bottom-right of art at (14,8) = %q, want 'i'", got)
	}
	if screen.GetCell(13, 7).Color != core.ColorEnemy {
		t.Error("art drawn with the wrong color")
	}

	screen.Clear()
	s.DrawSprite(view.Sprite{Bounds: core.NewRect(0, 0, 1, 1), Art: art, Loaded: true})
	if got := screen.Get(0, 0); got != 'e' {
		t.Errorf("1x1 box should show the art center, got %q", got)
	}
	if got := screen.Get(1, 0); got != ' ' {
		t.Errorf("art must be cropped to its box, got %q at (1,0)", got)
	}
}

func TestSurfaceGameOverBanner(t *testing.T) {
	screen := core.NewScreen(80, 24)
	s := NewSurface(screen, 1024, 860)

	s.DrawGameOver("Game over")

	if !strings.Contains(screen.Row(12), "Game over") {
		t.Errorf("banner not in the middle row: %q", screen.Row(12))
	}
}

func TestDispatcherLoad(t *testing.T) {
	sheet, err := assets.DefaultSheet()
	if err != nil {
		t.Fatalf("DefaultSheet() failed: %v", err)
	}
	d := NewDispatcher(sheet)

	var got assets.Sprite
	var gotErr error
	calls := 0
	d.Load(assets.VariantChrome, func(sp assets.Sprite, err error) {
		calls++
		got, gotErr = sp, err
	})

	if calls != 0 {
		t.Fatal("load must not complete synchronously")
	}
	if d.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", d.Pending())
	}

	cmd := d.Flush()
	if d.Pending() != 0 {
		t.Error("Flush should empty the queue")
	}
	msg, ok := cmd().(callbackMsg)
	if !ok {
		t.Fatalf("expected callbackMsg, got %T", cmd())
	}
	msg.fn()

	if calls != 1 || gotErr != nil {
		t.Fatalf("calls = %d, err = %v", calls, gotErr)
	}
	if got.Variant != assets.VariantChrome || got.Color != core.ColorChrome {
		t.Errorf("unexpected sprite: %+v", got)
	}
}

func TestDispatcherWithoutSheet(t *testing.T) {
	d := NewDispatcher(nil)

	var gotErr error
	d.Load(assets.VariantIE, func(_ assets.Sprite, err error) { gotErr = err })
	d.Flush()().(callbackMsg).fn()

	if !errors.Is(gotErr, errNoSheet) {
		t.Errorf("err = %v, want errNoSheet", gotErr)
	}
}

func TestDispatcherFlushEmpty(t *testing.T) {
	d := NewDispatcher(nil)
	if d.Flush() != nil {
		t.Error("Flush with nothing queued should return nil")
	}
}

func TestDispatcherAfterQueuesTick(t *testing.T) {
	d := NewDispatcher(nil)
	d.After(time.Millisecond, func() {})

	if d.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", d.Pending())
	}
	if _, ok := d.Flush()().(callbackMsg); !ok {
		t.Error("delayed callback should arrive as callbackMsg")
	}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")}, core.ActionEasy, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")}, core.ActionMedium, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")}, core.ActionHard, false},
		{tea.KeyMsg{Type: tea.KeyTab}, core.ActionScoreboard, false},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone, false},
	}

	for _, tc := range tests {
		action, quit := km.MapKey(tc.msg)
		if action != tc.action || quit != tc.quit {
			t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tc.msg.String(), action, quit, tc.action, tc.quit)
		}
	}
}

func TestKeyMapperMouse(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.MouseMsg
		want core.PointerAction
	}{
		{"left press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.PointerPress},
		{"right press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, core.PointerNone},
		{"drag", tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, core.PointerDrag},
		{"hover", tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, core.PointerNone},
		{"release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, core.PointerRelease},
		{"legacy release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, core.PointerRelease},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ev := km.MapMouse(tc.msg)
			if ev.Action != tc.want {
				t.Errorf("action = %v, want %v", ev.Action, tc.want)
			}
		})
	}
}
