package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/velmoga/skyrun/internal/core"
	"github.com/velmoga/skyrun/internal/sim"
)

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{" ", core.ActionJump, false},
		{"up", core.ActionUp, false},
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"esc", core.ActionBack, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	for _, c := range cases {
		var msg tea.KeyMsg
		switch c.key {
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(c.key)}
		}

		action, quit := km.MapKey(msg)
		if action != c.action || quit != c.quit {
			t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", c.key, action, quit, c.action, c.quit)
		}
	}
}

func testGameModel() GameModel {
	opts := DefaultOptions()
	opts.Seed = 7
	return NewGameModel(nil, opts, sim.Cosmetic{BodyShape: "round", LegStyle: "springs", Color: "cyan"})
}

func tickGame(t *testing.T, m GameModel, n int) GameModel {
	t.Helper()
	for i := 0; i < n; i++ {
		next, _ := m.Update(TickMsg(time.Time{}))
		gm, ok := next.(GameModel)
		if !ok {
			t.Fatal("Update returned a foreign model")
		}
		m = gm
	}
	return m
}

func TestGameModelRunsAndRenders(t *testing.T) {
	m := testGameModel()
	m.Init()

	m = tickGame(t, m, 60)

	if m.snap.Phase != sim.PhasePlaying {
		t.Fatalf("phase after 60 ticks = %v, want playing", m.snap.Phase)
	}
	if m.snap.ElapsedTicks != 60 {
		t.Errorf("elapsed ticks = %d, want 60", m.snap.ElapsedTicks)
	}

	view := m.View()
	if !strings.Contains(view, "Score") {
		t.Error("view missing HUD")
	}
	if !strings.Contains(view, "♥") {
		t.Error("view missing lives")
	}
}

func TestGameModelPauseToggle(t *testing.T) {
	m := testGameModel()
	m.Init()
	m = tickGame(t, m, 5)

	pause := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}
	next, _ := m.Update(pause)
	m = next.(GameModel)

	ticksBefore := m.snap.ElapsedTicks
	m = tickGame(t, m, 10)
	if m.snap.ElapsedTicks != ticksBefore {
		t.Error("simulation advanced while paused")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("pause overlay not rendered")
	}

	next, _ = m.Update(pause)
	m = next.(GameModel)
	m = tickGame(t, m, 1)
	if m.snap.ElapsedTicks != ticksBefore+1 {
		t.Error("simulation did not resume")
	}
}

func TestGameModelQuitKey(t *testing.T) {
	m := testGameModel()
	m.Init()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(GameModel)

	if !m.IsQuitting() {
		t.Error("q did not request quit")
	}
	if cmd == nil {
		t.Error("quit should produce a command")
	}
}
