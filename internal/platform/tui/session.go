package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/velmoga/skyrun/internal/sim"
	"github.com/velmoga/skyrun/internal/storage"
)

// sessionScreen identifies which sub-model is active.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenCustomizer
	screenScoreboard
)

// SessionModel manages the full flow: menu -> run -> menu, plus the
// customizer and scoreboard screens. Used both locally and for SSH
// sessions.
type SessionModel struct {
	store      *storage.Store
	opts       Options
	screen     sessionScreen
	menu       MenuModel
	game       *GameModel
	customizer *CustomizerModel
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a session starting at the menu.
func NewSessionModel(store *storage.Store, opts Options) SessionModel {
	return SessionModel{
		store: store,
		opts:  opts,
		menu:  NewMenuModel(store, opts.Width, opts.Height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Width = wsm.Width
		m.opts.Height = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenCustomizer:
		return m.updateCustomizer(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.menu.Selected() {
	case MenuChoicePlay:
		game := NewGameModel(m.store, m.opts, m.loadCosmetic())
		m.game = &game
		m.screen = screenGame
		return m, m.game.Init()

	case MenuChoiceCustomize:
		customizer := NewCustomizerModel(m.store, m.opts.Width, m.opts.Height)
		m.customizer = &customizer
		m.screen = screenCustomizer
		return m, m.customizer.Init()

	case MenuChoiceScores:
		scoreboard := NewScoreboardModel(m.store, m.opts.Width, m.opts.Height)
		m.scoreboard = &scoreboard
		m.screen = screenScoreboard
		return m, m.scoreboard.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.BackToMenu() {
		return m.backToMenu()
	}
	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m SessionModel) updateCustomizer(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.customizer.Update(msg)
	if cm, ok := newModel.(CustomizerModel); ok {
		m.customizer = &cm
	}

	if m.customizer.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.customizer.WantsBack() {
		return m.backToMenu()
	}

	return m, cmd
}

func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sm, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sm
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.game = nil
	m.customizer = nil
	m.scoreboard = nil
	m.menu = NewMenuModel(m.store, m.opts.Width, m.opts.Height)
	return m, m.menu.Init()
}

// loadCosmetic reads the saved appearance, falling back to defaults.
func (m SessionModel) loadCosmetic() sim.Cosmetic {
	cos := sim.Cosmetic{BodyShape: "round", LegStyle: "straight", Color: "white"}
	if m.store == nil {
		return cos
	}
	if saved, ok, err := m.store.LoadCosmetic(); err == nil && ok {
		cos = sim.Cosmetic{
			BodyShape: saved.BodyShape,
			LegStyle:  saved.LegStyle,
			Color:     saved.Color,
		}
	}
	return cos
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenCustomizer:
		return m.customizer.View()
	case screenScoreboard:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// Run starts a local terminal session.
func Run(store *storage.Store, opts Options) error {
	model := NewSessionModel(store, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
