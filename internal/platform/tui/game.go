package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/velmoga/skyrun/internal/core"
	"github.com/velmoga/skyrun/internal/sim"
	"github.com/velmoga/skyrun/internal/storage"
)

// noticeTicks is how many ticks a banner (level up, achievement) stays
// on screen.
const noticeTicks = 120

// GameModel is the Bubble Tea model that drives one run.
type GameModel struct {
	ctrl      *sim.Controller
	screen    *core.Screen
	store     *storage.Store
	opts      Options
	keyMapper *KeyMapper

	snap       sim.Snapshot
	notice     string
	noticeLeft int
	runSaved   bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for a fresh run with the given cosmetic.
func NewGameModel(store *storage.Store, opts Options, cos sim.Cosmetic) GameModel {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	ctrl := sim.New(opts.Game, sim.NewLCG(opts.Seed))
	ctrl.SetCosmetic(cos)

	return GameModel{
		ctrl:      ctrl,
		screen:    core.NewScreen(opts.Width, opts.Height),
		store:     store,
		opts:      opts,
		keyMapper: NewKeyMapper(),
	}
}

// Init starts the run and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.ctrl.Start()
	return tickCmd(m.opts.FPS)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.opts.Width = msg.Width
		m.opts.Height = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	phase := m.ctrl.Phase()

	switch action {
	case core.ActionJump, core.ActionUp:
		m.ctrl.Jump(m.snap.ElapsedMs)

	case core.ActionPause:
		switch phase {
		case sim.PhasePlaying:
			m.ctrl.Pause()
		case sim.PhasePaused:
			m.ctrl.Resume()
		}

	case core.ActionRestart:
		if phase == sim.PhaseGameOver {
			m.ctrl.Start()
			m.snap = sim.Snapshot{}
			m.runSaved = false
			m.notice = ""
			m.noticeLeft = 0
		}

	case core.ActionBack:
		if phase == sim.PhaseGameOver || phase == sim.PhasePaused {
			m.backToMenu = true
		}
	}

	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	dt := 1000.0 / float64(m.opts.FPS)
	snap, events := m.ctrl.Tick(dt)
	m.snap = snap

	for _, ev := range events {
		switch ev := ev.(type) {
		case sim.LeveledUp:
			m.setNotice(fmt.Sprintf("Level %d: %s", ev.To, ev.Name))
		case sim.PoweredUp:
			m.setNotice(fmt.Sprintf("Power level %d!", ev.To))
		case sim.AchievementUnlocked:
			m.setNotice(fmt.Sprintf("Achievement: %s (+%d)", ev.Name, ev.Reward))
		case sim.GameOver:
			m.saveRun(ev)
		}
	}

	if m.noticeLeft > 0 {
		m.noticeLeft--
		if m.noticeLeft == 0 {
			m.notice = ""
		}
	}

	return m, tickCmd(m.opts.FPS)
}

func (m *GameModel) setNotice(text string) {
	m.notice = text
	m.noticeLeft = noticeTicks
}

// saveRun persists the finished run and its achievements. Best-effort:
// the game over screen shows regardless.
func (m *GameModel) saveRun(ev sim.GameOver) {
	if m.runSaved || m.store == nil {
		return
	}
	m.runSaved = true

	unlocked := m.ctrl.Unlocked()
	perfect := false
	for _, a := range unlocked {
		if a.ID == "flawless" {
			perfect = true
		}
	}

	runID, err := m.store.SaveRun(storage.RunRecord{
		Score:      ev.FinalScore,
		Level:      ev.FinalLevel,
		LevelName:  m.snap.LevelName,
		Coins:      ev.FinalCoins,
		DurationMs: int64(ev.ElapsedMs),
		Perfect:    perfect,
	})
	if err != nil {
		return
	}

	records := make([]storage.AchievementRecord, 0, len(unlocked))
	for _, a := range unlocked {
		records = append(records, storage.AchievementRecord{
			AchievementID: string(a.ID),
			Name:          a.Name,
			Reward:        a.Reward,
		})
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveAchievements(runID, records)
}

// View renders the run.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.drawWorld()
	m.drawHUD()

	switch m.snap.Phase {
	case sim.PhasePaused:
		m.drawOverlay("PAUSED", "p resume  |  esc menu")
	case sim.PhaseGameOver:
		m.drawOverlay(
			fmt.Sprintf("GAME OVER - score %d", m.snap.Score),
			"r restart  |  esc menu",
		)
	}

	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
