package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/velmoga/skyrun/internal/storage"
)

// Cosmetic option tables. Purely visual; the run plays identically
// whatever is picked.
var (
	bodyShapes = []string{"round", "square", "tall"}
	legStyles  = []string{"straight", "springs", "wheels"}
	colorNames = []string{"white", "red", "green", "yellow", "blue", "magenta", "cyan", "orange"}
)

const (
	rowBody = iota
	rowLegs
	rowColor
	rowCount
)

// CustomizerModel lets the player pick their runner's appearance.
type CustomizerModel struct {
	store     *storage.Store
	width     int
	height    int
	keyMapper *KeyMapper

	row      int
	bodyIdx  int
	legIdx   int
	colorIdx int

	saved    bool
	back     bool
	quitting bool
}

// NewCustomizerModel creates a customizer preloaded with the saved look.
func NewCustomizerModel(store *storage.Store, width, height int) CustomizerModel {
	m := CustomizerModel{
		store:     store,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}

	if store != nil {
		if cos, ok, err := store.LoadCosmetic(); err == nil && ok {
			m.bodyIdx = indexOf(bodyShapes, cos.BodyShape)
			m.legIdx = indexOf(legStyles, cos.LegStyle)
			m.colorIdx = indexOf(colorNames, cos.Color)
		}
	}

	return m
}

func indexOf(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return 0
}

// Cosmetic returns the currently selected appearance.
func (m CustomizerModel) Cosmetic() storage.Cosmetic {
	return storage.Cosmetic{
		BodyShape: bodyShapes[m.bodyIdx],
		LegStyle:  legStyles[m.legIdx],
		Color:     colorNames[m.colorIdx],
	}
}

// Init initializes the model.
func (m CustomizerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m CustomizerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m CustomizerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.row > 0 {
			m.row--
		}

	case MenuActionDown:
		if m.row < rowCount-1 {
			m.row++
		}

	case MenuActionLeft:
		m.cycle(-1)

	case MenuActionRight:
		m.cycle(1)

	case MenuActionSelect:
		if m.store != nil {
			//nolint:errcheck // Best-effort save
			m.store.SaveCosmetic(m.Cosmetic())
		}
		m.saved = true
		m.back = true

	case MenuActionBack:
		m.back = true
	}

	return m, nil
}

func (m *CustomizerModel) cycle(dir int) {
	wrap := func(idx, n int) int {
		return ((idx+dir)%n + n) % n
	}
	switch m.row {
	case rowBody:
		m.bodyIdx = wrap(m.bodyIdx, len(bodyShapes))
	case rowLegs:
		m.legIdx = wrap(m.legIdx, len(legStyles))
	case rowColor:
		m.colorIdx = wrap(m.colorIdx, len(colorNames))
	}
}

// View renders the customizer.
func (m CustomizerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("CUSTOMIZE YOUR RUNNER", m.width))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Body", bodyShapes[m.bodyIdx]},
		{"Legs", legStyles[m.legIdx]},
		{"Color", colorNames[m.colorIdx]},
	}

	for i, r := range rows {
		cursor := "  "
		if i == m.row {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-6s < %s >", cursor, r.label, r.value)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Preview
	cos := m.Cosmetic()
	b.WriteString("\n")
	b.WriteString(centerText(string(bodyRune(cos.BodyShape)), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(string(legRune(cos.LegStyle)), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText("Left/Right: Change  |  Enter: Save  |  Esc: Back", m.width))

	return b.String()
}

// WantsBack returns true when the user is done here.
func (m CustomizerModel) WantsBack() bool {
	return m.back
}

// Saved returns true if the user saved their selection.
func (m CustomizerModel) Saved() bool {
	return m.saved
}

// IsQuitting returns true if the user requested to quit.
func (m CustomizerModel) IsQuitting() bool {
	return m.quitting
}
