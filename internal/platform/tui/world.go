package tui

import (
	"fmt"
	"strings"

	"github.com/velmoga/skyrun/internal/core"
	"github.com/velmoga/skyrun/internal/sim"
)

// hudRows is the number of rows reserved above the playfield.
const hudRows = 2

// cosmeticColor maps a saved color name to a screen color.
func cosmeticColor(name string) core.Color {
	switch name {
	case "red":
		return core.ColorBrightRed
	case "green":
		return core.ColorBrightGreen
	case "yellow":
		return core.ColorBrightYellow
	case "blue":
		return core.ColorBrightBlue
	case "magenta":
		return core.ColorBrightMagenta
	case "cyan":
		return core.ColorBrightCyan
	case "orange":
		return core.ColorOrange
	default:
		return core.ColorBrightWhite
	}
}

// bodyRune maps a body shape name to the player's glyph.
func bodyRune(shape string) rune {
	switch shape {
	case "round":
		return '●'
	case "square":
		return '■'
	case "tall":
		return '▮'
	default:
		return '@'
	}
}

// legRune maps a leg style name to the player's lower glyph.
func legRune(style string) rune {
	switch style {
	case "springs":
		return 'w'
	case "wheels":
		return 'o'
	default:
		return '^'
	}
}

// project converts world coordinates to screen cells. The view spans
// the spawn line horizontally and the ground vertically, with hudRows
// reserved at the top.
func (m GameModel) project(x, y float64) (int, int) {
	worldW := m.opts.Game.SpawnX
	worldH := m.opts.Game.GroundY
	if worldW <= 0 || worldH <= 0 {
		return 0, 0
	}

	fieldH := m.screen.Height() - hudRows - 1
	cx := int(x / worldW * float64(m.screen.Width()-1))
	cy := hudRows + int(y/worldH*float64(fieldH))
	return cx, cy
}

func (m GameModel) groundRow() int {
	_, gy := m.project(0, m.opts.Game.GroundY)
	return gy
}

func (m GameModel) drawWorld() {
	snap := m.snap

	// Ground line
	gy := m.groundRow()
	m.screen.DrawHLine(0, gy, m.screen.Width(), '─', core.ColorGray)

	for _, o := range snap.Obstacles {
		m.drawObstacle(o)
	}

	m.drawPlayer()
}

func (m GameModel) drawObstacle(o sim.Obstacle) {
	x0, y0 := m.project(o.X, o.Y)
	x1, _ := m.project(o.X+o.W, o.Y)
	if x1 <= x0 {
		x1 = x0 + 1
	}

	switch o.Kind {
	case sim.KindCoin:
		m.screen.SetColored((x0+x1)/2, y0, 'o', core.ColorBrightYellow)
	case sim.KindSpike:
		for x := x0; x < x1; x++ {
			m.screen.SetColored(x, m.groundRow()-1, '▲', core.ColorBrightRed)
		}
	default: // platform
		for x := x0; x < x1; x++ {
			m.screen.SetColored(x, y0, '═', core.ColorBrightGreen)
		}
	}
}

func (m GameModel) drawPlayer() {
	snap := m.snap
	cx, feet := m.project(snap.PlayerX, snap.PlayerY)
	feet = core.Clamp(feet, hudRows+1, m.groundRow()-1)

	color := cosmeticColor(snap.Cosmetic.Color)
	m.screen.SetColored(cx, feet, legRune(snap.Cosmetic.LegStyle), color)
	m.screen.SetColored(cx, feet-1, bodyRune(snap.Cosmetic.BodyShape), color)
}

func (m GameModel) drawHUD() {
	snap := m.snap

	left := fmt.Sprintf(" Score %d  |  Lv %d %s  |  Power %d",
		snap.Score, snap.Level, snap.LevelName, snap.PowerLevel)
	right := fmt.Sprintf("%s  Coins %d ", strings.Repeat("♥", snap.Lives), snap.Coins)

	m.screen.DrawText(0, 0, left)
	m.screen.DrawTextColored(m.screen.Width()-len([]rune(right)), 0, right, core.ColorBrightYellow)

	var abilities []string
	if snap.Abilities.DoubleJump {
		abilities = append(abilities, "double jump")
	}
	if snap.Abilities.DestroyObstacles {
		abilities = append(abilities, "stomp")
	}
	if len(abilities) > 0 {
		m.screen.DrawTextColored(1, 1, strings.Join(abilities, "  "), core.ColorBrightCyan)
	}

	if m.notice != "" {
		m.screen.DrawTextColored(
			core.Max(0, (m.screen.Width()-len([]rune(m.notice)))/2),
			1, m.notice, core.ColorBrightMagenta,
		)
	}
}

func (m GameModel) drawOverlay(title, hint string) {
	w := core.Max(len(title), len(hint)) + 6
	h := 5
	x := (m.screen.Width() - w) / 2
	y := (m.screen.Height() - h) / 2

	box := core.NewRect(x, y, w, h)
	m.screen.DrawRect(box, ' ', core.ColorDefault)
	m.screen.DrawBox(box, core.ColorBrightWhite)
	m.screen.DrawTextColored(x+(w-len(title))/2, y+1, title, core.ColorBrightWhite)
	m.screen.DrawTextColored(x+(w-len(hint))/2, y+3, hint, core.ColorGray)
}
