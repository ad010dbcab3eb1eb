package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/campusquest/internal/entity"
	"github.com/samdwyer/campusquest/internal/game"
	"github.com/samdwyer/campusquest/internal/world"
)

const (
	mapTop    = 2  // first row of the scene or battle panel
	panelRows = 19 // rows reserved for the panel
	barWidth  = 20
)

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	stylePinch  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Renderer draws a game.View to the screen. It never mutates game state.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one frame.
func (r *Renderer) Render(v game.View) {
	r.screen.Clear()

	statusStyle := styleText
	if v.Player.Pinch {
		statusStyle = stylePinch
	}
	x := r.screen.DrawText(0, 0, "Campus Quest - "+v.Scene.Title(), styleTitle)
	r.screen.DrawText(x+2, 0, StatusLine(v.Player), statusStyle)

	switch v.Mode {
	case game.ModeExploring:
		r.renderScene(v)
	case game.ModeInBattle:
		r.renderBattle(v)
	case game.ModeEnding:
		r.renderBanner("Congratulations! The Evil Organization is gone.", "Press Q to quit.")
	case game.ModeGameOver:
		r.renderBanner("GAME OVER", "Press R to restart or Q to quit.")
	}

	r.renderMessages(v.Messages)
	r.screen.Show()
}

func (r *Renderer) renderScene(v game.View) {
	l := v.Layout
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			tile := world.TileGrass
			if l.Grid != nil {
				tile = l.Grid.GetTile(x, y)
			}
			r.screen.SetContent(x, mapTop+y, tile.Rune(), tileStyle(tile))
		}
	}
	r.screen.SetContent(v.Player.X, mapTop+v.Player.Y, '@', stylePlayer)
	r.screen.DrawText(l.Width+2, mapTop, "Arrows: move  Q: quit", styleDim)
}

func (r *Renderer) renderBattle(v game.View) {
	title := "Enemies appeared!"
	if v.Boss {
		title = "Boss battle!"
	}
	r.screen.DrawText(0, mapTop, fmt.Sprintf("%s  Turn %d", title, v.Turns+1), styleTitle)

	for i, e := range v.Enemies {
		style := tcell.StyleDefault.Foreground(e.Color)
		switch {
		case e.Dying:
			style = styleDim
		case e.Flashing:
			style = style.Reverse(true)
		}
		y := mapTop + 2 + i*2
		r.screen.SetContent(1, y, e.Symbol, style)
		x := r.screen.DrawText(3, y, e.Name, style)
		r.screen.DrawText(x+2, y, HPBar(e.HPFraction, barWidth), style)
		if e.Dying {
			r.screen.DrawText(x+barWidth+5, y, "defeated", styleDim)
		}
	}

	help := "[A]ttack  [M]agic 30MP  [H]eal 10MP  [1]" + entity.ItemHerb.String() +
		"  [2]" + entity.ItemPowerSeed.String() + "  [3]" + entity.ItemGuardSeed.String()
	r.screen.DrawText(0, mapTop+panelRows-1, help, styleText)
}

func (r *Renderer) renderBanner(lines ...string) {
	for i, line := range lines {
		r.screen.DrawText(4, mapTop+panelRows/2+i*2, line, styleTitle)
	}
}

func (r *Renderer) renderMessages(msgs []string) {
	for i, msg := range msgs {
		r.screen.DrawText(0, mapTop+panelRows+1+i, msg, styleText)
	}
}

// StatusLine formats the player's stats and consumables.
func StatusLine(p game.PlayerView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Lv %d  HP %d/%d  MP %d/%d  Exp %d/%d", p.Level, p.HP, p.MaxHP, p.MP, p.MaxMP, p.Exp, p.NextExp)
	fmt.Fprintf(&b, "  %s x%d  %s x%d  %s x%d",
		entity.ItemHerb, p.Items[entity.ItemHerb],
		entity.ItemPowerSeed, p.Items[entity.ItemPowerSeed],
		entity.ItemGuardSeed, p.Items[entity.ItemGuardSeed])
	if p.AttackTurns > 0 {
		fmt.Fprintf(&b, "  ATK+ %d", p.AttackTurns)
	}
	if p.DefenseTurns > 0 {
		fmt.Fprintf(&b, "  DEF+ %d", p.DefenseTurns)
	}
	return b.String()
}

// HPBar renders a fraction in [0, 1] as a fixed-width bar.
func HPBar(fraction float64, width int) string {
	fraction = min(max(fraction, 0), 1)
	filled := int(fraction * float64(width))
	if fraction > 0 && filled == 0 {
		filled = 1
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// tileStyle returns the appropriate style for a tile type.
func tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileGrass:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case world.TileDirt:
		return tcell.StyleDefault.Foreground(tcell.ColorOlive)
	case world.TileStone:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileFlower:
		return tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	case world.TileRiver:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	default:
		return tcell.StyleDefault
	}
}
