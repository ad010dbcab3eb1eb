package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/campusquest/internal/entity"
	"github.com/samdwyer/campusquest/internal/world"
)

// pinchHP is the HP at or below which the player is shown in danger.
const pinchHP = 30

// PlayerView is a read-only copy of the player's visible stats.
type PlayerView struct {
	Level, Exp, NextExp int
	HP, MaxHP           int
	MP, MaxMP           int
	X, Y                int
	Items               [entity.ItemKinds]int
	AttackTurns         int // turns left on the attack buff
	DefenseTurns        int // turns left on the defense buff
	Pinch               bool
}

// EnemyView is a read-only copy of one roster entry.
type EnemyView struct {
	Name       string
	Symbol     rune
	Color      tcell.Color
	Slot       int
	HP, MaxHP  int
	HPFraction float64
	Flashing   bool
	Dying      bool
	Boss       bool
}

// View is everything the renderer may read. It never aliases game state.
type View struct {
	Mode     Mode
	Scene    world.Scene
	Layout   world.Layout
	Player   PlayerView
	Enemies  []EnemyView // roster order; nil outside battle
	Boss     bool
	Turns    int
	Messages []string // oldest first
}

// Snapshot returns the current view.
func (g *Game) Snapshot() View {
	p := g.player
	v := View{
		Mode:   g.Mode(),
		Scene:  g.scene,
		Layout: g.atlas.Layout(g.scene),
		Player: PlayerView{
			Level:        p.Level,
			Exp:          p.Exp,
			NextExp:      p.NextExp,
			HP:           p.HP,
			MaxHP:        p.MaxHP,
			MP:           p.MP,
			MaxMP:        p.MaxMP,
			X:            p.X,
			Y:            p.Y,
			Items:        p.Items,
			AttackTurns:  p.AttackBuff.Turns,
			DefenseTurns: p.DefenseBuff.Turns,
			Pinch:        p.HP <= pinchHP,
		},
		Messages: g.log.Messages(),
	}

	if g.battle != nil {
		v.Boss = g.battle.Boss
		v.Turns = g.battle.Turns
		v.Enemies = make([]EnemyView, len(g.battle.Enemies))
		for i, e := range g.battle.Enemies {
			v.Enemies[i] = EnemyView{
				Name:       e.Name,
				Symbol:     e.Symbol,
				Color:      e.Color(),
				Slot:       e.Slot,
				HP:         e.HP,
				MaxHP:      e.MaxHP,
				HPFraction: e.HPFraction(),
				Flashing:   e.Flashing(),
				Dying:      e.Dying(),
				Boss:       e.Boss,
			}
		}
	}
	return v
}
