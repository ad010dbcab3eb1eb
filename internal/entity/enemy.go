package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/campusquest/internal/gamedata"
)

// Timers sets the tick lengths of an enemy's presentation countdowns.
type Timers struct {
	Flash   int // ticks the hit-flash stays on after taking damage
	Removal int // ticks between HP reaching 0 and eviction from the roster
}

// DefaultTimers returns the reference countdown lengths.
func DefaultTimers() Timers {
	return Timers{Flash: 10, Removal: 60}
}

// Enemy represents a hostile combatant inside an encounter.
type Enemy struct {
	Def    gamedata.EnemyDef // Copy of the definition it was built from
	Name   string            // Display name (e.g., "Assignment 2")
	Symbol rune              // Display symbol
	Slot   int               // Roster position at creation, used for placement
	HP     int               // Current hit points
	MaxHP  int               // Maximum hit points
	Attack int               // Enemy damage centre
	XP     int               // Experience awarded on eviction
	Boss   bool

	timers  Timers
	flash   int
	removal int
	dying   bool
}

// NewEnemyFromDef creates a new enemy from a data-driven definition.
func NewEnemyFromDef(def gamedata.EnemyDef, name string, slot int, timers Timers) *Enemy {
	if name == "" {
		name = def.Name
	}
	return &Enemy{
		Def:    def,
		Name:   name,
		Symbol: def.GlyphRune(),
		Slot:   slot,
		HP:     def.HP,
		MaxHP:  def.HP,
		Attack: def.Attack,
		XP:     def.XP,
		Boss:   def.Boss,
		timers: timers,
	}
}

// IsAlive returns true if the enemy has HP remaining. Dying enemies stay in
// the roster but are never targeted.
func (e *Enemy) IsAlive() bool { return e.HP > 0 }

// TakeDamage reduces HP (floored at 0) and starts the hit-flash. The first
// time HP reaches 0 the removal countdown starts. Returns the damage dealt
// and whether this hit was the killing blow.
func (e *Enemy) TakeDamage(amount int) (int, bool) {
	if amount <= 0 || e.dying {
		return 0, false
	}
	actual := min(amount, e.HP)
	e.HP -= actual
	e.flash = e.timers.Flash

	if e.HP <= 0 {
		e.dying = true
		e.removal = e.timers.Removal
		return actual, true
	}
	return actual, false
}

// Tick advances both countdowns by one tick. Returns true when the removal
// countdown has just finished and the enemy must be evicted.
func (e *Enemy) Tick() bool {
	if e.flash > 0 {
		e.flash--
	}
	if !e.dying {
		return false
	}
	if e.removal > 0 {
		e.removal--
	}
	return e.removal == 0
}

// Flashing returns true while the hit-flash is on.
func (e *Enemy) Flashing() bool { return e.flash > 0 }

// Dying returns true once the removal countdown has started.
func (e *Enemy) Dying() bool { return e.dying }

// RemovalLeft returns the ticks remaining before eviction, or 0 while alive.
func (e *Enemy) RemovalLeft() int { return e.removal }

// HPFraction returns current HP as a fraction of max, in [0, 1].
func (e *Enemy) HPFraction() float64 {
	if e.MaxHP <= 0 || e.HP <= 0 {
		return 0
	}
	return float64(e.HP) / float64(e.MaxHP)
}

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color {
	return e.Def.TCellColor()
}
