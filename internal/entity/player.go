// Package entity provides the player and the combatants they fight.
package entity

// Growth configures a player's starting pools and level-up formula.
type Growth struct {
	StartHP       int
	StartMP       int
	StartNextExp  int
	NextExpGrowth float64 // threshold multiplier per level, floored
	HPPerLevel    int
	MPPerLevel    int
	StartItems    [ItemKinds]int
}

// DefaultGrowth returns the reference progression.
func DefaultGrowth() Growth {
	return Growth{
		StartHP:       100,
		StartMP:       100,
		StartNextExp:  100,
		NextExpGrowth: 1.5,
		HPPerLevel:    20,
		MPPerLevel:    10,
		StartItems:    [ItemKinds]int{3, 1, 1},
	}
}

// Player is the single adventurer controlled by the user.
// HP and MP always stay within [0, max].
type Player struct {
	Level   int
	Exp     int
	NextExp int // experience needed for the next level

	HP, MaxHP int
	MP, MaxMP int

	X, Y int // scene-local cell

	AttackBuff  Buff
	DefenseBuff Buff

	Items [ItemKinds]int

	growth Growth
}

// NewPlayer creates a level 1 player at the given position.
func NewPlayer(g Growth, x, y int) *Player {
	p := &Player{growth: g}
	p.Reset(x, y)
	return p
}

// Reset restores the player to starting values.
func (p *Player) Reset(x, y int) {
	g := p.growth
	*p = Player{
		Level:       1,
		NextExp:     g.StartNextExp,
		HP:          g.StartHP,
		MaxHP:       g.StartHP,
		MP:          g.StartMP,
		MaxMP:       g.StartMP,
		X:           x,
		Y:           y,
		AttackBuff:  Buff{Multiplier: 1.0},
		DefenseBuff: Buff{Multiplier: 1.0},
		Items:       g.StartItems,
		growth:      g,
	}
}

// IsAlive returns true if the player has HP remaining.
func (p *Player) IsAlive() bool { return p.HP > 0 }

// LevelBonus is the additive damage/heal modifier, 2*(level-1).
func (p *Player) LevelBonus() int {
	return 2 * (p.Level - 1)
}

// SetPosition updates the player's position.
func (p *Player) SetPosition(x, y int) {
	p.X = x
	p.Y = y
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}

// TakeDamage reduces HP (floored at 0) and returns actual damage taken.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, p.HP)
	p.HP -= actual
	return actual
}

// Heal restores HP (capped at max) and returns actual amount healed.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, p.MaxHP-p.HP)
	p.HP += actual
	return actual
}

// SpendMP reduces MP and returns false, changing nothing, if insufficient.
func (p *Player) SpendMP(amount int) bool {
	if amount < 0 || p.MP < amount {
		return false
	}
	p.MP -= amount
	return true
}

// RestoreMP restores MP (capped at max) and returns actual amount restored.
func (p *Player) RestoreMP(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, p.MaxMP-p.MP)
	p.MP += actual
	return actual
}

// UseItem consumes one of the given item. Returns false if none are left.
func (p *Player) UseItem(item Item) bool {
	if !item.Valid() || p.Items[item] <= 0 {
		return false
	}
	p.Items[item]--
	return true
}

// ItemCount returns how many of the given item the player carries.
func (p *Player) ItemCount(item Item) int {
	if !item.Valid() {
		return 0
	}
	return p.Items[item]
}

// TickBuffs consumes one turn from each active buff.
func (p *Player) TickBuffs() {
	p.AttackBuff.Tick()
	p.DefenseBuff.Tick()
}

// GainExperience adds experience and applies every level-up it pays for.
// Each level raises the threshold by the growth factor (floored), raises
// max HP/MP, and fully restores both. Returns the number of levels gained.
func (p *Player) GainExperience(amount int) int {
	if amount > 0 {
		p.Exp += amount
	}

	gained := 0
	for p.NextExp > 0 && p.Exp >= p.NextExp {
		p.Level++
		p.Exp -= p.NextExp
		p.NextExp = int(float64(p.NextExp) * p.growth.NextExpGrowth)

		p.MaxHP += p.growth.HPPerLevel
		p.MaxMP += p.growth.MPPerLevel
		p.HP = p.MaxHP
		p.MP = p.MaxMP
		gained++
	}
	return gained
}
