package entity

// Buff is a timed multiplier. It is neutral (1.0) whenever Turns is zero.
type Buff struct {
	Multiplier float64
	Turns      int
}

// Active returns true while the buff still has turns remaining.
func (b Buff) Active() bool {
	return b.Turns > 0
}

// Factor returns the multiplier currently in force.
func (b Buff) Factor() float64 {
	if !b.Active() {
		return 1.0
	}
	return b.Multiplier
}

// Tick consumes one turn. The multiplier resets to neutral exactly when the
// counter reaches zero. Returns true if the buff expired on this tick.
func (b *Buff) Tick() bool {
	if b.Turns <= 0 {
		return false
	}
	b.Turns--
	if b.Turns == 0 {
		b.Multiplier = 1.0
		return true
	}
	return false
}
