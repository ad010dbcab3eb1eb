package entity

// Item identifies one of the consumables the player carries.
type Item int

const (
	// ItemHerb restores HP.
	ItemHerb Item = iota
	// ItemPowerSeed raises attack for a few turns.
	ItemPowerSeed
	// ItemGuardSeed reduces incoming damage for a few turns.
	ItemGuardSeed

	// ItemKinds is the number of consumable counters.
	ItemKinds = 3
)

// String returns the item's display name.
func (i Item) String() string {
	switch i {
	case ItemHerb:
		return "Herb"
	case ItemPowerSeed:
		return "Power Seed"
	case ItemGuardSeed:
		return "Guard Seed"
	default:
		return "Unknown"
	}
}

// Valid reports whether i names a carried consumable.
func (i Item) Valid() bool {
	return i >= ItemHerb && i < ItemKinds
}
