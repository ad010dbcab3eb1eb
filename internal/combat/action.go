package combat

import "github.com/samdwyer/campusquest/internal/entity"

// ActionKind is one of the commands the player can issue in battle.
type ActionKind int

const (
	// ActionAttack - weapon strike on the first living enemy
	ActionAttack ActionKind = iota
	// ActionMagic - spell strike on the first living enemy; costs MP
	ActionMagic
	// ActionHeal - restore HP; costs MP
	ActionHeal
	// ActionItem - consume one of the player's items
	ActionItem
)

// String returns a human-readable action name.
func (k ActionKind) String() string {
	switch k {
	case ActionAttack:
		return "attack"
	case ActionMagic:
		return "magic"
	case ActionHeal:
		return "heal"
	case ActionItem:
		return "item"
	default:
		return "unknown"
	}
}

// Action is a player command. Item is only meaningful for ActionItem.
type Action struct {
	Kind ActionKind
	Item entity.Item
}

// Attack returns the plain weapon attack.
func Attack() Action { return Action{Kind: ActionAttack} }

// Magic returns the offensive spell.
func Magic() Action { return Action{Kind: ActionMagic} }

// Heal returns the healing spell.
func Heal() Action { return Action{Kind: ActionHeal} }

// UseItem returns an action consuming one of the given item.
func UseItem(item entity.Item) Action { return Action{Kind: ActionItem, Item: item} }

// String describes the action for logs and traces.
func (a Action) String() string {
	if a.Kind == ActionItem {
		return "item:" + a.Item.String()
	}
	return a.Kind.String()
}
