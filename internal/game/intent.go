package game

// Intent is a discrete player command delivered by the input source.
type Intent int

const (
	// IntentNone - no command
	IntentNone Intent = iota
	// IntentMoveLeft - step one cell left while exploring
	IntentMoveLeft
	// IntentMoveRight - step one cell right while exploring
	IntentMoveRight
	// IntentMoveUp - step one cell up while exploring
	IntentMoveUp
	// IntentMoveDown - step one cell down while exploring
	IntentMoveDown
	// IntentAttack - battle command: attack
	IntentAttack
	// IntentMagic - battle command: magic
	IntentMagic
	// IntentHeal - battle command: heal
	IntentHeal
	// IntentItem1 - battle command: use a Herb
	IntentItem1
	// IntentItem2 - battle command: use a Power Seed
	IntentItem2
	// IntentItem3 - battle command: use a Guard Seed
	IntentItem3
	// IntentRestart - start over after a defeat
	IntentRestart
	// IntentQuit - leave the game from any mode
	IntentQuit
)

// String returns a human-readable intent name.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentMoveLeft:
		return "move_left"
	case IntentMoveRight:
		return "move_right"
	case IntentMoveUp:
		return "move_up"
	case IntentMoveDown:
		return "move_down"
	case IntentAttack:
		return "attack"
	case IntentMagic:
		return "magic"
	case IntentHeal:
		return "heal"
	case IntentItem1:
		return "item1"
	case IntentItem2:
		return "item2"
	case IntentItem3:
		return "item3"
	case IntentRestart:
		return "restart"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// delta returns the step for a movement intent.
func (i Intent) delta() (dx, dy int, ok bool) {
	switch i {
	case IntentMoveLeft:
		return -1, 0, true
	case IntentMoveRight:
		return 1, 0, true
	case IntentMoveUp:
		return 0, -1, true
	case IntentMoveDown:
		return 0, 1, true
	default:
		return 0, 0, false
	}
}

// Directions is the set of direction inputs held during one tick.
type Directions struct {
	Left, Right, Up, Down bool
}

// FirstDirection resolves simultaneous directions to one movement intent.
// The first recognized wins, in the order Left, Right, Up, Down.
func FirstDirection(d Directions) Intent {
	switch {
	case d.Left:
		return IntentMoveLeft
	case d.Right:
		return IntentMoveRight
	case d.Up:
		return IntentMoveUp
	case d.Down:
		return IntentMoveDown
	default:
		return IntentNone
	}
}
