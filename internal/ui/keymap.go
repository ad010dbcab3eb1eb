package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/campusquest/internal/game"
)

// IntentForKey maps a key press to a game intent. Unbound keys map to
// game.IntentNone.
func IntentForKey(key tcell.Key, r rune) game.Intent {
	switch key {
	case tcell.KeyLeft:
		return game.IntentMoveLeft
	case tcell.KeyRight:
		return game.IntentMoveRight
	case tcell.KeyUp:
		return game.IntentMoveUp
	case tcell.KeyDown:
		return game.IntentMoveDown
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.IntentQuit
	case tcell.KeyRune:
		return intentForRune(r)
	}
	return game.IntentNone
}

func intentForRune(r rune) game.Intent {
	switch r {
	case 'a', 'A':
		return game.IntentAttack
	case 'm', 'M':
		return game.IntentMagic
	case 'h', 'H':
		return game.IntentHeal
	case '1':
		return game.IntentItem1
	case '2':
		return game.IntentItem2
	case '3':
		return game.IntentItem3
	case 'r', 'R':
		return game.IntentRestart
	case 'q', 'Q':
		return game.IntentQuit
	default:
		return game.IntentNone
	}
}

// IntentForEvent maps a tcell key event to a game intent.
func IntentForEvent(ev *tcell.EventKey) game.Intent {
	return IntentForKey(ev.Key(), ev.Rune())
}
