package combat

import "errors"

// Rejections returned by Battle.Act. None of them consume a turn or change
// battle state beyond surfacing a message.
var (
	// ErrInsufficientMP means the player cannot pay the action's MP cost.
	ErrInsufficientMP = errors.New("not enough MP")
	// ErrNoItem means the chosen consumable has run out.
	ErrNoItem = errors.New("no item left")
	// ErrNoTarget means no enemy is alive; the battle is already decided.
	ErrNoTarget = errors.New("no living target")
	// ErrBattleOver means the battle has already been resolved.
	ErrBattleOver = errors.New("battle is over")
	// ErrUnknownAction means the action kind or item is not recognized.
	ErrUnknownAction = errors.New("unknown action")
)
