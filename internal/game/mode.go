// Package game provides the top-level controller: global mode, scene
// transitions, and the active battle.
package game

import (
	"context"
	"log/slog"

	"github.com/looplab/fsm"
)

// Mode represents the global game mode.
type Mode int

const (
	// ModeExploring - the player walks between scenes
	ModeExploring Mode = iota
	// ModeInBattle - a battle is being resolved
	ModeInBattle
	// ModeEnding - the boss has been defeated (terminal)
	ModeEnding
	// ModeGameOver - the player was defeated; only restart leaves it
	ModeGameOver
)

// String returns a human-readable mode name. It is also the state name used
// by the mode machine.
func (m Mode) String() string {
	switch m {
	case ModeExploring:
		return "exploring"
	case ModeInBattle:
		return "in_battle"
	case ModeEnding:
		return "ending"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

func parseMode(s string) Mode {
	for m := ModeExploring; m <= ModeGameOver; m++ {
		if m.String() == s {
			return m
		}
	}
	return Mode(-1)
}

// Mode machine events.
const (
	eventEncounter   = "encounter"
	eventVictory     = "victory"
	eventBossVictory = "boss_victory"
	eventDefeat      = "defeat"
	eventRestart     = "restart"
)

// newModeMachine builds the global mode machine. Ending has no outgoing
// event; GameOver only leaves through restart.
func newModeMachine(logger *slog.Logger) *fsm.FSM {
	return fsm.NewFSM(
		ModeExploring.String(),
		fsm.Events{
			{Name: eventEncounter, Src: []string{ModeExploring.String()}, Dst: ModeInBattle.String()},
			{Name: eventVictory, Src: []string{ModeInBattle.String()}, Dst: ModeExploring.String()},
			{Name: eventBossVictory, Src: []string{ModeInBattle.String()}, Dst: ModeEnding.String()},
			{Name: eventDefeat, Src: []string{ModeInBattle.String()}, Dst: ModeGameOver.String()},
			{Name: eventRestart, Src: []string{ModeGameOver.String()}, Dst: ModeExploring.String()},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				logger.Info("mode changed", "event", e.Event, "from", e.Src, "to", e.Dst)
			},
		},
	)
}
