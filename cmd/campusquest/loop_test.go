package main

import (
	"context"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/campusquest/internal/config"
	"github.com/samdwyer/campusquest/internal/game"
	"github.com/samdwyer/campusquest/internal/ui"
)

func startLoop(t *testing.T) (tcell.SimulationScreen, <-chan error) {
	t.Helper()

	sim := tcell.NewSimulationScreen("")
	screen, err := ui.NewScreenFrom(sim)
	require.NoError(t, err)
	sim.SetSize(80, 30)

	logger := slog.New(slog.DiscardHandler)
	g, err := game.New(context.Background(), config.Default(), rand.New(rand.NewSource(1)), logger)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- runLoop(context.Background(), g, screen, 60, logger)
	}()
	return sim, done
}

func waitLoop(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not exit")
	}
}

// press posts a key, retrying while the event queue is full.
func press(sim tcell.SimulationScreen, r rune) {
	for sim.PostEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)) != nil {
		time.Sleep(time.Millisecond)
	}
}

func TestLoopExitsOnQuit(t *testing.T) {
	sim, done := startLoop(t)

	press(sim, 'q')
	waitLoop(t, done)
}

func TestLoopExitsWithInputBacklog(t *testing.T) {
	sim, done := startLoop(t)

	go func() {
		// Rejected while exploring; the backlog exceeds the intent buffer.
		for i := 0; i < 64; i++ {
			press(sim, 'a')
		}
		press(sim, 'q')
	}()
	waitLoop(t, done)
}

func TestLoopExitsOnContextCancel(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	screen, err := ui.NewScreenFrom(sim)
	require.NoError(t, err)

	logger := slog.New(slog.DiscardHandler)
	g, err := game.New(context.Background(), config.Default(), rand.New(rand.NewSource(1)), logger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- runLoop(ctx, g, screen, 60, logger)
	}()

	cancel()
	waitLoop(t, done)
}
