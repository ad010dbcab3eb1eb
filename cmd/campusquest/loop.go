package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/campusquest/internal/game"
	"github.com/samdwyer/campusquest/internal/ui"
)

// runLoop drives the game at a fixed tick rate. One goroutine pumps terminal
// events into intents; the other owns the game and the renderer.
func runLoop(ctx context.Context, g *game.Game, screen *ui.Screen, tickRate int, logger *slog.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	grp, gctx := errgroup.WithContext(ctx)
	intents := make(chan game.Intent, 16)

	grp.Go(func() error {
		pumpInput(gctx, screen, intents)
		return nil
	})

	grp.Go(func() error {
		// Stop the pump on every exit, including a clean quit.
		defer screen.Close()
		defer cancel()
		return tickLoop(gctx, g, screen, intents, tickRate, logger)
	})

	return grp.Wait()
}

// pumpInput forwards key presses until the screen is closed.
func pumpInput(ctx context.Context, screen *ui.Screen, intents chan<- game.Intent) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			in := ui.IntentForEvent(ev)
			if in == game.IntentNone {
				continue
			}
			select {
			case intents <- in:
			case <-ctx.Done():
				return
			}
		}
	}
}

// tickLoop owns g. Direction presses are gathered over one tick and resolved
// to a single step; every other intent is applied as it arrives.
func tickLoop(ctx context.Context, g *game.Game, screen *ui.Screen, intents <-chan game.Intent, tickRate int, logger *slog.Logger) error {
	renderer := ui.NewRenderer(screen)
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	var held game.Directions
	apply := func(in game.Intent) error {
		err := g.HandleIntent(ctx, in)
		if err != nil && game.IsRejected(err) {
			logger.Debug("intent rejected", "intent", in, "mode", g.Mode(), "err", err)
			return nil
		}
		if err != nil {
			return fmt.Errorf("handling %s: %w", in, err)
		}
		return nil
	}

	renderer.Render(g.Snapshot())
	for !g.Done() {
		select {
		case <-ctx.Done():
			return nil

		case in := <-intents:
			switch in {
			case game.IntentMoveLeft:
				held.Left = true
			case game.IntentMoveRight:
				held.Right = true
			case game.IntentMoveUp:
				held.Up = true
			case game.IntentMoveDown:
				held.Down = true
			default:
				if err := apply(in); err != nil {
					return err
				}
			}

		case <-ticker.C:
			if in := game.FirstDirection(held); in != game.IntentNone {
				if err := apply(in); err != nil {
					return err
				}
			}
			held = game.Directions{}

			if err := g.Tick(ctx); err != nil {
				return fmt.Errorf("tick: %w", err)
			}
			renderer.Render(g.Snapshot())
		}
	}
	return nil
}
