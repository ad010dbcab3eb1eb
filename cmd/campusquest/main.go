// Package main is the entry point for Campus Quest.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/campusquest/internal/config"
	"github.com/samdwyer/campusquest/internal/game"
	"github.com/samdwyer/campusquest/internal/telemetry"
	"github.com/samdwyer/campusquest/internal/ui"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "campusquest:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configPath := flag.String("config", "campusquest.yaml", "path to the YAML config file")
	seed := flag.Int64("seed", 0, "random seed (0 uses the config seed, or the clock)")
	flag.Parse()

	// .env is optional; OTEL and Honeycomb variables may be set directly.
	envErr := godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	if envErr != nil {
		logger.Debug(".env file not loaded", "err", envErr)
	}
	logger.Info("campusquest starting", "config", *configPath, "seed", cfg.Seed)

	setupOTelEnv()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("telemetry setup failed, running without traces", "err", err)
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn("telemetry shutdown failed", "err", err)
			}
		}()
	}

	g, err := game.New(ctx, cfg, rand.New(rand.NewSource(cfg.Seed)), logger)
	if err != nil {
		return fmt.Errorf("initializing game: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	defer screen.Close()

	if err := runLoop(ctx, g, screen, cfg.TickRate, logger); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	logger.Info("campusquest stopped")
	return nil
}

// newLogger builds the structured logger. The terminal belongs to the game,
// so logs go to a file; an empty path discards them.
func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return logger, closeFn, nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// Nothing is changed unless a Honeycomb key is present, so a plain
// OTEL_EXPORTER_OTLP_ENDPOINT keeps working.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_CAMPUSQUEST_API_KEY")
	if apiKey == "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_CAMPUSQUEST_DATASET")
	if dataset == "" {
		dataset = "campusquest"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
