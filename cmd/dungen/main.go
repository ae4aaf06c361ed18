// Package main is the entry point for dungen.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/leonelquinteros/gotext"

	"github.com/samdwyer/dungen/internal/game"
	"github.com/samdwyer/dungen/internal/logger"
	"github.com/samdwyer/dungen/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		logger.Log.WithError(err).Error("Exiting")
		fmt.Fprintf(os.Stderr, "dungen: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// The terminal belongs to the game, so logs only go to LOG_FILE.
	var logOut io.Writer = io.Discard
	if path := os.Getenv("LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	// Load .env file for local development
	// This makes HONEYCOMB_DUNGEN_API_KEY available
	envErr := godotenv.Load()
	logger.Init(logOut)
	if envErr != nil {
		// Not fatal - env vars might be set directly
		logger.Log.WithError(envErr).Debug(".env file not loaded")
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	if cfg.LocaleDir != "" {
		gotext.Configure(cfg.LocaleDir, cfg.Language, "default")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Initialize telemetry only when an exporter is configured
	if telemetry.ConfigureHoneycombEnv(os.Getenv("HONEYCOMB_DUNGEN_API_KEY"), os.Getenv("HONEYCOMB_DUNGEN_DATASET")) ||
		os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			// Continue without telemetry - game still works
			logger.Log.WithError(err).Warn("Telemetry setup failed, running without observability")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Log.WithError(err).Error("Error shutting down telemetry")
				}
			}()
		}
	}

	// Create and run game
	g, err := game.New(cfg)
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	return g.Run(ctx)
}
