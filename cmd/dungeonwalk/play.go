package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeonwalk/internal/config"
	"github.com/samdwyer/dungeonwalk/internal/game"
	"github.com/samdwyer/dungeonwalk/internal/telemetry"
	"github.com/samdwyer/dungeonwalk/internal/ui"
)

func runGame(cmd *cobra.Command, args []string) error {
	// .env is optional; values may come from the environment directly
	envErr := godotenv.Load()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	if envErr != nil {
		logger.Debug(".env file not loaded", "error", envErr)
	}

	ctx := context.Background()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			Endpoint: cfg.Telemetry.Endpoint,
			APIKey:   cfg.Telemetry.APIKey,
			Dataset:  cfg.Telemetry.Dataset,
		})
		if err != nil {
			// Not fatal - the game runs without observability
			logger.Warn("telemetry setup failed", "error", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Error("telemetry shutdown failed", "error", err)
				}
			}()
		}
	}

	screen, err := ui.NewScreen(cfg.Screen.Width, cfg.Screen.Height, cfg.Screen.Title, cfg.Screen.FPS)
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}

	g, err := game.New(ctx, cfg, screen, logger)
	if err != nil {
		screen.Close()
		return fmt.Errorf("failed to initialize game: %w", err)
	}

	if err := g.Run(ctx); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}

// loadConfig reads the config file and applies command-line flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("layout") {
		cfg.Map.Layout = flagLayout
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flagNoVi {
		cfg.Input.ViKeys = false
	}
	if flagTelemetry {
		cfg.Telemetry.Enabled = true
	}

	return cfg, cfg.Validate()
}
