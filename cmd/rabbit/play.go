package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rabbit-run/internal/core"
	"github.com/vovakirdan/rabbit-run/internal/platform/desktop"
	"github.com/vovakirdan/rabbit-run/internal/platform/tui"
	"github.com/vovakirdan/rabbit-run/internal/registry"
)

var flagWindow bool

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default "rabbit").

Controls:
  Space/Up/W  - Jump
  P           - Pause
  R           - Restart (after the run ended, where allowed)
  M           - Mute (window only)
  Q/Ctrl+C    - Quit

Examples:
  rabbit play
  rabbit play rabbit-physics
  rabbit play --window
  rabbit play --config ./rabbit.toml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Open a desktop window instead of using the terminal")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "rabbit"
	if len(args) == 1 {
		gameID = args[0]
	}
	game, err := registry.Create(gameID)
	if errors.Is(err, registry.ErrUnknown) {
		return fmt.Errorf("unknown variant %q, run 'rabbit list' to see available variants", gameID)
	}
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger, closeLog, err := newLogger(flagWindow)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	reloads, stopWatch := watchConfig(logger)
	defer stopWatch()

	cfg := runtimeConfig()
	if flagWindow {
		return playWindow(game, cfg, desktop.Options{Store: store, Logger: logger, Reloads: reloads})
	}
	return tui.Run(game, cfg, tui.GameOptions{
		Store:   store,
		Audio:   core.LoggingAudio{Next: tui.NewBellAudio(os.Stdout), Logger: logger},
		Logger:  logger,
		Reloads: reloads,
	})
}

func playWindow(game registry.Game, cfg core.RuntimeConfig, opts desktop.Options) error {
	settings, err := desktop.OpenSettings("rabbit-run")
	if err != nil {
		opts.Logger.Warn("settings will not persist", "error", err)
	}
	opts.Settings = settings
	return desktop.Run(game, cfg, opts)
}
