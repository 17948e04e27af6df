package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rabbit-run/internal/core"
	"github.com/vovakirdan/rabbit-run/internal/platform/tui"
	"github.com/vovakirdan/rabbit-run/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from an interactive menu",
	Long: `Start Rabbit Run in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play, Tab for the run history.
After a run ends you return to the menu.

Examples:
  rabbit menu
  rabbit menu --fps 30
  rabbit menu --db ./runs.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(false)
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
	audio := core.LoggingAudio{Next: tui.NewBellAudio(os.Stdout), Logger: logger}

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit || (!result.WantsScoreboard && result.GameID == "") {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, cfg.TickRate)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed per run unless one was pinned.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		err = tui.Run(game, cfg, tui.GameOptions{
			Store:   store,
			Audio:   audio,
			Logger:  logger,
			Reloads: reloads,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
