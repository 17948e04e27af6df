// rabbit is a side-scrolling runner: jump the rocks, reach the carrot.
//
// Usage:
//
//	rabbit list               - List available variants
//	rabbit play [variant]     - Play a variant in the terminal (or --window)
//	rabbit menu               - Pick variants interactively
//	rabbit serve              - Start SSH server for remote play
//	rabbit scores [variant]   - Show run history
//	rabbit config             - Print or check the tuning file
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible runs
//	--db <path>        - Set database path (default: ~/.rabbit/runs.db)
//	--config <path>    - Tuning file, reloaded on change
//	--log-level <lvl>  - debug, info, warn or error
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rabbit-run/internal/config"
	"github.com/vovakirdan/rabbit-run/internal/core"
	"github.com/vovakirdan/rabbit-run/internal/games/rabbit"
	"github.com/vovakirdan/rabbit-run/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rabbit",
	Short: "Rabbit Run - jump the obstacles, reach the carrot",
	Long: `Rabbit Run is a side-scrolling runner for the terminal and the desktop.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View run history
  config   - Print or check the tuning file

Examples:
  rabbit play
  rabbit play rabbit-classic --window
  rabbit menu --config ./rabbit.yaml
  rabbit serve --ssh :2222
  rabbit scores rabbit`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if err := checkConfig(flagConfig); err != nil {
			return err
		}
		rabbit.SetConfigPath(flagConfig)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rabbit/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to tuning file (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Terminal frontends own the screen,
// so without --log-file they only log when stderr is allowed.
func newLogger(allowStderr bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(strings.ToLower(flagLogLevel))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		if dir := filepath.Dir(flagLogFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case allowStderr:
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "rabbit",
		Level:           level,
	})
	rabbit.SetLogger(logger)
	return logger, closeFn, nil
}

// checkConfig fails when an explicitly requested tuning file cannot be
// used; a run must not silently fall back to the defaults.
func checkConfig(path string) error {
	if path == "" {
		return nil
	}
	cfg, _, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("--config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("--config %s: %w", path, err)
	}
	return nil
}

// runtimeConfig sizes the run to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the run history; the game still works without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		return nil
	}
	return store
}

// watchConfig follows the tuning file in use, if any. The returned stop
// function is always safe to call.
func watchConfig(logger *log.Logger) (<-chan config.Reload, func()) {
	_, path, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("tuning file unusable, playing with defaults", "path", path, "error", err)
	}
	if path == "" {
		return nil, func() {}
	}

	w, err := config.Watch(path, logger)
	if err != nil {
		logger.Warn("cannot watch tuning file", "path", path, "error", err)
		return nil, func() {}
	}
	logger.Info("watching tuning file", "path", w.Path())
	return w.Reloads, func() { w.Close() }
}
