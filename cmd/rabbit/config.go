package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rabbit-run/internal/config"
)

var flagConfigCheck bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check the tuning file",
	Long: `Without flags, prints the built-in tuning as YAML; save it as
~/.rabbit/configs/rabbit.yaml or pass it with --config to change physics,
spawning and the goal.

With --check, loads the tuning that would be used and validates it.

Examples:
  rabbit config > ~/.rabbit/configs/rabbit.yaml
  rabbit config --check --config ./rabbit.toml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigCheck, "check", false, "Validate the tuning in use")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagConfigCheck {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, path, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if path == "" {
		path = "built-in defaults"
	}
	fmt.Printf("OK: %s\n", path)
	return nil
}
