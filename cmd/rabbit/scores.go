package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rabbit-run/internal/registry"
	"github.com/vovakirdan/rabbit-run/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show run history",
	Long: `Display the best runs of a variant, or a summary of every variant
when none is given.

Examples:
  rabbit scores
  rabbit scores rabbit --limit 20
  rabbit scores rabbit-classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the history of the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		return printSummary(store)
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'rabbit list' to see available variants", gameID)
	}

	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Printf("Cleared run history of %s.\n", gameID)
		return nil
	}

	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("Best runs - %s\n\n", gameID)
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'rabbit play %s' to record the first one!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-6s  %-7s  %s\n", "Rank", "Cleared", "Result", "Frames", "Date")
	fmt.Printf("  %-4s  %-7s  %-6s  %-7s  %s\n", "----", "-------", "------", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-7d  %-6s  %-7d  %s\n",
			i+1, r.Cleared, r.Outcome, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if st, err := store.Stats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Won: %d  Lost: %d  Average cleared: %.1f\n",
			st.Runs, st.Wins, st.Losses, st.AvgCleared)
	}
	return nil
}

func printSummary(store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-5s  %-4s  %-4s  %s\n", "Variant", "Runs", "Won", "Best", "Last played")
	fmt.Printf("  %-16s  %-5s  %-4s  %-4s  %s\n", "-------", "----", "---", "----", "-----------")
	for _, id := range registry.IDs() {
		st, ok := all[id]
		if !ok {
			continue
		}
		fmt.Printf("  %-16s  %-5d  %-4d  %-4d  %s\n",
			id, st.Runs, st.Wins, st.BestCleared, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
