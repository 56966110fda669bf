package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagScoresLimit int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [ruleset]",
	Short: "Show the longest runs",
	Long: `Display the longest runs for a ruleset (default: runner).

Examples:
  runner scores
  runner scores runner_classic --limit 20
  runner scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history (the high score is kept)")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := runner.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown ruleset %q, run 'runner list' to see available rulesets", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Printf("Run history for %s cleared.\n", title)
		return nil
	}

	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("Longest Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'runner play %s' to set the first record!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %s\n", "Rank", "Distance", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %s\n", "----", "--------", "-----", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-10s  %-8d  %-6s  %s\n",
			i+1,
			fmt.Sprintf("%.1fm", r.Distance),
			r.Score,
			r.Difficulty,
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}

	fmt.Println()
	if best, err := store.HighScore(gameID); err == nil && best > 0 {
		fmt.Printf("Best: %.1fm\n", best)
	}
	if stats, err := store.GetGameStats(gameID); err == nil && stats.RunsCount > 0 {
		fmt.Printf("Runs: %d  Average: %.1fm  Total: %.1fm\n", stats.RunsCount, stats.AvgDistance, stats.TotalDistance)
	}
	return nil
}
