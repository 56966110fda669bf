// runner is an endless runner for the terminal: jump the gossip, dodge the
// bullets and outlast the boss.
//
// Usage:
//
//	runner list              - List available rulesets
//	runner play [ruleset]    - Play a run (default: runner)
//	runner menu              - Pick a ruleset interactively
//	runner serve             - Start SSH server for remote play
//	runner scores [ruleset]  - Show the longest runs
//	runner config dump       - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.runner/runner.db)
//	--log <path>    - Set log file path (default: ~/.runner/runner.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Registers both rulesets
	_ "github.com/vovakirdan/tui-runner/internal/games/runner"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Gossip Runner - an endless runner in your terminal",
	Long: `Gossip Runner is a terminal endless runner. Jump over the gossip,
collect power-ups and survive the boss that shows up every few hundred
metres.

Available commands:
  list     - Show the available rulesets
  play     - Start a run
  menu     - Interactive ruleset picker
  serve    - Start SSH server for remote play
  scores   - View the longest runs
  config   - Inspect the configuration

Examples:
  runner play
  runner play runner_classic --difficulty hard
  runner menu
  runner serve --ssh :2222
  runner scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/runner.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.runner/runner.log", "Path to log file (empty = stderr)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
