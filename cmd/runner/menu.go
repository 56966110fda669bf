package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a ruleset interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a ruleset.
Pressing B after game over returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select ruleset
  Tab          - Longest runs
  Q            - Quit

Examples:
  runner menu
  runner menu --fps 30
  runner menu --db ./runner.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	sess := openSession(true)
	defer sess.Close()

	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(sess.store, cfg)
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			back, err := tui.RunScoreboard(sess.store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !back {
				return nil
			}
			continue
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for every game unless pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		opts := tui.Options{
			Store:     sess.store,
			Audio:     sess.audio,
			Logger:    sess.logger,
			FixedSeed: flagSeed != 0,
		}
		back, err := tui.Run(game, opts, cfg)
		if err != nil {
			sess.logger.Error("game crashed", "err", err)
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !back {
			return nil
		}
	}
}
