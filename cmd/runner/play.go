package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play [ruleset]",
	Short: "Start a run",
	Long: `Start a run with the given ruleset (default: runner).

Rulesets:
  runner          - Boss fights, bullets and power-ups
  runner_classic  - Two ground enemies, a plane and bullets; one power-up at a time

Controls:
  Space/Up/W  - Jump (double jump in the air)
  P/E         - Use the stored power-up
  Esc         - Pause
  M           - Mute
  R           - Restart (after game over)
  B           - Back (while paused or after game over)
  Q/Ctrl+C    - Quit
  Mouse       - Click right half to jump, left half for power-up

Difficulty options:
  easy, medium (alias: normal), hard
  Without --difficulty a picker is shown before the first run.

Examples:
  runner play
  runner play runner_classic
  runner play --difficulty hard
  runner play --config ./my-runner.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Watch the config file and apply edits on restart")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := runner.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown ruleset %q, run 'runner list' to see available rulesets", gameID)
	}
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}
	if flagConfig != "" {
		if _, err := config.LoadRunner(flagConfig); err != nil {
			return err
		}
	}

	// Must be set before the game is created
	runner.SetConfigPath(flagConfig)
	runner.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	sess := openSession(true)
	defer sess.Close()

	if flagWatch {
		stop := watchConfig(sess, flagConfig)
		defer stop()
	}

	opts := tui.Options{
		Store:      sess.store,
		Audio:      sess.audio,
		Logger:     sess.logger,
		Difficulty: flagDifficulty,
		FixedSeed:  flagSeed != 0,
	}
	if _, err := tui.Run(game, opts, runtimeConfig()); err != nil {
		sess.logger.Error("game crashed", "err", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// watchConfig logs edits to the config file. The game reloads its config
// on every restart. Returns a func that stops the watcher.
func watchConfig(sess *session, path string) func() {
	if path == "" {
		sess.logger.Warn("--watch needs --config, not watching")
		return func() {}
	}
	w, err := config.Watch(path, sess.logger, nil)
	if err != nil {
		sess.logger.Warn("cannot watch config", "path", path, "err", err)
		return func() {}
	}
	sess.logger.Info("watching config", "path", path)
	return func() {
		//nolint:errcheck // Shutting down
		w.Close()
	}
}
