package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var flagDumpPreset string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the runner configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump [path]",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration the game would use.

Without a path the usual lookup applies: ~/.runner/configs/runner.yaml,
then ./configs/runner.yaml, then the built-in defaults. The output is a
complete file that can be edited and passed back with --config.

Examples:
  runner config dump > my-runner.yaml
  runner config dump ./my-runner.yaml --difficulty hard`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfigDump,
}

func init() {
	configDumpCmd.Flags().StringVar(&flagDumpPreset, "difficulty", "", "Apply a difficulty preset before printing")
	configCmd.AddCommand(configDumpCmd)
}

func runConfigDump(_ *cobra.Command, args []string) {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	cfg, err := config.LoadRunner(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDumpPreset != "" {
		preset, err := config.ParsePreset(flagDumpPreset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		config.ApplyRunnerPreset(&cfg, preset)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
