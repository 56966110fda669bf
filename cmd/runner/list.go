package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available rulesets",
	Long:  `Shows every ruleset that can be passed to 'runner play', with its best distance.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No rulesets registered.")
		return
	}

	// Best distances are a bonus; the list works without a database.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		store = nil
	} else {
		defer store.Close()
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "BEST", "ABOUT").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	for _, g := range games {
		best := "-"
		if store != nil {
			if d, err := store.HighScore(g.ID); err == nil && d > 0 {
				best = fmt.Sprintf("%.1fm", d)
			}
		}
		t.Row(g.ID, g.Title, best, g.Description)
	}

	fmt.Println(t.Render())
	fmt.Println("Run 'runner play <id>' to start a run.")
}
