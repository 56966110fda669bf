package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// DifficultyModel lets the player pick a preset before the first run.
type DifficultyModel struct {
	title     string
	presets   []config.DifficultyPreset
	table     config.PresetTable
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  config.DifficultyPreset
	back      bool
	quitting  bool
}

// NewDifficultyModel creates a picker for the given game title.
// The cursor starts on medium.
func NewDifficultyModel(title string, width, height int) DifficultyModel {
	cursor := 0
	for i, p := range config.Presets {
		if p == config.DifficultyMedium {
			cursor = i
		}
	}
	return DifficultyModel{
		title:     title,
		presets:   config.Presets,
		table:     config.DefaultRunnerConfig().Presets,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selected = m.presets[m.cursor]
	case MenuActionBack:
		m.back = true
	}

	if n := digit(msg); n > 0 && n <= len(m.presets) {
		m.cursor = n - 1
		m.selected = m.presets[m.cursor]
	}

	return m, nil
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(strings.ToUpper(m.title)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a difficulty to start", m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		cursor := "  "
		line := fmt.Sprintf("%d. %s", i+1, m.describe(p))
		if i == m.cursor {
			cursor = "> "
			line = activeStyle.Render(line)
		}
		b.WriteString(centerText(cursor+line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(hintStyle.Render("Enter: Start  |  1-3: Quick pick  |  Esc: Back  |  Q: Quit"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(help.New().ShortHelpView(GameHelp()), m.width))

	return b.String()
}

func (m DifficultyModel) describe(p config.DifficultyPreset) string {
	row := m.table.Get(p)
	return fmt.Sprintf("%-6s  bullets every %.1fs, boss %ds",
		strings.ToUpper(string(p)),
		float64(row.BulletInterval)/1000,
		row.BossDuration/1000,
	)
}

// Selected returns the chosen preset, or "" while still choosing.
func (m DifficultyModel) Selected() config.DifficultyPreset {
	return m.selected
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}
