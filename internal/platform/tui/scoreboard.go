package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

const maxRuns = 100

// RunOrder selects which runs the scoreboard lists.
type RunOrder int

const (
	OrderLongest RunOrder = iota // Longest distance first
	OrderRecent                  // Newest first
)

func (o RunOrder) String() string {
	if o == OrderRecent {
		return "RECENT RUNS"
	}
	return "LONGEST RUNS"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Order  key.Binding
	Filter key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Order, k.Filter, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Order, k.Filter, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next ruleset"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev ruleset"),
		),
		Order: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "longest/recent"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "level filter"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists recorded runs per ruleset.
type ScoreboardModel struct {
	games     []registry.GameInfo
	game      int
	store     *storage.Store
	order     RunOrder
	filter    int // 0 = every level, otherwise index+1 into config.Presets
	runs      []storage.RunEntry
	shown     []storage.RunEntry
	stats     *storage.GameStats
	best      float64
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.reload()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	dateW := 13
	if m.width > 72 {
		dateW = min(m.width-55, 20)
	}
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Distance", Width: 10},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 7},
		{Title: "Run", Width: 9},
		{Title: "Date", Width: dateW},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-11, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *ScoreboardModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.game].ID
}

// reload fetches runs, stats and the best distance of the current ruleset.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats, m.best = nil, nil, 0
	if m.store != nil && m.gameID() != "" {
		id := m.gameID()
		var runs []storage.RunEntry
		var err error
		if m.order == OrderRecent {
			runs, err = m.store.AllRuns(id)
		} else {
			runs, err = m.store.TopRuns(id, maxRuns)
		}
		if err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
		m.best, _ = m.store.HighScore(id)
	}
	m.applyFilter()
}

// applyFilter narrows the loaded runs to the selected level and refills the table.
func (m *ScoreboardModel) applyFilter() {
	m.shown = m.runs
	if level := m.level(); level != "" {
		m.shown = slices.DeleteFunc(slices.Clone(m.runs), func(r storage.RunEntry) bool {
			return r.Difficulty != level
		})
	}
	if len(m.shown) > maxRuns {
		m.shown = m.shown[:maxRuns]
	}

	rows := make([]table.Row, len(m.shown))
	for i, r := range m.shown {
		runID := r.RunID
		if len(runID) > 8 {
			runID = runID[:8]
		}
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%.1fm", r.Distance),
			strconv.Itoa(r.Score),
			r.Difficulty,
			runID,
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) level() string {
	if m.filter == 0 {
		return ""
	}
	return string(config.Presets[m.filter-1])
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			if len(m.games) > 0 {
				m.game = (m.game + 1) % len(m.games)
				m.reload()
			}
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			if len(m.games) > 0 {
				m.game = (m.game + len(m.games) - 1) % len(m.games)
				m.reload()
			}
			return m, nil
		case key.Matches(msg, m.keys.Order):
			m.order = 1 - m.order
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Filter):
			m.filter = (m.filter + 1) % (len(config.Presets) + 1)
			m.applyFilter()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.applyFilter()
		return m, nil
	}

	// Scrolling and the rest go to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	title := m.order.String()
	if level := m.level(); level != "" {
		title += " · " + strings.ToUpper(level)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(boxStyle.Render(m.tableView()), m.width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys)))

	return b.String()
}

// tabs renders one tab per ruleset, falling back to "< title >" when they
// do not fit.
func (m ScoreboardModel) tabs() string {
	if len(m.games) == 0 {
		return ""
	}
	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.game {
			tabs[i] = activeStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(g.Title)
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		return activeStyle.Render("< " + m.games[m.game].Title + " >")
	}
	return line
}

// statsLine summarises every run of the selected ruleset.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.RunsCount == 0 {
		if m.best > 0 {
			return fmt.Sprintf("best %.1fm", m.best)
		}
		return ""
	}
	return fmt.Sprintf("%d runs  |  best %.1fm  |  avg %.1fm  |  total %.1fm",
		m.stats.RunsCount, max(m.best, m.stats.BestDistance), m.stats.AvgDistance, m.stats.TotalDistance)
}

func (m ScoreboardModel) tableView() string {
	if len(m.shown) == 0 {
		msg := "No runs recorded yet.\nGo for a run and see how far you get!"
		if m.level() != "" && len(m.runs) > 0 {
			msg = "No runs at this level.\nPress f to change the filter."
		}
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render(msg)
	}
	return m.table.View()
}

// Shown returns the runs currently listed.
func (m ScoreboardModel) Shown() []storage.RunEntry {
	return m.shown
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
