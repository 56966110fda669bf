package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// stubGame ends its run after overAfter ticks.
type stubGame struct {
	resets     int
	steps      int
	overAfter  int
	difficulty string
	store      core.HighScoreStore
	state      core.GameState
	inputs     []core.InputFrame
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub Runner" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.state = core.GameState{Started: true, Health: 100}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in)
	if !g.state.Started || g.state.GameOver {
		return core.StepResult{State: g.state}
	}
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	if g.state.Paused {
		return core.StepResult{State: g.state}
	}
	g.steps++
	g.state.Score = g.steps
	g.state.Distance = float64(g.steps) / 10
	var events []core.Event
	if g.overAfter > 0 && g.steps >= g.overAfter {
		g.state.GameOver = true
		events = append(events, core.Event{Kind: core.EventGameOver})
	}
	return core.StepResult{State: g.state, Events: events}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) AttachHighScores(store core.HighScoreStore) { g.store = store }
func (g *stubGame) Difficulty() string { return g.difficulty }

func (g *stubGame) SetDifficulty(name string) error {
	p, err := config.ParsePreset(name)
	if err != nil {
		return err
	}
	g.difficulty = string(p)
	return nil
}

var testConfig = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for i := 0; i < n; i++ {
		m = update(t, m, TickMsg{})
	}
	return m
}

func TestModelPickerStartsRun(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, Options{Logger: quietLogger()}, testConfig)
	m.Init()

	if m.picker == nil || g.resets != 0 {
		t.Fatalf("expected the difficulty picker before the first run (resets=%d)", g.resets)
	}
	if !strings.Contains(m.View(), "Select a difficulty") {
		t.Error("picker view missing prompt")
	}

	// Ticks wait for the picker
	m = tick(t, m, 5)
	if len(g.inputs) != 0 {
		t.Fatal("game stepped before a difficulty was chosen")
	}

	m = update(t, m, runeKey('3'))
	if m.picker != nil {
		t.Fatal("picker still shown after selection")
	}
	if g.difficulty != "hard" || g.resets != 1 {
		t.Errorf("difficulty %q resets %d, want hard and 1", g.difficulty, g.resets)
	}
	if !strings.Contains(m.View(), "stub") {
		t.Error("game view not rendered after start")
	}
}

func TestModelPickerNavigation(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, Options{Logger: quietLogger()}, testConfig)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if g.difficulty != "easy" {
		t.Errorf("difficulty = %q, want easy", g.difficulty)
	}
}

func TestModelPickerBack(t *testing.T) {
	m := NewModel(&stubGame{}, Options{Logger: quietLogger()}, testConfig)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc on the picker should return to the menu")
	}
}

func TestModelFixedDifficultySkipsPicker(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, Options{Logger: quietLogger(), Difficulty: "normal"}, testConfig)
	m.Init()

	if m.picker != nil {
		t.Fatal("picker shown despite a fixed difficulty")
	}
	if g.difficulty != "medium" || g.resets != 1 {
		t.Errorf("difficulty %q resets %d, want medium and 1", g.difficulty, g.resets)
	}
}

func TestModelForwardsInput(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, Options{Logger: quietLogger(), Difficulty: "easy"}, testConfig)
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, tea.MouseMsg{X: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(t, m, 1)

	in := g.inputs[len(g.inputs)-1]
	if !in.Has(core.ActionJump) || !in.Has(core.ActionUsePower) {
		t.Errorf("step input = %v, want jump and power", in)
	}

	m = tick(t, m, 1)
	if in := g.inputs[len(g.inputs)-1]; !in.Empty() {
		t.Errorf("input not cleared between ticks: %v", in)
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &stubGame{overAfter: 25}
	m := NewModel(g, Options{Store: store, Logger: quietLogger(), Difficulty: "hard"}, testConfig)
	m.Init()

	if g.store == nil {
		t.Fatal("high score store not attached")
	}

	m = tick(t, m, 40)
	if !m.gameState.GameOver {
		t.Fatal("expected game over")
	}

	runs, err := store.AllRuns("stub")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, want 1", len(runs))
	}
	if runs[0].Score != 25 || runs[0].Difficulty != "hard" || runs[0].Distance != 2.5 {
		t.Errorf("saved run = %+v", runs[0])
	}

	// Restart and finish a second run
	m = update(t, m, runeKey('r'))
	m = tick(t, m, 1)
	if g.resets != 2 || m.gameState.GameOver {
		t.Fatalf("restart failed: resets=%d state=%+v", g.resets, m.gameState)
	}
	m = tick(t, m, 30)
	if runs, _ := store.AllRuns("stub"); len(runs) != 2 {
		t.Errorf("saved %d runs after two games, want 2", len(runs))
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, Options{Logger: quietLogger(), Difficulty: "easy"}, testConfig)
	m.Init()

	m = update(t, m, runeKey('r'))
	m = tick(t, m, 1)
	if g.resets != 1 {
		t.Errorf("R restarted a live run (resets=%d)", g.resets)
	}
}

func TestModelBackRequiresPauseOrGameOver(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, Options{Logger: quietLogger(), Difficulty: "easy"}, testConfig)
	m.Init()
	m = tick(t, m, 1)

	m = update(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("B should be ignored while running")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = tick(t, m, 1)
	if !m.gameState.Paused {
		t.Fatal("esc should pause")
	}
	m = update(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("B should return to the menu while paused")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, Options{Logger: quietLogger(), Difficulty: "easy"}, testConfig)
	m.Init()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("ctrl+c should quit")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, Options{Logger: quietLogger(), Difficulty: "easy"}, testConfig)
	m.Init()
	m = tick(t, m, 10)

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if g.resets != 1 || g.steps != 10 {
		t.Errorf("resize disturbed the run: resets=%d steps=%d", g.resets, g.steps)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen is %dx%d, want 120x40", m.screen.Width(), m.screen.Height())
	}
}

func TestMuteWithoutAudio(t *testing.T) {
	m := NewModel(&stubGame{}, Options{Logger: quietLogger(), Difficulty: "easy"}, testConfig)
	m.Init()
	// No player attached: M must not panic or reach the game
	m = update(t, m, runeKey('m'))
	tick(t, m, 1)
}

func TestRenderScreenPlainCells(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "run")
	s.SetColor(0, 1, '#', core.ColorRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "run   " {
		t.Errorf("default-colour row = %q, want plain text", lines[0])
	}
	if !strings.Contains(lines[1], "#") {
		t.Errorf("coloured row lost its glyph: %q", lines[1])
	}
}
