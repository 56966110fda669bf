package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestResolveHostKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "nested", "host_key")

	got, err := resolveHostKey(path)
	if err != nil {
		t.Fatalf("resolveHostKey: %v", err)
	}
	if got != path {
		t.Errorf("resolveHostKey() = %q, want %q", got, path)
	}
	info, err := os.Stat(filepath.Dir(path))
	if err != nil || !info.IsDir() {
		t.Errorf("key directory not created: %v", err)
	}
}

func sessionKey(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := NewSessionModel(scoreboardStore(t), testConfig, nil, quietLogger())

	m = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}
	m = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil || m.game != nil {
		t.Fatal("esc should return to the menu")
	}
	if m.menu.WantsScoreboard() {
		t.Error("menu should be fresh after returning")
	}
}

func TestSessionStartsGame(t *testing.T) {
	m := NewSessionModel(nil, testConfig, nil, quietLogger())

	m = sessionKey(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.game == nil {
		t.Fatal("enter should start the selected ruleset")
	}
	if m.config.ScreenW != 100 || m.config.ScreenH != 30 {
		t.Errorf("game config = %dx%d, want the resized terminal", m.config.ScreenW, m.config.ScreenH)
	}
	if m.View() == "" {
		t.Error("running game should render")
	}

	m = sessionKey(t, m, runeKey('q'))
	if !m.quitting || m.View() != "" {
		t.Error("q should end the session")
	}
}
