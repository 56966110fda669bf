package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

type actionBinding struct {
	action  core.Action
	binding key.Binding
}

// gameBindings is checked in order; the first match wins.
var gameBindings = []actionBinding{
	{core.ActionQuit, key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit"))},
	{core.ActionJump, key.NewBinding(key.WithKeys(" ", "up", "w"), key.WithHelp("space", "jump"))},
	{core.ActionUsePower, key.NewBinding(key.WithKeys("p", "e"), key.WithHelp("p", "power-up"))},
	{core.ActionLeft, key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←", "left"))},
	{core.ActionRight, key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→", "right"))},
	{core.ActionPause, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "pause"))},
	{core.ActionConfirm, key.NewBinding(key.WithKeys("enter"))},
	{core.ActionBack, key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "menu"))},
	{core.ActionRestart, key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart"))},
	{core.ActionMute, key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute"))},
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

var menuBindings = []struct {
	action  MenuAction
	binding key.Binding
}{
	{MenuActionQuit, key.NewBinding(key.WithKeys("ctrl+c", "q"))},
	{MenuActionUp, key.NewBinding(key.WithKeys("up", "w", "k"))},
	{MenuActionDown, key.NewBinding(key.WithKeys("down", "s", "j"))},
	{MenuActionSelect, key.NewBinding(key.WithKeys("enter", " "))},
	{MenuActionBack, key.NewBinding(key.WithKeys("esc", "b"))},
	{MenuActionScoreboard, key.NewBinding(key.WithKeys("tab"))},
}

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key press to an in-game action.
// isQuit reports whether the key asks to leave the program.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range gameBindings {
		if key.Matches(msg, b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapMouse translates a left click into an action: the right half of the
// screen jumps, the left half fires a power-up.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, width int) core.Action {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return core.ActionNone
	}
	if msg.X >= width/2 {
		return core.ActionJump
	}
	return core.ActionUsePower
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	for _, b := range menuBindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return MenuActionNone
}

// GameHelp lists the in-game bindings that carry a help entry.
func GameHelp() []key.Binding {
	out := make([]key.Binding, 0, len(gameBindings))
	for _, b := range gameBindings {
		if b.binding.Help().Key != "" {
			out = append(out, b.binding)
		}
	}
	return out
}
