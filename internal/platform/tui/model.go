package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Options carries the collaborators of a game session. Every field is optional.
type Options struct {
	Store      *storage.Store
	Audio      *audio.Player
	Logger     *log.Logger
	Difficulty string // Skips the difficulty picker when set
	FixedSeed  bool   // Keep the configured seed across restarts
	Palette    *Palette
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	palette    *Palette
	picker     *DifficultyModel
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the run has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// Games with difficulty presets start on the picker unless opts names one.
func NewModel(game registry.Game, opts Options, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		logger:     logger.WithPrefix(game.ID()),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		palette:    opts.Palette,
	}
	if m.palette == nil {
		m.palette = defaultPalette
	}

	if la, ok := game.(registry.LoggerAware); ok {
		la.SetLogger(m.logger)
	}
	if hs, ok := game.(registry.HighScoreAware); ok && opts.Store != nil {
		hs.AttachHighScores(opts.Store.HighScores(game.ID(), logger))
	}

	if da, ok := game.(registry.DifficultyAware); ok {
		if opts.Difficulty != "" {
			if err := da.SetDifficulty(opts.Difficulty); err != nil {
				m.logger.Warn("ignoring difficulty", "name", opts.Difficulty, "err", err)
			}
		} else {
			picker := NewDifficultyModel(game.Title(), cfg.ScreenW, cfg.ScreenH)
			m.picker = &picker
		}
	}

	return m
}

// Init initializes the model and starts the game unless a difficulty
// has to be picked first.
func (m Model) Init() tea.Cmd {
	if m.picker == nil {
		m.start()
	}
	return tickCmd(m.config.TickInterval())
}

// start begins a fresh run.
func (m *Model) start() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.runSaved = false
	m.setMusic(true)
	m.logger.Info("run started", "difficulty", m.difficulty(), "seed", m.config.Seed)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.picker != nil {
			return m.handlePickerKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.picker == nil {
			if action := m.keyMapper.MapMouse(msg, m.screen.Width()); action != core.ActionNone {
				m.inputFrame.Set(action)
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handlePickerKey forwards keys to the difficulty picker and starts the
// run once a preset is chosen.
func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	next, _ := m.picker.Update(msg)
	picker, ok := next.(DifficultyModel)
	if !ok {
		return m, nil
	}
	m.picker = &picker

	switch {
	case picker.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case picker.WantsBack():
		m.backToMenu = true
		return m, tea.Quit
	case picker.Selected() != "":
		if da, ok := m.game.(registry.DifficultyAware); ok {
			//nolint:errcheck // Picker only offers known presets
			da.SetDifficulty(string(picker.Selected()))
		}
		m.picker = nil
		m.start()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionQuit:
		if isQuit {
			m.quitting = true
			return m, tea.Quit
		}
	case core.ActionMute:
		m.toggleMute()
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, tea.Quit
		}
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The world is scaled to the screen, so the run continues undisturbed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	if m.picker != nil {
		next, _ := m.picker.Update(msg)
		if picker, ok := next.(DifficultyModel); ok {
			m.picker = &picker
		}
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.picker != nil {
		return m, tickCmd(m.config.TickInterval())
	}

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.opts.FixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.start()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickInterval())
	}

	wasPaused := m.gameState.Paused

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.opts.Audio != nil {
		m.opts.Audio.Play(result.Events)
	}
	if wasPaused != m.gameState.Paused {
		m.setMusic(!m.gameState.Paused)
	}
	for _, e := range result.Events {
		switch e.Kind {
		case core.EventBossWarning, core.EventBossDefeated, core.EventNewHighScore:
			m.logger.Debug("event", "kind", e.Kind, "distance", m.gameState.Distance)
		case core.EventPowerUp:
			m.logger.Debug("power-up", "type", e.Detail)
		}
	}

	// Save run on game over (once)
	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickInterval())
}

// saveRun records the finished run. Failures are logged and otherwise ignored.
func (m *Model) saveRun() {
	s := m.gameState
	m.logger.Info("run over", "distance", fmt.Sprintf("%.1f", s.Distance), "score", s.Score, "high", s.HighScore)
	if m.opts.Store == nil || s.Score == 0 {
		return
	}
	runID, err := m.opts.Store.SaveRun(m.game.ID(), m.difficulty(), s.Score, s.Distance)
	if err != nil {
		m.logger.Error("cannot save run", "err", err)
		return
	}
	m.logger.Debug("run saved", "run", runID)
}

func (m *Model) difficulty() string {
	if da, ok := m.game.(registry.DifficultyAware); ok {
		return da.Difficulty()
	}
	return ""
}

// toggleMute flips the audio mute flag and persists it.
func (m *Model) toggleMute() {
	if m.opts.Audio == nil {
		return
	}
	muted := m.opts.Audio.ToggleMute()
	if m.opts.Store != nil {
		if err := m.opts.Store.SetMuted(muted); err != nil {
			m.logger.Warn("cannot persist mute flag", "err", err)
		}
	}
}

func (m *Model) setMusic(on bool) {
	if m.opts.Audio != nil {
		m.opts.Audio.SetMusic(on)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".runner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.picker != nil {
		return m.picker.View()
	}

	m.game.Render(m.screen)
	return m.palette.Render(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
// Returns true when the player asked to go back to the menu.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(game, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks jump or fire a power-up
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.setMusic(false)
		backToMenu = m.BackToMenu()
	}
	return backToMenu, err
}
