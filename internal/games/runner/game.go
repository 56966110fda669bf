// Package runner implements Gossip Runner, a side-scrolling endless runner.
// The runner jumps over ground enemies and bullets, collects health and
// power-ups, and in the default ruleset survives periodic boss encounters
// that spray gossip projectiles.
//
// All gameplay happens in a fixed logical playfield (see config.WorldConfig)
// and on a simulation clock that advances by one tick per Step, so a seed
// plus an input sequence always replays the same run.
package runner

import (
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// Game IDs of the two rulesets.
const (
	GameID        = "runner"
	ClassicGameID = "runner_classic"
)

// Ruleset selects which set of rules a Game plays by.
type Ruleset int

const (
	// RulesBoss adds horizontal movement, the enemy manager and the boss.
	RulesBoss Ruleset = iota
	// RulesClassic keeps every enemy slot cycling and adds fall gravity.
	RulesClassic
)

// Phase is the lifecycle state of a run.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseGameOver
)

// Game implements the runner simulation. It is the only writer of its
// state; Step, Reset and UsePower must be called from one goroutine.
type Game struct {
	rules      Ruleset
	runtime    core.RuntimeConfig
	cfg        config.RunnerConfig
	override   *config.RunnerConfig // Used instead of loading from disk when set
	lastGood   *config.RunnerConfig // Last config that loaded cleanly
	logger     *log.Logger
	preset     config.DifficultyPreset
	params     config.PresetConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	highScores core.HighScoreStore

	phase     Phase
	paused    bool
	now       time.Duration // Simulation clock
	tick      time.Duration
	tickCount int
	legFrame  int

	player    Player
	health    int
	score     int
	distance  float64
	highScore float64
	wasHit    bool

	farX, nearX float64 // Parallax offsets

	enemies  [enemySlots]Enemy
	bullets  []Projectile
	gossips  []Projectile
	pickup   HealthPickup
	powerUps []PowerUp
	active   *ActivePower

	lastShot      time.Duration
	lastPowerUp   time.Duration
	powerInterval time.Duration

	bossPhase    BossPhase
	boss         Boss
	warningUntil time.Duration
	nextWave     time.Duration
	nextBoss     float64 // Distance that triggers the next encounter

	events []core.Event
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset = config.DifficultyMedium

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the preset used by games created afterwards.
// Unknown names fall back to medium.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = config.DifficultyMedium
	}
	difficultyPreset = p
}

// New creates a game with the boss ruleset.
func New() *Game {
	return &Game{rules: RulesBoss, preset: difficultyPreset}
}

// NewClassic creates a game with the classic ruleset.
func NewClassic() *Game {
	return &Game{rules: RulesClassic, preset: difficultyPreset}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.rules == RulesClassic {
		return ClassicGameID
	}
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.rules == RulesClassic {
		return "Gossip Runner Classic"
	}
	return "Gossip Runner"
}

// Description returns a one-line summary of the ruleset for menus.
func (g *Game) Description() string {
	if g.rules == RulesClassic {
		return "Two ground enemies, a plane and bullets. One power-up at a time."
	}
	return "Bullets, power-ups and a boss every few hundred metres."
}

// Rules returns the ruleset of the game.
func (g *Game) Rules() Ruleset {
	return g.rules
}

// Preset returns the difficulty the next (or current) run uses.
func (g *Game) Preset() config.DifficultyPreset {
	return g.preset
}

// Difficulty returns the preset name, as stored with finished runs.
func (g *Game) Difficulty() string {
	return string(g.preset)
}

// SetDifficulty selects the preset for the next Reset.
func (g *Game) SetDifficulty(name string) error {
	p, err := config.ParsePreset(name)
	if err != nil {
		return err
	}
	g.preset = p
	return nil
}

// SetConfig makes Reset use cfg instead of loading the config files.
func (g *Game) SetConfig(cfg config.RunnerConfig) {
	g.override = &cfg
}

// SetLogger sets where config problems are reported.
func (g *Game) SetLogger(logger *log.Logger) {
	g.logger = logger
}

// AttachHighScores sets the store consulted at Reset and updated at game over.
func (g *Game) AttachHighScores(store core.HighScoreStore) {
	g.highScores = store
}

// Reset starts a new run, wiping every entity, timer and boss state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg := g.loadConfig()
	config.ApplyRunnerPreset(&cfg, g.preset)

	g.cfg = cfg
	g.params = cfg.Presets.Get(g.preset)
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.tick = runtime.TickInterval()

	g.phase = PhaseRunning
	g.paused = false
	g.now = 0
	g.tickCount = 0
	g.legFrame = 0
	g.events = nil

	r := cfg.Runner
	g.player = Player{X: r.X, Y: cfg.World.GroundY, W: r.Width, H: r.Height}
	g.health = r.MaxHealth
	g.score = 0
	g.distance = 0
	g.wasHit = false
	g.farX, g.nearX = 0, 0

	g.resetEnemies()
	g.bullets = g.bullets[:0]
	g.gossips = g.gossips[:0]
	g.powerUps = g.powerUps[:0]
	g.active = nil
	g.resetHealthPickup()

	g.lastShot = 0
	g.lastPowerUp = 0
	g.powerInterval = g.rollPowerInterval()

	g.resetBoss()

	if g.highScores == nil {
		g.highScores = core.NewMemoryHighScores(0)
	}
	g.highScore = g.loadHighScore()
}

// loadConfig reads the config files. A file that stops loading, say after
// a bad edit under --watch, keeps the last good config in play.
func (g *Game) loadConfig() config.RunnerConfig {
	if g.override != nil {
		return *g.override
	}
	loaded, err := config.LoadRunner(configPath)
	if err == nil {
		g.lastGood = &loaded
		return loaded
	}
	if g.logger == nil {
		g.logger = log.Default()
	}
	if g.lastGood != nil {
		g.logger.Warn("config rejected, keeping the previous one", "path", configPath, "err", err)
		return *g.lastGood
	}
	g.logger.Warn("config rejected, using defaults", "path", configPath, "err", err)
	return config.DefaultRunnerConfig()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if g.phase != PhaseRunning {
		return g.result()
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.now += g.tick
	g.tickCount++
	g.legFrame = (g.legFrame + 1) % 10
	g.score++
	g.distance += g.cfg.World.MetresPerTick

	g.applyInput(in)
	g.stepPhysics()
	g.runSpawner()
	g.resolveCollisions()
	g.updateActivePower()
	g.checkGameOver()

	return g.result()
}

// UsePower installs the oldest power-up on the field as the active power.
// It does nothing while a power is active or when the field is empty.
func (g *Game) UsePower() bool {
	if g.phase != PhaseRunning || g.active != nil || len(g.powerUps) == 0 {
		return false
	}
	p := g.powerUps[0]
	g.powerUps = g.powerUps[1:]
	g.installPower(p.Type)
	return true
}

func (g *Game) progress() config.Progress {
	return config.Progress{Score: g.score, Ticks: g.tickCount, Distance: g.distance}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		Distance:  g.distance,
		Health:    g.health,
		HighScore: g.highScore,
		Started:   g.phase != PhaseNotStarted,
		GameOver:  g.phase == PhaseGameOver,
		Paused:    g.paused,
	}
}

// Phase returns the lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// BossPhase returns the state of the boss encounter.
func (g *Game) BossPhase() BossPhase {
	return g.bossPhase
}

// Now returns the simulation clock.
func (g *Game) Now() time.Duration {
	return g.now
}

// Snapshot is a comparable summary of the simulation, used for replay checks.
type Snapshot struct {
	Tick      int
	Now       time.Duration
	Score     int
	Distance  float64
	Health    int
	PlayerX   float64
	PlayerY   float64
	Jumps     int
	Bullets   int
	Gossips   int
	PowerUps  int
	Power     string
	BossPhase BossPhase
	NextBoss  float64
}

// Snapshot returns the current simulation summary.
func (g *Game) Snapshot() Snapshot {
	power := ""
	if g.active != nil {
		power = g.active.Type.String()
	}
	return Snapshot{
		Tick:      g.tickCount,
		Now:       g.now,
		Score:     g.score,
		Distance:  g.distance,
		Health:    g.health,
		PlayerX:   g.player.X,
		PlayerY:   g.player.Y,
		Jumps:     g.player.Jumps,
		Bullets:   len(g.bullets),
		Gossips:   len(g.gossips),
		PowerUps:  len(g.powerUps),
		Power:     power,
		BossPhase: g.bossPhase,
		NextBoss:  g.nextBoss,
	}
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) emit(kind core.EventKind, detail string) {
	g.events = append(g.events, core.Event{Kind: kind, Detail: detail})
}

// checkGameOver ends the run once health is gone.
func (g *Game) checkGameOver() {
	g.health = core.Clamp(g.health, 0, g.cfg.Runner.MaxHealth)
	if g.health > 0 {
		return
	}
	g.endRun()
}

// endRun freezes the run and records a strictly better distance. The
// store is read again first, since other sessions may share it.
func (g *Game) endRun() {
	g.phase = PhaseGameOver
	g.bossPhase = BossIdle
	g.gossips = g.gossips[:0]
	g.emit(core.EventGameOver, "")

	g.highScore = max(g.highScore, g.loadHighScore())
	best := roundTenth(g.distance)
	if best > g.highScore {
		g.highScore = best
		g.highScores.SaveHighScore(best) //nolint:errcheck // store logs its own failures
		g.emit(core.EventNewHighScore, "")
	}
}

func (g *Game) loadHighScore() float64 {
	v, err := g.highScores.LoadHighScore()
	if err != nil || math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// roundTenth rounds to the one decimal the high score is displayed with.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

var (
	_ registry.HighScoreAware  = (*Game)(nil)
	_ registry.DifficultyAware = (*Game)(nil)
	_ registry.Describer       = (*Game)(nil)
	_ registry.LoggerAware     = (*Game)(nil)
)

// Register both rulesets with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(ClassicGameID, func() registry.Game {
		return NewClassic()
	})
}
