// Package config provides YAML-based game configuration loading and
// difficulty management for the runner.
//
// Every length is expressed in logical world units (the playfield is
// world.width × world.height with the ground line at world.ground_y) and
// every duration in milliseconds of simulation time. Per-frame quantities
// (speeds, gravity, float steps) are applied once per simulation tick.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is returned by Validate for unusable configurations.
var ErrInvalidConfig = errors.New("invalid config")

// ErrUnknownPreset is returned by ParsePreset for unrecognised names.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// RunnerConfig contains all configuration for the runner game.
type RunnerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Runner     RunnerPlayer     `yaml:"runner"`
	Background BackgroundConfig `yaml:"background"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Bullets    BulletConfig     `yaml:"bullets"`
	Health     HealthConfig     `yaml:"health"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Boss       BossConfig       `yaml:"boss"`
	Gossip     GossipConfig     `yaml:"gossip"`
	Presets    PresetTable      `yaml:"presets"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the logical playfield.
type WorldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	GroundY       float64 `yaml:"ground_y"`
	MetresPerTick float64 `yaml:"metres_per_tick"`
}

// RunnerPlayer defines the player character.
type RunnerPlayer struct {
	X           float64 `yaml:"x"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Gravity     float64 `yaml:"gravity"`
	FallGravity float64 `yaml:"fall_gravity"` // Extra gravity while descending (classic rules)
	JumpForce   float64 `yaml:"jump_force"`
	MaxJumps    int     `yaml:"max_jumps"`
	MoveAccel   float64 `yaml:"move_accel"`
	Friction    float64 `yaml:"friction"`
	MinX        float64 `yaml:"min_x"`
	MaxX        float64 `yaml:"max_x"`
	MaxHealth   int     `yaml:"max_health"`
	PickupReach float64 `yaml:"pickup_reach"` // Horizontal widening of the pickup box
}

// BackgroundConfig defines the two parallax layers.
type BackgroundConfig struct {
	FarSpeed  float64 `yaml:"far_speed"`
	NearSpeed float64 `yaml:"near_speed"`
}

// EnemySlot defines one recyclable hazard.
type EnemySlot struct {
	StartX        float64 `yaml:"start_x"`        // Initial left edge
	Y             float64 `yaml:"y"`              // Baseline for ground units, top edge for planes
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	ExitX         float64 `yaml:"exit_x"`         // Recycled once x drops below this
	RespawnOffset float64 `yaml:"respawn_offset"` // Respawn at world.width + offset
	Damage        int     `yaml:"damage"`         // Health lost per frame of contact
}

// PlaneConfig defines the aerial enemy.
type PlaneConfig struct {
	EnemySlot    `yaml:",inline"`
	RespawnMinY  float64 `yaml:"respawn_min_y"`
	RespawnRange float64 `yaml:"respawn_range"`
	HitInset     float64 `yaml:"hit_inset"`    // Fraction of height added to y for the hit baseline
	HitFraction  float64 `yaml:"hit_fraction"` // Fraction of height used as hit height
}

// EnemiesConfig groups the normal hazards.
type EnemiesConfig struct {
	Ground  EnemySlot   `yaml:"ground"`
	Ground2 EnemySlot   `yaml:"ground2"`
	Plane   PlaneConfig `yaml:"plane"`
}

// BulletConfig defines enemy bullets.
type BulletConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`
	FireChance      float64 `yaml:"fire_chance"`
	MuzzleHeight    float64 `yaml:"muzzle_height"`
	ExitX           float64 `yaml:"exit_x"`
	Damage          int     `yaml:"damage"`
	ClassicInterval int     `yaml:"classic_interval_ms"`
}

// HealthConfig defines the single recycled health pickup.
type HealthConfig struct {
	StartOffset   float64 `yaml:"start_offset"`
	StartY        float64 `yaml:"start_y"`
	Size          float64 `yaml:"size"`
	Speed         float64 `yaml:"speed"`
	FloatStep     float64 `yaml:"float_step"`
	FloatRange    float64 `yaml:"float_range"`
	RespawnOffset float64 `yaml:"respawn_offset"`
	RespawnMinY   float64 `yaml:"respawn_min_y"`
	RespawnRange  float64 `yaml:"respawn_range"`
	ExitX         float64 `yaml:"exit_x"`
	Timeout       int     `yaml:"timeout_ms"`
	Heal          int     `yaml:"heal"`
	MagnetPull    float64 `yaml:"magnet_pull"`
}

// PowerUpConfig defines shield and magnet pickups.
type PowerUpConfig struct {
	Size          float64 `yaml:"size"`
	Speed         float64 `yaml:"speed"`
	FloatStep     float64 `yaml:"float_step"`
	FloatRange    float64 `yaml:"float_range"`
	SpawnOffset   float64 `yaml:"spawn_offset"`
	SpawnMinY     float64 `yaml:"spawn_min_y"`
	SpawnRange    float64 `yaml:"spawn_range"`
	ExitX         float64 `yaml:"exit_x"`
	MinInterval   int     `yaml:"min_interval_ms"`
	MaxInterval   int     `yaml:"max_interval_ms"`
	HealthTrigger int     `yaml:"health_trigger"`
	TriggerChance float64 `yaml:"trigger_chance"`
	ClassicCap    int     `yaml:"classic_cap"`
	Cap           int     `yaml:"cap"`
	ShieldTime    int     `yaml:"shield_ms"`
	MagnetTime    int     `yaml:"magnet_ms"`
}

// BossConfig defines the periodic boss encounter.
type BossConfig struct {
	FirstMin    float64 `yaml:"first_min"` // Distance (m) of the first encounter, lower bound
	FirstMax    float64 `yaml:"first_max"`
	GapMin      float64 `yaml:"gap_min"` // Distance between encounters
	GapMax      float64 `yaml:"gap_max"`
	WarningTime int     `yaml:"warning_ms"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	EntrySpeed  float64 `yaml:"entry_speed"`
	SpawnOffset float64 `yaml:"spawn_offset"` // Enters from world.width + offset
	RestOffset  float64 `yaml:"rest_offset"`  // Stops at world.width - offset
	HealReward  int     `yaml:"heal_reward"`
	ScoreReward int     `yaml:"score_reward"`
}

// GossipConfig defines the boss projectiles.
type GossipConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpeedX      float64 `yaml:"speed_x"`
	MaxSpeedY   float64 `yaml:"max_speed_y"`
	Gravity     float64 `yaml:"gravity"`
	Damage      int     `yaml:"damage"`
	WaveMin     int     `yaml:"wave_min"`
	WaveMax     int     `yaml:"wave_max"`
	IntervalMin int     `yaml:"interval_min_ms"`
	IntervalMax int     `yaml:"interval_max_ms"`
}

// PresetConfig holds the values that differ per difficulty.
type PresetConfig struct {
	GroundSpeed    float64 `yaml:"ground_speed"`
	Ground2Speed   float64 `yaml:"ground2_speed"`
	PlaneSpeed     float64 `yaml:"plane_speed"`
	BulletInterval int     `yaml:"bullet_interval_ms"`
	BossDuration   int     `yaml:"boss_duration_ms"`
	EnemyCap       int     `yaml:"enemy_cap"`
	GroundChance   float64 `yaml:"ground_chance"` // Per-frame activation probability
	PlaneChance    float64 `yaml:"plane_chance"`
}

// PresetTable holds one PresetConfig per difficulty.
type PresetTable struct {
	Easy   PresetConfig `yaml:"easy"`
	Medium PresetConfig `yaml:"medium"`
	Hard   PresetConfig `yaml:"hard"`
}

// Get returns the table entry for a preset. Unknown presets map to medium.
func (t PresetTable) Get(p DifficultyPreset) PresetConfig {
	switch p {
	case DifficultyEasy:
		return t.Easy
	case DifficultyHard:
		return t.Hard
	default:
		return t.Medium
	}
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", "distance" or "none"
	MaxAt int    `yaml:"max_at"` // Score, ticks or metres at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`    // Multiplier added to hazard speed at max difficulty
	IntervalReduction int     `yaml:"interval_reduction"` // Bullet interval reduction (ms) at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the difficulties in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParsePreset converts a user-supplied name into a preset.
// An empty name selects medium; "normal" is accepted as an alias.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy":
		return DifficultyEasy, nil
	case "", "medium", "normal":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return DifficultyMedium, fmt.Errorf("config: %w: %q", ErrUnknownPreset, name)
	}
}

// InitialLevelForPreset returns the initial progression level for a preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyMedium:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyRunnerPreset aligns the progression start with the chosen preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}

// Validate checks the values the simulation divides by or draws ranges from.
func (c RunnerConfig) Validate() error {
	var problems []string

	if c.World.Width <= 0 || c.World.Height <= 0 {
		problems = append(problems, "world dimensions must be positive")
	}
	if c.World.MetresPerTick <= 0 {
		problems = append(problems, "world.metres_per_tick must be positive")
	}
	if c.World.GroundY <= 0 || c.World.GroundY > c.World.Height {
		problems = append(problems, "world.ground_y must lie inside the playfield")
	}
	if c.Runner.MaxJumps < 1 {
		problems = append(problems, "runner.max_jumps must be at least 1")
	}
	if c.Runner.MaxHealth <= 0 {
		problems = append(problems, "runner.max_health must be positive")
	}
	if c.Runner.Friction < 0 || c.Runner.Friction >= 1 {
		problems = append(problems, "runner.friction must be in [0, 1)")
	}
	if c.Runner.MinX > c.Runner.MaxX {
		problems = append(problems, "runner.min_x must not exceed runner.max_x")
	}
	if c.PowerUps.MinInterval > c.PowerUps.MaxInterval {
		problems = append(problems, "powerups.min_interval_ms must not exceed max_interval_ms")
	}
	if c.Boss.FirstMin > c.Boss.FirstMax || c.Boss.GapMin > c.Boss.GapMax {
		problems = append(problems, "boss distance ranges are inverted")
	}
	if c.Boss.GapMin <= 0 {
		problems = append(problems, "boss.gap_min must be positive")
	}
	if c.Gossip.WaveMin < 1 || c.Gossip.WaveMin > c.Gossip.WaveMax {
		problems = append(problems, "gossip wave size range is invalid")
	}
	if c.Gossip.IntervalMin <= 0 || c.Gossip.IntervalMin > c.Gossip.IntervalMax {
		problems = append(problems, "gossip interval range is invalid")
	}
	switch c.Difficulty.Progression.Type {
	case ProgressScore, ProgressTime, ProgressDistance, ProgressNone:
	default:
		problems = append(problems, fmt.Sprintf("unknown difficulty.progression.type %q", c.Difficulty.Progression.Type))
	}
	for _, p := range Presets {
		pc := c.Presets.Get(p)
		if pc.BulletInterval <= 0 || pc.BossDuration <= 0 {
			problems = append(problems, fmt.Sprintf("presets.%s needs positive intervals", p))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("config: %w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
