package config

// Progression types accepted in difficulty.progression.type.
const (
	ProgressScore    = "score"
	ProgressTime     = "time"
	ProgressDistance = "distance"
	ProgressNone     = "none"
)

// Progress is how far a run has come.
type Progress struct {
	Score    int     // Frames survived
	Ticks    int     // Simulation ticks, pauses excluded
	Distance float64 // Metres travelled
}

// DifficultyManager turns run progress into hazard speed and bullet
// cooldown adjustments. With progression disabled every value passes
// through unchanged, leaving the preset tables authoritative.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager. The initial level
// is clamped to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = clampF(cfg.InitialLevel, 0, 1)
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressNone
}

// Level returns the difficulty level in [InitialLevel, 1].
func (d *DifficultyManager) Level(p Progress) float64 {
	start := d.cfg.InitialLevel
	if !d.IsEnabled() {
		return start
	}

	maxAt := max(float64(d.cfg.Progression.MaxAt), 1)
	var reached float64
	switch d.cfg.Progression.Type {
	case ProgressScore:
		reached = float64(p.Score)
	case ProgressTime:
		reached = float64(p.Ticks)
	case ProgressDistance:
		reached = p.Distance
	default:
		return start
	}

	return start + clampF(reached/maxAt, 0, 1)*(1-start)
}

// Speed scales a hazard speed by the current level, up to
// base * (1 + speed_multiplier).
func (d *DifficultyManager) Speed(base float64, p Progress) float64 {
	if !d.IsEnabled() {
		return base
	}
	return base * (1 + d.Level(p)*d.cfg.Scaling.SpeedMultiplier)
}

// Interval shortens a cooldown (ms) by the current level.
// The result never drops below half of the base interval.
func (d *DifficultyManager) Interval(baseMs int, p Progress) int {
	if !d.IsEnabled() {
		return baseMs
	}
	cut := int(d.Level(p) * float64(d.cfg.Scaling.IntervalReduction))
	return max(baseMs-cut, baseMs/2)
}

func clampF(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
