package config

import (
	"strings"
	"testing"
)

func progressive(kind string) DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: kind, MaxAt: 1000},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, IntervalReduction: 1000},
	}
}

func TestDifficultyDisabledIsIdentity(t *testing.T) {
	d := NewDifficultyManager(DefaultRunnerConfig().Difficulty)
	far := Progress{Score: 5000, Ticks: 5000, Distance: 5000}

	if d.IsEnabled() {
		t.Fatal("default progression should be disabled")
	}
	if got := d.Speed(6, far); got != 6 {
		t.Errorf("Speed() = %f, expected unchanged 6", got)
	}
	if got := d.Interval(2800, far); got != 2800 {
		t.Errorf("Interval() = %d, expected unchanged 2800", got)
	}
}

func TestDifficultyLevel(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		initial  float64
		progress Progress
		expected float64
	}{
		{"score start", ProgressScore, 0, Progress{}, 0},
		{"score half", ProgressScore, 0, Progress{Score: 500}, 0.5},
		{"score capped", ProgressScore, 0, Progress{Score: 5000}, 1},
		{"time quarter", ProgressTime, 0, Progress{Ticks: 250, Score: 900}, 0.25},
		{"distance half", ProgressDistance, 0, Progress{Distance: 500, Score: 10}, 0.5},
		{"initial offset", ProgressScore, 0.5, Progress{Score: 500}, 0.75},
		{"initial clamped", ProgressScore, 3, Progress{}, 1},
		{"none stays put", ProgressNone, 0.3, Progress{Score: 1000}, 0.3},
		{"unknown type stays put", "bogus", 0.3, Progress{Score: 1000}, 0.3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := progressive(tc.kind)
			cfg.InitialLevel = tc.initial
			if got := NewDifficultyManager(cfg).Level(tc.progress); got != tc.expected {
				t.Errorf("Level() = %f, expected %f", got, tc.expected)
			}
		})
	}
}

func TestDifficultyScaling(t *testing.T) {
	d := NewDifficultyManager(progressive(ProgressDistance))

	if got := d.Speed(4, Progress{Distance: 1000}); got != 8 {
		t.Errorf("Speed at max = %f, expected 8", got)
	}
	if got := d.Interval(3000, Progress{Distance: 500}); got != 2500 {
		t.Errorf("Interval at half = %d, expected 2500", got)
	}
	// Floor at half the base interval
	if got := d.Interval(1200, Progress{Distance: 1000}); got != 600 {
		t.Errorf("Interval floor = %d, expected 600", got)
	}
}

func TestDifficultyZeroMaxAt(t *testing.T) {
	cfg := progressive(ProgressScore)
	cfg.Progression.MaxAt = 0
	if got := NewDifficultyManager(cfg).Level(Progress{Score: 1}); got != 1 {
		t.Errorf("Level with max_at 0 = %f, expected 1", got)
	}
}

func TestValidateProgressionType(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Difficulty.Progression.Type = "lunar"

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "lunar") {
		t.Errorf("Validate() = %v, expected progression type error", err)
	}
}
