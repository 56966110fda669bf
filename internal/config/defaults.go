package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file
// cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:         960,
			Height:        400,
			GroundY:       320,
			MetresPerTick: 0.1,
		},
		Runner: RunnerPlayer{
			X:           100,
			Width:       80,
			Height:      120,
			Gravity:     2.0,
			FallGravity: 0.5,
			JumpForce:   -28,
			MaxJumps:    2,
			MoveAccel:   1.6,
			Friction:    0.15,
			MinX:        20,
			MaxX:        560,
			MaxHealth:   100,
			PickupReach: 10,
		},
		Background: BackgroundConfig{
			FarSpeed:  0.1,
			NearSpeed: 0.2,
		},
		Enemies: EnemiesConfig{
			Ground: EnemySlot{
				StartX: 1200, Y: 320, Width: 80, Height: 120,
				ExitX: -150, RespawnOffset: 600, Damage: 1,
			},
			Ground2: EnemySlot{
				StartX: 1600, Y: 320, Width: 80, Height: 120,
				ExitX: -150, RespawnOffset: 900, Damage: 2,
			},
			Plane: PlaneConfig{
				EnemySlot: EnemySlot{
					StartX: 2000, Y: 120, Width: 200, Height: 80,
					ExitX: -600, RespawnOffset: 300, Damage: 2,
				},
				RespawnMinY:  60,
				RespawnRange: 140,
				HitInset:     0.3,
				HitFraction:  0.6,
			},
		},
		Bullets: BulletConfig{
			Width:           15,
			Height:          15,
			Speed:           7,
			FireChance:      0.5,
			MuzzleHeight:    60,
			ExitX:           -30,
			Damage:          2,
			ClassicInterval: 3000,
		},
		Health: HealthConfig{
			StartOffset:   500,
			StartY:        200,
			Size:          40,
			Speed:         4,
			FloatStep:     0.3,
			FloatRange:    10,
			RespawnOffset: 400,
			RespawnMinY:   150,
			RespawnRange:  150,
			ExitX:         -100,
			Timeout:       15000,
			Heal:          20,
			MagnetPull:    0.05,
		},
		PowerUps: PowerUpConfig{
			Size:          48,
			Speed:         3,
			FloatStep:     0.3,
			FloatRange:    8,
			SpawnOffset:   400,
			SpawnMinY:     150,
			SpawnRange:    120,
			ExitX:         -100,
			MinInterval:   15000,
			MaxInterval:   25000,
			HealthTrigger: 40,
			TriggerChance: 0.5,
			ClassicCap:    1,
			Cap:           2,
			ShieldTime:    5000,
			MagnetTime:    6000,
		},
		Boss: BossConfig{
			FirstMin:    60,
			FirstMax:    90,
			GapMin:      80,
			GapMax:      120,
			WarningTime: 900,
			Width:       160,
			Height:      200,
			EntrySpeed:  4,
			SpawnOffset: 50,
			RestOffset:  260,
			HealReward:  25,
			ScoreReward: 500,
		},
		Gossip: GossipConfig{
			Width:       20,
			Height:      20,
			SpeedX:      6,
			MaxSpeedY:   1.5,
			Gravity:     0.05,
			Damage:      3,
			WaveMin:     8,
			WaveMax:     13,
			IntervalMin: 600,
			IntervalMax: 1200,
		},
		Presets: PresetTable{
			Easy: PresetConfig{
				GroundSpeed: 4, Ground2Speed: 5, PlaneSpeed: 4,
				BulletInterval: 3500, BossDuration: 10000,
				EnemyCap: 1, GroundChance: 0.010, PlaneChance: 0.005,
			},
			Medium: PresetConfig{
				GroundSpeed: 6, Ground2Speed: 7, PlaneSpeed: 5,
				BulletInterval: 2800, BossDuration: 12000,
				EnemyCap: 2, GroundChance: 0.015, PlaneChance: 0.008,
			},
			Hard: PresetConfig{
				GroundSpeed: 7, Ground2Speed: 8, PlaneSpeed: 6,
				BulletInterval: 2200, BossDuration: 20000,
				EnemyCap: 2, GroundChance: 0.020, PlaneChance: 0.012,
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressDistance,
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.5,
				IntervalReduction: 800,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRunnerYAML
}
