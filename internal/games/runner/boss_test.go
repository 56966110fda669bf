package runner

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// newPresetGame returns a boss-rules game on the given preset.
func newPresetGame(t *testing.T, preset config.DifficultyPreset, cfg config.RunnerConfig) *Game {
	t.Helper()
	g := &Game{rules: RulesBoss, preset: preset}
	g.SetConfig(cfg)
	g.Reset(testRuntime)
	return g
}

// shieldForever keeps the runner invulnerable for the rest of a test.
func shieldForever(g *Game) {
	g.active = &ActivePower{Type: PowerShield, ExpiresAt: time.Hour}
}

func TestBossTiming(t *testing.T) {
	tests := []struct {
		preset   config.DifficultyPreset
		duration time.Duration
	}{
		{config.DifficultyEasy, 10 * time.Second},
		{config.DifficultyMedium, 12 * time.Second},
		{config.DifficultyHard, 20 * time.Second},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			g := newPresetGame(t, tt.preset, config.DefaultRunnerConfig())
			shieldForever(g)

			var warnedAt, startedAt, endedAt time.Duration
			starts, crossedAt := 0, time.Duration(-1)
			for i := 0; i < 5000 && endedAt == 0; i++ {
				threshold := g.nextBoss
				res := step(g)
				if crossedAt < 0 && g.distance >= threshold {
					crossedAt = g.now
				}
				switch {
				case res.Has(core.EventBossWarning):
					warnedAt = g.now
				case res.Has(core.EventBossStart):
					startedAt = g.now
					starts++
				case res.Has(core.EventBossDefeated):
					endedAt = g.now
				}
				if startedAt > 0 && endedAt == 0 && g.bossPhase != BossActive {
					t.Fatalf("boss left the active phase early at %v", g.now)
				}
			}

			if endedAt == 0 {
				t.Fatal("boss never finished")
			}
			if warnedAt != crossedAt {
				t.Errorf("warning at %v, threshold crossed at %v", warnedAt, crossedAt)
			}
			if startedAt-warnedAt != 900*time.Millisecond {
				t.Errorf("warning lasted %v, want 900ms", startedAt-warnedAt)
			}
			if starts != 1 {
				t.Errorf("boss started %d times, want 1", starts)
			}
			if endedAt-startedAt != tt.duration {
				t.Errorf("boss lasted %v, want %v", endedAt-startedAt, tt.duration)
			}
			if g.nextBoss <= g.distance {
				t.Errorf("next threshold %v not above distance %v", g.nextBoss, g.distance)
			}
			if g.bossPhase != BossIdle || len(g.gossips) != 0 {
				t.Errorf("after defeat: phase %s, %d gossips", g.bossPhase, len(g.gossips))
			}
		})
	}
}

func TestBossDefeatRewards(t *testing.T) {
	g := newTestGame(t, RulesBoss)
	g.distance = 100
	g.startBoss()
	g.spawnWave()
	g.health = 50
	g.score = 1000

	g.now = g.boss.StartedAt + g.boss.Duration
	g.updateBoss()

	if g.health != 75 {
		t.Errorf("health = %d, want 75", g.health)
	}
	if g.score != 1500 {
		t.Errorf("score = %d, want 1500", g.score)
	}
	if g.nextBoss < 180 || g.nextBoss > 220 {
		t.Errorf("next threshold %v outside [180, 220]", g.nextBoss)
	}
	if !hasEvent(g.events, core.EventBossDefeated) {
		t.Error("expected boss defeated event")
	}
	if len(g.gossips) != 0 {
		t.Error("remaining gossip should vanish with the boss")
	}
}

func TestBossRewardClampsHealth(t *testing.T) {
	g := newTestGame(t, RulesBoss)
	g.startBoss()
	g.health = 90
	g.now = g.boss.StartedAt + g.boss.Duration
	g.updateBoss()
	g.checkGameOver()
	if g.health != 100 {
		t.Errorf("health = %d, want 100", g.health)
	}
}

func TestBossClearsHazards(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Presets.Medium.GroundChance = 1
	g := newPresetGame(t, config.DifficultyMedium, cfg)

	g.activateEnemy(EnemyGround)
	g.activateEnemy(EnemyPlane)
	g.bullets = []Projectile{bulletAt(500), bulletAt(600)}

	g.startBoss()
	for _, e := range g.enemies {
		if e.Active {
			t.Errorf("%s still active during the boss", e.Kind)
		}
	}
	if len(g.bullets) != 0 {
		t.Errorf("%d bullets survived the boss entrance", len(g.bullets))
	}

	for i := 0; i < 100; i++ {
		g.manageEnemies()
	}
	if g.enemies[EnemyGround].Active {
		t.Error("enemy manager should pause while the boss is active")
	}
}

func TestBossEntry(t *testing.T) {
	g := newTestGame(t, RulesBoss)
	g.startBoss()
	if g.boss.X != 960+50 {
		t.Fatalf("boss starts at %v, want 1010", g.boss.X)
	}

	for i := 0; i < 200; i++ {
		g.moveBoss()
	}
	if !g.boss.Entered || g.boss.X != 960-260 {
		t.Errorf("boss entered=%v x=%v, want rest at 700", g.boss.Entered, g.boss.X)
	}
}

func TestGossipWave(t *testing.T) {
	g := newTestGame(t, RulesBoss)
	g.startBoss()

	for wave := 0; wave < 20; wave++ {
		g.gossips = g.gossips[:0]
		g.spawnWave()

		if n := len(g.gossips); n < 8 || n > 13 {
			t.Fatalf("wave of %d, want 8..13", n)
		}
		top := g.boss.Y - g.boss.H
		for _, p := range g.gossips {
			if p.VX != -6 || p.VY < -1.5 || p.VY > 1.5 {
				t.Errorf("gossip velocity (%v, %v) out of range", p.VX, p.VY)
			}
			if p.Damage != 3 || p.Kind != ProjectileGossip {
				t.Errorf("unexpected gossip %+v", p)
			}
			if p.Y < top || p.Y+p.H > g.boss.Y {
				t.Errorf("gossip y %v outside the boss sprite", p.Y)
			}
		}
	}
}

func TestGossipWaveCadence(t *testing.T) {
	g := newTestGame(t, RulesBoss)
	shieldForever(g)
	g.startBoss()

	waves := 0
	for i := 0; i < 300; i++ {
		before := g.nextWave
		step(g)
		if g.nextWave != before {
			waves++
			gap := g.nextWave - g.now
			if gap < 600*time.Millisecond || gap > 1200*time.Millisecond {
				t.Errorf("next wave in %v, want 600ms..1200ms", gap)
			}
		}
	}
	// 6 seconds at one wave per 0.6..1.2s
	if waves < 4 || waves > 10 {
		t.Errorf("%d waves in 6s", waves)
	}
}

func TestRestartWipesBoss(t *testing.T) {
	g := newTestGame(t, RulesBoss)
	g.startBoss()
	g.spawnWave()
	if len(g.gossips) == 0 {
		t.Fatal("setup: expected gossip in flight")
	}

	g.Reset(testRuntime)
	if g.bossPhase != BossIdle || len(g.gossips) != 0 {
		t.Fatalf("after restart: phase %s, %d gossips", g.bossPhase, len(g.gossips))
	}
	if g.nextBoss < 60 {
		t.Errorf("boss schedule not re-armed: next at %v", g.nextBoss)
	}

	// 500 ticks cover 50m, short of the first threshold
	for i := 0; i < 500; i++ {
		g.health = g.cfg.Runner.MaxHealth
		res := step(g)
		if len(g.gossips) != 0 || res.Has(core.EventBossStart) {
			t.Fatalf("tick %d: stray boss activity after restart", i)
		}
	}
}

func TestGameOverStopsBoss(t *testing.T) {
	g := newTestGame(t, RulesBoss)
	g.startBoss()
	g.spawnWave()
	g.health = 0
	g.checkGameOver()

	if g.bossPhase != BossIdle || len(g.gossips) != 0 {
		t.Errorf("game over left phase %s and %d gossips", g.bossPhase, len(g.gossips))
	}
}

func TestClassicHasNoBoss(t *testing.T) {
	g := newTestGame(t, RulesClassic)
	g.nextBoss = 0
	for i := 0; i < 100; i++ {
		g.health = g.cfg.Runner.MaxHealth
		step(g)
	}
	if g.bossPhase != BossIdle {
		t.Errorf("classic rules entered boss phase %s", g.bossPhase)
	}
}
