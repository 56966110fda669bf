package runner

import (
	"github.com/vovakirdan/tui-runner/internal/core"
)

// resetBoss disarms any encounter and schedules the first one.
func (g *Game) resetBoss() {
	g.bossPhase = BossIdle
	g.boss = Boss{}
	g.warningUntil = 0
	g.nextWave = 0
	g.nextBoss = g.rollDistance(g.cfg.Boss.FirstMin, g.cfg.Boss.FirstMax)
}

// updateBoss drives the encounter: Idle → Warning → Active → Idle.
func (g *Game) updateBoss() {
	switch g.bossPhase {
	case BossIdle:
		if g.distance >= g.nextBoss {
			g.bossPhase = BossWarning
			g.warningUntil = g.now + ms(g.cfg.Boss.WarningTime)
			g.emit(core.EventBossWarning, "")
		}
	case BossWarning:
		if g.now >= g.warningUntil {
			g.startBoss()
		}
	case BossActive:
		if g.now >= g.nextWave {
			g.spawnWave()
			g.nextWave = g.now + g.rollMillis(g.cfg.Gossip.IntervalMin, g.cfg.Gossip.IntervalMax)
		}
		if g.boss.Remaining(g.now) == 0 {
			g.defeatBoss()
		}
	}
}

// startBoss brings the boss in and clears the normal hazards.
func (g *Game) startBoss() {
	bc := g.cfg.Boss
	w := g.cfg.World
	g.bossPhase = BossActive
	g.boss = Boss{
		X:         w.Width + bc.SpawnOffset,
		Y:         w.GroundY,
		W:         bc.Width,
		H:         bc.Height,
		Speed:     bc.EntrySpeed,
		StartedAt: g.now,
		Duration:  ms(g.params.BossDuration),
	}
	for i := range g.enemies {
		g.enemies[i].Active = false
	}
	g.bullets = g.bullets[:0]
	g.nextWave = g.now + g.rollMillis(g.cfg.Gossip.IntervalMin, g.cfg.Gossip.IntervalMax)
	g.emit(core.EventBossStart, "")
}

// moveBoss slides the boss in until it reaches its resting spot.
func (g *Game) moveBoss() {
	if g.boss.Entered {
		return
	}
	rest := g.cfg.World.Width - g.cfg.Boss.RestOffset
	g.boss.X -= g.boss.Speed
	if g.boss.X <= rest {
		g.boss.X = rest
		g.boss.Entered = true
	}
}

// spawnWave fires a batch of gossip from the boss's mouth area.
func (g *Game) spawnWave() {
	gc := g.cfg.Gossip
	n := gc.WaveMin
	if gc.WaveMax > gc.WaveMin {
		n += g.rng.Intn(gc.WaveMax - gc.WaveMin + 1)
	}
	top := g.boss.HitBox().Top()
	span := g.boss.H - gc.Height
	if span < 0 {
		span = 0
	}
	for i := 0; i < n; i++ {
		g.gossips = append(g.gossips, Projectile{
			Kind:    ProjectileGossip,
			X:       g.boss.X,
			Y:       top + g.rng.Float64()*span,
			W:       gc.Width,
			H:       gc.Height,
			VX:      -gc.SpeedX,
			VY:      (g.rng.Float64()*2 - 1) * gc.MaxSpeedY,
			Gravity: gc.Gravity,
			Damage:  gc.Damage,
		})
	}
}

// defeatBoss ends the encounter, rewards the runner and schedules the next.
func (g *Game) defeatBoss() {
	bc := g.cfg.Boss
	g.bossPhase = BossIdle
	g.boss = Boss{}
	g.gossips = g.gossips[:0]
	g.health += bc.HealReward
	g.score += bc.ScoreReward
	g.nextBoss = g.distance + g.rollDistance(bc.GapMin, bc.GapMax)
	g.emit(core.EventBossDefeated, "")
}

// rollDistance returns a uniform distance in [lo, hi].
func (g *Game) rollDistance(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Float64()*(hi-lo)
}
