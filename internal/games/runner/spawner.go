package runner

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// shooters are the enemy slots that fire bullets.
var shooters = [...]EnemyKind{EnemyGround, EnemyGround2}

// runSpawner introduces new hazards and pickups for this tick.
func (g *Game) runSpawner() {
	g.maybeRecycleHealthPickup()
	g.fireBullets()
	if g.rules == RulesBoss {
		g.manageEnemies()
		g.updateBoss()
	}
	g.maybeSpawnPowerUp()
}

// slot returns the configuration of an enemy slot.
func (g *Game) slot(kind EnemyKind) config.EnemySlot {
	switch kind {
	case EnemyGround2:
		return g.cfg.Enemies.Ground2
	case EnemyPlane:
		return g.cfg.Enemies.Plane.EnemySlot
	default:
		return g.cfg.Enemies.Ground
	}
}

// resetEnemies puts every slot at its start position. Classic slots cycle
// forever; boss-rules slots wait for the enemy manager.
func (g *Game) resetEnemies() {
	for k := EnemyKind(0); k < enemySlots; k++ {
		s := g.slot(k)
		e := Enemy{
			Kind:   k,
			X:      s.StartX,
			Y:      s.Y,
			W:      s.Width,
			H:      s.Height,
			Damage: s.Damage,
			Active: g.rules == RulesClassic,
		}
		if k == EnemyPlane {
			e.hitInset = g.cfg.Enemies.Plane.HitInset
			e.hitFraction = g.cfg.Enemies.Plane.HitFraction
		}
		g.enemies[k] = e
	}
}

// recycleEnemy handles an enemy that left the playfield.
func (g *Game) recycleEnemy(e *Enemy) {
	if g.rules == RulesBoss {
		e.Active = false
		return
	}
	g.placeOffscreen(e)
}

// placeOffscreen moves an enemy to its respawn point past the right edge.
func (g *Game) placeOffscreen(e *Enemy) {
	e.X = g.cfg.World.Width + g.slot(e.Kind).RespawnOffset
	if e.Kind == EnemyPlane {
		pc := g.cfg.Enemies.Plane
		e.Y = pc.RespawnMinY + g.rng.Float64()*pc.RespawnRange
	}
}

// manageEnemies activates at most one idle slot per tick, honouring the
// preset cap. The second ground slot is reserved for the boss sprite.
func (g *Game) manageEnemies() {
	if g.bossPhase != BossIdle {
		return
	}
	active := 0
	for _, e := range g.enemies {
		if e.Active {
			active++
		}
	}
	if active >= g.params.EnemyCap {
		return
	}

	roll := g.rng.Float64()
	switch {
	case roll < g.params.GroundChance:
		g.activateEnemy(EnemyGround)
	case roll < g.params.GroundChance+g.params.PlaneChance:
		g.activateEnemy(EnemyPlane)
	}
}

func (g *Game) activateEnemy(kind EnemyKind) {
	e := &g.enemies[kind]
	if e.Active {
		return
	}
	g.placeOffscreen(e)
	e.Active = true
}

// bulletInterval returns the current cooldown between volleys.
func (g *Game) bulletInterval() time.Duration {
	if g.rules == RulesClassic {
		return ms(g.cfg.Bullets.ClassicInterval)
	}
	return ms(g.difficulty.Interval(g.params.BulletInterval, g.progress()))
}

// fireBullets lets every active shooter roll to fire once the cooldown passed.
func (g *Game) fireBullets() {
	if g.now-g.lastShot <= g.bulletInterval() {
		return
	}
	bc := g.cfg.Bullets
	for _, k := range shooters {
		e := g.enemies[k]
		if !e.Active {
			continue
		}
		if g.rng.Float64() < bc.FireChance {
			g.bullets = append(g.bullets, Projectile{
				Kind:   ProjectileBullet,
				X:      e.X,
				Y:      e.Y - bc.MuzzleHeight,
				W:      bc.Width,
				H:      bc.Height,
				VX:     -bc.Speed,
				Damage: bc.Damage,
			})
		}
	}
	g.lastShot = g.now
}

func (g *Game) resetHealthPickup() {
	hc := g.cfg.Health
	g.pickup = HealthPickup{
		X:         g.cfg.World.Width + hc.StartOffset,
		Y:         hc.StartY,
		Size:      hc.Size,
		FloatDir:  1,
		SpawnedAt: g.now,
	}
}

// maybeRecycleHealthPickup respawns the pickup once it exits or times out.
func (g *Game) maybeRecycleHealthPickup() {
	hc := g.cfg.Health
	if g.pickup.X < hc.ExitX || g.now-g.pickup.SpawnedAt > ms(hc.Timeout) {
		g.recycleHealthPickup()
	}
}

func (g *Game) recycleHealthPickup() {
	hc := g.cfg.Health
	g.pickup.X = g.cfg.World.Width + hc.RespawnOffset
	g.pickup.Y = hc.RespawnMinY + g.rng.Float64()*hc.RespawnRange
	g.pickup.SpawnedAt = g.now
}

// maybeSpawnPowerUp spawns when the rolled interval has passed, or on a
// coin flip while health is low.
func (g *Game) maybeSpawnPowerUp() {
	pc := g.cfg.PowerUps
	due := g.now-g.lastPowerUp > g.powerInterval
	if !due && !(g.health < pc.HealthTrigger && g.rng.Float64() < pc.TriggerChance) {
		return
	}
	g.spawnPowerUp()
	g.lastPowerUp = g.now
	g.powerInterval = g.rollPowerInterval()
}

func (g *Game) spawnPowerUp() {
	if len(g.powerUps) >= g.powerUpCap() {
		return
	}
	pc := g.cfg.PowerUps
	typ := PowerShield
	if g.rng.Float64() >= 0.5 {
		typ = PowerMagnet
	}
	g.powerUps = append(g.powerUps, PowerUp{
		Type:     typ,
		X:        g.cfg.World.Width + pc.SpawnOffset,
		Y:        pc.SpawnMinY + g.rng.Float64()*pc.SpawnRange,
		Size:     pc.Size,
		FloatDir: 1,
	})
}

func (g *Game) powerUpCap() int {
	if g.rules == RulesClassic {
		return g.cfg.PowerUps.ClassicCap
	}
	return g.cfg.PowerUps.Cap
}

// rollPowerInterval draws the next spawn window uniformly from the range.
func (g *Game) rollPowerInterval() time.Duration {
	return g.rollMillis(g.cfg.PowerUps.MinInterval, g.cfg.PowerUps.MaxInterval)
}

// rollMillis returns a uniform duration in [minMs, maxMs].
func (g *Game) rollMillis(minMs, maxMs int) time.Duration {
	if maxMs <= minMs {
		return ms(minMs)
	}
	return ms(minMs + g.rng.Intn(maxMs-minMs+1))
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
