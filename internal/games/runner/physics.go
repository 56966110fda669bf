package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// restVelocity is the horizontal speed below which the runner stops sliding.
const restVelocity = 0.01

// applyInput turns this tick's intents into runner state.
func (g *Game) applyInput(in core.InputFrame) {
	if in.Has(core.ActionJump) {
		g.jump()
	}
	if in.Has(core.ActionUsePower) {
		g.UsePower()
	}
	if g.rules == RulesBoss {
		if in.Has(core.ActionLeft) {
			g.player.VX -= g.cfg.Runner.MoveAccel
		}
		if in.Has(core.ActionRight) {
			g.player.VX += g.cfg.Runner.MoveAccel
		}
	}
}

// jump starts a jump if the runner has jumps left.
func (g *Game) jump() bool {
	if g.player.Jumps >= g.cfg.Runner.MaxJumps {
		return false
	}
	g.player.VY = g.cfg.Runner.JumpForce
	g.player.Jumps++
	g.emit(core.EventJump, "")
	return true
}

// stepPhysics advances every moving entity by one tick.
func (g *Game) stepPhysics() {
	g.scrollBackground()
	g.movePlayer()
	g.moveEnemies()
	g.bullets = advanceProjectiles(g.bullets, g.cfg.Bullets.ExitX, g.cfg.World.Height)
	g.gossips = advanceProjectiles(g.gossips, -g.cfg.Gossip.Width, g.cfg.World.Height)
	g.moveHealthPickup()
	g.movePowerUps()
	if g.bossPhase == BossActive {
		g.moveBoss()
	}
}

func (g *Game) scrollBackground() {
	w := g.cfg.World.Width
	g.farX -= g.cfg.Background.FarSpeed
	if g.farX <= -w {
		g.farX = 0
	}
	g.nearX -= g.cfg.Background.NearSpeed
	if g.nearX <= -w {
		g.nearX = 0
	}
}

func (g *Game) movePlayer() {
	p := &g.player
	r := g.cfg.Runner
	ground := g.cfg.World.GroundY

	p.VY += r.Gravity
	if g.rules == RulesClassic && p.VY > 0 {
		p.VY += r.FallGravity
	}
	p.Y += p.VY
	if p.Y >= ground {
		p.Y = ground
		p.VY = 0
		p.Jumps = 0
	}

	if g.rules != RulesBoss {
		return
	}
	p.X += p.VX
	p.VX *= 1 - r.Friction
	if math.Abs(p.VX) < restVelocity {
		p.VX = 0
	}
	if p.X < r.MinX {
		p.X = r.MinX
		p.VX = 0
	} else if p.X > r.MaxX {
		p.X = r.MaxX
		p.VX = 0
	}
}

func (g *Game) moveEnemies() {
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Active {
			continue
		}
		e.X -= g.enemySpeed(e.Kind)
		if e.X < g.slot(e.Kind).ExitX {
			g.recycleEnemy(e)
		}
	}
}

// enemySpeed returns the per-tick speed of an enemy slot.
func (g *Game) enemySpeed(kind EnemyKind) float64 {
	var base float64
	switch kind {
	case EnemyGround:
		base = g.params.GroundSpeed
	case EnemyGround2:
		base = g.params.Ground2Speed
	case EnemyPlane:
		base = g.params.PlaneSpeed
	}
	return g.difficulty.Speed(base, g.progress())
}

// advanceProjectiles moves projectiles and drops those that left the field.
func advanceProjectiles(ps []Projectile, exitX, floor float64) []Projectile {
	kept := ps[:0]
	for _, p := range ps {
		p.VY += p.Gravity
		p.X += p.VX
		p.Y += p.VY
		if p.X <= exitX || p.Y > floor {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

func (g *Game) moveHealthPickup() {
	h := &g.pickup
	hc := g.cfg.Health
	h.X -= hc.Speed
	h.Float, h.FloatDir = bob(h.Float, h.FloatDir, hc.FloatStep, hc.FloatRange)
}

func (g *Game) movePowerUps() {
	pc := g.cfg.PowerUps
	kept := g.powerUps[:0]
	for _, p := range g.powerUps {
		p.X -= pc.Speed
		p.Float, p.FloatDir = bob(p.Float, p.FloatDir, pc.FloatStep, pc.FloatRange)
		if p.X < pc.ExitX {
			continue
		}
		kept = append(kept, p)
	}
	g.powerUps = kept
}

// bob advances a floating offset and flips direction past the range.
func bob(offset, dir, step, limit float64) (float64, float64) {
	offset += step * dir
	if offset > limit || offset < -limit {
		dir = -dir
	}
	return offset, dir
}
