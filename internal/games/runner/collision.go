package runner

import (
	"github.com/vovakirdan/tui-runner/internal/core"
)

// resolveCollisions applies damage and pickups for this tick.
func (g *Game) resolveCollisions() {
	rb := g.player.HitBox()

	damage := 0
	if !g.shielded() {
		damage = g.hazardDamage(rb)
	}
	g.health -= damage
	if damage > 0 && !g.wasHit {
		g.emit(core.EventHit, "")
	}
	g.wasHit = damage > 0

	reach := rb.Widen(g.cfg.Runner.PickupReach)

	if reach.Hit(g.pickup.HitBox()) {
		g.health += g.cfg.Health.Heal
		if g.health > g.cfg.Runner.MaxHealth {
			g.health = g.cfg.Runner.MaxHealth
		}
		g.recycleHealthPickup()
		g.emit(core.EventPickup, "health")
	}

	// A power-up only installs when no power is active; otherwise it stays.
	if g.active != nil {
		return
	}
	for i := len(g.powerUps) - 1; i >= 0; i-- {
		p := g.powerUps[i]
		if !reach.Hit(p.HitBox()) {
			continue
		}
		g.powerUps = append(g.powerUps[:i], g.powerUps[i+1:]...)
		g.installPower(p.Type)
		return
	}
}

// hazardDamage sums contact damage and consumes projectiles that hit.
func (g *Game) hazardDamage(rb core.Box) int {
	damage := 0
	for _, e := range g.enemies {
		if e.Active && rb.Hit(e.HitBox()) {
			damage += e.Damage
		}
	}
	var n int
	g.bullets, n = consumeHits(g.bullets, rb)
	damage += n
	g.gossips, n = consumeHits(g.gossips, rb)
	damage += n
	return damage
}

// consumeHits removes projectiles touching rb and returns their total damage.
func consumeHits(ps []Projectile, rb core.Box) ([]Projectile, int) {
	damage := 0
	kept := ps[:0]
	for _, p := range ps {
		if rb.Hit(p.HitBox()) {
			damage += p.Damage
			continue
		}
		kept = append(kept, p)
	}
	return kept, damage
}

func (g *Game) shielded() bool {
	return g.active != nil && g.active.Type == PowerShield
}

// installPower makes t the active power for its configured duration.
func (g *Game) installPower(t PowerType) {
	d := g.cfg.PowerUps.ShieldTime
	if t == PowerMagnet {
		d = g.cfg.PowerUps.MagnetTime
	}
	g.active = &ActivePower{Type: t, ExpiresAt: g.now + ms(d)}
	g.emit(core.EventPowerUp, t.String())
}

// updateActivePower applies the magnet pull and expires the power.
func (g *Game) updateActivePower() {
	if g.active == nil {
		return
	}
	if g.active.Type == PowerMagnet {
		pull := g.cfg.Health.MagnetPull
		g.pickup.X = core.Lerp(g.pickup.X, g.player.X, pull)
		g.pickup.Y = core.Lerp(g.pickup.Y, g.player.Y, pull)
	}
	if g.now > g.active.ExpiresAt {
		g.emit(core.EventPowerExpired, g.active.Type.String())
		g.active = nil
	}
}
