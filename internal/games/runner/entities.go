package runner

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Anchors differ per entity kind and are kept on purpose: the runner,
// ground enemies and the boss store their baseline (bottom edge) in Y,
// while planes, projectiles and pickups store their top edge. The HitBox
// methods translate each kind into a baseline core.Box so every collision
// test uses the same predicate.

// Player is the runner character.
type Player struct {
	X, Y   float64 // Left edge and baseline
	W, H   float64
	VX, VY float64
	Jumps  int // Jumps used since last touching the ground
}

// HitBox returns the collision box of the runner.
func (p Player) HitBox() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Grounded reports whether the runner stands on the ground line.
func (p Player) Grounded(groundY float64) bool {
	return p.Y >= groundY && p.VY >= 0
}

// EnemyKind identifies one of the fixed enemy slots.
type EnemyKind int

const (
	EnemyGround EnemyKind = iota
	EnemyGround2
	EnemyPlane
	enemySlots
)

// String returns a human-readable name for the enemy kind.
func (k EnemyKind) String() string {
	switch k {
	case EnemyGround:
		return "ground"
	case EnemyGround2:
		return "ground2"
	case EnemyPlane:
		return "plane"
	default:
		return "unknown"
	}
}

// Enemy is one recyclable hazard slot.
type Enemy struct {
	Kind   EnemyKind
	X, Y   float64 // Ground units: baseline. Planes: top edge
	W, H   float64
	Damage int // Per frame of contact
	Active bool

	hitInset    float64
	hitFraction float64
}

// HitBox returns the collision box of the enemy.
// Planes only collide with the middle band of their sprite.
func (e Enemy) HitBox() core.Box {
	if e.Kind == EnemyPlane {
		return core.Box{X: e.X, Y: e.Y + e.H*e.hitInset, W: e.W, H: e.H * e.hitFraction}
	}
	return core.Box{X: e.X, Y: e.Y, W: e.W, H: e.H}
}

// ProjectileKind distinguishes enemy bullets from boss gossip.
type ProjectileKind int

const (
	ProjectileBullet ProjectileKind = iota
	ProjectileGossip
)

// Projectile is a bullet or a gossip message. Removed on hit or exit.
type Projectile struct {
	Kind    ProjectileKind
	X, Y    float64 // Top-left corner
	W, H    float64
	VX, VY  float64
	Gravity float64
	Damage  int
}

// HitBox returns the collision box of the projectile.
func (p Projectile) HitBox() core.Box {
	return core.Box{X: p.X, Y: p.Y + p.H, W: p.W, H: p.H}
}

// HealthPickup is the single recycled health item.
type HealthPickup struct {
	X, Y      float64
	Size      float64
	Float     float64 // Current bobbing offset
	FloatDir  float64 // +1 or -1
	SpawnedAt time.Duration
}

// HitBox returns the collision box of the pickup. Its Y doubles as the
// baseline, which is what lets the magnet pull it onto the runner's feet.
func (h HealthPickup) HitBox() core.Box {
	return core.Box{X: h.X, Y: h.Y, W: h.Size, H: h.Size}
}

// PowerType is the kind of a power-up.
type PowerType int

const (
	PowerShield PowerType = iota
	PowerMagnet
)

// String returns the lower-case name of the power type.
func (t PowerType) String() string {
	switch t {
	case PowerShield:
		return "shield"
	case PowerMagnet:
		return "magnet"
	default:
		return "unknown"
	}
}

// PowerUp is a collectible on the field.
type PowerUp struct {
	Type     PowerType
	X, Y     float64
	Size     float64
	Float    float64
	FloatDir float64
}

// HitBox returns the collision box of the power-up.
func (p PowerUp) HitBox() core.Box {
	return core.Box{X: p.X, Y: p.Y + p.Float, W: p.Size, H: p.Size}
}

// ActivePower is the buff currently in effect.
type ActivePower struct {
	Type      PowerType
	ExpiresAt time.Duration
}

// BossPhase is the state of the boss encounter.
type BossPhase int

const (
	BossIdle BossPhase = iota
	BossWarning
	BossActive
)

// String returns a human-readable name for the phase.
func (p BossPhase) String() string {
	switch p {
	case BossIdle:
		return "idle"
	case BossWarning:
		return "warning"
	case BossActive:
		return "active"
	default:
		return "unknown"
	}
}

// Boss is the periodic encounter that fires gossip waves.
type Boss struct {
	X, Y      float64 // Left edge and baseline
	W, H      float64
	Speed     float64 // Entry speed
	Entered   bool
	StartedAt time.Duration
	Duration  time.Duration
}

// HitBox returns the area of the boss sprite.
func (b Boss) HitBox() core.Box {
	return core.Box{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Remaining returns how long the encounter still lasts at time now.
func (b Boss) Remaining(now time.Duration) time.Duration {
	left := b.StartedAt + b.Duration - now
	if left < 0 {
		return 0
	}
	return left
}
