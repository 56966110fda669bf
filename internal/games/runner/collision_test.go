package runner

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// bulletAt returns a bullet whose vertical span overlaps a grounded runner.
func bulletAt(x float64) Projectile {
	return Projectile{Kind: ProjectileBullet, X: x, Y: 260, W: 15, H: 15, VX: -7, Damage: 2}
}

func TestBulletEdgeCollision(t *testing.T) {
	// Runner occupies x in (100, 180)
	tests := []struct {
		name string
		x    float64
		hit  bool
	}{
		{"touching right edge", 180, false},
		{"one unit inside right edge", 179, true},
		{"touching left edge", 85, false},
		{"one unit inside left edge", 86, true},
		{"far away", 400, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, RulesBoss)
			g.bullets = []Projectile{bulletAt(tt.x)}

			g.resolveCollisions()

			wantHealth, wantBullets := 100, 1
			if tt.hit {
				wantHealth, wantBullets = 98, 0
			}
			if g.health != wantHealth {
				t.Errorf("health = %d, want %d", g.health, wantHealth)
			}
			if len(g.bullets) != wantBullets {
				t.Errorf("bullets left = %d, want %d", len(g.bullets), wantBullets)
			}
		})
	}
}

func TestContactDamage(t *testing.T) {
	tests := []struct {
		kind   EnemyKind
		y      float64
		damage int
	}{
		{EnemyGround, 320, 1},
		{EnemyGround2, 320, 2},
		{EnemyPlane, 200, 2},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			g := newTestGame(t, RulesClassic)
			for i := range g.enemies {
				g.enemies[i].X = 5000
			}
			g.enemies[tt.kind].X = 100
			g.enemies[tt.kind].Y = tt.y

			g.resolveCollisions()
			if got := 100 - g.health; got != tt.damage {
				t.Errorf("damage = %d, want %d", got, tt.damage)
			}

			// Contact damage repeats every frame
			g.resolveCollisions()
			if got := 100 - g.health; got != 2*tt.damage {
				t.Errorf("damage after two frames = %d, want %d", got, 2*tt.damage)
			}
		})
	}
}

func TestPlaneHitBand(t *testing.T) {
	g := newTestGame(t, RulesClassic)
	for i := range g.enemies {
		g.enemies[i].X = 5000
	}
	plane := &g.enemies[EnemyPlane]
	plane.X = 100
	// The hit band ends at y 144, above the runner's top at 200.
	plane.Y = 120

	g.resolveCollisions()
	if g.health != 100 {
		t.Errorf("plane above the runner dealt %d damage", 100-g.health)
	}
}

func TestHitEventOncePerContact(t *testing.T) {
	g := newTestGame(t, RulesBoss)
	g.activateEnemy(EnemyGround)
	g.enemies[EnemyGround].X = 100

	g.resolveCollisions()
	if !hasEvent(g.events, core.EventHit) {
		t.Error("expected hit event on first contact")
	}

	g.events = nil
	g.resolveCollisions()
	if hasEvent(g.events, core.EventHit) {
		t.Error("continued contact should not repeat the hit event")
	}
}

func TestShieldSuppressesDamage(t *testing.T) {
	g := newTestGame(t, RulesClassic)
	g.installPower(PowerShield)
	for i := range g.enemies {
		g.enemies[i].X = 100
	}
	g.bullets = []Projectile{bulletAt(150)}

	g.resolveCollisions()
	if g.health != 100 {
		t.Errorf("shielded runner took %d damage", 100-g.health)
	}
}

func TestShieldDoesNotBlockPickups(t *testing.T) {
	g := newTestGame(t, RulesBoss)
	g.installPower(PowerShield)
	g.health = 50
	g.pickup.X = 100
	g.pickup.Y = 300

	g.resolveCollisions()
	if g.health != 70 {
		t.Errorf("health = %d, want 70", g.health)
	}
}

func TestHealthPickup(t *testing.T) {
	tests := []struct {
		name   string
		health int
		x      float64
		want   int
	}{
		{"heals", 50, 100, 70},
		{"clamps to max", 90, 100, 100},
		{"reach widens the runner", 50, 185, 70},
		{"just out of reach", 50, 190, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, RulesBoss)
			g.health = tt.health
			g.pickup.X = tt.x
			g.pickup.Y = 300

			g.resolveCollisions()
			if g.health != tt.want {
				t.Errorf("health = %d, want %d", g.health, tt.want)
			}
			picked := tt.want != tt.health
			if picked {
				if g.pickup.X != 960+400 {
					t.Errorf("pickup x = %v, want relocated to 1360", g.pickup.X)
				}
				if !hasEvent(g.events, core.EventPickup) {
					t.Error("expected pickup event")
				}
			}
		})
	}
}

func TestPowerUpPickupInstalls(t *testing.T) {
	g := newTestGame(t, RulesBoss)
	g.now = time.Second
	g.powerUps = []PowerUp{{Type: PowerMagnet, X: 100, Y: 300, Size: 48, FloatDir: 1}}

	g.resolveCollisions()
	if g.active == nil || g.active.Type != PowerMagnet {
		t.Fatalf("active = %+v, want magnet", g.active)
	}
	if g.active.ExpiresAt != time.Second+6*time.Second {
		t.Errorf("expires at %v, want 7s", g.active.ExpiresAt)
	}
	if len(g.powerUps) != 0 {
		t.Errorf("field still has %d power-ups", len(g.powerUps))
	}
}

func TestSingleActivePower(t *testing.T) {
	g := newTestGame(t, RulesBoss)
	g.installPower(PowerShield)
	g.powerUps = []PowerUp{{Type: PowerMagnet, X: 100, Y: 300, Size: 48, FloatDir: 1}}

	step(g)
	if g.active == nil || g.active.Type != PowerShield {
		t.Fatalf("active = %+v, want shield to stay", g.active)
	}
	if len(g.powerUps) != 1 || g.powerUps[0].Type != PowerMagnet {
		t.Fatalf("magnet should stay on the field, got %+v", g.powerUps)
	}
	if g.powerUps[0].X != 97 {
		t.Errorf("field power-up x = %v, want only drift to 97", g.powerUps[0].X)
	}

	if g.UsePower() {
		t.Error("UsePower should refuse while a power is active")
	}
	if len(g.powerUps) != 1 {
		t.Error("refused UsePower consumed the field power-up")
	}
}

func TestUsePowerIsNoopWithoutPowerUps(t *testing.T) {
	g1 := newTestGame(t, RulesBoss)
	g2 := newTestGame(t, RulesBoss)
	for i := 0; i < 10; i++ {
		step(g1)
		step(g2)
	}

	if g1.UsePower() {
		t.Fatal("UsePower with an empty field should report false")
	}
	step(g1, core.ActionUsePower)
	step(g2)

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("power use changed state:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
	if g1.active != nil {
		t.Error("no power should be active")
	}
}

func TestUsePowerTakesOldest(t *testing.T) {
	g := newTestGame(t, RulesBoss)
	g.powerUps = []PowerUp{
		{Type: PowerMagnet, X: 800, Y: 150, Size: 48},
		{Type: PowerShield, X: 900, Y: 150, Size: 48},
	}

	res := step(g, core.ActionUsePower)
	if g.active == nil || g.active.Type != PowerMagnet {
		t.Fatalf("active = %+v, want magnet", g.active)
	}
	if len(g.powerUps) != 1 || g.powerUps[0].Type != PowerShield {
		t.Errorf("remaining field = %+v, want the shield", g.powerUps)
	}
	if !res.Has(core.EventPowerUp) {
		t.Error("expected power-up event")
	}
}

func TestMagnetPullsHealthPickup(t *testing.T) {
	g := newTestGame(t, RulesBoss)
	g.installPower(PowerMagnet)
	g.pickup.X = 500
	g.pickup.Y = 200

	g.updateActivePower()
	if math.Abs(g.pickup.X-480) > 1e-9 || math.Abs(g.pickup.Y-206) > 1e-9 {
		t.Errorf("pickup at (%v, %v), want (480, 206)", g.pickup.X, g.pickup.Y)
	}

	// Repeated pulls converge on the runner without overshooting
	for i := 0; i < 500; i++ {
		g.updateActivePower()
		g.active = &ActivePower{Type: PowerMagnet, ExpiresAt: time.Hour}
	}
	if g.pickup.X < g.player.X || g.pickup.X-g.player.X > 0.01 {
		t.Errorf("pickup x = %v, want close to %v", g.pickup.X, g.player.X)
	}
}

func TestPowerExpiry(t *testing.T) {
	g := newTestGame(t, RulesBoss)
	g.installPower(PowerShield)

	expiredAt := 0
	for i := 1; i <= 400; i++ {
		g.health = g.cfg.Runner.MaxHealth
		res := step(g)
		if res.Has(core.EventPowerExpired) {
			expiredAt = i
			break
		}
	}
	// Expires on the first tick strictly after 5000ms (20ms ticks)
	if expiredAt != 251 {
		t.Errorf("shield expired at tick %d, want 251", expiredAt)
	}
	if g.active != nil {
		t.Error("active power should be cleared")
	}
}

func TestHealthClampInvariant(t *testing.T) {
	for _, rules := range []Ruleset{RulesBoss, RulesClassic} {
		g := newTestGame(t, rules)
		for i := 0; i < 6000 && !g.State().GameOver; i++ {
			var actions []core.Action
			if i%40 == 0 {
				actions = append(actions, core.ActionJump)
			}
			if i%90 == 0 {
				actions = append(actions, core.ActionUsePower)
			}
			res := step(g, actions...)
			if h := res.State.Health; h < 0 || h > g.cfg.Runner.MaxHealth {
				t.Fatalf("rules %d tick %d: health %d out of range", rules, i, h)
			}
		}
	}
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
