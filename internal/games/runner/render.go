package runner

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	RunnerBody = '█'
	RunnerHead = '◆'
	RunnerLeg1 = '╱'
	RunnerLeg2 = '╲'
	EnemyChar  = '▓'
	PlaneChar  = '▀'
	BossChar   = '█'
	BulletChar = '•'
	GossipChar = '¤'
	HealthChar = '+'
	ShieldChar = 'S'
	MagnetChar = 'M'
	AuraChar   = '░'
	GroundChar = '═'
	StarChar   = '·'
	SkyChar    = '▒'
)

// healthBarWidth is the number of cells of the HUD health bar.
const healthBarWidth = 20

// Parallax scenery, in logical units within one world width.
var (
	farStars = []struct{ x, y float64 }{
		{40, 70}, {150, 120}, {260, 50}, {395, 150}, {510, 90},
		{640, 60}, {720, 170}, {830, 110}, {910, 45},
	}
	nearBlocks = []struct{ x, w, h float64 }{
		{30, 70, 60}, {180, 50, 100}, {300, 90, 45}, {470, 60, 80},
		{600, 110, 55}, {780, 70, 95},
	}
)

// view maps logical coordinates onto screen cells.
type view struct {
	dst    *core.Screen
	sx, sy float64
}

func (g *Game) newView(dst *core.Screen) view {
	w, h := g.cfg.World.Width, g.cfg.World.Height
	if w <= 0 || h <= 0 {
		w, h = 960, 400
	}
	return view{
		dst: dst,
		sx:  float64(dst.Width()) / w,
		sy:  float64(dst.Height()) / h,
	}
}

func (v view) x(wx float64) int { return int(math.Floor(wx * v.sx)) }
func (v view) y(wy float64) int { return int(math.Floor(wy * v.sy)) }

// rect converts a baseline box into a cell rectangle of at least one cell.
func (v view) rect(b core.Box) core.Rect {
	x0, x1 := v.x(b.X), v.x(b.Right())
	y0, y1 := v.y(b.Top()), v.y(b.Y)
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.phase == PhaseNotStarted {
		g.drawMessageBox(dst, g.Title(), "Select a difficulty to start")
		return
	}

	v := g.newView(dst)
	g.drawBackground(v)
	dst.DrawHLineColor(0, v.y(g.cfg.World.GroundY), dst.Width(), GroundChar, core.ColorGround)

	g.drawPickups(v)
	g.drawEnemies(v)
	if g.bossPhase == BossActive {
		g.drawBoss(v)
	}
	g.drawProjectiles(v)
	g.drawRunner(v)
	g.drawHUD(dst)

	if g.bossPhase == BossWarning {
		banner := "!! BOSS INCOMING !!"
		dst.DrawTextColor((dst.Width()-len(banner))/2, 3, banner, core.ColorDanger)
	}

	if g.paused {
		g.drawMessageBox(dst, "PAUSED", "Press Esc to resume")
	}

	if g.phase == PhaseGameOver {
		g.drawMessageBox(dst,
			"GAME OVER",
			fmt.Sprintf("Distance: %.1f m", g.distance),
			fmt.Sprintf("High Score: %.1f m", g.highScore),
			"R: restart  B: menu",
		)
	}
}

// drawBackground draws both parallax layers twice, one world width apart,
// so the scroll wraps without a seam.
func (g *Game) drawBackground(v view) {
	w := g.cfg.World.Width
	for _, base := range []float64{0, w} {
		for _, s := range farStars {
			v.dst.SetColor(v.x(g.farX+base+s.x), v.y(s.y), StarChar, core.ColorGray)
		}
		for _, b := range nearBlocks {
			r := v.rect(core.Box{X: g.nearX + base + b.x, Y: g.cfg.World.GroundY, W: b.w, H: b.h})
			v.dst.DrawRectColor(r, SkyChar, core.ColorSky)
		}
	}
}

func (g *Game) drawRunner(v view) {
	r := v.rect(g.player.HitBox())
	dst := v.dst

	if g.shielded() {
		aura := core.NewRect(r.X-1, r.Y-1, r.W+2, r.H+2)
		dst.DrawRectColor(aura, AuraChar, core.ColorShield)
	}

	dst.DrawRectColor(r, RunnerBody, core.ColorRunner)
	dst.SetColor(r.Right()-1, r.Y, RunnerHead, core.ColorLabel)

	// Legs (animated when grounded)
	legY := r.Bottom() - 1
	if r.H < 2 {
		return
	}
	for x := r.X; x < r.Right(); x++ {
		dst.Set(x, legY, ' ')
	}
	switch {
	case !g.player.Grounded(g.cfg.World.GroundY):
		dst.SetColor(r.X, legY, RunnerLeg1, core.ColorRunner)
		dst.SetColor(r.X+1, legY, RunnerLeg2, core.ColorRunner)
	case g.legFrame < 5:
		dst.SetColor(r.X, legY, RunnerLeg1, core.ColorRunner)
		dst.SetColor(r.Right()-1, legY, RunnerLeg2, core.ColorRunner)
	default:
		dst.SetColor(r.X+r.W/2-1, legY, RunnerLeg1, core.ColorRunner)
		dst.SetColor(r.X+r.W/2, legY, RunnerLeg2, core.ColorRunner)
	}
}

func (g *Game) drawEnemies(v view) {
	for _, e := range g.enemies {
		if !e.Active {
			continue
		}
		switch e.Kind {
		case EnemyPlane:
			// Planes store their top edge; draw the full sprite.
			v.dst.DrawRectColor(v.rect(core.Box{X: e.X, Y: e.Y + e.H, W: e.W, H: e.H}), PlaneChar, core.ColorPlane)
		case EnemyGround2:
			v.dst.DrawRectColor(v.rect(e.HitBox()), EnemyChar, core.ColorDanger)
		default:
			v.dst.DrawRectColor(v.rect(e.HitBox()), EnemyChar, core.ColorEnemy)
		}
	}
}

func (g *Game) drawBoss(v view) {
	r := v.rect(g.boss.HitBox())
	v.dst.DrawRectColor(r, BossChar, core.ColorBoss)
	label := "BOSS"
	v.dst.DrawTextColor(r.X+(r.W-len(label))/2, r.Y, label, core.ColorLabel)
}

func (g *Game) drawProjectiles(v view) {
	for _, p := range g.bullets {
		r := v.rect(p.HitBox())
		v.dst.SetColor(r.X, r.Y, BulletChar, core.ColorBullet)
	}
	for _, p := range g.gossips {
		r := v.rect(p.HitBox())
		v.dst.SetColor(r.X, r.Y, GossipChar, core.ColorGossip)
	}
}

func (g *Game) drawPickups(v view) {
	h := g.pickup
	v.dst.DrawRectColor(v.rect(core.Box{X: h.X, Y: h.Y + h.Float + h.Size, W: h.Size, H: h.Size}), HealthChar, core.ColorHealth)

	for _, p := range g.powerUps {
		ch, c := ShieldChar, core.ColorBrightBlue
		if p.Type == PowerMagnet {
			ch, c = MagnetChar, core.ColorBrightRed
		}
		v.dst.DrawRectColor(v.rect(core.Box{X: p.X, Y: p.Y + p.Float + p.Size, W: p.Size, H: p.Size}), ch, c)
	}
}

// drawHUD draws score, distance, health and timers along the top rows.
func (g *Game) drawHUD(dst *core.Screen) {
	stats := fmt.Sprintf(" Score: %d  Distance: %.1f m  High: %.1f m ", g.score, g.distance, g.highScore)
	dst.DrawText(2, 0, stats)

	diff := fmt.Sprintf(" [%s] ", g.preset)
	dst.DrawTextColor(dst.Width()-len(diff)-2, 0, diff, core.ColorGray)

	maxHP := max(1, g.cfg.Runner.MaxHealth)
	filled := g.health * healthBarWidth / maxHP
	color := core.ColorHealth
	switch {
	case g.health*4 <= maxHP:
		color = core.ColorDanger
	case g.health*2 <= maxHP:
		color = core.ColorWarning
	}
	dst.DrawText(2, 1, " HP ")
	dst.DrawTextColor(6, 1, strings.Repeat("█", filled), color)
	dst.DrawTextColor(6+filled, 1, strings.Repeat("░", healthBarWidth-filled), core.ColorRed)
	dst.DrawText(7+healthBarWidth, 1, fmt.Sprintf("%3d", g.health))

	right := dst.Width() - 2
	if g.active != nil {
		left := (g.active.ExpiresAt - g.now).Seconds()
		text := fmt.Sprintf(" %s %.1fs ", strings.ToUpper(g.active.Type.String()), math.Max(0, left))
		dst.DrawTextColor(right-len(text), 1, text, core.ColorBrightCyan)
	}

	if g.bossPhase == BossActive {
		remaining := g.boss.Remaining(g.now)
		cells := 0
		if g.boss.Duration > 0 {
			cells = int(float64(healthBarWidth) * float64(remaining) / float64(g.boss.Duration))
		}
		bar := " BOSS " + strings.Repeat("▰", cells) + strings.Repeat("▱", healthBarWidth-cells) +
			fmt.Sprintf(" %.1fs ", remaining.Seconds())
		dst.DrawTextColor(right-utf8.RuneCountInString(bar), 2, bar, core.ColorBoss)
	}
}

// drawMessageBox draws a box with a title and lines in the center.
func (g *Game) drawMessageBox(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len(title)
	for _, l := range lines {
		boxW = max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorLabel)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len(l))/2, boxY+3+i, l)
	}
}
