package dash

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/dash-arcade/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '■'
	SpikeChar    = '▲'
	PlatformChar = '▬'
	OrbChar      = '●'
	PortalChar   = '║'
	BossChar     = '█'
	BossEyeChar  = '◉'
	ParticleChar = '·'
	GroundChar   = '═'
	HeartChar    = '♥'
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// viewport maps world units onto screen cells.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	return viewport{
		sx:  float64(dst.Width()) / worldW,
		sy:  float64(dst.Height()-hudRows) / worldH,
		top: hudRows,
	}
}

func (v viewport) x(wx float64) int { return int(math.Floor(wx * v.sx)) }
func (v viewport) y(wy float64) int { return v.top + int(math.Floor(wy*v.sy)) }

// rect projects a box, keeping at least one cell on each axis.
func (v viewport) rect(b core.Box) core.Rect {
	x, y := v.x(b.X), v.y(b.Y)
	w := core.Max(1, v.x(b.Right())-x)
	h := core.Max(1, v.y(b.Bottom())-y)
	return core.NewRect(x, y, w, h)
}

// Render draws the current state into dst. It reads only a Snapshot and
// never changes the simulation.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()
	vp := newViewport(dst, g.cfg.World.Width, g.cfg.World.Height)

	dst.DrawHLine(0, vp.y(g.cfg.World.GroundY), dst.Width(), GroundChar, core.ColorGray)

	if snap.Boss == nil {
		for _, o := range snap.Obstacles {
			g.drawObstacle(dst, o.Kind, vp.rect(o.Box.Shift(-snap.Camera, 0)), o.Color)
		}
	} else {
		g.drawBoss(dst, vp, snap)
	}

	for _, p := range snap.Particles {
		dst.SetColored(vp.x(p.X-snap.Camera), vp.y(p.Y), ParticleChar, p.Color)
	}

	g.drawPlayer(dst, vp, snap.Player)
	g.drawHUD(dst, snap)

	switch snap.Mode {
	case ModeMenu:
		drawCenteredMessage(dst, g.variant.Title, "Press Enter to start")
	case ModePaused:
		drawCenteredMessage(dst, "PAUSED", "P resume  |  B menu")
	case ModeGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R restart  |  B menu", snap.Score))
	case ModeVictory:
		drawCenteredMessage(dst, "VICTORY", fmt.Sprintf("Score: %d  |  C continue", snap.Score))
	}
}

func (g *Game) drawObstacle(dst *core.Screen, kind Kind, r core.Rect, c core.Color) {
	if r.Right() < 0 || r.X >= dst.Width() {
		return
	}

	switch kind {
	case KindSpike:
		dst.DrawRect(r, SpikeChar, c)
	case KindPlatform:
		dst.DrawHLine(r.X, r.Y, r.W, PlatformChar, c)
	case KindOrb:
		dst.SetColored(r.X+r.W/2, r.Y+r.H/2, OrbChar, c)
	case KindPortal:
		for y := r.Y; y < r.Bottom(); y++ {
			dst.SetColored(r.X, y, PortalChar, c)
			dst.SetColored(r.Right()-1, y, PortalChar, c)
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen, vp viewport, p PlayerView) {
	dst.DrawRect(vp.rect(p.Box), PlayerChar, g.playerColor)
}

func (g *Game) drawBoss(dst *core.Screen, vp viewport, snap Snapshot) {
	b := snap.Boss
	if b.Health <= 0 {
		return
	}
	// Blink while invulnerable
	if b.Flashing && (b.FlashLeft/5)%2 == 1 {
		return
	}

	r := vp.rect(b.Box)
	dst.DrawRect(r, BossChar, g.bossColor)

	eyeX := r.X
	if b.Facing > 0 {
		eyeX = r.Right() - 1
	}
	dst.SetColored(eyeX, r.Y, BossEyeChar, core.ColorBrightWhite)
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.Best))

	right := ""
	if snap.Boss != nil {
		right = fmt.Sprintf("BOSS %s ", strings.Repeat(string(HeartChar), snap.Boss.Health))
	}
	if snap.Muted {
		right += "[muted]"
	}
	if right != "" {
		x := dst.Width() - utf8.RuneCountInString(right) - 1
		dst.DrawTextColored(x, 0, right, core.ColorBrightRed)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := utf8.RuneCountInString(title)
	subLen := utf8.RuneCountInString(subtitle)

	boxW := core.Max(titleLen, subLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-subLen)/2, boxY+3, subtitle)
}
