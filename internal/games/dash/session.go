package dash

import (
	"github.com/vovakirdan/dash-arcade/internal/core"
)

// Mode is the session-level state.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModePaused
	ModeGameOver
	ModeBossFight
	ModeVictory
)

var modeNames = [...]string{"menu", "playing", "paused", "gameOver", "bossFight", "victory"}

// String returns the mode name.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// Active reports whether ticks advance the simulation in this mode.
func (m Mode) Active() bool {
	return m == ModePlaying || m == ModeBossFight
}

// Handle applies an input intent between ticks. Intents that make no sense
// in the current mode are ignored. Returns true if the intent changed anything.
func (g *Game) Handle(a core.Action) bool {
	switch a {
	case core.ActionStart:
		if g.mode != ModeMenu {
			return false
		}
		g.initSession()
		g.mode = ModePlaying

	case core.ActionPause:
		if !g.mode.Active() {
			return false
		}
		g.resumeMode = g.mode
		g.mode = ModePaused

	case core.ActionResume:
		if g.mode != ModePaused {
			return false
		}
		g.mode = g.resumeMode

	case core.ActionRestart:
		if g.mode != ModeGameOver && g.mode != ModeVictory {
			return false
		}
		g.initSession()
		g.mode = ModePlaying

	case core.ActionContinue:
		if g.mode != ModeVictory {
			return false
		}
		g.initSession()
		g.mode = ModePlaying

	case core.ActionBack:
		if g.mode != ModeGameOver && g.mode != ModePaused {
			return false
		}
		g.mode = ModeMenu

	case core.ActionMute:
		g.muted = !g.muted

	case core.ActionJump:
		if !g.mode.Active() {
			return false
		}
		Jump(&g.player.Body, g.cfg.Physics)
		g.particles.Burst(
			g.camera+g.player.Box().CenterX(),
			g.player.Box().Bottom(),
			g.playerColor,
			g.cfg.Particles.JumpCount,
			g.rng,
		)

	default:
		return false
	}
	return true
}

// Step advances the simulation by one tick. Outside playing and bossFight
// it only reports state.
func (g *Game) Step() core.StepResult {
	switch g.mode {
	case ModePlaying:
		g.stepPlaying()
	case ModeBossFight:
		g.stepBossFight()
	}

	events := g.events
	g.events = nil
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) advanceCommon() {
	g.tick++
	g.score++
	if g.score > g.best {
		g.best = g.score
	}
	g.player.Rotation += g.cfg.Physics.RotationStep
}

func (g *Game) stepPlaying() {
	g.camera += g.cfg.World.ScrollSpeed
	g.advanceCommon()

	Integrate(&g.player.Body, g.cfg.Physics, g.cfg.World.GroundY)

	out := Resolve(&g.player, g.field, g.camera, g.cfg)
	for _, id := range out.Consumed {
		g.emit("orb_consumed", "id", id, "score", g.score)
	}
	if out.Lethal {
		g.finish(ModeGameOver, "cause", "spike")
	}

	g.particles.Step()

	if g.mode != ModePlaying {
		return
	}

	if _, err := g.field.Stream(g.camera); err != nil {
		g.emit("generate_failed", "err", err)
	}
	g.field.Prune(g.camera)

	if g.variant.BossEnabled && !g.bossTriggered && g.score >= g.cfg.Boss.TriggerScore {
		g.spawnBoss()
	}
}

func (g *Game) spawnBoss() {
	g.bossTriggered = true
	g.boss = NewBoss(g.cfg)
	// Particles are in world space; keep them where they were on screen.
	g.particles.Shift(-g.camera)
	g.camera = 0
	g.mode = ModeBossFight
	g.emit("boss_spawned", "score", g.score, "x", g.boss.Box.X, "health", g.boss.Health)
}

func (g *Game) stepBossFight() {
	g.advanceCommon()

	if err := g.boss.Update(g.player.Box().CenterX()); err != nil {
		g.emit("boss_ai_failed", "err", err)
	}

	Integrate(&g.player.Body, g.cfg.Physics, g.cfg.World.GroundY)

	g.resolveBoss()

	g.particles.Step()
}

// resolveBoss applies stomp hits and lethal contact. Camera is frozen at 0
// during the fight, so screen and world coordinates coincide.
func (g *Game) resolveBoss() {
	b := g.boss
	pbox := g.player.Box()
	if !b.Active || !pbox.Intersects(b.Box) {
		return
	}

	stomp := b.IsStomp(pbox, g.player.VY)
	switch {
	case stomp && !b.Flash.Flashing():
		defeated := b.Hit()
		g.player.VY = g.cfg.Boss.StompBounce
		g.player.Grounded = false
		g.particles.Burst(pbox.CenterX(), b.Box.Y, g.bossColor, g.cfg.Particles.HitCount, g.rng)
		g.emit("boss_hit", "health", b.Health, "score", g.score)
		if defeated {
			g.finish(ModeVictory)
		}
	case !stomp && b.State == BossAttacking && !b.Flash.Flashing():
		g.finish(ModeGameOver, "cause", "boss")
	}
}

// finish ends the session in gameOver or victory.
func (g *Game) finish(m Mode, attrs ...any) {
	g.mode = m
	g.emit(m.String(), append([]any{"score", g.score, "ticks", g.tick}, attrs...)...)
}
