package dash

import (
	"math"

	"github.com/vovakirdan/dash-arcade/internal/core"
)

// PlayerView is the read-only player pose.
type PlayerView struct {
	Box      core.Box // Screen-space x, world y
	VY       float64
	Grounded bool
	Rotation float64
}

// BossView is the read-only boss state.
type BossView struct {
	Box       core.Box
	Health    int
	MaxHealth int
	State     BossState
	Flashing  bool
	FlashLeft int // Invulnerability ticks left
	Facing    int
}

// Snapshot is a deep copy of everything the presentation layer may read.
type Snapshot struct {
	Tick      uint64
	Mode      Mode
	Score     int
	Best      int
	Muted     bool
	Camera    float64
	Player    PlayerView
	Obstacles []Obstacle // World coordinates
	Boss      *BossView  // nil before the encounter
	Particles []Particle // World coordinates
}

// Snapshot returns the current state. Modifying the result does not affect the game.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   g.tick,
		Mode:   g.mode,
		Score:  g.score,
		Best:   g.best,
		Muted:  g.muted,
		Camera: g.camera,
		Player: PlayerView{
			Box:      g.player.Box(),
			VY:       g.player.VY,
			Grounded: g.player.Grounded,
			Rotation: g.player.Rotation,
		},
	}

	if g.field != nil {
		snap.Obstacles = make([]Obstacle, g.field.Len())
		copy(snap.Obstacles, g.field.Items())
	}
	if g.particles != nil {
		snap.Particles = g.particles.Particles()
	}
	if g.boss != nil {
		snap.Boss = &BossView{
			Box:       g.boss.Box,
			Health:    g.boss.Health,
			MaxHealth: g.boss.MaxHealth,
			State:     g.boss.State,
			Flashing:  g.boss.Flash.Flashing(),
			FlashLeft: g.boss.Flash.Remaining(),
			Facing:    g.boss.Facing,
		}
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Mode)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Best)  //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Camera)
	h = hashBox(h, snap.Player.Box)
	h = h*31 + math.Float64bits(snap.Player.VY)
	h = h*31 + math.Float64bits(snap.Player.Rotation)

	for _, o := range snap.Obstacles {
		h = h*31 + o.ID
		h = h*31 + uint64(o.Kind) //#nosec G115 -- hash computation
		h = hashBox(h, o.Box)
	}

	if snap.Boss != nil {
		h = hashBox(h, snap.Boss.Box)
		h = h*31 + uint64(snap.Boss.Health) //#nosec G115 -- hash computation
		h = h*31 + uint64(snap.Boss.State)  //#nosec G115 -- hash computation
	}

	for _, p := range snap.Particles {
		h = h*31 + math.Float64bits(p.X)
		h = h*31 + math.Float64bits(p.Y)
		h = h*31 + uint64(p.Life) //#nosec G115 -- hash computation
	}

	return h
}

func hashBox(h uint64, b core.Box) uint64 {
	h = h*31 + math.Float64bits(b.X)
	h = h*31 + math.Float64bits(b.Y)
	h = h*31 + math.Float64bits(b.W)
	return h*31 + math.Float64bits(b.H)
}
