package dash

import (
	"math/rand"

	"github.com/vovakirdan/dash-arcade/internal/config"
	"github.com/vovakirdan/dash-arcade/internal/core"
)

// Particle is a short-lived cosmetic point in world coordinates.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int // Ticks remaining
	Color  core.Color
}

// ParticleSystem is an unordered, bounded bag of particles.
// When full, new particles overwrite existing ones in a circular order.
type ParticleSystem struct {
	items  []Particle
	cursor int // Next slot to overwrite when full
	cfg    config.ParticleConfig
}

// NewParticleSystem creates an empty particle bag.
func NewParticleSystem(cfg config.ParticleConfig) *ParticleSystem {
	return &ParticleSystem{
		items: make([]Particle, 0, max(cfg.Max, 0)),
		cfg:   cfg,
	}
}

// Burst spawns n particles at (x, y) with random velocities.
func (ps *ParticleSystem) Burst(x, y float64, color core.Color, n int, rng *rand.Rand) {
	for i := 0; i < n; i++ {
		ps.add(Particle{
			X:     x,
			Y:     y,
			VX:    (rng.Float64()*2 - 1) * ps.cfg.SpreadX,
			VY:    -rng.Float64() * ps.cfg.LiftY,
			Life:  ps.cfg.Life,
			Color: color,
		})
	}
}

func (ps *ParticleSystem) add(p Particle) {
	if ps.cfg.Max < 1 {
		return
	}
	if len(ps.items) < ps.cfg.Max {
		ps.items = append(ps.items, p)
		return
	}
	ps.items[ps.cursor%len(ps.items)] = p
	ps.cursor = (ps.cursor + 1) % len(ps.items)
}

// Shift moves every live particle horizontally by dx.
func (ps *ParticleSystem) Shift(dx float64) {
	for i := range ps.items {
		ps.items[i].X += dx
	}
}

// Step moves every particle one tick and drops the expired ones.
func (ps *ParticleSystem) Step() {
	alive := ps.items[:0]
	for _, p := range ps.items {
		p.X += p.VX
		p.Y += p.VY
		p.VY += ps.cfg.Gravity
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	if len(alive) < len(ps.items) {
		ps.cursor = 0
	}
	ps.items = alive
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.items)
}

// Particles returns a copy of the live particles.
func (ps *ParticleSystem) Particles() []Particle {
	out := make([]Particle, len(ps.items))
	copy(out, ps.items)
	return out
}

// Clear removes all particles.
func (ps *ParticleSystem) Clear() {
	ps.items = ps.items[:0]
	ps.cursor = 0
}
