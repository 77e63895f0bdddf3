package dash

import (
	"github.com/vovakirdan/dash-arcade/internal/config"
)

// CollisionOutcome summarizes what the obstacle walk did to the player.
type CollisionOutcome struct {
	Lethal   bool     // A spike was touched
	Consumed []uint64 // Orbs consumed this tick, in walk order
	Landed   bool     // Player was snapped onto a platform
}

// Resolve tests the player against every active obstacle in id order and
// applies the per-kind reaction. Obstacle boxes are made camera-relative
// before testing. The walk stops at the first spike.
func Resolve(p *Player, field *ObstacleField, camera float64, cfg config.DashConfig) CollisionOutcome {
	var out CollisionOutcome

	for _, o := range field.Items() {
		box := o.Box.Shift(-camera, 0)
		if !p.Box().Intersects(box) {
			continue
		}

		switch o.Kind {
		case KindSpike:
			out.Lethal = true
		case KindOrb:
			p.VY = cfg.Physics.JumpPower
			p.Grounded = false
			out.Consumed = append(out.Consumed, o.ID)
		case KindPlatform:
			if landsOn(p, box.Y, cfg.Obstacles.LandingTolerance) {
				p.Y = box.Y - p.H
				p.VY = 0
				p.Grounded = true
				out.Landed = true
			}
		case KindPortal:
			// Decorative.
		}

		if out.Lethal {
			break
		}
	}

	for _, id := range out.Consumed {
		field.Remove(id)
	}

	return out
}

// landsOn reports whether a falling player's feet are within tolerance of top.
func landsOn(p *Player, top, tolerance float64) bool {
	if p.VY <= 0 {
		return false
	}
	sink := p.Y + p.H - top
	return sink >= 0 && sink <= tolerance
}
