package dash

import (
	"github.com/vovakirdan/dash-arcade/internal/config"
	"github.com/vovakirdan/dash-arcade/internal/core"
)

// Body is the vertical state of an entity under gravity.
type Body struct {
	Y        float64 // Top edge in world units
	VY       float64 // Positive = falling
	H        float64 // Height, used for the ground clamp
	Grounded bool
}

// Integrate advances b by one tick: gravity, position, then ground and ceiling clamps.
func Integrate(b *Body, p config.PhysicsConfig, groundY float64) {
	b.VY += p.Gravity
	b.Y += b.VY

	if b.Y+b.H >= groundY {
		b.Y = groundY - b.H
		b.VY = 0
		b.Grounded = true
	} else {
		b.Grounded = false
	}

	if b.Y <= 0 {
		b.Y = 0
		b.VY = 0
	}
}

// Jump applies the jump impulse. Whether a jump is allowed is decided by the session.
func Jump(b *Body, p config.PhysicsConfig) {
	b.VY = p.JumpPower
	b.Grounded = false
}

// Player is the auto-running avatar. X is fixed in screen space.
type Player struct {
	Body
	X        float64
	W        float64
	Rotation float64 // Degrees, monotonic, cosmetic only
}

// newPlayer places a player at rest on the ground.
func newPlayer(cfg config.DashConfig) Player {
	return Player{
		Body: Body{
			Y:        cfg.World.GroundY - cfg.Player.Height,
			H:        cfg.Player.Height,
			Grounded: true,
		},
		X: cfg.Player.X,
		W: cfg.Player.Width,
	}
}

// Box returns the player's bounding box in screen coordinates.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}
