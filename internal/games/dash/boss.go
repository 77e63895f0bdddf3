package dash

import (
	"math"

	bt "github.com/joeycumines/go-behaviortree"

	"github.com/vovakirdan/dash-arcade/internal/config"
	"github.com/vovakirdan/dash-arcade/internal/core"
)

// BossState is the boss's behavioral state.
type BossState int

const (
	BossAttacking BossState = iota // Chase the player
	BossFleeing                    // Run right until the flee timer expires
	BossReturning                  // Walk back to the patrol anchor
)

var bossStateNames = [...]string{"attacking", "fleeing", "returning"}

// String returns the lowercase state name.
func (s BossState) String() string {
	if s < 0 || int(s) >= len(bossStateNames) {
		return "unknown"
	}
	return bossStateNames[s]
}

// Invulnerability is a countdown during which the boss ignores stomps.
// It runs independently of BossState.
type Invulnerability struct {
	remaining int
}

// Engage starts (or restarts) the countdown.
func (i *Invulnerability) Engage(ticks int) {
	i.remaining = ticks
}

// Tick counts down by one, stopping at zero.
func (i *Invulnerability) Tick() {
	if i.remaining > 0 {
		i.remaining--
	}
}

// Flashing reports whether the countdown is still running.
func (i Invulnerability) Flashing() bool {
	return i.remaining > 0
}

// Remaining returns the ticks left.
func (i Invulnerability) Remaining() int {
	return i.remaining
}

// Boss is the end-of-run adversary.
type Boss struct {
	Box       core.Box
	Health    int
	MaxHealth int
	Facing    int // -1 left, +1 right
	State     BossState
	FleeTimer int
	Flash     Invulnerability
	Active    bool

	cfg     config.BossConfig
	patrolX float64
	targetX float64 // Player center x for the current tick
	tree    bt.Node
}

// NewBoss spawns a boss off-screen to the right, resting on the ground.
func NewBoss(cfg config.DashConfig) *Boss {
	b := &Boss{
		Box: core.NewBox(
			cfg.World.Width,
			cfg.World.GroundY-cfg.Boss.Height,
			cfg.Boss.Width,
			cfg.Boss.Height,
		),
		Health:    cfg.Boss.MaxHealth,
		MaxHealth: cfg.Boss.MaxHealth,
		Facing:    -1,
		State:     BossAttacking,
		Active:    true,
		cfg:       cfg.Boss,
		patrolX:   cfg.PatrolX(),
	}

	b.tree = bt.New(
		bt.Selector,
		bt.New(bt.Sequence, condition(b.isFleeing), action(b.flee)),
		bt.New(bt.Sequence, condition(b.isReturning), action(b.goHome)),
		action(b.chase),
	)

	return b
}

// condition wraps a predicate as a leaf node.
func condition(fn func() bool) bt.Node {
	return bt.New(func([]bt.Node) (bt.Status, error) {
		if fn() {
			return bt.Success, nil
		}
		return bt.Failure, nil
	})
}

// action wraps a movement step as a leaf node that always succeeds.
func action(fn func()) bt.Node {
	return bt.New(func([]bt.Node) (bt.Status, error) {
		fn()
		return bt.Success, nil
	})
}

// Update runs one tick of boss movement toward or away from playerCenterX,
// then counts down invulnerability.
func (b *Boss) Update(playerCenterX float64) error {
	if !b.Active {
		return nil
	}

	b.targetX = playerCenterX
	if _, err := b.tree.Tick(); err != nil {
		return err
	}
	b.Flash.Tick()
	return nil
}

func (b *Boss) isFleeing() bool   { return b.State == BossFleeing }
func (b *Boss) isReturning() bool { return b.State == BossReturning }

func (b *Boss) flee() {
	b.Facing = 1
	b.Box.X += b.cfg.FleeSpeed
	b.FleeTimer--
	if b.FleeTimer <= 0 {
		b.FleeTimer = 0
		b.State = BossReturning
	}
}

func (b *Boss) goHome() {
	diff := b.patrolX - b.Box.X
	if diff < 0 {
		b.Facing = -1
	} else if diff > 0 {
		b.Facing = 1
	}
	b.Box.X += float64(b.Facing) * math.Min(b.cfg.Speed, math.Abs(diff))

	if math.Abs(b.patrolX-b.Box.X) <= b.cfg.ReturnTolerance {
		b.State = BossAttacking
	}
}

func (b *Boss) chase() {
	switch d := b.Box.CenterX() - b.targetX; {
	case d > 0:
		b.Facing = -1
	case d < 0:
		b.Facing = 1
	default:
		return
	}
	b.Box.X += float64(b.Facing) * b.cfg.Speed
}

// IsStomp reports whether a player box moving with vy lands on the boss
// from above: boxes overlap, the player is falling and its feet are within
// StompTolerance of the boss's top edge.
func (b *Boss) IsStomp(player core.Box, vy float64) bool {
	if !player.Intersects(b.Box) || vy <= 0 {
		return false
	}
	return player.Bottom()-b.Box.Y <= b.cfg.StompTolerance
}

// Hit applies a stomp: health drops, invulnerability starts and the boss flees.
// Returns true if the boss was defeated.
func (b *Boss) Hit() bool {
	b.Health--
	b.Flash.Engage(b.cfg.FlashTicks)
	b.State = BossFleeing
	b.FleeTimer = b.cfg.FleeTicks

	if b.Health <= 0 {
		b.Health = 0
		b.Active = false
		return true
	}
	return false
}

// PatrolX returns the x the boss returns to after fleeing.
func (b *Boss) PatrolX() float64 {
	return b.patrolX
}
