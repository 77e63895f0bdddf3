// Package config provides YAML-based configuration for the dash simulation:
// world geometry, physics constants, the obstacle probability table and
// boss tuning.
package config

import (
	"fmt"

	"github.com/vovakirdan/dash-arcade/internal/core"
)

// DashConfig contains all configuration for the dash simulation.
type DashConfig struct {
	World     WorldConfig    `yaml:"world"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Boss      BossConfig     `yaml:"boss"`
	Particles ParticleConfig `yaml:"particles"`
}

// WorldConfig defines the logical play area. All simulation coordinates are
// in these units; the platform scales them onto the terminal.
type WorldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	GroundY     float64 `yaml:"ground_y"`
	ScrollSpeed float64 `yaml:"scroll_speed"` // Camera advance per tick
}

// PhysicsConfig defines the vertical integrator constants.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpPower    float64 `yaml:"jump_power"`    // Negative = up
	RotationStep float64 `yaml:"rotation_step"` // Degrees per tick, cosmetic
}

// PlayerConfig defines the avatar.
type PlayerConfig struct {
	X      float64 `yaml:"x"` // Fixed screen-space x
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"`
}

// ObstacleConfig defines generation and streaming of obstacles.
type ObstacleConfig struct {
	FirstX           float64     `yaml:"first_x"`           // World x of the first batch
	Spacing          float64     `yaml:"spacing"`           // Distance between candidates
	Jitter           float64     `yaml:"jitter"`            // Uniform [0, jitter) offset
	Batch            int         `yaml:"batch"`             // Obstacles per streamed batch
	Lookahead        float64     `yaml:"lookahead"`         // Stream when tail is closer than this
	PruneMargin      float64     `yaml:"prune_margin"`      // Drop obstacles this far behind the camera
	LandingTolerance float64     `yaml:"landing_tolerance"` // Platform top band for landings
	Kinds            KindsConfig `yaml:"kinds"`
}

// KindsConfig holds one entry per obstacle kind.
// Thresholds form a cumulative probability table in declaration order.
type KindsConfig struct {
	Spike    KindConfig `yaml:"spike"`
	Platform KindConfig `yaml:"platform"`
	Orb      KindConfig `yaml:"orb"`
	Portal   KindConfig `yaml:"portal"`
}

// KindConfig defines size, vertical placement and selection for one kind.
// When MinY == MaxY the kind is placed at a fixed height.
type KindConfig struct {
	Threshold float64 `yaml:"threshold"` // Cumulative upper bound in [0, 1]
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	MinY      float64 `yaml:"min_y"`
	MaxY      float64 `yaml:"max_y"`
	Color     string  `yaml:"color"`
}

// BossConfig defines the boss encounter.
type BossConfig struct {
	TriggerScore    int     `yaml:"trigger_score"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	MaxHealth       int     `yaml:"max_health"`
	Speed           float64 `yaml:"speed"`
	FleeSpeed       float64 `yaml:"flee_speed"`
	FleeTicks       int     `yaml:"flee_ticks"`
	FlashTicks      int     `yaml:"flash_ticks"`
	PatrolOffset    float64 `yaml:"patrol_offset"`    // Patrol anchor = world width - offset
	ReturnTolerance float64 `yaml:"return_tolerance"` // Distance at which returning ends
	StompTolerance  float64 `yaml:"stomp_tolerance"`  // Feet band below the boss top
	StompBounce     float64 `yaml:"stomp_bounce"`     // Player VY after a stomp
	Color           string  `yaml:"color"`
}

// ParticleConfig defines the cosmetic particle bag.
type ParticleConfig struct {
	Max       int     `yaml:"max"`
	Life      int     `yaml:"life"`
	Gravity   float64 `yaml:"gravity"`
	SpreadX   float64 `yaml:"spread_x"` // vx uniform in [-spread, spread)
	LiftY     float64 `yaml:"lift_y"`   // vy uniform in [-lift, 0)
	JumpCount int     `yaml:"jump_count"`
	HitCount  int     `yaml:"hit_count"`
}

// PatrolX returns the boss patrol anchor in world units.
func (c DashConfig) PatrolX() float64 {
	return c.World.Width - c.Boss.PatrolOffset
}

// Validate checks the configuration for values the simulation cannot run with.
func (c DashConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world size must be positive, got %gx%g", c.World.Width, c.World.Height)
	}
	if c.World.GroundY <= c.Player.Height || c.World.GroundY > c.World.Height {
		return fmt.Errorf("config: ground_y %g out of range", c.World.GroundY)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("config: player size must be positive")
	}
	if c.Obstacles.Batch < 1 {
		return fmt.Errorf("config: obstacles.batch must be at least 1, got %d", c.Obstacles.Batch)
	}
	if c.Obstacles.Spacing <= 0 || c.Obstacles.Jitter < 0 {
		return fmt.Errorf("config: invalid obstacle spacing %g / jitter %g", c.Obstacles.Spacing, c.Obstacles.Jitter)
	}

	kinds := []struct {
		name string
		k    KindConfig
	}{
		{"spike", c.Obstacles.Kinds.Spike},
		{"platform", c.Obstacles.Kinds.Platform},
		{"orb", c.Obstacles.Kinds.Orb},
		{"portal", c.Obstacles.Kinds.Portal},
	}
	prev := 0.0
	for _, kc := range kinds {
		if kc.k.Threshold <= prev {
			return fmt.Errorf("config: %s threshold %g is not above previous %g", kc.name, kc.k.Threshold, prev)
		}
		if kc.k.Width <= 0 || kc.k.Height <= 0 {
			return fmt.Errorf("config: %s size must be positive", kc.name)
		}
		if kc.k.MaxY < kc.k.MinY {
			return fmt.Errorf("config: %s max_y %g is below min_y %g", kc.name, kc.k.MaxY, kc.k.MinY)
		}
		if _, ok := core.ParseColor(kc.k.Color); !ok {
			return fmt.Errorf("config: %s has unknown color %q", kc.name, kc.k.Color)
		}
		prev = kc.k.Threshold
	}
	if prev != 1 {
		return fmt.Errorf("config: probability table must end at 1, ends at %g", prev)
	}

	if c.Boss.MaxHealth < 1 {
		return fmt.Errorf("config: boss.max_health must be at least 1, got %d", c.Boss.MaxHealth)
	}
	if c.Boss.TriggerScore < 1 {
		return fmt.Errorf("config: boss.trigger_score must be positive, got %d", c.Boss.TriggerScore)
	}
	for _, name := range []string{c.Player.Color, c.Boss.Color} {
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("config: unknown color %q", name)
		}
	}
	if c.Particles.Max < 1 || c.Particles.Life < 1 {
		return fmt.Errorf("config: particles.max and particles.life must be positive")
	}
	return nil
}
