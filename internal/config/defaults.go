package config

import (
	_ "embed"
)

//go:embed defaults/dash.yaml
var defaultDashYAML []byte

// DefaultDashConfig returns the built-in dash configuration.
// It mirrors defaults/dash.yaml and is used when the embedded file cannot be parsed.
func DefaultDashConfig() DashConfig {
	return DashConfig{
		World: WorldConfig{
			Width:       800,
			Height:      400,
			GroundY:     370,
			ScrollSpeed: 5,
		},
		Physics: PhysicsConfig{
			Gravity:      0.6,
			JumpPower:    -12,
			RotationStep: 5,
		},
		Player: PlayerConfig{
			X:      100,
			Width:  30,
			Height: 30,
			Color:  "bright_green",
		},
		Obstacles: ObstacleConfig{
			FirstX:           800,
			Spacing:          200,
			Jitter:           100,
			Batch:            20,
			Lookahead:        1000,
			PruneMargin:      200,
			LandingTolerance: 10,
			Kinds: KindsConfig{
				Spike:    KindConfig{Threshold: 0.4, Width: 30, Height: 30, MinY: 340, MaxY: 340, Color: "red"},
				Platform: KindConfig{Threshold: 0.7, Width: 100, Height: 20, MinY: 200, MaxY: 280, Color: "cyan"},
				Orb:      KindConfig{Threshold: 0.9, Width: 25, Height: 25, MinY: 150, MaxY: 300, Color: "yellow"},
				Portal:   KindConfig{Threshold: 1.0, Width: 40, Height: 300, MinY: 70, MaxY: 70, Color: "magenta"},
			},
		},
		Boss: BossConfig{
			TriggerScore:    500,
			Width:           80,
			Height:          80,
			MaxHealth:       10,
			Speed:           2,
			FleeSpeed:       6,
			FleeTicks:       120,
			FlashTicks:      90,
			PatrolOffset:    200,
			ReturnTolerance: 5,
			StompTolerance:  20,
			StompBounce:     -10,
			Color:           "orange",
		},
		Particles: ParticleConfig{
			Max:       256,
			Life:      30,
			Gravity:   0.2,
			SpreadX:   2,
			LiftY:     4,
			JumpCount: 8,
			HitCount:  20,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDashYAML
}
