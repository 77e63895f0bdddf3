package dash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/dash-arcade/internal/config"
	"github.com/vovakirdan/dash-arcade/internal/core"
)

func TestNewBossSpawn(t *testing.T) {
	cfg := config.DefaultDashConfig()
	b := NewBoss(cfg)

	assert.Equal(t, core.NewBox(800, 290, 80, 80), b.Box)
	assert.Equal(t, 10, b.Health)
	assert.Equal(t, 10, b.MaxHealth)
	assert.Equal(t, BossAttacking, b.State)
	assert.True(t, b.Active)
	assert.False(t, b.Flash.Flashing())
	assert.Equal(t, 600.0, b.PatrolX())
}

func TestBossChasesPlayer(t *testing.T) {
	cfg := config.DefaultDashConfig()
	b := NewBoss(cfg)

	require.NoError(t, b.Update(115))
	assert.Equal(t, 798.0, b.Box.X)
	assert.Equal(t, -1, b.Facing)

	b.Box.X = 0 // center 40, player to the right
	require.NoError(t, b.Update(115))
	assert.Equal(t, 2.0, b.Box.X)
	assert.Equal(t, 1, b.Facing)

	b.Box.X = 75 // centered on the player
	require.NoError(t, b.Update(115))
	assert.Equal(t, 75.0, b.Box.X)
}

func TestBossIsStomp(t *testing.T) {
	cfg := config.DefaultDashConfig()
	b := NewBoss(cfg)
	b.Box.X = 600

	tests := []struct {
		name   string
		player core.Box
		vy     float64
		want   bool
	}{
		{"falling onto top", core.NewBox(610, 265, 30, 30), 3, true},
		{"rising into top", core.NewBox(610, 265, 30, 30), -1, false},
		{"feet too deep", core.NewBox(610, 300, 30, 30), 3, false},
		{"no overlap", core.NewBox(500, 265, 30, 30), 3, false},
		{"touching top edge", core.NewBox(610, 260, 30, 30), 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, b.IsStomp(tc.player, tc.vy))
		})
	}
}

func TestBossHitFleeReturn(t *testing.T) {
	cfg := config.DefaultDashConfig()
	b := NewBoss(cfg)
	b.Box.X = cfg.PatrolX()

	defeated := b.Hit()
	require.False(t, defeated)
	assert.Equal(t, 9, b.Health)
	assert.Equal(t, BossFleeing, b.State)
	assert.Equal(t, 120, b.FleeTimer)
	assert.True(t, b.Flash.Flashing())

	// Fleeing ignores the player and runs right at flee speed
	for i := 0; i < 119; i++ {
		require.NoError(t, b.Update(0))
	}
	assert.Equal(t, BossFleeing, b.State)
	assert.Equal(t, 1, b.Facing)
	assert.InDelta(t, 600+119*6.0, b.Box.X, 1e-9)
	assert.False(t, b.Flash.Flashing(), "flash (90) ends before flee (120)")

	require.NoError(t, b.Update(0))
	assert.Equal(t, BossReturning, b.State)

	ticks := 0
	for b.State == BossReturning && ticks < 1000 {
		require.NoError(t, b.Update(0))
		ticks++
	}
	require.Equal(t, BossAttacking, b.State)
	assert.LessOrEqual(t, b.Box.X-b.PatrolX(), cfg.Boss.ReturnTolerance)
	assert.InDelta(t, 720/2.0, float64(ticks), 3)
}

func TestBossFlashCountdown(t *testing.T) {
	cfg := config.DefaultDashConfig()
	b := NewBoss(cfg)
	b.Hit()

	for i := 0; i < cfg.Boss.FlashTicks-1; i++ {
		require.NoError(t, b.Update(0))
	}
	assert.True(t, b.Flash.Flashing())
	assert.Equal(t, 1, b.Flash.Remaining())

	require.NoError(t, b.Update(0))
	assert.False(t, b.Flash.Flashing())
}

func TestInvulnerabilityStopsAtZero(t *testing.T) {
	var inv Invulnerability
	inv.Tick()
	assert.False(t, inv.Flashing())

	inv.Engage(2)
	inv.Tick()
	assert.True(t, inv.Flashing())
	inv.Tick()
	inv.Tick()
	assert.False(t, inv.Flashing())
	assert.Zero(t, inv.Remaining())
}

func TestBossDefeat(t *testing.T) {
	cfg := config.DefaultDashConfig()
	cfg.Boss.MaxHealth = 1
	b := NewBoss(cfg)

	assert.True(t, b.Hit())
	assert.False(t, b.Active)
	assert.Zero(t, b.Health)

	x := b.Box.X
	require.NoError(t, b.Update(0))
	assert.Equal(t, x, b.Box.X, "inactive boss does not move")
}

func TestBossStateString(t *testing.T) {
	assert.Equal(t, "attacking", BossAttacking.String())
	assert.Equal(t, "fleeing", BossFleeing.String())
	assert.Equal(t, "returning", BossReturning.String())
}
