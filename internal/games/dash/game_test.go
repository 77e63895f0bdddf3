package dash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/dash-arcade/internal/config"
	"github.com/vovakirdan/dash-arcade/internal/core"
	"github.com/vovakirdan/dash-arcade/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func newTestGame(t *testing.T, v Variant) *Game {
	t.Helper()
	g := NewWithConfig(v, config.DefaultDashConfig())
	g.Reset(testRuntime(42))
	return g
}

// startClear starts a session and removes every obstacle. The first batch
// tail stays far ahead, so nothing new streams in for several hundred ticks.
func startClear(t *testing.T, g *Game) {
	t.Helper()
	require.True(t, g.Handle(core.ActionStart))
	g.field.items = g.field.items[:0]
}

func stepN(g *Game, n int) []core.Event {
	var events []core.Event
	for i := 0; i < n; i++ {
		events = append(events, g.Step().Events...)
	}
	return events
}

func eventNames(events []core.Event) []string {
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = e.Name
	}
	return names
}

func TestVariantsRegistered(t *testing.T) {
	for _, v := range Variants() {
		g, err := registry.Create(v.ID)
		require.NoError(t, err)
		assert.Equal(t, v.ID, g.ID())
		assert.Equal(t, v.Title, g.Title())

		found, ok := LookupVariant(v.ID)
		assert.True(t, ok)
		assert.Equal(t, v, found)
	}

	_, ok := LookupVariant("pong")
	assert.False(t, ok)
}

func TestResetStartsInMenu(t *testing.T) {
	g := newTestGame(t, BossRun)

	assert.Equal(t, ModeMenu, g.Mode())
	assert.False(t, g.State().Running)

	res := g.Step()
	assert.Zero(t, res.State.Score, "menu does not tick")
	assert.Equal(t, "menu", res.State.Mode)
}

func TestJumpIgnoredOutsidePlay(t *testing.T) {
	g := newTestGame(t, Classic)

	assert.False(t, g.Handle(core.ActionJump))
	assert.Zero(t, g.player.VY)
	assert.Zero(t, g.particles.Len())
}

func TestJumpInPlay(t *testing.T) {
	g := newTestGame(t, Classic)
	startClear(t, g)

	require.True(t, g.Handle(core.ActionJump))
	assert.Equal(t, -12.0, g.player.VY)
	assert.False(t, g.player.Grounded)
	assert.Equal(t, 8, g.particles.Len())

	for _, p := range g.particles.Particles() {
		assert.Equal(t, 115.0, p.X, "jump dust spawns at the player's feet")
		assert.Equal(t, 370.0, p.Y)
	}
}

func TestScoreIncrementsByOne(t *testing.T) {
	g := newTestGame(t, Classic)
	startClear(t, g)

	for i := 1; i <= 100; i++ {
		res := g.Step()
		require.Equal(t, i, res.State.Score)
	}
	assert.Equal(t, 500.0, g.camera)
	assert.Equal(t, uint64(100), g.Ticks())
}

func TestTransitions(t *testing.T) {
	tests := []struct {
		from   Mode
		action core.Action
		ok     bool
		to     Mode
	}{
		{ModeMenu, core.ActionStart, true, ModePlaying},
		{ModeMenu, core.ActionPause, false, ModeMenu},
		{ModeMenu, core.ActionResume, false, ModeMenu},
		{ModeMenu, core.ActionRestart, false, ModeMenu},
		{ModeMenu, core.ActionContinue, false, ModeMenu},
		{ModeMenu, core.ActionBack, false, ModeMenu},

		{ModePlaying, core.ActionStart, false, ModePlaying},
		{ModePlaying, core.ActionPause, true, ModePaused},
		{ModePlaying, core.ActionResume, false, ModePlaying},
		{ModePlaying, core.ActionRestart, false, ModePlaying},
		{ModePlaying, core.ActionBack, false, ModePlaying},
		{ModePlaying, core.ActionJump, true, ModePlaying},

		{ModePaused, core.ActionResume, true, ModePlaying},
		{ModePaused, core.ActionBack, true, ModeMenu},
		{ModePaused, core.ActionPause, false, ModePaused},
		{ModePaused, core.ActionJump, false, ModePaused},
		{ModePaused, core.ActionRestart, false, ModePaused},

		{ModeGameOver, core.ActionRestart, true, ModePlaying},
		{ModeGameOver, core.ActionBack, true, ModeMenu},
		{ModeGameOver, core.ActionContinue, false, ModeGameOver},
		{ModeGameOver, core.ActionJump, false, ModeGameOver},
		{ModeGameOver, core.ActionPause, false, ModeGameOver},

		{ModeVictory, core.ActionContinue, true, ModePlaying},
		{ModeVictory, core.ActionRestart, true, ModePlaying},
		{ModeVictory, core.ActionBack, false, ModeVictory},
		{ModeVictory, core.ActionJump, false, ModeVictory},

		{ModeBossFight, core.ActionPause, true, ModePaused},
		{ModeBossFight, core.ActionStart, false, ModeBossFight},
		{ModeBossFight, core.ActionBack, false, ModeBossFight},

		{ModePlaying, core.ActionQuit, false, ModePlaying},
		{ModePlaying, core.ActionNone, false, ModePlaying},
	}

	for _, tc := range tests {
		t.Run(tc.from.String()+"/"+tc.action.String(), func(t *testing.T) {
			g := newTestGame(t, BossRun)
			g.mode = tc.from
			g.resumeMode = ModePlaying

			assert.Equal(t, tc.ok, g.Handle(tc.action))
			assert.Equal(t, tc.to, g.Mode())
		})
	}
}

func TestMuteTogglesInAnyMode(t *testing.T) {
	for _, m := range []Mode{ModeMenu, ModePlaying, ModePaused, ModeGameOver, ModeBossFight, ModeVictory} {
		g := newTestGame(t, BossRun)
		g.mode = m

		assert.True(t, g.Handle(core.ActionMute))
		assert.True(t, g.Muted())
		assert.Equal(t, m, g.Mode(), "mute does not change mode")
		assert.True(t, g.Handle(core.ActionMute))
		assert.False(t, g.Muted())
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, Classic)
	startClear(t, g)
	stepN(g, 10)

	require.True(t, g.Handle(core.ActionPause))
	before := g.Snapshot()
	stepN(g, 50)
	after := g.Snapshot()
	assert.Equal(t, before.Hash(), after.Hash())
	assert.True(t, g.State().Paused)

	require.True(t, g.Handle(core.ActionResume))
	assert.Equal(t, 11, g.Step().State.Score)
}

func TestPauseResumeReturnsToBossFight(t *testing.T) {
	g := newTestGame(t, BossRun)
	startClear(t, g)
	g.score = 499
	g.Step()
	require.Equal(t, ModeBossFight, g.Mode())

	require.True(t, g.Handle(core.ActionPause))
	require.True(t, g.Handle(core.ActionResume))
	assert.Equal(t, ModeBossFight, g.Mode())
}

// placeSpike puts a spike under the player for the next playing tick.
func placeSpike(g *Game) {
	x := g.camera + g.cfg.World.ScrollSpeed + g.player.X + 5
	g.field.Append([]Obstacle{{Kind: KindSpike, Box: core.NewBox(x, 340, 30, 30)}})
}

func TestSpikeEndsSessionSameTick(t *testing.T) {
	g := newTestGame(t, Classic)
	startClear(t, g)
	stepN(g, 5)

	placeSpike(g)
	orbX := g.camera + g.cfg.World.ScrollSpeed + g.player.X
	g.field.Append([]Obstacle{{Kind: KindOrb, Box: core.NewBox(orbX, 345, 25, 25)}})

	res := g.Step()

	assert.Equal(t, ModeGameOver, g.Mode())
	assert.True(t, res.State.GameOver)
	assert.False(t, res.State.Won)
	assert.Equal(t, 6, res.State.Score)
	assert.Contains(t, eventNames(res.Events), "gameOver")
	assert.NotContains(t, eventNames(res.Events), "orb_consumed")
	assert.Equal(t, 2, g.field.Len())

	// No more ticks after the session ended
	assert.Equal(t, 6, g.Step().State.Score)
}

func TestBestScoreSurvivesRestart(t *testing.T) {
	g := newTestGame(t, Classic)
	startClear(t, g)
	stepN(g, 49)
	placeSpike(g)
	g.Step()
	require.Equal(t, ModeGameOver, g.Mode())
	require.Equal(t, 50, g.Best())

	require.True(t, g.Handle(core.ActionRestart))
	assert.Zero(t, g.Score())
	assert.Equal(t, 50, g.Best())

	g.field.items = g.field.items[:0]
	best := g.Best()
	for i := 0; i < 80; i++ {
		res := g.Step()
		require.GreaterOrEqual(t, res.State.BestScore, best, "best never decreases")
		best = res.State.BestScore
	}
	assert.Equal(t, 80, g.Best())
}

func TestOrbBounceInSession(t *testing.T) {
	g := newTestGame(t, Classic)
	startClear(t, g)

	x := g.cfg.World.ScrollSpeed + g.player.X
	g.field.Append([]Obstacle{{Kind: KindOrb, Box: core.NewBox(x, 345, 25, 25)}})
	id := g.field.Items()[0].ID

	res := g.Step()

	assert.Equal(t, []string{"orb_consumed"}, eventNames(res.Events))
	assert.Equal(t, g.cfg.Physics.JumpPower, g.player.VY)
	_, ok := findID(g.field, id)
	assert.False(t, ok)

	res = g.Step()
	assert.Empty(t, res.Events)
}

func TestPlatformLandingInSession(t *testing.T) {
	g := newTestGame(t, Classic)
	startClear(t, g)

	platformX := g.cfg.World.ScrollSpeed + 90
	g.field.Append([]Obstacle{{Kind: KindPlatform, Box: core.NewBox(platformX, 300, 100, 20)}})

	// From above while falling
	g.player.Y = 272
	g.player.VY = 2
	g.player.Grounded = false
	g.Step()

	assert.Equal(t, 270.0, g.player.Y)
	assert.Zero(t, g.player.VY)
	assert.True(t, g.player.Grounded)

	// Standing still on it over the next ticks
	stepN(g, 3)
	assert.Equal(t, 270.0, g.player.Y)
}

func TestPlatformSideContactDoesNotSnap(t *testing.T) {
	g := newTestGame(t, Classic)
	startClear(t, g)

	platformX := g.cfg.World.ScrollSpeed + 90
	g.field.Append([]Obstacle{{Kind: KindPlatform, Box: core.NewBox(platformX, 300, 100, 20)}})

	g.player.Y = 300
	g.player.VY = 2
	g.player.Grounded = false
	g.Step()

	assert.InDelta(t, 302.6, g.player.Y, 1e-9)
	assert.False(t, g.player.Grounded)
}

func TestStreamingKeepsFieldAhead(t *testing.T) {
	g := newTestGame(t, Classic)
	require.True(t, g.Handle(core.ActionStart))

	for i := 0; i < 2000 && g.Mode() == ModePlaying; i++ {
		g.field.items = g.field.items[:0]
		g.Step()
		require.GreaterOrEqual(t, g.field.TailX()-g.camera, g.cfg.Obstacles.Lookahead)
	}
}

func TestClassicNeverSpawnsBoss(t *testing.T) {
	g := newTestGame(t, Classic)
	startClear(t, g)

	stepN(g, 600)

	assert.Equal(t, ModePlaying, g.Mode())
	assert.Nil(t, g.boss)
	assert.False(t, g.BossReached())
}

func TestBossTriggerAtThreshold(t *testing.T) {
	g := newTestGame(t, BossRun)
	startClear(t, g)

	stepN(g, 499)
	require.Equal(t, ModePlaying, g.Mode())
	require.Nil(t, g.boss)

	res := g.Step()

	assert.Equal(t, ModeBossFight, g.Mode())
	assert.Equal(t, 500, res.State.Score)
	assert.Contains(t, eventNames(res.Events), "boss_spawned")
	require.NotNil(t, g.boss)
	assert.Equal(t, 800.0, g.boss.Box.X)
	assert.Equal(t, 10, g.boss.Health)
	assert.Zero(t, g.camera, "camera is frozen at zero during the encounter")
	assert.True(t, g.BossReached())

	// Score keeps counting in the fight, camera stays put
	res = g.Step()
	assert.Equal(t, 501, res.State.Score)
	assert.Zero(t, g.camera)
}

func TestBossTriggerLatchesOncePerSession(t *testing.T) {
	g := newTestGame(t, BossRun)
	spawns := 0

	for session := 0; session < 2; session++ {
		if session == 0 {
			startClear(t, g)
		} else {
			require.True(t, g.Handle(core.ActionRestart))
			g.field.items = g.field.items[:0]
		}

		for _, name := range eventNames(stepN(g, 500)) {
			if name == "boss_spawned" {
				spawns++
			}
		}
		require.Equal(t, ModeBossFight, g.Mode())
		first := g.boss

		// More ticks in the fight never spawn a second boss
		g.boss.Box.X = 2000
		g.boss.State = BossFleeing
		g.boss.FleeTimer = 1000
		stepN(g, 20)
		assert.Same(t, first, g.boss)

		g.finish(ModeGameOver)
	}

	assert.Equal(t, 2, spawns)
}

// enterBossFight starts a boss session and advances to the encounter.
func enterBossFight(t *testing.T) *Game {
	t.Helper()
	g := newTestGame(t, BossRun)
	startClear(t, g)
	g.score = g.cfg.Boss.TriggerScore - 1
	g.Step()
	require.Equal(t, ModeBossFight, g.Mode())
	return g
}

// setUpStomp puts the boss under the player and the player just above its
// top, falling, so the next tick lands a stomp.
func setUpStomp(g *Game) {
	g.boss.Box.X = g.player.X - 25
	g.player.Y = g.boss.Box.Y - g.player.H + 2
	g.player.VY = 1
	g.player.Grounded = false
}

func TestBossStompHit(t *testing.T) {
	g := enterBossFight(t)

	setUpStomp(g)
	res := g.Step()

	assert.Equal(t, 9, g.boss.Health)
	assert.Equal(t, BossFleeing, g.boss.State)
	assert.True(t, g.boss.Flash.Flashing())
	assert.Equal(t, g.cfg.Boss.StompBounce, g.player.VY)
	assert.Equal(t, g.cfg.Particles.HitCount, g.particles.Len())
	assert.Equal(t, []string{"boss_hit"}, eventNames(res.Events))

	snap := g.Snapshot()
	require.NotNil(t, snap.Boss)
	assert.True(t, snap.Boss.Flashing)
	assert.Positive(t, snap.Boss.FlashLeft)
	assert.Equal(t, g.boss.Flash.Remaining(), snap.Boss.FlashLeft)
}

func TestBossIgnoresStompWhileFlashing(t *testing.T) {
	g := enterBossFight(t)

	setUpStomp(g)
	g.Step()
	require.Equal(t, 9, g.boss.Health)

	for i := 0; i < 5; i++ {
		setUpStomp(g)
		res := g.Step()
		assert.Empty(t, res.Events)
	}
	assert.Equal(t, 9, g.boss.Health)
	assert.Equal(t, ModeBossFight, g.Mode(), "contact while flashing is harmless")
}

func TestBossSideContactIsLethal(t *testing.T) {
	g := enterBossFight(t)

	g.boss.Box.X = g.player.X - 25
	res := g.Step()

	assert.Equal(t, ModeGameOver, g.Mode())
	assert.Contains(t, eventNames(res.Events), "gameOver")
	assert.Equal(t, 10, g.boss.Health)
}

func TestBossContactWhileFleeingIsHarmless(t *testing.T) {
	g := enterBossFight(t)

	g.boss.State = BossFleeing
	g.boss.FleeTimer = 50
	g.boss.Box.X = g.player.X - 25
	g.Step()

	assert.Equal(t, ModeBossFight, g.Mode())
}

func TestBossDefeatedByTenStomps(t *testing.T) {
	g := enterBossFight(t)
	boss := g.boss

	for hit := 1; hit <= 10; hit++ {
		for boss.Flash.Flashing() {
			g.Step()
			require.Equal(t, ModeBossFight, g.Mode(), "hit %d", hit)
		}

		setUpStomp(g)
		res := g.Step()
		require.Equal(t, 10-hit, boss.Health, "hit %d", hit)

		if hit < 10 {
			require.Equal(t, ModeBossFight, g.Mode())
			continue
		}
		assert.Equal(t, ModeVictory, g.Mode())
		assert.Contains(t, eventNames(res.Events), "victory")
		assert.True(t, res.State.Won)
		assert.False(t, boss.Active)
	}

	// Continue starts a fresh session without the boss
	require.True(t, g.Handle(core.ActionContinue))
	assert.Equal(t, ModePlaying, g.Mode())
	assert.Nil(t, g.boss)
	assert.False(t, g.BossReached())
	assert.Zero(t, g.Score())
}

func TestDeterministicRuns(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, BossRun)
		g.Handle(core.ActionStart)
		for i := 0; i < 800; i++ {
			if i%37 == 0 {
				g.Handle(core.ActionJump)
			}
			g.Step()
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.Mode, b.Mode)
}

func TestSeedChangesLayout(t *testing.T) {
	a := NewWithConfig(Classic, config.DefaultDashConfig())
	a.Reset(testRuntime(1))
	b := NewWithConfig(Classic, config.DefaultDashConfig())
	b.Reset(testRuntime(2))

	sa, sb := a.Snapshot(), b.Snapshot()
	assert.NotEqual(t, sa.Hash(), sb.Hash())
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	g := enterBossFight(t)
	g.field.Append([]Obstacle{{Kind: KindSpike, Box: core.NewBox(0, 0, 1, 1)}})

	snap := g.Snapshot()
	require.NotEmpty(t, snap.Obstacles)
	require.NotNil(t, snap.Boss)

	snap.Obstacles[0].Box.X = -1
	snap.Boss.Health = 0
	assert.NotEqual(t, -1.0, g.field.Items()[0].Box.X)
	assert.Equal(t, 10, g.boss.Health)
}

func TestRenderDoesNotMutate(t *testing.T) {
	g := enterBossFight(t)
	g.Handle(core.ActionJump)
	stepN(g, 3)

	before := g.Snapshot()
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	g.Render(screen)
	after := g.Snapshot()

	assert.Equal(t, before.Hash(), after.Hash())
	assert.Contains(t, screen.Row(0), "Score: 503")
	assert.Contains(t, screen.Row(0), "BOSS")
}

func TestRenderMenu(t *testing.T) {
	g := newTestGame(t, BossRun)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	assert.Contains(t, screen.String(), BossRun.Title)
	assert.Contains(t, screen.String(), "Press Enter to start")
	assert.Contains(t, screen.String(), string(PlayerChar))
}

func TestInvalidConfigFallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.DashConfig)
	}{
		{"zero batch", func(c *config.DashConfig) { c.Obstacles.Batch = 0 }},
		{"negative batch", func(c *config.DashConfig) { c.Obstacles.Batch = -3 }},
		{"empty particle bag", func(c *config.DashConfig) { c.Particles.Max = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultDashConfig()
			tc.mutate(&cfg)

			g := NewWithConfig(Classic, cfg)
			g.Reset(testRuntime(42))
			assert.Equal(t, config.DefaultDashConfig(), g.Config())

			require.True(t, g.Handle(core.ActionStart))
			require.True(t, g.Handle(core.ActionJump))
			g.Step()
			assert.Equal(t, 1, g.Score())
			assert.Positive(t, g.particles.Len())
		})
	}
}

func TestStreamStopsOnEmptyBatch(t *testing.T) {
	cfg := config.DefaultDashConfig()
	cfg.Obstacles.Batch = 0
	f := emptyField(cfg)
	require.NoError(t, f.Reset())

	added, err := f.Stream(0)
	require.NoError(t, err)
	assert.Zero(t, added)
	assert.Zero(t, f.Len())
}

func TestBossSpawnKeepsParticlesOnScreen(t *testing.T) {
	g := newTestGame(t, BossRun)
	startClear(t, g)
	g.camera = 3000
	g.score = g.cfg.Boss.TriggerScore - 1

	center := g.player.Box().CenterX()
	require.True(t, g.Handle(core.ActionJump))
	g.Step()
	require.Equal(t, ModeBossFight, g.Mode())

	require.Positive(t, g.particles.Len())
	for _, p := range g.particles.Particles() {
		assert.InDelta(t, center, p.X, 10, "particle stays near the player after the camera reset")
	}
}
