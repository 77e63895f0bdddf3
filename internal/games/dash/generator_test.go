package dash

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/dash-arcade/internal/config"
	"github.com/vovakirdan/dash-arcade/internal/core"
)

func TestGenerateNegativeCount(t *testing.T) {
	cfg := config.DefaultDashConfig().Obstacles

	obs, err := Generate(rand.New(rand.NewSource(1)), cfg, 0, -1)
	require.ErrorIs(t, err, ErrNegativeCount)
	assert.Nil(t, obs)
}

func TestGenerateZeroCount(t *testing.T) {
	cfg := config.DefaultDashConfig().Obstacles

	obs, err := Generate(rand.New(rand.NewSource(1)), cfg, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, obs)
}

func TestGeneratePlacement(t *testing.T) {
	cfg := config.DefaultDashConfig().Obstacles
	const startX = 1234.0

	obs, err := Generate(rand.New(rand.NewSource(7)), cfg, startX, 500)
	require.NoError(t, err)
	require.Len(t, obs, 500)

	for i, o := range obs {
		base := startX + float64(i)*cfg.Spacing
		assert.GreaterOrEqual(t, o.Box.X, base, "obstacle %d x", i)
		assert.Less(t, o.Box.X, base+cfg.Jitter, "obstacle %d x", i)
		assert.Zero(t, o.ID, "ids are assigned by the field")

		switch o.Kind {
		case KindSpike:
			assert.Equal(t, core.NewBox(o.Box.X, 340, 30, 30), o.Box)
			assert.Equal(t, core.ColorRed, o.Color)
		case KindPlatform:
			assert.Equal(t, 100.0, o.Box.W)
			assert.Equal(t, 20.0, o.Box.H)
			assert.GreaterOrEqual(t, o.Box.Y, 200.0)
			assert.Less(t, o.Box.Y, 280.0)
			assert.Equal(t, core.ColorCyan, o.Color)
		case KindOrb:
			assert.Equal(t, 25.0, o.Box.W)
			assert.GreaterOrEqual(t, o.Box.Y, 150.0)
			assert.Less(t, o.Box.Y, 300.0)
			assert.Equal(t, core.ColorYellow, o.Color)
		case KindPortal:
			assert.Equal(t, core.NewBox(o.Box.X, 70, 40, 300), o.Box)
			assert.Equal(t, core.ColorMagenta, o.Color)
		default:
			t.Fatalf("unexpected kind %v", o.Kind)
		}
	}
}

func TestGenerateDistribution(t *testing.T) {
	cfg := config.DefaultDashConfig().Obstacles
	const n = 20000

	obs, err := Generate(rand.New(rand.NewSource(99)), cfg, 0, n)
	require.NoError(t, err)

	counts := map[Kind]int{}
	for _, o := range obs {
		counts[o.Kind]++
	}

	want := map[Kind]float64{
		KindSpike:    0.4,
		KindPlatform: 0.3,
		KindOrb:      0.2,
		KindPortal:   0.1,
	}
	for k, p := range want {
		assert.InDelta(t, p, float64(counts[k])/n, 0.02, "share of %s", k)
	}
}

func TestGenerateSeeded(t *testing.T) {
	cfg := config.DefaultDashConfig().Obstacles

	a, err := Generate(rand.New(rand.NewSource(5)), cfg, 800, 20)
	require.NoError(t, err)
	b, err := Generate(rand.New(rand.NewSource(5)), cfg, 800, 20)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestPickBoundaries(t *testing.T) {
	table := kindTable(config.DefaultDashConfig().Obstacles)

	tests := []struct {
		roll float64
		want Kind
	}{
		{0, KindSpike},
		{0.3999, KindSpike},
		{0.4, KindPlatform},
		{0.6999, KindPlatform},
		{0.7, KindOrb},
		{0.8999, KindOrb},
		{0.9, KindPortal},
		{0.9999, KindPortal},
		{1.0, KindPortal},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, pick(table, tc.roll).kind, "roll %g", tc.roll)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "spike", KindSpike.String())
	assert.Equal(t, "portal", KindPortal.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
