package dash

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/dash-arcade/internal/config"
	"github.com/vovakirdan/dash-arcade/internal/core"
)

// ErrNegativeCount is returned by Generate when asked for fewer than zero obstacles.
var ErrNegativeCount = errors.New("negative obstacle count")

// Kind identifies an obstacle type.
type Kind int

const (
	KindSpike    Kind = iota // Lethal on touch
	KindPlatform             // Solid when landed on from above
	KindOrb                  // One-shot re-jump, consumed on contact
	KindPortal               // Decorative
)

var kindNames = [...]string{"spike", "platform", "orb", "portal"}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Obstacle is a single entry in the obstacle stream.
// Box is in world coordinates; the camera offset is applied at collision and render time.
type Obstacle struct {
	ID    uint64 // Assigned by ObstacleField, 0 until appended
	Kind  Kind
	Box   core.Box
	Color core.Color
}

// kindSpec pairs a kind with its row in the cumulative probability table.
type kindSpec struct {
	kind  Kind
	cfg   config.KindConfig
	color core.Color
}

func kindTable(cfg config.ObstacleConfig) []kindSpec {
	rows := []struct {
		kind Kind
		cfg  config.KindConfig
	}{
		{KindSpike, cfg.Kinds.Spike},
		{KindPlatform, cfg.Kinds.Platform},
		{KindOrb, cfg.Kinds.Orb},
		{KindPortal, cfg.Kinds.Portal},
	}

	table := make([]kindSpec, len(rows))
	for i, r := range rows {
		color, _ := core.ParseColor(r.cfg.Color)
		table[i] = kindSpec{kind: r.kind, cfg: r.cfg, color: color}
	}
	return table
}

// pick selects the first row whose cumulative threshold exceeds roll.
// The last row absorbs any rounding slack at the top of the table.
func pick(table []kindSpec, roll float64) kindSpec {
	for _, row := range table {
		if roll < row.cfg.Threshold {
			return row
		}
	}
	return table[len(table)-1]
}

// Generate produces count obstacles starting at world x startX.
// Candidate i sits at startX + i*Spacing plus a uniform jitter in [0, Jitter).
// Generate keeps no state between calls; all randomness comes from rng.
func Generate(rng *rand.Rand, cfg config.ObstacleConfig, startX float64, count int) ([]Obstacle, error) {
	if count < 0 {
		return nil, fmt.Errorf("dash: generate %d obstacles: %w", count, ErrNegativeCount)
	}

	table := kindTable(cfg)
	out := make([]Obstacle, 0, count)

	for i := 0; i < count; i++ {
		x := startX + float64(i)*cfg.Spacing + rng.Float64()*cfg.Jitter
		row := pick(table, rng.Float64())

		y := row.cfg.MinY
		if row.cfg.MaxY > row.cfg.MinY {
			y += rng.Float64() * (row.cfg.MaxY - row.cfg.MinY)
		}

		out = append(out, Obstacle{
			Kind:  row.kind,
			Box:   core.NewBox(x, y, row.cfg.Width, row.cfg.Height),
			Color: row.color,
		})
	}

	return out, nil
}
