package dash

import (
	"math/rand"

	"github.com/vovakirdan/dash-arcade/internal/config"
)

// ObstacleField owns the active obstacle set for a session.
// Obstacles are kept in generation order and carry stable ids, so removal
// never depends on comparing obstacle values.
type ObstacleField struct {
	items  []Obstacle
	nextID uint64
	tailX  float64 // World x of the most recently generated obstacle
	rng    *rand.Rand
	cfg    config.ObstacleConfig
}

// NewObstacleField creates an empty field drawing randomness from rng.
func NewObstacleField(rng *rand.Rand, cfg config.ObstacleConfig) *ObstacleField {
	return &ObstacleField{
		items:  make([]Obstacle, 0, max(cfg.Batch*2, 0)),
		nextID: 1,
		rng:    rng,
		cfg:    cfg,
	}
}

// Reset clears the field and generates the first batch at FirstX.
func (f *ObstacleField) Reset() error {
	f.items = f.items[:0]
	f.tailX = f.cfg.FirstX

	batch, err := Generate(f.rng, f.cfg, f.cfg.FirstX, f.cfg.Batch)
	if err != nil {
		return err
	}
	f.Append(batch)
	return nil
}

// Append adds obstacles to the end of the field, assigning ids in order.
func (f *ObstacleField) Append(obs []Obstacle) {
	for _, o := range obs {
		o.ID = f.nextID
		f.nextID++
		f.items = append(f.items, o)
		f.tailX = o.Box.X
	}
}

// Remove deletes the obstacle with the given id, preserving order.
// Returns false if no such obstacle is active.
func (f *ObstacleField) Remove(id uint64) bool {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns the active obstacles. The slice is owned by the field and
// must not be modified.
func (f *ObstacleField) Items() []Obstacle {
	return f.items
}

// Len returns the number of active obstacles.
func (f *ObstacleField) Len() int {
	return len(f.items)
}

// TailX returns the world x of the last generated obstacle.
// It is unaffected by consumption or pruning.
func (f *ObstacleField) TailX() float64 {
	return f.tailX
}

// Stream appends batches while the tail is within Lookahead of the camera.
// Each batch is anchored one spacing past the current tail. An empty batch
// ends streaming for this call.
// Returns the number of obstacles added.
func (f *ObstacleField) Stream(camera float64) (int, error) {
	added := 0
	for f.tailX-camera < f.cfg.Lookahead {
		batch, err := Generate(f.rng, f.cfg, f.tailX+f.cfg.Spacing, f.cfg.Batch)
		if err != nil {
			return added, err
		}
		if len(batch) == 0 {
			break
		}
		f.Append(batch)
		added += len(batch)
	}
	return added, nil
}

// Prune drops obstacles whose right edge is more than PruneMargin behind
// the camera. These can no longer reach the player, so pruning only bounds
// memory. Returns the number of obstacles removed.
func (f *ObstacleField) Prune(camera float64) int {
	kept := f.items[:0]
	for _, o := range f.items {
		if o.Box.Right()-camera >= -f.cfg.PruneMargin {
			kept = append(kept, o)
		}
	}
	removed := len(f.items) - len(kept)
	f.items = kept
	return removed
}
