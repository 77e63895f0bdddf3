// Package dash implements a side-scrolling reflex platformer.
// The player auto-runs through a generated obstacle stream, jumps over
// spikes, lands on platforms and bounces off orbs. Reaching the trigger
// score in the boss variant starts a stomp-to-win boss encounter.
package dash

import (
	"math/rand"

	"github.com/vovakirdan/dash-arcade/internal/config"
	"github.com/vovakirdan/dash-arcade/internal/core"
	"github.com/vovakirdan/dash-arcade/internal/registry"
)

// Variant selects which features a session runs with.
type Variant struct {
	ID          string
	Title       string
	Summary     string
	BossEnabled bool
}

// Registered variants. The boss variant is a superset of the classic run.
var (
	Classic = Variant{
		ID:      "dash",
		Title:   "Dash",
		Summary: "Endless run through spikes, platforms and orbs",
	}
	BossRun = Variant{
		ID:          "dash_boss",
		Title:       "Dash: Boss Run",
		Summary:     "Survive to 500, then stomp the boss ten times",
		BossEnabled: true,
	}
)

func init() {
	for _, v := range Variants() {
		registry.Register(
			registry.GameInfo{ID: v.ID, Title: v.Title, Summary: v.Summary},
			func() registry.Game { return New(v) },
		)
	}
}

// Variants returns every playable variant.
func Variants() []Variant {
	return []Variant{Classic, BossRun}
}

// LookupVariant finds a variant by its game ID.
func LookupVariant(id string) (Variant, bool) {
	for _, v := range Variants() {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path used by Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game is one dash session host. It owns every simulation entity and is
// driven by Handle (between ticks) and Step (one tick).
type Game struct {
	variant  Variant
	cfg      config.DashConfig
	override *config.DashConfig
	runtime  core.RuntimeConfig
	rng      *rand.Rand

	mode       Mode
	resumeMode Mode // Mode to return to from paused
	score      int
	best       int // Process-lifetime high-water mark, survives restarts
	tick       uint64
	camera     float64
	muted      bool

	player        Player
	field         *ObstacleField
	particles     *ParticleSystem
	boss          *Boss
	bossTriggered bool

	playerColor core.Color
	bossColor   core.Color

	events []core.Event
}

// New creates a game for the given variant. Configuration is loaded on Reset.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// NewWithConfig creates a game that always uses cfg instead of loading one.
// An invalid cfg is replaced by the defaults on Reset.
func NewWithConfig(v Variant, cfg config.DashConfig) *Game {
	return &Game{variant: v, override: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// Variant returns the variant this game runs.
func (g *Game) Variant() Variant {
	return g.variant
}

// Reset loads configuration, reseeds the RNG and returns to the menu.
// The best score is kept.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.override != nil {
		g.cfg = *g.override
		if err := g.cfg.Validate(); err != nil {
			g.cfg = config.DefaultDashConfig()
		}
	} else {
		cfg, err := config.LoadDash(configPath)
		if err != nil {
			cfg = config.DefaultDashConfig()
		}
		g.cfg = cfg
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness
	g.field = NewObstacleField(g.rng, g.cfg.Obstacles)
	g.particles = NewParticleSystem(g.cfg.Particles)
	g.playerColor, _ = core.ParseColor(g.cfg.Player.Color)
	g.bossColor, _ = core.ParseColor(g.cfg.Boss.Color)

	g.initSession()
	g.mode = ModeMenu
	g.resumeMode = ModeMenu
}

// initSession puts every per-session entity back to its starting state.
func (g *Game) initSession() {
	g.player = newPlayer(g.cfg)
	g.camera = 0
	g.score = 0
	g.tick = 0
	g.particles.Clear()
	g.boss = nil
	g.bossTriggered = false

	if err := g.field.Reset(); err != nil {
		g.emit("generate_failed", "err", err)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Mode:      g.mode.String(),
		Score:     g.score,
		BestScore: g.best,
		GameOver:  g.mode == ModeGameOver || g.mode == ModeVictory,
		Won:       g.mode == ModeVictory,
		Paused:    g.mode == ModePaused,
		Running:   g.mode.Active(),
	}
}

// Mode returns the current session mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Best returns the best score seen by this game instance.
func (g *Game) Best() int {
	return g.best
}

// Ticks returns the number of simulation ticks in the current session.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// Muted reports whether sound is toggled off.
func (g *Game) Muted() bool {
	return g.muted
}

// BossReached reports whether the boss encounter started this session.
func (g *Game) BossReached() bool {
	return g.bossTriggered
}

// Config returns the configuration the current session runs with.
func (g *Game) Config() config.DashConfig {
	return g.cfg
}

func (g *Game) emit(name string, attrs ...any) {
	g.events = append(g.events, core.Event{Name: name, Attrs: attrs})
}
