package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dash-arcade/internal/core"
	"github.com/vovakirdan/dash-arcade/internal/registry"
	"github.com/vovakirdan/dash-arcade/internal/storage"
)

// runReporter is implemented by games that expose extra run details for
// the run history.
type runReporter interface {
	BossReached() bool
	Ticks() uint64
}

// ModelOptions configures a GameModel.
type ModelOptions struct {
	// Logger receives simulation events and run bookkeeping.
	// Nil discards everything.
	Logger *log.Logger

	// SessionID tags saved runs. Empty means a local session.
	SessionID string

	// QuitOnBack ends the program when Back is pressed on the title screen.
	QuitOnBack bool
}

// GameModel is the Bubble Tea model that hosts one game.
// Key presses are forwarded to the game between ticks; the tick loop only
// runs while the game reports itself as running.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	keys      GameKeyMap
	help      help.Model
	state     core.GameState
	sessionID string

	gen     int  // Generation of the current tick loop
	ticking bool // Whether a tick loop is scheduled

	quitOnBack bool

	runSaved   bool // Whether the current finished session was recorded
	status     string
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given game and resets the game to
// its title screen.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:     store,
		logger:    logger.With("game", game.ID()),
		config:    cfg,
		keys:      DefaultGameKeyMap(),
		help:      h,
		state:     game.State(),
		sessionID: opts.SessionID,

		quitOnBack: opts.QuitOnBack,
	}
}

// playfieldHeight leaves the bottom row for the help bar.
func playfieldHeight(screenH int) int {
	return core.Max(screenH-1, 1)
}

// Init implements tea.Model. The game waits on its title screen, so no
// tick loop is started yet.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			m.status = "screenshot failed"
		} else {
			m.logger.Info("screenshot saved", "path", path)
			m.status = "saved " + filepath.Base(path)
		}
		return m, nil
	}

	action := m.keys.Action(msg, m.state)
	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.recordAbandoned()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		// Back on the title screen leaves the game entirely
		if m.state.Paused {
			m.recordAbandoned()
		}
		if m.onTitle() {
			m.backToMenu = true
			if m.quitOnBack {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	before := m.state
	if !m.game.Handle(action) {
		return m, nil
	}
	m.state = m.game.State()
	m.status = ""
	m.logger.Debug("action", "action", action.String(), "from", before.Mode, "to", m.state.Mode)

	switch action {
	case core.ActionStart, core.ActionRestart, core.ActionContinue:
		m.runSaved = false
	}

	return m, m.syncLoop()
}

// onTitle reports whether the game sits on its title screen.
func (m GameModel) onTitle() bool {
	return !m.state.Running && !m.state.Paused && !m.state.GameOver
}

// syncLoop starts a new tick loop when the game became runnable, or marks
// the current one stopped when it did not.
func (m *GameModel) syncLoop() tea.Cmd {
	if !m.state.Running {
		m.ticking = false
		return nil
	}
	if m.ticking {
		return nil
	}
	m.gen++
	m.ticking = true
	return tickCmd(m.config.TickRate, m.gen)
}

// handleResize processes window resize events.
// The simulation runs in world units, so only the screen buffer changes.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	// Stale tick from a loop that was stopped
	if !m.ticking || msg.Gen != m.gen {
		return m, nil
	}

	result := m.game.Step()
	m.state = result.State

	for _, ev := range result.Events {
		m.logger.Debug(ev.Name, ev.Attrs...)
	}

	if m.state.GameOver && !m.runSaved {
		outcome := storage.OutcomeGameOver
		if m.state.Won {
			outcome = storage.OutcomeVictory
		}
		m.saveRun(outcome)
		m.runSaved = true
	}

	if !m.state.Running {
		m.ticking = false
		return m, nil
	}

	return m, tickCmd(m.config.TickRate, m.gen)
}

// recordAbandoned saves a run that is quit mid-session.
func (m *GameModel) recordAbandoned() {
	if m.runSaved || m.state.Score == 0 || !(m.state.Running || m.state.Paused) {
		return
	}
	m.saveRun(storage.OutcomeAbandoned)
	m.runSaved = true
}

// saveRun records the current session in the run history.
// Saving is best-effort; the game continues regardless.
func (m *GameModel) saveRun(outcome string) {
	if m.store == nil {
		return
	}

	run := storage.Run{
		GameID:    m.game.ID(),
		SessionID: m.sessionID,
		Score:     m.state.Score,
		Outcome:   outcome,
	}
	if rr, ok := m.game.(runReporter); ok {
		run.BossReached = rr.BossReached()
		run.Ticks = int(rr.Ticks()) //#nosec G115
	}

	saved, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Error("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved",
		"run_id", saved.RunID,
		"score", saved.Score,
		"outcome", saved.Outcome,
		"boss_reached", saved.BossReached,
	)
}

// saveScreenshot saves the current screen to a file and returns its path.
func (m GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

var (
	helpBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := helpBarStyle.Render(m.help.View(m.keys))
	if m.status != "" {
		footer = statusStyle.Render(m.status) + "  " + footer
	}

	return RenderScreenDimmed(m.screen, !m.state.Running) + "\n" + footer
}

// State returns the last game state the model observed.
func (m GameModel) State() core.GameState {
	return m.state
}

// Ticking reports whether a tick loop is scheduled.
func (m GameModel) Ticking() bool {
	return m.ticking
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg, ModelOptions{
		Logger:     logger,
		QuitOnBack: true,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
