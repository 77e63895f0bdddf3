package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Mode      string // Session mode name ("menu", "playing", ...)
	Score     int    // Current score
	BestScore int    // Best score seen by this game instance
	GameOver  bool   // Whether the session has ended (lost or won)
	Won       bool   // Whether the session ended in victory
	Paused    bool   // Whether the game is paused
	Running   bool   // Whether the platform should keep scheduling ticks
}

// Event is a notable simulation occurrence reported to the platform.
// Attrs are alternating key/value pairs, ready for structured logging.
type Event struct {
	Name  string
	Attrs []any
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
