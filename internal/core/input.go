package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionJump            // Space, W, Up - jump
	ActionStart           // Enter - start a session from the title screen
	ActionPause           // P - pause a running session
	ActionResume          // P - resume a paused session
	ActionRestart         // R - restart after game over or victory
	ActionContinue        // C, Enter - continue after victory
	ActionBack            // B, Esc - back to the title screen
	ActionMute            // M - toggle sound
	ActionQuit            // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionResume:
		return "Resume"
	case ActionRestart:
		return "Restart"
	case ActionContinue:
		return "Continue"
	case ActionBack:
		return "Back"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
