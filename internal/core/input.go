package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W, K
	ActionDown           // Down arrow, S, J
	ActionLeft           // Left arrow, A, H
	ActionRight          // Right arrow, D, L
	ActionRestart        // R, Enter - start/restart the game
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction is the inverse of Action.String. Unknown names map to ActionNone.
func ParseAction(name string) Action {
	for a := ActionNone; a <= ActionQuit; a++ {
		if a.String() == name {
			return a
		}
	}
	return ActionNone
}

// IsDirectional reports whether the action steers the player.
func (a Action) IsDirectional() bool {
	return a >= ActionUp && a <= ActionRight
}
