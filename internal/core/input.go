package core

// Action is the symbolic input vocabulary games consume.
// The platform maps physical keys to actions; games never see raw keys.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // Up arrow, W, K
	ActionDown          // Down arrow, S, J
	ActionLeft          // Left arrow, A, H
	ActionRight         // Right arrow, D, L
	ActionAccept        // Enter, Space
	ActionOther         // Any other key; only meaningful to "press any key" screens
	ActionQuit          // Q, Ctrl+C; handled by the platform except on banners
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
	case ActionAccept:
		return "Accept"
	case ActionOther:
		return "Other"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four arrows.
func (a Action) IsDirection() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}
