package core

// Action is a logical input event, abstracted from physical key presses.
// The controller dispatches on these; it never sees raw keys.
type Action int

const (
	ActionNone            Action = iota
	ActionMoveLeft               // Left arrow, h, a
	ActionMoveRight              // Right arrow, l, d
	ActionRotateCW               // Up arrow, k, w, x
	ActionSoftDrop               // Down arrow press: one row down, auto-drop paused
	ActionSoftDropRelease        // Down arrow release: auto-drop resumes
	ActionHardDrop               // Space: drop until blocked and lock
	ActionConfirm                // Enter: start, pause, resume or reset
	ActionQuit                   // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionRotateCW:
		return "RotateCW"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionSoftDropRelease:
		return "SoftDropRelease"
	case ActionHardDrop:
		return "HardDrop"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
