// Package input maps key presses onto client-level actions so screens can
// reason about intent instead of raw key strings.
package input

// Action is a client-level input binding.
type Action int

const (
	// ActionNone means the key has no global binding.
	ActionNone Action = iota

	// ActionBack requests leaving the current screen.
	ActionBack

	// ActionSelect activates the focused element.
	ActionSelect

	// ActionToggleOverlays shows or hides the toolbar overlay.
	ActionToggleOverlays
)

// String returns the action name for footers and tests.
func (a Action) String() string {
	switch a {
	case ActionBack:
		return "back"
	case ActionSelect:
		return "select"
	case ActionToggleOverlays:
		return "toggle-overlays"
	default:
		return "none"
	}
}

// FromKey translates a Bubble Tea key string into an Action. Backspace is
// deliberately unbound: it must reach focused text inputs as an edit key.
func FromKey(key string) Action {
	switch key {
	case "esc":
		return ActionBack
	case "enter":
		return ActionSelect
	case "ctrl+t":
		return ActionToggleOverlays
	default:
		return ActionNone
	}
}
