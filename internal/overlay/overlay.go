// Package overlay tracks which floating UI panels may open and whether the
// toolbar is visible. The state is owned by the app shell and handed to each
// screen explicitly; screens reset it as part of their arrival defaults.
package overlay

import "github.com/okarum/beatdeck/internal/bindable"

// Activation controls whether overlays may be opened while a screen is
// active.
type Activation int

const (
	// ActivationAll allows overlays to open freely.
	ActivationAll Activation = iota

	// ActivationUserTriggered allows overlays only in response to direct
	// user input, not programmatic requests.
	ActivationUserTriggered

	// ActivationDisabled blocks all overlays.
	ActivationDisabled
)

func (a Activation) String() string {
	switch a {
	case ActivationUserTriggered:
		return "user-triggered"
	case ActivationDisabled:
		return "disabled"
	default:
		return "all"
	}
}

// Manager holds the shared overlay state for the client shell.
type Manager struct {
	Activation     *bindable.Bindable[Activation]
	ToolbarVisible *bindable.Bindable[bool]

	closeAllCount int
}

// NewManager creates a Manager with overlays fully enabled and the toolbar
// hidden.
func NewManager() *Manager {
	return &Manager{
		Activation:     bindable.New(ActivationAll),
		ToolbarVisible: bindable.New(false),
	}
}

// SetActivation updates the activation policy.
func (m *Manager) SetActivation(a Activation) {
	m.Activation.Set(a)
}

// CloseAll hides every overlay, including the toolbar.
func (m *Manager) CloseAll() {
	m.closeAllCount++
	m.ToolbarVisible.Set(false)
}

// ShowToolbar makes the toolbar visible.
func (m *Manager) ShowToolbar() {
	m.ToolbarVisible.Set(true)
}

// ToggleToolbar flips toolbar visibility, honoring the activation policy.
func (m *Manager) ToggleToolbar() {
	if m.Activation.Get() == ActivationDisabled {
		return
	}
	m.ToolbarVisible.Set(!m.ToolbarVisible.Get())
}

// CloseAllCount reports how many times CloseAll ran. Used by tests.
func (m *Manager) CloseAllCount() int {
	return m.closeAllCount
}
