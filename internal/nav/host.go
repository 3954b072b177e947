// Package nav hosts the navigation stack and drives screen lifecycle:
// pushing suspends the covered screen and enters the new one; popping asks
// the leaving screen first (exit veto) and resumes the one underneath.
package nav

import (
	tea "charm.land/bubbletea/v2"

	"github.com/okarum/beatdeck/internal/input"
	"github.com/okarum/beatdeck/internal/screen"
)

// PushScreenMsg requests the host to push a new screen onto the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// ExitScreenMsg requests the host to pop the current screen, subject to the
// exit veto.
type ExitScreenMsg struct{}

// externalNavGuard lets a screen refuse pushes it did not initiate itself.
type externalNavGuard interface {
	AllowsExternalNavigation() bool
}

// Host manages the stack of screens and their collaborators.
type Host struct {
	stack []screen.Screen
	deps  screen.Deps
}

// NewHost creates a Host wired as the Navigator inside deps.
func NewHost(deps screen.Deps) *Host {
	h := &Host{}
	deps.Nav = h
	h.deps = deps
	return h
}

// Push attaches s, suspends the covered screen, enters s and calls its
// Init().
func (h *Host) Push(s screen.Screen) tea.Cmd {
	if s == nil {
		return nil
	}
	prev := h.Current()
	if prev != nil {
		prev.OnSuspending(s)
	}

	s.Attach(s, h.deps)
	h.stack = append(h.stack, s)
	s.OnEntering(prev)
	return s.Init()
}

// Exit pops the current screen unless it vetoes, then resumes the screen
// underneath. It reports whether a screen actually left the stack.
func (h *Host) Exit() bool {
	cur := h.Current()
	if cur == nil {
		return false
	}

	var next screen.Screen
	if len(h.stack) > 1 {
		next = h.stack[len(h.stack)-2]
	}

	if cur.OnExiting(next) {
		return false
	}

	h.stack = h.stack[:len(h.stack)-1]
	if next != nil {
		next.OnResuming(cur)
	}
	return true
}

// RequestExit implements screen.Navigator.
func (h *Host) RequestExit() {
	h.Exit()
}

// IsCurrent implements screen.Navigator.
func (h *Host) IsCurrent(s screen.Screen) bool {
	cur := h.Current()
	return cur != nil && cur == s
}

// Current returns the top screen on the stack.
func (h *Host) Current() screen.Screen {
	if len(h.stack) == 0 {
		return nil
	}
	return h.stack[len(h.stack)-1]
}

// Depth returns the number of screens on the stack.
func (h *Host) Depth() int {
	return len(h.stack)
}

// Press routes a bound action press to the current screen.
func (h *Host) Press(a input.Action) bool {
	cur := h.Current()
	if cur == nil {
		return false
	}
	return cur.OnPressed(a)
}

// Release routes a bound action release to the current screen.
func (h *Host) Release(a input.Action) bool {
	cur := h.Current()
	if cur == nil {
		return false
	}
	return cur.OnReleased(a)
}

// Update forwards a message to the current screen and handles navigation
// messages.
func (h *Host) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		// Message-driven pushes count as external navigation; a screen
		// that forbids it keeps the stack frozen while current.
		if cur, ok := h.Current().(externalNavGuard); ok && !cur.AllowsExternalNavigation() {
			return nil
		}
		return h.Push(msg.Screen)
	case ExitScreenMsg:
		h.Exit()
		return nil
	}

	cur := h.Current()
	if cur == nil {
		return nil
	}

	updated, cmd := cur.Update(msg)
	h.stack[len(h.stack)-1] = updated
	return cmd
}

// View renders the current screen.
func (h *Host) View(width, height int) string {
	cur := h.Current()
	if cur == nil {
		return ""
	}
	return cur.View(width, height)
}
