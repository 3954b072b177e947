// Package logo animates the persistent beatdeck emblem. Screens do not draw
// the emblem themselves; they append animation actions and the app shell
// drains the queue once per frame.
package logo

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/okarum/beatdeck/internal/ui/theme"
)

// Mode is the emblem's presentation state.
type Mode int

const (
	// ModeHidden draws nothing.
	ModeHidden Mode = iota

	// ModeFull draws the emblem with the ambient beat pulse.
	ModeFull

	// ModeDimmed draws a compact, faint emblem while a screen is covered
	// or leaving.
	ModeDimmed
)

// Logo is the mutable emblem state handed to animation actions.
type Logo struct {
	mode  Mode
	pulse int
	beats int
}

// SetMode switches the presentation state.
func (l *Logo) SetMode(m Mode) {
	l.mode = m
}

// Mode returns the presentation state.
func (l *Logo) Mode() Mode {
	return l.mode
}

// Beat advances the ambient pulse one step. Replayable arrival actions call
// this every frame to keep the emblem breathing.
func (l *Logo) Beat() {
	l.pulse = (l.pulse + 1) % 4
	l.beats++
}

// Beats returns the total number of pulse steps. Used by tests.
func (l *Logo) Beats() int {
	return l.beats
}

// View renders the emblem for the header.
func (l *Logo) View() string {
	switch l.mode {
	case ModeFull:
		frames := []string{"◉", "◎", "○", "◎"}
		mark := frames[l.pulse%len(frames)]
		return lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Render(mark + " beatdeck")
	case ModeDimmed:
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("· beatdeck")
	default:
		return strings.Repeat(" ", 10)
	}
}

// Action mutates the logo when the queue is drained.
type Action func(*Logo)

type queued struct {
	fn Action
	id int
}

// Controller owns the logo and the FIFO action queue. Actions appended by
// any screen land in one global queue; a replayable action re-fires on every
// drain until a later replayable supersedes it. Whether an action still
// applies is the action's own concern, checked when it runs, not when it is
// appended.
type Controller struct {
	logo     Logo
	pending  []queued
	replay   Action
	replayID int
	nextID   int

	drains int
}

// NewController creates a Controller with a hidden logo.
func NewController() *Controller {
	return &Controller{}
}

// Logo exposes the emblem state for rendering.
func (c *Controller) Logo() *Logo {
	return &c.logo
}

// AppendAnimatingAction queues fn. One-shot actions run exactly once, in
// append order. A replayable action additionally becomes the ambient action,
// re-firing on every subsequent drain until replaced.
func (c *Controller) AppendAnimatingAction(fn Action, replayable bool) {
	if fn == nil {
		return
	}
	c.nextID++
	c.pending = append(c.pending, queued{fn: fn, id: c.nextID})
	if replayable {
		c.replay = fn
		c.replayID = c.nextID
	}
}

// Drain runs all pending one-shot actions in FIFO order, then the current
// replayable action. Called once per frame by the app shell.
func (c *Controller) Drain() {
	c.drains++

	pending := c.pending
	c.pending = nil
	ranReplay := false
	for _, q := range pending {
		q.fn(&c.logo)
		if q.id == c.replayID {
			ranReplay = true
		}
	}

	// The ambient action already ran above on its first drain; re-fire
	// only on later frames.
	if c.replay != nil && !ranReplay {
		c.replay(&c.logo)
	}
}

// Pending returns the number of not-yet-drained actions. Used by tests.
func (c *Controller) Pending() int {
	return len(c.pending)
}

// Drains returns the number of completed drains. Used by tests.
func (c *Controller) Drains() int {
	return c.drains
}
