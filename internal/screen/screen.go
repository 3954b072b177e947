// Package screen defines the contract every navigable state satisfies and
// the shared transition behavior screens inherit by embedding Base.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/okarum/beatdeck/internal/audio"
	"github.com/okarum/beatdeck/internal/background"
	"github.com/okarum/beatdeck/internal/beatmap"
	"github.com/okarum/beatdeck/internal/bindable"
	"github.com/okarum/beatdeck/internal/input"
	"github.com/okarum/beatdeck/internal/logo"
	"github.com/okarum/beatdeck/internal/overlay"
	"github.com/okarum/beatdeck/internal/ui/layout"
)

// Screen is a single navigable state in the stack-based navigation model.
//
// The presentation surface (Init/Update/View/Title) follows the Bubble Tea
// model; the lifecycle hooks are invoked by the navigation host as the
// screen moves through the stack.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string

	// Attach hands the screen its collaborators. Called by the host
	// before OnEntering; self is the screen's own interface value, used
	// for identity checks against the stack.
	Attach(self Screen, deps Deps)

	// OnEntering runs exactly once when the screen is pushed.
	OnEntering(prev Screen)

	// OnResuming runs when the screen becomes current again after the
	// screen above it was popped.
	OnResuming(prev Screen)

	// OnSuspending runs when another screen is pushed above this one.
	OnSuspending(next Screen)

	// OnExiting runs when the screen is popped. Returning true vetoes
	// the exit and the screen stays current.
	OnExiting(next Screen) bool

	// OnPressed handles a bound input action. It reports whether the
	// action was consumed.
	OnPressed(a input.Action) bool

	// OnReleased handles the release of a bound input action.
	OnReleased(a input.Action) bool
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Navigator is the subset of the navigation host a screen may call back
// into.
type Navigator interface {
	// IsCurrent reports whether s is the top of the stack.
	IsCurrent(s Screen) bool

	// RequestExit asks the host to pop the current screen, subject to
	// the exit veto.
	RequestExit()
}

// Deps carries the collaborators a screen needs: the shared background
// stack, the logo controller, overlay state, the transition sampler, the
// host itself, and the client-wide beatmap/ruleset sources. Any of them may
// be nil; absent collaborators degrade to no-ops.
type Deps struct {
	Background *background.Stack
	Logo       *logo.Controller
	Overlays   *overlay.Manager
	Sampler    audio.Sampler
	Nav        Navigator

	Beatmap *bindable.Bindable[*beatmap.Set]
	Ruleset *bindable.Bindable[beatmap.Ruleset]
}
