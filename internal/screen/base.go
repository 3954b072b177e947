package screen

import (
	"reflect"
	"strings"

	"github.com/okarum/beatdeck/internal/background"
	"github.com/okarum/beatdeck/internal/beatmap"
	"github.com/okarum/beatdeck/internal/bindable"
	"github.com/okarum/beatdeck/internal/input"
	"github.com/okarum/beatdeck/internal/logo"
	"github.com/okarum/beatdeck/internal/overlay"

	"github.com/okarum/beatdeck/internal/audio"
)

// Base carries the shared transition behavior. Concrete screens embed it,
// set configuration fields in their constructor, and shadow the lifecycle
// hooks they care about, delegating back to Base for the default sequence.
//
// A Base is inert until the host calls Attach; lifecycle hooks before that
// point are safe no-ops.
type Base struct {
	// TitleText overrides the header title. When empty, the title is
	// derived from the screen's type name.
	TitleText string

	// AllowBackNavigation permits leaving the screen with the back
	// action.
	AllowBackNavigation bool

	// AllowExternalNavigation permits other components to push screens
	// while this one is current.
	AllowExternalNavigation bool

	// HideOverlaysOnEnter closes all overlays when the screen arrives;
	// otherwise the toolbar is made visible.
	HideOverlaysOnEnter bool

	// InitialOverlayActivation is re-applied every time the screen
	// becomes current.
	InitialOverlayActivation overlay.Activation

	// CursorVisible controls the terminal cursor while current.
	CursorVisible bool

	// BackgroundParallax scales backdrop drift while current.
	BackgroundParallax float64

	// MakeBackground builds the screen's backdrop on first entry. Nil,
	// or a nil return, means the screen keeps the previous backdrop.
	MakeBackground func() *background.Layer

	// ExitSample is the cue replayed when a screen above this one pops.
	ExitSample *audio.Sample

	// Beatmap and Ruleset track the client-wide selection while the
	// screen is in the stack.
	Beatmap *bindable.Bindable[*beatmap.Set]
	Ruleset *bindable.Bindable[beatmap.Ruleset]

	self Screen
	deps Deps

	ownedBackground *background.Layer
	validForResume  bool
}

// NewBase returns a Base with the arrival defaults: back navigation
// allowed, overlays fully enabled, full parallax, visible cursor.
func NewBase() Base {
	return Base{
		AllowBackNavigation:     true,
		AllowExternalNavigation: true,
		CursorVisible:           true,
		BackgroundParallax:      1.0,
		Beatmap:                 bindable.New[*beatmap.Set](nil),
		Ruleset:                 bindable.New(beatmap.RulesetCircles),
	}
}

// Attach stores the collaborators and binds the screen's beatmap and
// ruleset holders to the client-wide sources.
func (b *Base) Attach(self Screen, deps Deps) {
	b.self = self
	b.deps = deps
	if deps.Beatmap != nil {
		b.Beatmap.BindTo(deps.Beatmap)
	}
	if deps.Ruleset != nil {
		b.Ruleset.BindTo(deps.Ruleset)
	}
}

// Title returns the configured title, falling back to the screen type name.
func (b *Base) Title() string {
	if b.TitleText != "" {
		return b.TitleText
	}
	if b.self == nil {
		return ""
	}
	t := reflect.TypeOf(b.self)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return strings.TrimSuffix(t.Name(), "Screen")
}

// Deps exposes the attached collaborators to the embedding screen.
func (b *Base) Deps() Deps {
	return b.deps
}

// IsCurrentScreen reports whether this screen is top of the stack.
func (b *Base) IsCurrentScreen() bool {
	return b.deps.Nav != nil && b.deps.Nav.IsCurrent(b.self)
}

// OnEntering applies the arrival defaults, queues the ambient logo arrival
// and pushes the screen's backdrop, in that order.
func (b *Base) OnEntering(prev Screen) {
	b.validForResume = true
	b.applyArrivingDefaults()
	b.appendArrivingLogo()

	var layer *background.Layer
	if b.MakeBackground != nil {
		layer = b.MakeBackground()
	}
	b.ownedBackground = layer
	if b.deps.Background != nil {
		b.deps.Background.Push(layer)
	}
}

// OnResuming replays the exit cue, then re-applies the arrival defaults.
// The backdrop stays as pushed on entry.
func (b *Base) OnResuming(prev Screen) {
	if b.deps.Sampler != nil {
		b.deps.Sampler.Play(b.ExitSample)
	}
	b.applyArrivingDefaults()
	b.appendArrivingLogo()
}

// OnSuspending queues the outward logo animation. The background stack is
// left alone; the covering screen decides what is visible.
func (b *Base) OnSuspending(next Screen) {
	if b.deps.Logo != nil {
		b.deps.Logo.AppendAnimatingAction(func(l *logo.Logo) {
			l.SetMode(logo.ModeDimmed)
		}, false)
	}
}

// OnExiting performs the default teardown and never vetoes. Screens that
// need a veto shadow this method and only delegate here once they agree to
// leave.
func (b *Base) OnExiting(next Screen) bool {
	// Guard against double teardown: a screen that already exited must
	// not queue a second outward animation.
	if b.deps.Logo != nil && b.validForResume {
		b.deps.Logo.AppendAnimatingAction(func(l *logo.Logo) {
			l.SetMode(logo.ModeDimmed)
		}, false)
	}

	if b.deps.Background != nil && b.ownedBackground != nil {
		b.deps.Background.Exit(b.ownedBackground)
	}
	b.ownedBackground = nil

	b.Beatmap.Unbind()
	b.Ruleset.Unbind()
	b.validForResume = false
	return false
}

// OnPressed consumes the back action when the screen is current and back
// navigation is allowed. Screens that are not current never handle input.
func (b *Base) OnPressed(a input.Action) bool {
	if !b.IsCurrentScreen() {
		return false
	}
	if a == input.ActionBack && b.AllowBackNavigation {
		b.deps.Nav.RequestExit()
		return true
	}
	return false
}

// OnReleased mirrors OnPressed's eligibility check; releases carry no
// default behavior.
func (b *Base) OnReleased(a input.Action) bool {
	if !b.IsCurrentScreen() {
		return false
	}
	return false
}

// AllowsExternalNavigation reports whether components other than the screen
// itself may push screens while this one is current.
func (b *Base) AllowsExternalNavigation() bool {
	return b.AllowExternalNavigation
}

// OwnsBackground reports whether the screen currently holds a live backdrop.
func (b *Base) OwnsBackground() bool {
	return b.ownedBackground != nil
}

// applyArrivingDefaults resets overlay activation to the configured initial
// value, sets the shared parallax, then applies overlay visibility.
func (b *Base) applyArrivingDefaults() {
	if b.deps.Overlays != nil {
		b.deps.Overlays.SetActivation(b.InitialOverlayActivation)
	}
	if b.deps.Background != nil {
		b.deps.Background.SetParallaxAmount(b.BackgroundParallax)
	}
	if b.deps.Overlays != nil {
		if b.HideOverlaysOnEnter {
			b.deps.Overlays.CloseAll()
		} else {
			b.deps.Overlays.ShowToolbar()
		}
	}
}

// appendArrivingLogo queues the ambient arrival action. The action checks
// current-screen identity when it runs, not when it is appended, so a
// superseded screen's action quietly expires.
func (b *Base) appendArrivingLogo() {
	if b.deps.Logo == nil {
		return
	}
	self := b.self
	nav := b.deps.Nav
	b.deps.Logo.AppendAnimatingAction(func(l *logo.Logo) {
		if nav != nil && !nav.IsCurrent(self) {
			return
		}
		l.SetMode(logo.ModeFull)
		l.Beat()
	}, true)
}
