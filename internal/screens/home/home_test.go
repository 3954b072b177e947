package home

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okarum/beatdeck/internal/api"
	"github.com/okarum/beatdeck/internal/audio"
	"github.com/okarum/beatdeck/internal/background"
	"github.com/okarum/beatdeck/internal/beatmap"
	"github.com/okarum/beatdeck/internal/bindable"
	"github.com/okarum/beatdeck/internal/logo"
	"github.com/okarum/beatdeck/internal/nav"
	"github.com/okarum/beatdeck/internal/overlay"
	"github.com/okarum/beatdeck/internal/screen"
	"github.com/okarum/beatdeck/internal/screens/library"
	"github.com/okarum/beatdeck/internal/store"
)

type emptyRepo struct{}

func (emptyRepo) Upsert(context.Context, *beatmap.Set, string) error { return nil }
func (emptyRepo) Get(context.Context, int64) (*store.ImportedSet, error) {
	return nil, nil
}
func (emptyRepo) List(context.Context, string) ([]*store.ImportedSet, error) {
	return nil, nil
}
func (emptyRepo) Count(context.Context) (int, int, error) { return 0, 0, nil }
func (emptyRepo) Wipe(context.Context) error              { return nil }

func newHost() *nav.Host {
	return nav.NewHost(screen.Deps{
		Background: background.NewStack(),
		Logo:       logo.NewController(),
		Overlays:   overlay.NewManager(),
		Sampler:    &audio.CountingSampler{},
		Beatmap:    bindable.New[*beatmap.Set](nil),
		Ruleset:    bindable.New(beatmap.RulesetCircles),
	})
}

func TestQuitNeedsConfirmation(t *testing.T) {
	host := newHost()
	host.Push(New(emptyRepo{}, api.NewClient()))

	require.False(t, host.Exit(), "first exit should be vetoed")
	assert.Equal(t, 1, host.Depth())

	require.True(t, host.Exit(), "second exit should go through")
	assert.Equal(t, 0, host.Depth())
}

func TestOtherKeyCancelsQuitConfirmation(t *testing.T) {
	host := newHost()
	h := New(emptyRepo{}, api.NewClient())
	host.Push(h)

	require.False(t, host.Exit())
	h.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})

	require.False(t, host.Exit(), "confirmation should reset after other input")
	require.True(t, host.Exit())
}

func TestMenuOpensLibrary(t *testing.T) {
	h := New(emptyRepo{}, api.NewClient())

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	push, ok := msg.(nav.PushScreenMsg)
	require.True(t, ok, "expected a push message, got %T", msg)
	assert.IsType(t, &library.LibraryScreen{}, push.Screen)
}

func TestQuitItemExitsScreen(t *testing.T) {
	h := New(emptyRepo{}, api.NewClient())

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	_, ok := cmd().(nav.ExitScreenMsg)
	assert.True(t, ok)
}

func TestViewShowsConfirmHint(t *testing.T) {
	host := newHost()
	h := New(emptyRepo{}, api.NewClient())
	host.Push(h)

	assert.NotContains(t, h.View(80, 24), "press esc again")
	host.Exit()
	assert.Contains(t, h.View(80, 24), "press esc again to quit")
}
