package library

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
	"github.com/okarum/beatdeck/internal/input"
	"github.com/okarum/beatdeck/internal/logo"
	"github.com/okarum/beatdeck/internal/nav"
	"github.com/okarum/beatdeck/internal/overlay"
	"github.com/okarum/beatdeck/internal/screen"
	"github.com/okarum/beatdeck/internal/screens/detail"
	"github.com/okarum/beatdeck/internal/store"
)

type fakeRepo struct {
	sets      []*store.ImportedSet
	lastQuery string
}

func (f *fakeRepo) Upsert(context.Context, *beatmap.Set, string) error { return nil }
func (f *fakeRepo) Get(context.Context, int64) (*store.ImportedSet, error) {
	return nil, nil
}
func (f *fakeRepo) List(_ context.Context, query string) ([]*store.ImportedSet, error) {
	f.lastQuery = query
	return f.sets, nil
}
func (f *fakeRepo) Count(context.Context) (int, int, error) { return len(f.sets), 0, nil }
func (f *fakeRepo) Wipe(context.Context) error              { return nil }

func twoSets() []*store.ImportedSet {
	return []*store.ImportedSet{
		{Set: beatmap.Set{OnlineID: 1, Title: "Night Drive", Artist: "kaze", Creator: "mira",
			Beatmaps: []beatmap.Beatmap{{Name: "Easy"}}}},
		{Set: beatmap.Set{OnlineID: 2, Title: "Static", Artist: "volt", Creator: "juno",
			Beatmaps: []beatmap.Beatmap{{Name: "Hard"}}}},
	}
}

func attach(t *testing.T, l *LibraryScreen) *nav.Host {
	t.Helper()
	host := nav.NewHost(screen.Deps{
		Background: background.NewStack(),
		Logo:       logo.NewController(),
		Overlays:   overlay.NewManager(),
		Sampler:    &audio.CountingSampler{},
		Beatmap:    bindable.New[*beatmap.Set](nil),
		Ruleset:    bindable.New(beatmap.RulesetCircles),
	})
	host.Push(l)
	return host
}

func TestInitLoadsSets(t *testing.T) {
	repo := &fakeRepo{sets: twoSets()}
	l := New(repo, api.NewClient())
	attach(t, l)

	cmd := l.Init()
	require.NotNil(t, cmd)
	l.Update(cmd())

	assert.Len(t, l.list, 2)
	assert.Contains(t, l.View(80, 24), "kaze - Night Drive")
}

func TestSearchFiltersList(t *testing.T) {
	repo := &fakeRepo{sets: twoSets()}
	l := New(repo, api.NewClient())
	attach(t, l)
	l.Update(l.Init()())

	l.Update(tea.KeyPressMsg{Code: '/', Text: "/"})
	require.True(t, l.search.Active())

	l.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	assert.Equal(t, "s", l.search.Value())

	_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.False(t, l.search.Active())
	require.NotNil(t, cmd)

	l.Update(cmd())
	assert.Equal(t, "s", repo.lastQuery)
}

func TestBackspaceEditsSearchQuery(t *testing.T) {
	repo := &fakeRepo{sets: twoSets()}
	l := New(repo, api.NewClient())
	attach(t, l)
	l.Update(l.Init()())

	l.Update(tea.KeyPressMsg{Code: '/', Text: "/"})
	for _, r := range "typo" {
		l.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	require.Equal(t, "typo", l.search.Value())

	require.Equal(t, input.ActionNone, input.FromKey("backspace"),
		"backspace must reach the text input, not navigate")

	l.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	assert.Equal(t, "typ", l.search.Value())
	assert.True(t, l.search.Active(), "deleting a character must not close the search")
}

func TestBackClosesSearchBeforePopping(t *testing.T) {
	repo := &fakeRepo{sets: twoSets()}
	l := New(repo, api.NewClient())
	host := attach(t, l)
	l.Update(l.Init()())

	l.Update(tea.KeyPressMsg{Code: '/', Text: "/"})
	require.True(t, l.search.Active())

	require.True(t, l.OnPressed(input.ActionBack))
	assert.False(t, l.search.Active())
	assert.Equal(t, 1, host.Depth(), "screen should stay while closing search")

	require.True(t, l.OnPressed(input.ActionBack))
	assert.Equal(t, 0, host.Depth())
}

func TestEnterOpensDetail(t *testing.T) {
	repo := &fakeRepo{sets: twoSets()}
	l := New(repo, api.NewClient())
	attach(t, l)
	l.Update(l.Init()())

	l.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	push, ok := cmd().(nav.PushScreenMsg)
	require.True(t, ok)
	d, ok := push.Screen.(*detail.DetailScreen)
	require.True(t, ok)
	assert.Equal(t, "volt - Static", d.Title())
}

func TestResumeMarksListStale(t *testing.T) {
	repo := &fakeRepo{sets: twoSets()}
	l := New(repo, api.NewClient())
	attach(t, l)
	l.Update(l.Init()())
	require.True(t, l.loaded)

	l.OnResuming(nil)
	assert.False(t, l.loaded)

	// The next forwarded message triggers a reload.
	_, cmd := l.Update(struct{}{})
	require.NotNil(t, cmd)
	l.Update(cmd())
	assert.True(t, l.loaded)
}

func TestEmptyLibraryHint(t *testing.T) {
	repo := &fakeRepo{}
	l := New(repo, api.NewClient())
	attach(t, l)
	l.Update(l.Init()())

	assert.Contains(t, l.View(80, 24), "no beatmap sets")
}
