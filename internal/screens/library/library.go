// Package library lists the imported beatmap sets with incremental search.
package library

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/okarum/beatdeck/internal/api"
	"github.com/okarum/beatdeck/internal/audio"
	"github.com/okarum/beatdeck/internal/background"
	"github.com/okarum/beatdeck/internal/input"
	"github.com/okarum/beatdeck/internal/nav"
	"github.com/okarum/beatdeck/internal/screen"
	"github.com/okarum/beatdeck/internal/screens/detail"
	"github.com/okarum/beatdeck/internal/store"
	"github.com/okarum/beatdeck/internal/ui/components"
	"github.com/okarum/beatdeck/internal/ui/layout"
	"github.com/okarum/beatdeck/internal/ui/theme"
)

const libraryArt = ` ▁▂▃▅▆▇ ▇▆▅▃▂▁ ▁▂▃▅▆▇ ▇▆▅▃▂▁ ▁▂▃▅▆▇
 ▇▆▅▃▂▁ ▁▂▃▅▆▇ ▇▆▅▃▂▁ ▁▂▃▅▆▇ ▇▆▅▃▂▁`

// setsLoadedMsg is sent when the set list has been read from the store.
type setsLoadedMsg struct {
	Sets []*store.ImportedSet
	Err  error
}

// LibraryScreen shows the imported sets and opens the detail screen for
// the selected one.
type LibraryScreen struct {
	screen.Base
	sets   store.SetRepo
	client *api.Client

	list     []*store.ImportedSet
	selected int
	search   components.SearchInput
	loaded   bool
	loading  bool
	err      error
}

var _ screen.Screen = (*LibraryScreen)(nil)

// New creates the library screen backed by the given repository.
func New(sets store.SetRepo, client *api.Client) *LibraryScreen {
	l := &LibraryScreen{
		Base:   screen.NewBase(),
		sets:   sets,
		client: client,
		search: components.NewSearchInput("title, artist or mapper"),
	}
	l.TitleText = "Library"
	l.BackgroundParallax = 1.5
	l.ExitSample = audio.LoadSample("back-to-library")
	l.MakeBackground = func() *background.Layer {
		return &background.Layer{Name: "library", Art: libraryArt, DimLevel: 0.6}
	}
	return l
}

func (l *LibraryScreen) Init() tea.Cmd {
	l.loading = true
	return l.load()
}

// OnResuming marks the list stale so the next update reloads it; changes
// made while the detail screen was on top show up immediately.
func (l *LibraryScreen) OnResuming(prev screen.Screen) {
	l.Base.OnResuming(prev)
	l.loaded = false
	l.loading = false
}

// OnPressed intercepts back while the search box has focus so esc drops
// focus instead of popping the screen.
func (l *LibraryScreen) OnPressed(action input.Action) bool {
	if action == input.ActionBack && l.search.Active() && l.IsCurrentScreen() {
		l.search.Deactivate()
		return true
	}
	return l.Base.OnPressed(action)
}

func (l *LibraryScreen) load() tea.Cmd {
	repo := l.sets
	query := l.search.Value()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		sets, err := repo.List(ctx, query)
		return setsLoadedMsg{Sets: sets, Err: err}
	}
}

func (l *LibraryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case setsLoadedMsg:
		l.loaded = true
		l.loading = false
		l.err = msg.Err
		l.list = msg.Sets
		if l.selected >= len(l.list) {
			l.selected = len(l.list) - 1
		}
		if l.selected < 0 {
			l.selected = 0
		}
		return l, nil

	case tea.KeyMsg:
		if l.search.Active() {
			switch msg.String() {
			case "enter":
				l.search.Deactivate()
				return l, l.load()
			default:
				var cmd tea.Cmd
				l.search, cmd = l.search.Update(msg)
				// Filter as the query changes.
				l.loading = true
				return l, tea.Batch(cmd, l.load())
			}
		}

		switch msg.String() {
		case "/":
			if !l.CursorVisible {
				return l, nil
			}
			return l, l.search.Activate()
		case "up", "k":
			if l.selected > 0 {
				l.selected--
			}
		case "down", "j":
			if l.selected < len(l.list)-1 {
				l.selected++
			}
		case "enter":
			if l.selected >= 0 && l.selected < len(l.list) {
				set := &l.list[l.selected].Set
				client := l.client
				return l, func() tea.Msg {
					return nav.PushScreenMsg{Screen: detail.New(client, set)}
				}
			}
		}

	default:
		if !l.loaded && !l.loading {
			l.loading = true
			return l, l.load()
		}
	}

	return l, nil
}

func (l *LibraryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(" " + l.search.View() + "\n\n")

	switch {
	case l.err != nil:
		b.WriteString(theme.Negative.Render("  could not read library: " + l.err.Error()))
	case !l.loaded:
		b.WriteString(theme.Hint.Render("  loading..."))
	case len(l.list) == 0:
		b.WriteString(theme.Hint.Render("  no beatmap sets. run `beatdeck import` to add some."))
	default:
		// Two lines are spent on the search row above.
		visible := height - 3
		if visible < 1 {
			visible = 1
		}
		start := 0
		if l.selected >= visible {
			start = l.selected - visible + 1
		}
		for i := start; i < len(l.list) && i < start+visible; i++ {
			b.WriteString(l.renderRow(i, width) + "\n")
		}
	}

	return b.String()
}

func (l *LibraryScreen) renderRow(i, width int) string {
	set := l.list[i]
	line := fmt.Sprintf("%s  %s", set.Set.DisplayName(),
		theme.Hint.Render(fmt.Sprintf("by %s · %d difficulties", set.Creator, len(set.Beatmaps))))
	if i == l.selected {
		return lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Render("  ▸ " + line)
	}
	return lipgloss.NewStyle().
		Foreground(theme.Text).
		Render("    " + line)
}

// KeyHints implements screen.KeyHintProvider.
func (l *LibraryScreen) KeyHints() []layout.KeyHint {
	if l.search.Active() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Close search"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "/", Description: "Search"},
		{Key: "Esc", Description: "Back"},
	}
}
