// Package detail shows a single beatmap set: the info wedge, difficulty
// switching and the community comment thread.
package detail

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/okarum/beatdeck/internal/api"
	"github.com/okarum/beatdeck/internal/background"
	"github.com/okarum/beatdeck/internal/beatmap"
	"github.com/okarum/beatdeck/internal/overlay"
	"github.com/okarum/beatdeck/internal/screen"
	"github.com/okarum/beatdeck/internal/ui/components"
	"github.com/okarum/beatdeck/internal/ui/layout"
	"github.com/okarum/beatdeck/internal/ui/theme"
)

const fetchTimeout = 10 * time.Second

// commentsLoadedMsg is sent when a comment page has been fetched.
type commentsLoadedMsg struct {
	Bundle *api.CommentBundle
	Page   int
	Err    error
}

// DetailScreen shows one beatmap set with its comment thread.
type DetailScreen struct {
	screen.Base
	client *api.Client
	set    *beatmap.Set

	diff     int
	comments *api.CommentBundle
	page     int
	sort     api.CommentSort
	loading  bool
	err      error
}

var _ screen.Screen = (*DetailScreen)(nil)

// New creates the detail screen for the given set.
func New(client *api.Client, set *beatmap.Set) *DetailScreen {
	d := &DetailScreen{
		Base:   screen.NewBase(),
		client: client,
		set:    set,
		page:   1,
		sort:   api.SortNew,
	}
	d.TitleText = set.DisplayName()
	d.CursorVisible = false
	d.HideOverlaysOnEnter = true
	d.InitialOverlayActivation = overlay.ActivationUserTriggered
	d.BackgroundParallax = 2
	d.MakeBackground = func() *background.Layer {
		return &background.Layer{Name: fmt.Sprintf("set-%d", set.OnlineID), Art: coverArt(set), DimLevel: 0.4}
	}
	return d
}

// coverArt derives a stable pseudo-cover from the set title, so each set
// gets a distinct backdrop without bundled assets.
func coverArt(set *beatmap.Set) string {
	glyphs := []rune("░▒▓█▓▒")
	var b strings.Builder
	seed := 0
	for _, r := range set.Title {
		seed += int(r)
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 36; col++ {
			b.WriteRune(glyphs[(seed+row*7+col*3)%len(glyphs)])
		}
		if row < 2 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (d *DetailScreen) Init() tea.Cmd {
	d.loading = true
	return d.fetchComments()
}

// OnEntering publishes the opened set as the client-wide selection before
// running the shared arrival behaviour.
func (d *DetailScreen) OnEntering(prev screen.Screen) {
	d.Base.OnEntering(prev)
	deps := d.Deps()
	if deps.Beatmap != nil {
		deps.Beatmap.Set(d.set)
	}
	d.publishRuleset()
}

func (d *DetailScreen) publishRuleset() {
	deps := d.Deps()
	if deps.Ruleset == nil || d.diff < 0 || d.diff >= len(d.set.Beatmaps) {
		return
	}
	deps.Ruleset.Set(beatmap.ParseRuleset(d.set.Beatmaps[d.diff].Ruleset))
}

func (d *DetailScreen) fetchComments() tea.Cmd {
	client := d.client
	req := api.CommentsRequest{
		Type: api.CommentableBeatmapSet,
		ID:   d.set.OnlineID,
		Sort: d.sort,
		Page: d.page,
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		bundle, err := client.ListComments(ctx, req)
		return commentsLoadedMsg{Bundle: bundle, Page: req.Page, Err: err}
	}
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case commentsLoadedMsg:
		// A page or sort change may have been requested while this page
		// was in flight.
		if msg.Page != d.page {
			return d, nil
		}
		d.loading = false
		d.err = msg.Err
		if msg.Err == nil {
			d.comments = msg.Bundle
		}
		return d, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "shift+tab":
			if d.diff > 0 {
				d.diff--
				d.publishRuleset()
			}
		case "right", "l", "tab":
			if d.diff < len(d.set.Beatmaps)-1 {
				d.diff++
				d.publishRuleset()
			}
		case "s":
			d.sort = nextSort(d.sort)
			d.page = 1
			d.loading = true
			return d, d.fetchComments()
		case "n":
			if d.comments != nil && d.comments.HasMore {
				d.page++
				d.loading = true
				return d, d.fetchComments()
			}
		case "p":
			if d.page > 1 {
				d.page--
				d.loading = true
				return d, d.fetchComments()
			}
		case "r":
			d.loading = true
			return d, d.fetchComments()
		}
	}

	return d, nil
}

func nextSort(s api.CommentSort) api.CommentSort {
	switch s {
	case api.SortNew:
		return api.SortTop
	case api.SortTop:
		return api.SortOld
	default:
		return api.SortNew
	}
}

func (d *DetailScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(components.RenderWedge(d.set, d.diff, width) + "\n")
	b.WriteString(" " + components.WedgeDifficultyLabels(d.set, d.diff) + "\n\n")
	b.WriteString(d.renderComments(width))

	return b.String()
}

func (d *DetailScreen) renderComments(width int) string {
	header := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf(" COMMENTS · sort %s · page %d", d.sort, d.page))

	switch {
	case d.err != nil:
		return header + "\n" + theme.Negative.Render("  "+d.err.Error())
	case d.loading:
		return header + "\n" + theme.Hint.Render("  fetching...")
	case d.comments == nil || len(d.comments.Comments) == 0:
		return header + "\n" + theme.Hint.Render("  no comments yet")
	}

	var b strings.Builder
	b.WriteString(header + "\n")
	for _, c := range d.comments.Comments {
		b.WriteString(d.renderComment(c, width) + "\n")
	}
	if d.comments.HasMore {
		b.WriteString(theme.Hint.Render("  n for more") + "\n")
	}
	return b.String()
}

func (d *DetailScreen) renderComment(c api.Comment, width int) string {
	indent := "  "
	if c.ParentID != nil {
		indent = "      ↳ "
	}

	if c.Deleted {
		return indent + theme.Hint.Render("[deleted]")
	}

	author := "unknown"
	if u := d.comments.UserByID(c.UserID); u != nil {
		author = u.Username
	}

	head := lipgloss.NewStyle().Foreground(theme.Accent).Render(author) +
		theme.Hint.Render(fmt.Sprintf("  %s · +%d", c.CreatedAt.Format("2006-01-02"), c.VotesUp))

	body := c.Message
	if limit := width - len(indent) - 2; limit > 10 {
		if runes := []rune(body); len(runes) > limit {
			body = string(runes[:limit-1]) + "…"
		}
	}

	return indent + head + "\n" + indent + theme.Body.Render(body)
}

// KeyHints implements screen.KeyHintProvider.
func (d *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Difficulty"},
		{Key: "s", Description: "Sort"},
		{Key: "n/p", Description: "Page"},
		{Key: "r", Description: "Reload"},
		{Key: "Esc", Description: "Back"},
	}
}
