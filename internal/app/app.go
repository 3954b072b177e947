// Package app wires the client shell: the screen host, the ambient
// background, the logo emblem and the overlay toolbar.
package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

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
	"github.com/okarum/beatdeck/internal/screens/home"
	"github.com/okarum/beatdeck/internal/store"
	"github.com/okarum/beatdeck/internal/ui/layout"
)

// frameMsg drives the ambient animation: parallax scroll and the logo
// action queue.
type frameMsg time.Time

const frameInterval = 100 * time.Millisecond

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Model is the root Bubble Tea model.
type Model struct {
	host     *nav.Host
	bg       *background.Stack
	logo     *logo.Controller
	overlays *overlay.Manager

	selection *bindable.Bindable[*beatmap.Set]
	ruleset   *bindable.Bindable[beatmap.Ruleset]

	width   int
	height  int
	initial tea.Cmd
}

// newModel builds the shell and pushes the home screen.
func newModel(sets store.SetRepo, client *api.Client) Model {
	m := Model{
		bg:        background.NewStack(),
		logo:      logo.NewController(),
		overlays:  overlay.NewManager(),
		selection: bindable.New[*beatmap.Set](nil),
		ruleset:   bindable.New(beatmap.RulesetCircles),
	}

	m.host = nav.NewHost(screen.Deps{
		Background: m.bg,
		Logo:       m.logo,
		Overlays:   m.overlays,
		Sampler:    &audio.BellSampler{W: os.Stderr},
		Beatmap:    m.selection,
		Ruleset:    m.ruleset,
	})

	m.initial = m.host.Push(home.New(sets, client))
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.initial, frameTick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case frameMsg:
		m.logo.Drain()
		m.bg.Advance()
		cmd := m.host.Update(msg)
		if m.host.Depth() == 0 {
			return m, tea.Quit
		}
		return m, tea.Batch(cmd, frameTick())

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if action := input.FromKey(msg.String()); action != input.ActionNone {
			handled := m.host.Press(action)
			m.host.Release(action)
			if m.host.Depth() == 0 {
				return m, tea.Quit
			}
			if handled {
				return m, nil
			}
			switch action {
			case input.ActionToggleOverlays:
				m.overlays.ToggleToolbar()
				return m, nil
			case input.ActionBack:
				// The current screen declined back navigation.
				return m, nil
			}
		}
	}

	cmd := m.host.Update(msg)
	// Navigation messages can empty the stack, e.g. the home menu's quit
	// item.
	if m.host.Depth() == 0 {
		return m, tea.Quit
	}
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	title := ""
	var hints []layout.KeyHint
	if cur := m.host.Current(); cur != nil {
		title = cur.Title()
		if p, ok := cur.(screen.KeyHintProvider); ok {
			hints = p.KeyHints()
		}
	}
	if hints == nil {
		hints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	status := "overlays: " + m.overlays.Activation.Get().String()
	header := layout.RenderHeader(m.logo.Logo().View(), title, status, m.width)
	footer := layout.RenderFooter(hints, m.width)

	content := m.host.View(m.width, layout.ContentHeight(m.height))
	if m.overlays.ToolbarVisible.Get() {
		content = layout.RenderToolbar(m.toolbarItems(), m.width) + "\n" + content
	}

	backdrop := ""
	if layer := m.bg.Current(); layer != nil {
		backdrop = layer.Render(m.width, m.bg.Offset())
	}

	v.SetContent(layout.RenderFrame(header, content, backdrop, footer, m.width, m.height))
	return v
}

func (m Model) toolbarItems() []string {
	items := []string{"beatdeck"}
	if set := m.selection.Get(); set != nil {
		items = append(items, set.DisplayName())
	}
	items = append(items, m.ruleset.Get().String())
	return items
}

// Run starts the Bubble Tea program.
func Run(sets store.SetRepo, client *api.Client) error {
	p := tea.NewProgram(newModel(sets, client))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
