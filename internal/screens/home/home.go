// Package home is the entry screen: the main menu over the ambient
// backdrop.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/okarum/beatdeck/internal/api"
	"github.com/okarum/beatdeck/internal/audio"
	"github.com/okarum/beatdeck/internal/background"
	"github.com/okarum/beatdeck/internal/nav"
	"github.com/okarum/beatdeck/internal/screen"
	"github.com/okarum/beatdeck/internal/screens/library"
	"github.com/okarum/beatdeck/internal/store"
	"github.com/okarum/beatdeck/internal/ui/components"
	"github.com/okarum/beatdeck/internal/ui/layout"
	"github.com/okarum/beatdeck/internal/ui/theme"
)

const homeArt = `   ░░  ▒▒▒   ░░░    ▒▒  ░░   ▒▒▒▒   ░░
 ▒▒   ░░░  ▒▒   ░░░   ▒▒▒  ░░    ▒▒   ░░░
   ░░░   ▒▒    ░░  ▒▒▒   ░░░  ▒▒    ░░`

// HomeScreen is the main menu of the client.
type HomeScreen struct {
	screen.Base
	menu        components.Menu
	confirmQuit bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. sets backs the library screen; client is
// handed down to the detail screen for comment threads.
func New(sets store.SetRepo, client *api.Client) *HomeScreen {
	h := &HomeScreen{Base: screen.NewBase()}
	h.TitleText = "Home"
	h.ExitSample = audio.LoadSample("menu-return")
	h.MakeBackground = func() *background.Layer {
		return &background.Layer{Name: "home", Art: homeArt, DimLevel: 0.8}
	}

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "BROWSE LIBRARY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return nav.PushScreenMsg{Screen: library.New(sets, client)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			// An explicit quit needs no second confirmation.
			h.confirmQuit = true
			return func() tea.Msg {
				return nav.ExitScreenMsg{}
			}
		}},
	})
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// OnEntering resets the quit confirmation along with the shared arrival
// defaults.
func (h *HomeScreen) OnEntering(prev screen.Screen) {
	h.confirmQuit = false
	h.Base.OnEntering(prev)
}

// OnResuming clears a pending quit confirmation left from before the
// covered screen was pushed.
func (h *HomeScreen) OnResuming(prev screen.Screen) {
	h.confirmQuit = false
	h.Base.OnResuming(prev)
}

// OnExiting asks for confirmation before letting the client shut down: the
// first exit request is vetoed, the second goes through.
func (h *HomeScreen) OnExiting(next screen.Screen) bool {
	if !h.confirmQuit {
		h.confirmQuit = true
		return true
	}
	return h.Base.OnExiting(next)
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && h.confirmQuit && key.String() != "esc" {
		// Any other navigation cancels the pending quit.
		h.confirmQuit = false
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	banner := theme.Title.Width(width).Render("b e a t d e c k")
	tagline := theme.Subtitle.Width(width).Render("your charts, your community")

	sections := []string{"", banner, tagline, "", h.menu.View()}

	if h.confirmQuit {
		sections = append(sections, "",
			lipgloss.NewStyle().
				Foreground(theme.Accent).
				Width(width).
				Align(lipgloss.Center).
				Render("press esc again to quit"))
	}

	return strings.Join(sections, "\n")
}

// KeyHints implements screen.KeyHintProvider.
func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Quit"},
	}
}
