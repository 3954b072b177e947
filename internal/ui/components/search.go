package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/okarum/beatdeck/internal/ui/theme"
)

// SearchInput wraps bubbles/textinput for filtering lists.
type SearchInput struct {
	Model  textinput.Model
	active bool
}

// NewSearchInput creates a styled, initially inactive search input.
func NewSearchInput(placeholder string) SearchInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	return SearchInput{Model: ti}
}

// Activate gives the input focus.
func (s *SearchInput) Activate() tea.Cmd {
	s.active = true
	return s.Model.Focus()
}

// Deactivate removes focus, keeping the query.
func (s *SearchInput) Deactivate() {
	s.active = false
	s.Model.Blur()
}

// Active reports whether the input has focus.
func (s SearchInput) Active() bool {
	return s.active
}

// Update handles messages while active.
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd) {
	if !s.active {
		return s, nil
	}
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the input with a search marker.
func (s SearchInput) View() string {
	marker := lipgloss.NewStyle().Foreground(theme.TextDim).Render("⌕ ")
	if s.active {
		marker = lipgloss.NewStyle().Foreground(theme.Secondary).Render("⌕ ")
	}
	return marker + s.Model.View()
}

// Value returns the current query.
func (s SearchInput) Value() string {
	return s.Model.Value()
}

// Reset clears the query.
func (s *SearchInput) Reset() {
	s.Model.SetValue("")
}
