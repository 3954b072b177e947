package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/okarum/beatdeck/internal/beatmap"
	"github.com/okarum/beatdeck/internal/ui/theme"
)

// RenderWedge draws the beatmap info panel: artist and title up top, the
// mapper line, then length, BPM and object counts for the given difficulty.
func RenderWedge(set *beatmap.Set, diff int, width int) string {
	if set == nil {
		return theme.Hint.Render("no beatmap selected")
	}

	title := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(set.Title)
	artist := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render(set.Artist)
	mapper := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("mapped by " + set.Creator)

	lines := []string{title, artist, mapper}

	if diff >= 0 && diff < len(set.Beatmaps) {
		b := set.Beatmaps[diff]

		diffLine := lipgloss.NewStyle().Foreground(theme.Accent).Render(
			fmt.Sprintf("%s  ★ %.2f  [%s]", b.Name, b.StarRating, b.Ruleset),
		)

		statLabel := lipgloss.NewStyle().Foreground(theme.TextDim)
		statValue := lipgloss.NewStyle().Foreground(theme.Text)
		stats := strings.Join([]string{
			statLabel.Render("Length ") + statValue.Render(b.LengthLabel()),
			statLabel.Render("BPM ") + statValue.Render(b.BPMLabel()),
			statLabel.Render("Circles ") + statValue.Render(fmt.Sprintf("%d", b.Circles)),
			statLabel.Render("Sliders ") + statValue.Render(fmt.Sprintf("%d", b.Sliders)),
			statLabel.Render("Spinners ") + statValue.Render(fmt.Sprintf("%d", b.Spinners)),
		}, "   ")

		lines = append(lines, "", diffLine, stats)
	}

	panel := theme.Card.Render(strings.Join(lines, "\n"))
	if width > 0 {
		panel = lipgloss.NewStyle().MaxWidth(width).Render(panel)
	}
	return panel
}

// WedgeDifficultyLabels returns one short label per difficulty, with the
// selected one highlighted.
func WedgeDifficultyLabels(set *beatmap.Set, selected int) string {
	if set == nil || len(set.Beatmaps) == 0 {
		return ""
	}
	parts := make([]string, 0, len(set.Beatmaps))
	for i, b := range set.Beatmaps {
		label := fmt.Sprintf("%s %.1f★", b.Name, b.StarRating)
		if i == selected {
			parts = append(parts, theme.Selected.Render("["+label+"]"))
		} else {
			parts = append(parts, theme.Unselected.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}
