package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/finzaapp/finza/internal/tui/theme"
)

// RenderStatusBar renders the bottom bar with left-aligned hints and a
// right-aligned message.
func RenderStatusBar(left, right string, width int) string {
	t := theme.Active

	leftStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	rightStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	fillStyle := lipgloss.NewStyle().Background(t.Surface)

	l := leftStyle.Render(" " + left)
	r := rightStyle.Render(right + " ")

	gap := width - lipgloss.Width(l) - lipgloss.Width(r)
	if gap < 1 {
		gap = 1
	}

	return l + fillStyle.Render(lipgloss.PlaceHorizontal(gap, lipgloss.Left, "")) + r
}
