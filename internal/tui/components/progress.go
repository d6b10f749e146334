package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/finzaapp/finza/internal/tui/theme"
)

// ColorForProgress maps goal completion to a color: the further along a
// goal is, the greener it gets.
func ColorForProgress(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 0.75:
		return string(t.Green)
	case pct >= 0.5:
		return string(t.Accent)
	case pct >= 0.25:
		return string(t.Yellow)
	default:
		return string(t.Orange)
	}
}

// GoalBar renders a labeled progress bar with percentage for one goal.
func GoalBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForProgress(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForProgress(pct))).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " +
		bar.ViewAs(pct) +
		" " +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}
