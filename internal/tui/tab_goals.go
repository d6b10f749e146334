package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/finzaapp/finza/internal/cli"
	"github.com/finzaapp/finza/internal/tui/components"
	"github.com/finzaapp/finza/internal/tui/theme"
)

var hundred = decimal.NewFromInt(100)

func (a App) renderGoalsTab() string {
	t := theme.Active
	cur := a.cfg.General.Currency
	width := a.contentWidth()

	if len(a.progress) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextDim).
			Render("No savings goals yet. Press a to add one.")
		return components.ContentCard("Goals", empty, width)
	}

	nameW := 0
	for _, p := range a.progress {
		if len(p.Goal.Name) > nameW {
			nameW = len(p.Goal.Name)
		}
	}
	barW := width - nameW - 14
	if barW < 10 {
		barW = 10
	}

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	detailStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	selStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)

	var b strings.Builder
	for i, p := range a.progress {
		marker := "  "
		if i == a.goalsCursor {
			marker = selStyle.Render("> ")
		}

		pct, _ := p.ProgressPercent.Div(hundred).Float64()
		b.WriteString(marker)
		b.WriteString(components.GoalBar(p.Goal.Name, pct, nameW, barW))
		b.WriteString("\n")

		detail := fmt.Sprintf("  %s of %s",
			cli.FormatAmount(cur, p.Goal.SavedAmount),
			cli.FormatAmount(cur, p.Goal.TargetAmount),
		)
		if p.DaysLeft > 0 {
			detail += fmt.Sprintf("  ·  %s/day for %s",
				cli.FormatAmount(cur, p.DailyNext),
				cli.FormatDays(p.DaysLeft),
			)
		} else {
			detail += "  ·  due now"
		}
		b.WriteString("  " + detailStyle.Render(detail))
		b.WriteString("\n\n")
	}

	b.WriteString(dimStyle.Render(fmt.Sprintf("  Across all goals: %s/day",
		cli.FormatAmount(cur, a.dailyGoals))))

	return components.ContentCard("Goals", b.String(), width)
}
