package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/finzaapp/finza/internal/cli"
	"github.com/finzaapp/finza/internal/tui/components"
	"github.com/finzaapp/finza/internal/tui/theme"
)

func (a App) renderBillsTab() string {
	t := theme.Active
	cur := a.cfg.General.Currency
	width := a.contentWidth()

	if len(a.commitments) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextDim).
			Render("No monthly bills yet. Press a to add one.")
		return components.ContentCard("Bills", empty, width)
	}

	nameW := 0
	for _, c := range a.commitments {
		if len(c.Name) > nameW {
			nameW = len(c.Name)
		}
	}

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	selStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)

	var b strings.Builder
	for i, c := range a.commitments {
		marker := "  "
		style := rowStyle
		if i == a.billsCursor {
			marker = "> "
			style = selStyle
		}
		line := fmt.Sprintf("%s%-*s  %12s  %s",
			marker,
			nameW, c.Name,
			cli.FormatAmount(cur, c.Amount),
			cli.FormatDueDay(c.DueDay),
		)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("  Set aside %s/day to stay covered",
		cli.FormatAmount(cur, a.dailyBills))))

	return components.ContentCard("Bills", b.String(), width)
}
