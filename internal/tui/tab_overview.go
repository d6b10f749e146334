package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/finzaapp/finza/internal/cli"
	"github.com/finzaapp/finza/internal/tui/components"
	"github.com/finzaapp/finza/internal/tui/theme"
)

func (a App) renderOverviewTab() string {
	t := theme.Active
	cur := a.cfg.General.Currency
	width := a.contentWidth()

	topCards := components.MetricCardRow([]struct{ Label, Value, Sub string }{
		{
			Label: "Balance",
			Value: cli.FormatAmount(cur, a.summary.Balance),
			Sub:   cli.FormatNumber(int64(len(a.transactions))) + " transactions",
		},
		{
			Label: "Income",
			Value: cli.FormatAmount(cur, a.summary.TotalIncome),
		},
		{
			Label: "Expenses",
			Value: cli.FormatAmount(cur, a.summary.TotalExpenses),
		},
	}, width)

	dailyCards := components.MetricCardRow([]struct{ Label, Value, Sub string }{
		{
			Label: "Daily for bills",
			Value: cli.FormatAmount(cur, a.dailyBills) + "/day",
			Sub:   cli.FormatNumber(int64(len(a.commitments))) + " bills",
		},
		{
			Label: "Daily for goals",
			Value: cli.FormatAmount(cur, a.dailyGoals) + "/day",
			Sub:   cli.FormatNumber(int64(len(a.goals))) + " goals",
		},
	}, width)

	adviceTitle := "Advisor"
	if a.adviceBusy {
		adviceTitle = "Advisor (thinking...)"
	}
	adviceBody := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Width(width - 4).
		Render(a.advice)
	adviceCard := components.ContentCard(adviceTitle, adviceBody, width)

	return lipgloss.JoinVertical(lipgloss.Left, topCards, dailyCards, adviceCard)
}

// contentWidth is the usable width for tab bodies.
func (a App) contentWidth() int {
	w := a.width - 2
	if w < 40 {
		w = 40
	}
	if w > 110 {
		w = 110
	}
	return w
}
