package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/finzaapp/finza/internal/cli"
	"github.com/finzaapp/finza/internal/model"
	"github.com/finzaapp/finza/internal/tui/components"
	"github.com/finzaapp/finza/internal/tui/theme"
)

// historyPageSize limits how many transactions one screen shows.
const historyPageSize = 12

func (a App) renderHistoryTab() string {
	t := theme.Active
	cur := a.cfg.General.Currency
	width := a.contentWidth()

	if len(a.transactions) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextDim).
			Render("No transactions yet. Press a to add one.")
		return components.ContentCard("History", empty, width)
	}

	// Keep the cursor on screen by sliding a window over the list.
	start := 0
	if a.txCursor >= historyPageSize {
		start = a.txCursor - historyPageSize + 1
	}
	end := start + historyPageSize
	if end > len(a.transactions) {
		end = len(a.transactions)
	}

	descW := 0
	for _, tx := range a.transactions[start:end] {
		if w := lipgloss.Width(tx.Description); w > descW {
			descW = w
		}
	}
	if descW > 28 {
		descW = 28
	}

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	incomeStyle := lipgloss.NewStyle().Foreground(t.Green)
	expenseStyle := lipgloss.NewStyle().Foreground(t.Red)
	selStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)

	var b strings.Builder
	for i := start; i < end; i++ {
		tx := a.transactions[i]

		marker := "  "
		descStyle := rowStyle
		if i == a.txCursor {
			marker = selStyle.Render("> ")
			descStyle = selStyle
		}

		income := tx.Kind == model.KindIncome
		amountStyle := expenseStyle
		if income {
			amountStyle = incomeStyle
		}

		desc := truncateCell(tx.Description, descW)
		pad := descW - lipgloss.Width(desc)
		if pad < 0 {
			pad = 0
		}

		b.WriteString(marker)
		b.WriteString(dimStyle.Render(cli.FormatDate(tx.Date)))
		b.WriteString("  ")
		b.WriteString(descStyle.Render(desc) + strings.Repeat(" ", pad))
		b.WriteString("  ")
		b.WriteString(amountStyle.Render(fmt.Sprintf("%12s", cli.FormatSigned(cur, tx.Amount, income))))
		b.WriteString("  ")
		b.WriteString(dimStyle.Render(tx.Category))
		b.WriteString("\n")
	}

	if len(a.transactions) > end-start {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %d-%d of %d",
			start+1, end, len(a.transactions))))
	}

	return components.ContentCard("History", b.String(), width)
}

// truncateCell shortens s to at most width display cells, dropping whole
// runes and appending an ellipsis when it cuts anything.
func truncateCell(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
