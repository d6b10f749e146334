// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a monetary amount with the configured currency
// symbol and two decimals, e.g. "$1,234.50". Negative amounts keep the
// sign in front of the symbol: "-$12.00".
func FormatAmount(symbol string, amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err == nil {
		intPart = FormatNumber(n)
	}

	return sign + symbol + intPart + "." + fracPart
}

// FormatSigned renders an amount with an explicit +/- prefix, the way the
// history list marks income and expenses.
func FormatSigned(symbol string, amount decimal.Decimal, income bool) string {
	if income {
		return "+" + FormatAmount(symbol, amount)
	}
	return "-" + FormatAmount(symbol, amount)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-100 decimal as a percentage string.
func FormatPercent(pct decimal.Decimal) string {
	return pct.StringFixed(1) + "%"
}

// FormatDays renders a day count, e.g. "1 day" / "14 days".
func FormatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// FormatDate renders a timestamp as a compact local date.
func FormatDate(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// FormatDueDay renders a commitment due day, e.g. "day 15".
func FormatDueDay(day int) string {
	return fmt.Sprintf("day %d", day)
}

// ShortID truncates an identifier for table display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
