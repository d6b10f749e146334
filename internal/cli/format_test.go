package cli

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		amount string
		want   string
	}{
		{"small", "$", "42.5", "$42.50"},
		{"thousands", "$", "1234.5", "$1,234.50"},
		{"millions", "$", "1234567.89", "$1,234,567.89"},
		{"zero", "$", "0", "$0.00"},
		{"negative", "$", "-12", "-$12.00"},
		{"euro symbol", "€", "850", "€850.00"},
		{"rounds to cents", "$", "9.999", "$10.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAmount(tt.symbol, dec(tt.amount)); got != tt.want {
				t.Errorf("FormatAmount(%q, %s) = %q, want %q", tt.symbol, tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatSigned(t *testing.T) {
	if got := FormatSigned("$", dec("2500"), true); got != "+$2,500.00" {
		t.Errorf("income = %q, want +$2,500.00", got)
	}
	if got := FormatSigned("$", dec("850"), false); got != "-$850.00" {
		t.Errorf("expense = %q, want -$850.00", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(dec("33.333")); got != "33.3%" {
		t.Errorf("got %q, want 33.3%%", got)
	}
	if got := FormatPercent(dec("100")); got != "100.0%" {
		t.Errorf("got %q, want 100.0%%", got)
	}
}

func TestFormatDays(t *testing.T) {
	if got := FormatDays(1); got != "1 day" {
		t.Errorf("got %q, want 1 day", got)
	}
	if got := FormatDays(14); got != "14 days" {
		t.Errorf("got %q, want 14 days", got)
	}
}

func TestFormatDueDay(t *testing.T) {
	if got := FormatDueDay(15); got != "day 15" {
		t.Errorf("got %q, want day 15", got)
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	if got := FormatDate(ts); got != "2025-06-15" {
		t.Errorf("got %q, want 2025-06-15", got)
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("0f4c2d1e-aaaa-bbbb"); got != "0f4c2d1e" {
		t.Errorf("got %q, want 0f4c2d1e", got)
	}
	if got := ShortID("ab12"); got != "ab12" {
		t.Errorf("got %q, want ab12", got)
	}
}
