// Package metrics computes derived figures over ledger snapshots.
//
// Every function is pure: given the same collections and the same "now"
// instant the outputs are identical, which is what the tests lean on.
package metrics

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finzaapp/finza/internal/model"
)

const day = 24 * time.Hour

// Summary holds the top-level account figures.
type Summary struct {
	Balance       decimal.Decimal
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
}

// GoalProgress holds the per-goal card figures.
//
// DaysLeft here uses a non-negative whole-day difference and can be zero,
// unlike the ceil-with-floor-1 used by DailyGoalTarget. The two
// deliberately disagree for a goal due today; keep them separate until
// product settles on one.
type GoalProgress struct {
	Goal            model.SavingsGoal
	DaysLeft        int
	DailyNext       decimal.Decimal
	ProgressPercent decimal.Decimal
}

// Summarize computes balance and filtered totals over all transactions.
func Summarize(transactions []model.Transaction) Summary {
	var s Summary
	for _, t := range transactions {
		switch t.Kind {
		case model.KindIncome:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case model.KindExpense:
			s.TotalExpenses = s.TotalExpenses.Add(t.Amount)
		}
	}
	s.Balance = s.TotalIncome.Sub(s.TotalExpenses)
	return s
}

// GoalDaysLeft returns the day count used by the aggregate savings target:
// ceil of the remaining time in days, floored at 1 so a goal due today or
// already past never divides by zero.
func GoalDaysLeft(g model.SavingsGoal, now time.Time) int {
	days := int(math.Ceil(g.TargetDate.Sub(now).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// DailyGoalAmount returns the per-day saving required to close a single
// goal's remaining gap by its target date.
func DailyGoalAmount(g model.SavingsGoal, now time.Time) decimal.Decimal {
	daysLeft := decimal.NewFromInt(int64(GoalDaysLeft(g, now)))
	return g.TargetAmount.Sub(g.SavedAmount).Div(daysLeft)
}

// DailyGoalTarget sums the per-day requirement across all goals.
func DailyGoalTarget(goals []model.SavingsGoal, now time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, g := range goals {
		total = total.Add(DailyGoalAmount(g, now))
	}
	return total
}

// DailyCommitmentBurden spreads the monthly commitment total over a fixed
// 30-day month. Not calendar-accurate on purpose.
func DailyCommitmentBurden(commitments []model.Commitment) decimal.Decimal {
	total := decimal.Zero
	for _, c := range commitments {
		total = total.Add(c.Amount)
	}
	return total.Div(decimal.NewFromInt(30))
}

// ProgressFor computes the display figures for one goal. DaysLeft is the
// whole-day difference truncated toward zero and never negative; when it
// reaches zero the daily figure is zero rather than the aggregate's
// minimum-one-day reading.
func ProgressFor(g model.SavingsGoal, now time.Time) GoalProgress {
	daysLeft := int(g.TargetDate.Sub(now) / day)
	if daysLeft < 0 {
		daysLeft = 0
	}

	dailyNext := decimal.Zero
	if daysLeft > 0 {
		dailyNext = g.TargetAmount.Sub(g.SavedAmount).Div(decimal.NewFromInt(int64(daysLeft)))
	}

	// A zero target can only come from a hand-edited snapshot; read it
	// as fully funded once anything is saved instead of dividing by it.
	hundred := decimal.NewFromInt(100)
	pct := decimal.Zero
	if !g.TargetAmount.IsZero() {
		pct = g.SavedAmount.Div(g.TargetAmount).Mul(hundred)
		if pct.GreaterThan(hundred) {
			pct = hundred
		}
	} else if g.SavedAmount.IsPositive() {
		pct = hundred
	}

	return GoalProgress{
		Goal:            g,
		DaysLeft:        daysLeft,
		DailyNext:       dailyNext,
		ProgressPercent: pct,
	}
}

// ProgressAll maps ProgressFor over the goal list, preserving order.
func ProgressAll(goals []model.SavingsGoal, now time.Time) []GoalProgress {
	out := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		out = append(out, ProgressFor(g, now))
	}
	return out
}
