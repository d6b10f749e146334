package metrics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finzaapp/finza/internal/model"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func goal(target, saved string, daysOut int) model.SavingsGoal {
	return model.SavingsGoal{
		ID:           "g",
		Name:         "goal",
		TargetAmount: dec(target),
		SavedAmount:  dec(saved),
		TargetDate:   now.AddDate(0, 0, daysOut),
	}
}

func TestSummarize(t *testing.T) {
	txs := []model.Transaction{
		{Kind: model.KindIncome, Amount: dec("2500")},
		{Kind: model.KindExpense, Amount: dec("850")},
		{Kind: model.KindExpense, Amount: dec("42.50")},
	}

	s := Summarize(txs)
	assert.True(t, s.TotalIncome.Equal(dec("2500")))
	assert.True(t, s.TotalExpenses.Equal(dec("892.50")))
	assert.True(t, s.Balance.Equal(dec("1607.50")))
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.True(t, s.Balance.IsZero())
	assert.True(t, s.TotalIncome.IsZero())
	assert.True(t, s.TotalExpenses.IsZero())
}

func TestSummarizeBalanceInvariant(t *testing.T) {
	txs := []model.Transaction{
		{Kind: model.KindIncome, Amount: dec("100.10")},
		{Kind: model.KindIncome, Amount: dec("0.01")},
		{Kind: model.KindExpense, Amount: dec("99.99")},
	}

	s := Summarize(txs)
	assert.True(t, s.Balance.Equal(s.TotalIncome.Sub(s.TotalExpenses)))
}

func TestGoalDaysLeft(t *testing.T) {
	tests := []struct {
		name   string
		target time.Time
		want   int
	}{
		{"thirty days out", now.AddDate(0, 0, 30), 30},
		{"partial day rounds up", now.Add(36 * time.Hour), 2},
		{"due this instant", now, 1},
		{"already past", now.AddDate(0, 0, -5), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := model.SavingsGoal{TargetAmount: dec("100"), TargetDate: tt.target}
			assert.Equal(t, tt.want, GoalDaysLeft(g, now))
		})
	}
}

func TestDailyGoalTarget(t *testing.T) {
	goals := []model.SavingsGoal{goal("3000", "0", 30)}
	assert.True(t, DailyGoalTarget(goals, now).Equal(dec("100")))

	goals = append(goals, goal("1500", "0", 15))
	assert.True(t, DailyGoalTarget(goals, now).Equal(dec("200")))
}

func TestDailyGoalTargetCountsSaved(t *testing.T) {
	goals := []model.SavingsGoal{goal("3000", "1500", 30)}
	assert.True(t, DailyGoalTarget(goals, now).Equal(dec("50")))
}

func TestDailyCommitmentBurden(t *testing.T) {
	commitments := []model.Commitment{
		{Amount: dec("300")},
		{Amount: dec("600")},
	}
	assert.True(t, DailyCommitmentBurden(commitments).Equal(dec("30")))
	assert.True(t, DailyCommitmentBurden(nil).IsZero())
}

func TestProgressFor(t *testing.T) {
	p := ProgressFor(goal("1500", "300", 15), now)

	assert.Equal(t, 15, p.DaysLeft)
	assert.True(t, p.DailyNext.Equal(dec("80")))
	assert.True(t, p.ProgressPercent.Equal(dec("20")))
}

func TestProgressForDueToday(t *testing.T) {
	// The card shows zero days and no daily figure for a goal due right
	// now, while the aggregate still treats the same goal as one day out.
	g := goal("1000", "250", 0)

	p := ProgressFor(g, now)
	assert.Equal(t, 0, p.DaysLeft)
	assert.True(t, p.DailyNext.IsZero())

	assert.Equal(t, 1, GoalDaysLeft(g, now))
}

func TestProgressForPastDue(t *testing.T) {
	p := ProgressFor(goal("1000", "100", -10), now)
	assert.Equal(t, 0, p.DaysLeft)
	assert.True(t, p.DailyNext.IsZero())
}

func TestProgressForZeroTarget(t *testing.T) {
	// A snapshot edited by hand can carry a zero target; the card must
	// not blow up on it.
	p := ProgressFor(goal("0", "0", 30), now)
	assert.True(t, p.ProgressPercent.IsZero())

	p = ProgressFor(goal("0", "50", 30), now)
	assert.True(t, p.ProgressPercent.Equal(dec("100")))
}

func TestProgressPercentCapped(t *testing.T) {
	p := ProgressFor(goal("1000", "1250", 30), now)
	assert.True(t, p.ProgressPercent.Equal(dec("100")))
}

func TestProgressTruncatesPartialDays(t *testing.T) {
	g := model.SavingsGoal{
		TargetAmount: dec("100"),
		SavedAmount:  dec("0"),
		TargetDate:   now.Add(36 * time.Hour),
	}

	p := ProgressFor(g, now)
	assert.Equal(t, 1, p.DaysLeft)
}

func TestDailyGoalAmountShrinksWithMoreDays(t *testing.T) {
	// Same gap spread over more days always means a strictly smaller
	// daily requirement.
	prev := DailyGoalAmount(goal("3000", "500", 1), now)
	for _, daysOut := range []int{2, 5, 15, 30, 90, 365} {
		got := DailyGoalAmount(goal("3000", "500", daysOut), now)
		assert.True(t, got.LessThan(prev), "daysOut=%d: %s not < %s", daysOut, got, prev)
		prev = got
	}
}

func TestDailyNextShrinksAsSavingsGrow(t *testing.T) {
	before := ProgressFor(goal("3000", "500", 30), now)
	after := ProgressFor(goal("3000", "800", 30), now)

	assert.True(t, after.DailyNext.LessThan(before.DailyNext))
}

func TestProgressAllPreservesOrder(t *testing.T) {
	goals := []model.SavingsGoal{
		{ID: "a", TargetAmount: dec("100"), TargetDate: now.AddDate(0, 0, 10)},
		{ID: "b", TargetAmount: dec("200"), TargetDate: now.AddDate(0, 0, 20)},
	}

	out := ProgressAll(goals, now)
	assert.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Goal.ID)
	assert.Equal(t, "b", out[1].Goal.ID)
}
