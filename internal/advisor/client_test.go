package advisor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finzaapp/finza/internal/model"
)

type failingAdvisor struct{}

func (failingAdvisor) Advise(context.Context, Snapshot) (string, error) {
	return "", errors.New("boom")
}

func TestNewClientWithoutKey(t *testing.T) {
	assert.Nil(t, NewClient("", "", ""))
}

func TestAdviceOrFallbackNoAdvisor(t *testing.T) {
	got := AdviceOrFallback(context.Background(), nil, Snapshot{})
	assert.Equal(t, FallbackNoKey, got)
}

func TestAdviceOrFallbackOnError(t *testing.T) {
	got := AdviceOrFallback(context.Background(), failingAdvisor{}, Snapshot{})
	assert.Equal(t, FallbackError, got)
}

func TestBuildPrompt(t *testing.T) {
	snap := Snapshot{
		Transactions: []model.Transaction{
			{Description: "salary", Amount: decimal.NewFromInt(2500), Kind: model.KindIncome},
			{Description: "rent", Amount: decimal.NewFromInt(850), Kind: model.KindExpense},
		},
		Goals: []model.SavingsGoal{
			{Name: "Vacation", TargetAmount: decimal.NewFromInt(1200), SavedAmount: decimal.NewFromInt(300),
				TargetDate: time.Now().AddDate(0, 0, 60)},
		},
		Commitments: []model.Commitment{
			{Name: "Gym", Amount: decimal.NewFromInt(30), DueDay: 15},
		},
	}

	prompt := buildPrompt(snap)
	assert.Contains(t, prompt, "1650.00") // balance
	assert.Contains(t, prompt, "salary")
	assert.Contains(t, prompt, "Vacation")
	assert.Contains(t, prompt, "Gym")
}

func TestBuildPromptLimitsRecentTransactions(t *testing.T) {
	var txs []model.Transaction
	for i := 0; i < 10; i++ {
		txs = append(txs, model.Transaction{
			Description: "tx",
			Amount:      decimal.NewFromInt(int64(i + 1)),
			Kind:        model.KindExpense,
		})
	}

	prompt := buildPrompt(Snapshot{Transactions: txs})
	// Only the five newest (head of the list) make it into the prompt.
	assert.Contains(t, prompt, "5.00")
	assert.NotContains(t, prompt, "6.00")
}
