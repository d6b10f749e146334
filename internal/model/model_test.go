package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionInputValidate(t *testing.T) {
	valid := TransactionInput{
		Description: "Groceries",
		Amount:      decimal.NewFromInt(42),
		Kind:        KindExpense,
		Category:    "food",
	}

	tests := []struct {
		name    string
		mutate  func(*TransactionInput)
		wantErr error
	}{
		{"valid", func(in *TransactionInput) {}, nil},
		{"zero amount", func(in *TransactionInput) { in.Amount = decimal.Zero }, ErrAmountNotPositive},
		{"negative amount", func(in *TransactionInput) { in.Amount = decimal.NewFromInt(-5) }, ErrAmountNotPositive},
		{"blank description", func(in *TransactionInput) { in.Description = "   " }, ErrEmptyDescription},
		{"bad kind", func(in *TransactionInput) { in.Kind = "TRANSFER" }, ErrInvalidKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestGoalInputValidate(t *testing.T) {
	valid := GoalInput{
		Name:         "Emergency fund",
		TargetAmount: decimal.NewFromInt(3000),
		SavedAmount:  decimal.Zero,
		TargetDate:   time.Now().AddDate(0, 0, 30),
	}

	tests := []struct {
		name    string
		mutate  func(*GoalInput)
		wantErr error
	}{
		{"valid", func(in *GoalInput) {}, nil},
		{"blank name", func(in *GoalInput) { in.Name = "" }, ErrEmptyName},
		{"whitespace name", func(in *GoalInput) { in.Name = "  \t" }, ErrEmptyName},
		{"zero target", func(in *GoalInput) { in.TargetAmount = decimal.Zero }, ErrTargetNotPositive},
		{"negative saved", func(in *GoalInput) { in.SavedAmount = decimal.NewFromInt(-1) }, ErrNegativeSaved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCommitmentInputValidate(t *testing.T) {
	valid := CommitmentInput{
		Name:   "Rent",
		Amount: decimal.NewFromInt(850),
		DueDay: 1,
	}

	tests := []struct {
		name    string
		mutate  func(*CommitmentInput)
		wantErr error
	}{
		{"valid first day", func(in *CommitmentInput) {}, nil},
		{"valid last day", func(in *CommitmentInput) { in.DueDay = 31 }, nil},
		{"blank name", func(in *CommitmentInput) { in.Name = " " }, ErrEmptyName},
		{"zero amount", func(in *CommitmentInput) { in.Amount = decimal.Zero }, ErrAmountNotPositive},
		{"day zero", func(in *CommitmentInput) { in.DueDay = 0 }, ErrInvalidDueDay},
		{"day 32", func(in *CommitmentInput) { in.DueDay = 32 }, ErrInvalidDueDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    TransactionKind
		wantErr bool
	}{
		{"INCOME", KindIncome, false},
		{"income", KindIncome, false},
		{" Expense ", KindExpense, false},
		{"EXPENSE", KindExpense, false},
		{"transfer", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
