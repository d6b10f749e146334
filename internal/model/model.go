// Package model defines the finza domain records and their input validation.
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind distinguishes money coming in from money going out.
type TransactionKind string

const (
	KindIncome  TransactionKind = "INCOME"
	KindExpense TransactionKind = "EXPENSE"
)

// Validation errors returned at the input boundary.
var (
	ErrAmountNotPositive = errors.New("amount must be positive")
	ErrEmptyDescription  = errors.New("description must not be empty")
	ErrEmptyName         = errors.New("name must not be empty")
	ErrInvalidKind       = errors.New("kind must be INCOME or EXPENSE")
	ErrInvalidDueDay     = errors.New("due day must be between 1 and 31")
	ErrTargetNotPositive = errors.New("target amount must be positive")
	ErrNegativeSaved     = errors.New("saved amount must not be negative")
)

// Transaction is a single recorded income or expense event.
// Records are immutable once created; updates replace the whole record.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        TransactionKind `json:"kind"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
}

// SavingsGoal is a target amount to accumulate by a target date.
type SavingsGoal struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	SavedAmount  decimal.Decimal `json:"savedAmount"`
	TargetDate   time.Time       `json:"targetDate"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// Commitment is a recurring fixed monthly obligation with a due day.
type Commitment struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	DueDay int             `json:"dueDay"`
}

// TransactionInput is a transaction before the store assigns ID and date.
type TransactionInput struct {
	Description string
	Amount      decimal.Decimal
	Kind        TransactionKind
	Category    string
}

// Validate rejects malformed input before it reaches the store.
// Whitespace-only text fields count as empty.
func (in TransactionInput) Validate() error {
	if strings.TrimSpace(in.Description) == "" {
		return ErrEmptyDescription
	}
	if !in.Amount.IsPositive() {
		return ErrAmountNotPositive
	}
	if in.Kind != KindIncome && in.Kind != KindExpense {
		return ErrInvalidKind
	}
	return nil
}

// GoalInput is a savings goal before the store assigns ID and CreatedAt.
type GoalInput struct {
	Name         string
	TargetAmount decimal.Decimal
	SavedAmount  decimal.Decimal
	TargetDate   time.Time
}

// Validate rejects malformed input. SavedAmount exceeding TargetAmount is
// allowed: an overfunded goal is odd but not invalid.
func (in GoalInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrEmptyName
	}
	if !in.TargetAmount.IsPositive() {
		return ErrTargetNotPositive
	}
	if in.SavedAmount.IsNegative() {
		return ErrNegativeSaved
	}
	return nil
}

// CommitmentInput is a commitment before the store assigns an ID.
type CommitmentInput struct {
	Name   string
	Amount decimal.Decimal
	DueDay int
}

// Validate rejects malformed input.
func (in CommitmentInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrEmptyName
	}
	if !in.Amount.IsPositive() {
		return ErrAmountNotPositive
	}
	if in.DueDay < 1 || in.DueDay > 31 {
		return ErrInvalidDueDay
	}
	return nil
}

// ParseKind normalizes a user-supplied kind string.
func ParseKind(s string) (TransactionKind, error) {
	switch TransactionKind(strings.ToUpper(strings.TrimSpace(s))) {
	case KindIncome:
		return KindIncome, nil
	case KindExpense:
		return KindExpense, nil
	}
	return "", ErrInvalidKind
}
