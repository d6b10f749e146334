package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finzaapp/finza/internal/model"
)

// ErrGoalNotFound is returned when a contribution targets an unknown goal.
var ErrGoalNotFound = fmt.Errorf("goal not found")

// Ledger is the single owner of the three collections. All mutations go
// through it, and every successful mutation writes a full snapshot of all
// three collections back to the KV store.
//
// Transactions and goals are kept most-recent-first; commitments keep
// insertion order.
type Ledger struct {
	kv  *KV
	now func() time.Time

	transactions []model.Transaction
	goals        []model.SavingsGoal
	commitments  []model.Commitment
}

// OpenLedger loads the three collections from kv. A key that is absent or
// fails to parse initializes that collection as empty; loading never fails
// for payload reasons, so startup always succeeds once the database opens.
func OpenLedger(kv *KV, now func() time.Time) *Ledger {
	if now == nil {
		now = time.Now
	}
	l := &Ledger{kv: kv, now: now}
	loadCollection(kv, keyTransactions, &l.transactions)
	loadCollection(kv, keyGoals, &l.goals)
	loadCollection(kv, keyCommitments, &l.commitments)
	return l
}

// loadCollection fills dst from the snapshot under key, falling back to
// an empty slice on any missing or malformed payload. Each key recovers
// independently so one corrupt snapshot never takes down the others.
func loadCollection[T any](kv *KV, key string, dst *[]T) {
	payload, err := kv.Get(key)
	if err != nil {
		*dst = nil
		return
	}
	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		*dst = nil
		return
	}
	*dst = items
}

// AddTransaction validates input, assigns a fresh ID and timestamp, and
// prepends the record so reads come back most-recent-first.
func (l *Ledger) AddTransaction(in model.TransactionInput) (model.Transaction, error) {
	if err := in.Validate(); err != nil {
		return model.Transaction{}, err
	}

	tx := model.Transaction{
		ID:          uuid.NewString(),
		Description: in.Description,
		Amount:      in.Amount,
		Kind:        in.Kind,
		Category:    in.Category,
		Date:        l.now(),
	}
	l.transactions = append([]model.Transaction{tx}, l.transactions...)

	if err := l.persist(); err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}

// AddGoal validates input, assigns ID and CreatedAt, and prepends.
func (l *Ledger) AddGoal(in model.GoalInput) (model.SavingsGoal, error) {
	if err := in.Validate(); err != nil {
		return model.SavingsGoal{}, err
	}

	g := model.SavingsGoal{
		ID:           uuid.NewString(),
		Name:         in.Name,
		TargetAmount: in.TargetAmount,
		SavedAmount:  in.SavedAmount,
		TargetDate:   in.TargetDate,
		CreatedAt:    l.now(),
	}
	l.goals = append([]model.SavingsGoal{g}, l.goals...)

	if err := l.persist(); err != nil {
		return model.SavingsGoal{}, err
	}
	return g, nil
}

// AddCommitment validates input, assigns an ID, and appends in
// insertion order.
func (l *Ledger) AddCommitment(in model.CommitmentInput) (model.Commitment, error) {
	if err := in.Validate(); err != nil {
		return model.Commitment{}, err
	}

	c := model.Commitment{
		ID:     uuid.NewString(),
		Name:   in.Name,
		Amount: in.Amount,
		DueDay: in.DueDay,
	}
	l.commitments = append(l.commitments, c)

	if err := l.persist(); err != nil {
		return model.Commitment{}, err
	}
	return c, nil
}

// RemoveTransaction drops the transaction with the given ID. Removing an
// unknown ID is a silent no-op and does not touch persistence.
func (l *Ledger) RemoveTransaction(id string) error {
	kept, removed := dropByID(l.transactions, id, func(t model.Transaction) string { return t.ID })
	if !removed {
		return nil
	}
	l.transactions = kept
	return l.persist()
}

// RemoveGoal drops the goal with the given ID; unknown IDs are no-ops.
func (l *Ledger) RemoveGoal(id string) error {
	kept, removed := dropByID(l.goals, id, func(g model.SavingsGoal) string { return g.ID })
	if !removed {
		return nil
	}
	l.goals = kept
	return l.persist()
}

// RemoveCommitment drops the commitment with the given ID; unknown IDs
// are no-ops.
func (l *Ledger) RemoveCommitment(id string) error {
	kept, removed := dropByID(l.commitments, id, func(c model.Commitment) string { return c.ID })
	if !removed {
		return nil
	}
	l.commitments = kept
	return l.persist()
}

// RecordContribution adds amount to a goal's saved total by replacing the
// whole record. The amount must be positive.
func (l *Ledger) RecordContribution(goalID string, amount decimal.Decimal) (model.SavingsGoal, error) {
	if !amount.IsPositive() {
		return model.SavingsGoal{}, model.ErrAmountNotPositive
	}

	for i, g := range l.goals {
		if g.ID != goalID {
			continue
		}
		updated := g
		updated.SavedAmount = g.SavedAmount.Add(amount)
		l.goals[i] = updated
		if err := l.persist(); err != nil {
			return model.SavingsGoal{}, err
		}
		return updated, nil
	}
	return model.SavingsGoal{}, ErrGoalNotFound
}

// Transactions returns a copy of the transaction list, most recent first.
func (l *Ledger) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Goals returns a copy of the goal list, most recent first.
func (l *Ledger) Goals() []model.SavingsGoal {
	out := make([]model.SavingsGoal, len(l.goals))
	copy(out, l.goals)
	return out
}

// Commitments returns a copy of the commitment list in insertion order.
func (l *Ledger) Commitments() []model.Commitment {
	out := make([]model.Commitment, len(l.commitments))
	copy(out, l.commitments)
	return out
}

// persist writes the full three-collection snapshot in one transaction.
func (l *Ledger) persist() error {
	entries := make(map[string][]byte, 3)

	for _, col := range []struct {
		key string
		val any
	}{
		{keyTransactions, l.transactions},
		{keyGoals, l.goals},
		{keyCommitments, l.commitments},
	} {
		payload, err := json.Marshal(col.val)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", col.key, err)
		}
		entries[col.key] = payload
	}

	if err := l.kv.PutAll(entries); err != nil {
		return fmt.Errorf("persisting snapshot: %w", err)
	}
	return nil
}

func dropByID[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	kept := items[:0:0]
	removed := false
	for _, it := range items {
		if idOf(it) == id {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	return kept, removed
}
