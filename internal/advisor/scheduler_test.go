package advisor

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finzaapp/finza/internal/model"
)

// stubAdvisor counts calls and answers with the transaction count so
// tests can tell which snapshot a delivery came from.
type stubAdvisor struct {
	calls atomic.Int64
}

func (s *stubAdvisor) Advise(_ context.Context, snap Snapshot) (string, error) {
	s.calls.Add(1)
	return fmt.Sprintf("advice for %d transactions", len(snap.Transactions)), nil
}

type delivery struct {
	version uint64
	advice  string
}

func snapWithTx(n int) Snapshot {
	txs := make([]model.Transaction, n)
	return Snapshot{Transactions: txs}
}

func TestSchedulerDebouncesBurst(t *testing.T) {
	stub := &stubAdvisor{}
	got := make(chan delivery, 8)

	s := NewScheduler(stub, 40*time.Millisecond, func(v uint64, advice string) {
		got <- delivery{version: v, advice: advice}
	})
	defer s.Stop()

	// Three rapid edits must collapse into one call for the last state.
	s.Notify(snapWithTx(1))
	s.Notify(snapWithTx(2))
	last := s.Notify(snapWithTx(3))

	select {
	case d := <-got:
		assert.Equal(t, last, d.version)
		assert.Equal(t, "advice for 3 transactions", d.advice)
	case <-time.After(2 * time.Second):
		t.Fatal("no delivery")
	}

	// Let any stray timers fire before counting.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int64(1), stub.calls.Load())
	assert.Len(t, got, 0)
}

func TestSchedulerDeliversEachSettledState(t *testing.T) {
	stub := &stubAdvisor{}
	got := make(chan delivery, 8)

	s := NewScheduler(stub, 20*time.Millisecond, func(v uint64, advice string) {
		got <- delivery{version: v, advice: advice}
	})
	defer s.Stop()

	s.Notify(snapWithTx(1))
	first := <-got
	s.Notify(snapWithTx(2))
	second := <-got

	assert.Equal(t, "advice for 1 transactions", first.advice)
	assert.Equal(t, "advice for 2 transactions", second.advice)
	assert.Greater(t, second.version, first.version)
	assert.Equal(t, int64(2), stub.calls.Load())
}

func TestSchedulerStopCancelsPending(t *testing.T) {
	stub := &stubAdvisor{}
	got := make(chan delivery, 8)

	s := NewScheduler(stub, 30*time.Millisecond, func(v uint64, advice string) {
		got <- delivery{version: v, advice: advice}
	})

	s.Notify(snapWithTx(1))
	s.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Len(t, got, 0)
	assert.Equal(t, int64(0), stub.calls.Load())

	// Notify after Stop is inert.
	v := s.Notify(snapWithTx(2))
	assert.Equal(t, s.Version(), v)
	time.Sleep(100 * time.Millisecond)
	assert.Len(t, got, 0)
}

func TestSchedulerDefaultDelay(t *testing.T) {
	s := NewScheduler(&stubAdvisor{}, 0, func(uint64, string) {})
	defer s.Stop()

	require.Equal(t, 1500*time.Millisecond, s.delay)
}

func TestSchedulerVersionMonotonic(t *testing.T) {
	s := NewScheduler(&stubAdvisor{}, time.Hour, func(uint64, string) {})
	defer s.Stop()

	v1 := s.Notify(snapWithTx(0))
	v2 := s.Notify(snapWithTx(0))
	assert.Equal(t, v1+1, v2)
	assert.Equal(t, v2, s.Version())
}
