package advisor

import (
	"context"
	"sync"
	"time"
)

// Scheduler debounces advice requests: each ledger change restarts a
// fixed delay, so a burst of edits collapses into one outbound call for
// the newest state. Runs are keyed by a state version; a run that lost
// the race to a newer notify never delivers.
type Scheduler struct {
	advisor Advisor
	delay   time.Duration
	deliver func(version uint64, advice string)

	mu      sync.Mutex
	timer   *time.Timer
	version uint64
	stopped bool
}

// NewScheduler returns a scheduler that calls deliver with the advice for
// the most recent snapshot, delay after the last Notify.
func NewScheduler(a Advisor, delay time.Duration, deliver func(version uint64, advice string)) *Scheduler {
	if delay <= 0 {
		delay = 1500 * time.Millisecond
	}
	return &Scheduler{
		advisor: a,
		delay:   delay,
		deliver: deliver,
	}
}

// Notify records a new ledger state. Any pending request is cancelled and
// the delay restarts. Returns the version assigned to this state.
func (s *Scheduler) Notify(snap Snapshot) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return s.version
	}

	s.version++
	v := s.version

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		s.run(v, snap)
	})
	return v
}

// Stop cancels any pending request. Late runs after Stop never deliver.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Version returns the latest assigned state version.
func (s *Scheduler) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

func (s *Scheduler) run(v uint64, snap Snapshot) {
	if s.stale(v) {
		return
	}

	advice := AdviceOrFallback(context.Background(), s.advisor, snap)

	// The state may have moved on while the request was in flight.
	if s.stale(v) {
		return
	}
	s.deliver(v, advice)
}

func (s *Scheduler) stale(v uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped || v != s.version
}
