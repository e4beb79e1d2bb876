package engine

import (
	"sync"
	"time"
)

// TimerKey identifies the escalation timer of one specific assignment: the
// order plus the cursor position the offer was issued for. Advancing the
// cursor makes the old key obsolete, so a timer that fires after its
// assignment was superseded simply finds nothing to do.
type TimerKey struct {
	OrderID int64
	Cursor  int
}

// Scheduler arms and disarms single-shot escalation timers. Implementations
// must run the callback at most once per scheduled key and must tolerate
// Cancel racing with an already-fired timer.
type Scheduler interface {
	// Schedule arms a timer for the key. Scheduling an already-armed key
	// replaces the previous timer.
	Schedule(key TimerKey, d time.Duration, fn func())

	// Cancel disarms the timer for the key, if still armed.
	Cancel(key TimerKey)
}

// TimerScheduler is the production Scheduler backed by time.AfterFunc.
type TimerScheduler struct {
	mu     sync.Mutex
	timers map[TimerKey]*time.Timer
}

// NewTimerScheduler creates an empty scheduler.
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{timers: make(map[TimerKey]*time.Timer)}
}

// Schedule arms a single-shot timer for the key.
func (s *TimerScheduler) Schedule(key TimerKey, d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[key]; ok {
		timer.Stop()
	}

	s.timers[key] = time.AfterFunc(d, func() {
		s.mu.Lock()
		delete(s.timers, key)
		s.mu.Unlock()

		fn()
	})
}

// Cancel disarms the timer for the key. Cancelling an unknown or already
// fired key is a no-op.
func (s *TimerScheduler) Cancel(key TimerKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[key]; ok {
		timer.Stop()
		delete(s.timers, key)
	}
}
