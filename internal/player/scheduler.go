package player

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Scheduler runs fn every d until the returned stop function is called.
// Stop must not wait for a running fn.
type Scheduler interface {
	Every(d time.Duration, fn func()) (stop func())
}

// ClockScheduler schedules ticks on a clockwork clock
type ClockScheduler struct {
	clock clockwork.Clock
}

// NewClockScheduler creates a scheduler over clock. A nil clock uses the real one.
func NewClockScheduler(clock clockwork.Clock) *ClockScheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ClockScheduler{clock: clock}
}

// Every starts a ticker goroutine
func (s *ClockScheduler) Every(d time.Duration, fn func()) func() {
	ticker := s.clock.NewTicker(d)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.Chan():
				select {
				case <-done:
					return
				default:
				}
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}
