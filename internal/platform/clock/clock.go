// Package clock provides the time sources injected into the ledger.
package clock

import (
	"sync"
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/core/ports"
)

// System reads the wall clock in UTC.
type System struct{}

// Now returns the current UTC time.
func (System) Now() time.Time {
	return time.Now().UTC()
}

// Manual is a clock that only moves when told to. Safe for concurrent use.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual creates a manual clock stopped at initial.
func NewManual(initial time.Time) *Manual {
	return &Manual{now: initial}
}

// Now returns the instant the clock is stopped at.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward. Negative durations panic; the clock cannot move to the past.
func (m *Manual) Advance(d time.Duration) {
	if d < 0 {
		panic("clock: cannot move to the past")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

var (
	_ ports.Clock = System{}
	_ ports.Clock = (*Manual)(nil)
)
