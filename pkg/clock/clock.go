// Package clock provides the time source used for audit stamping.
package clock

import (
	"sync"
	"time"
)

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// Real is the wall clock. Times are UTC and truncated to microseconds so
// they round-trip through PostgreSQL timestamptz unchanged.
type Real struct{}

func (Real) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Fixed always returns the same instant.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }

// Stepping returns Start on the first call and advances by Step on every
// subsequent call. Safe for concurrent use.
type Stepping struct {
	mu   sync.Mutex
	next time.Time
	step time.Duration
}

// NewStepping creates a Stepping clock.
func NewStepping(start time.Time, step time.Duration) *Stepping {
	return &Stepping{next: start, step: step}
}

func (s *Stepping) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.next
	s.next = s.next.Add(s.step)
	return t
}

// Advance moves the clock forward by d without consuming a tick.
func (s *Stepping) Advance(d time.Duration) {
	s.mu.Lock()
	s.next = s.next.Add(d)
	s.mu.Unlock()
}
