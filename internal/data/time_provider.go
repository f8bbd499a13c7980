package data

import "time"

// TimeProvider abstracts the clock so repositories can be tested with
// deterministic timestamps.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider uses the wall clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (RealTimeProvider) Now() time.Time { return time.Now() }

// FixedTimeProvider always returns the same instant.
type FixedTimeProvider struct {
	Time time.Time
}

// Now returns the fixed instant.
func (p FixedTimeProvider) Now() time.Time { return p.Time }
