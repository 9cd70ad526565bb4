// Package clock provides the time source used wherever domain code stamps or
// compares wall-clock instants. Production wiring injects the system clock;
// tests inject a fixed one so creation timestamps are deterministic.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// NewSystemClock returns a Clock backed by the system wall clock in UTC.
func NewSystemClock() Clock {
	return systemClock{}
}

type fixedClock struct {
	instant time.Time
}

func (c fixedClock) Now() time.Time {
	return c.instant
}

// NewFixedClock returns a Clock frozen at the given instant.
func NewFixedClock(instant time.Time) Clock {
	return fixedClock{instant: instant}
}
