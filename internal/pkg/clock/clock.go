package clock

import "time"

// Clock supplies the current time. The query pipeline reads it exactly once
// per request so every time-window check within a request sees the same
// instant.
type Clock interface {
	Now() time.Time
}

// RealClock is the production implementation backed by the system clock.
type RealClock struct{}

// NewRealClock creates a new RealClock.
func NewRealClock() Clock {
	return &RealClock{}
}

// Now returns the current system time in UTC.
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock is a test implementation pinned to a settable instant.
type FixedClock struct {
	current time.Time
}

// NewFixedClock creates a FixedClock starting at the given time.
func NewFixedClock(start time.Time) *FixedClock {
	return &FixedClock{current: start}
}

// Now returns the pinned time.
func (c *FixedClock) Now() time.Time {
	return c.current
}

// Set moves the pinned time.
func (c *FixedClock) Set(t time.Time) {
	c.current = t
}

// Advance moves the pinned time forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
