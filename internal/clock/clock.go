package clock

import "time"

// Clock provides time-related functions that can be mocked for testing
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using actual system time
type RealClock struct{}

// Now returns the current system time
func (RealClock) Now() time.Time {
	return time.Now()
}

// FakeClock implements Clock with a settable time for tests.
type FakeClock struct {
	Time time.Time
}

// Now returns the configured time.
func (c *FakeClock) Now() time.Time {
	return c.Time
}

// Advance moves the fake clock forward.
func (c *FakeClock) Advance(d time.Duration) {
	c.Time = c.Time.Add(d)
}
