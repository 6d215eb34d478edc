// Package clock abstracts the system clock so time-dependent code can be
// tested against a fixed instant instead of time.Now.
package clock

import "time"

// Clock yields the current instant.
type Clock interface {
	Now() time.Time
}

// System reads the real system clock.
type System struct{}

// Now returns the current system time.
func (System) Now() time.Time { return time.Now() }

var _ Clock = System{}

// Fixed is a Clock frozen at a single instant, for tests.
// Construct it as clock.Fixed(time.Date(...)).
type Fixed time.Time

// Now returns the frozen instant.
func (f Fixed) Now() time.Time { return time.Time(f) }

var _ Clock = Fixed{}
