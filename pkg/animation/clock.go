package animation

import "time"

// Clock provides time for animations and gesture sampling. The default
// implementation uses system time. Tests can inject a fake clock via SetClock
// to control timing deterministically.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// clock is the package-level time source, replaceable for testing.
var clock Clock = realClock{}

// SetClock replaces the animation clock. Returns the previous clock
// so callers can restore it during cleanup. Passing nil restores system time.
func SetClock(c Clock) Clock {
	prev := clock
	if c == nil {
		c = realClock{}
	}
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }

// DefaultClock returns a Clock that always defers to the package-level clock,
// so components holding it observe later SetClock calls.
func DefaultClock() Clock { return ClockFunc(Now) }
