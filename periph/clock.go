package periph

import "time"

// Clock paces sampling loops and animation delays. The game core only
// ever sleeps; it never reads wall time.
type Clock interface {
	Sleep(d time.Duration)
}

// SystemClock is the real monotonic clock.
type SystemClock struct{}

// NewSystemClock returns a Clock backed by time.Sleep.
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Sleep blocks for d.
func (*SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
