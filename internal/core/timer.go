package core

import "time"

// Throttle rate-limits periodic work such as progress logging.
type Throttle struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewThrottle constructs a Throttle that fires at most once per interval.
// A non-positive interval never fires.
func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{interval: interval, now: time.Now}
}

// Ready reports whether interval has elapsed since the last time Ready
// returned true. The first call only starts the clock.
func (t *Throttle) Ready() bool {
	if t.interval <= 0 {
		return false
	}
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		return false
	}
	if now.Sub(t.last) >= t.interval {
		t.last = now
		return true
	}
	return false
}
