package core

import "time"

// Clock measures wall-clock time between frame ticks.
type Clock struct {
	last time.Time
}

// Elapsed returns the milliseconds since the previous call and records now as
// the new baseline. A restart time later than the previous tick replaces the
// baseline, so time spent before a gesture began is never integrated. The
// first call reports zero.
func (c *Clock) Elapsed(now, restart time.Time) float64 {
	base := c.last
	if restart.After(base) {
		base = restart
	}
	c.last = now
	if base.IsZero() || now.Before(base) {
		return 0
	}
	return float64(now.Sub(base)) / float64(time.Millisecond)
}
