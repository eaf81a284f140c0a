package runner

import "time"

// ClampDelta bounds a frame delta to [0, maxMs].
// A stalled terminal never turns into one huge physics step.
func ClampDelta(deltaMs, maxMs float64) float64 {
	if deltaMs < 0 {
		return 0
	}
	if deltaMs > maxMs {
		return maxMs
	}
	return deltaMs
}

// FrameClock converts wall-clock frame timestamps into clamped millisecond deltas.
type FrameClock struct {
	last    time.Time
	started bool
	maxMs   float64
}

// NewFrameClock creates a clock that clamps every delta to maxMs.
func NewFrameClock(maxMs float64) *FrameClock {
	return &FrameClock{maxMs: maxMs}
}

// Tick records a frame timestamp and returns the clamped delta since the previous one.
// The first tick after creation or Reset returns 0.
func (c *FrameClock) Tick(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	delta := float64(now.Sub(c.last)) / float64(time.Millisecond)
	c.last = now
	return ClampDelta(delta, c.maxMs)
}

// Reset forgets the previous timestamp, e.g. after a pause.
func (c *FrameClock) Reset() {
	c.started = false
}
