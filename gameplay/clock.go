package gameplay

import (
	"time"

	"github.com/automoto/tilerush/config"
)

// FrameClock measures wall-clock time between frames on the monotonic clock.
type FrameClock struct {
	last time.Time
	now  func() time.Time
}

// NewFrameClock returns a clock reading time.Now.
func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// Step returns the time since the previous Step, bounded by FrameStep. The
// first call returns zero.
func (c *FrameClock) Step() time.Duration {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	dt := t.Sub(c.last)
	c.last = t
	return FrameStep(dt)
}

// FrameStep clamps a frame delta to [0, config.Timing.MaxFrameStep].
func FrameStep(dt time.Duration) time.Duration {
	if dt < 0 {
		return 0
	}
	if dt > config.Timing.MaxFrameStep {
		return config.Timing.MaxFrameStep
	}
	return dt
}
