// Package clock measures the elapsed wall time between simulation frames,
// optionally holding each frame to a minimum period to cap the frame rate.
package clock

import (
	"runtime"
	"time"
)

// waitGranularity is how long a capped Tick sleeps between deadline checks.
// Coarser than the scheduler's timer resolution, so the wait yields cheaply
// instead of spinning.
const waitGranularity = time.Millisecond

// Clock returns the time elapsed between successive Tick calls. With a
// frame cap set, Tick first waits out the remainder of the frame period,
// bounding the frame rate from above without lying about the actual dt.
type Clock struct {
	prev     time.Time
	frameCap time.Duration
}

// New returns a clock whose first Tick measures from now.
// frameCap <= 0 disables the cap.
func New(frameCap time.Duration) *Clock {
	return &Clock{prev: time.Now(), frameCap: frameCap}
}

// Tick returns the seconds elapsed since the previous Tick (or since New).
// In capped mode it waits, yielding between short sleeps, until at least
// the frame period has passed, then returns the actual elapsed time. The
// actual time can exceed the cap under scheduler jitter; integrating with
// it instead of the nominal period keeps the simulation honest either way.
func (c *Clock) Tick() float32 {
	now := time.Now()
	if c.frameCap > 0 {
		for now.Sub(c.prev) < c.frameCap {
			runtime.Gosched()
			time.Sleep(waitGranularity)
			now = time.Now()
		}
	}
	dt := now.Sub(c.prev)
	c.prev = now
	return float32(dt.Seconds())
}

// PeriodFor converts a target frame rate into a frame period.
// fps <= 0 means uncapped and returns 0.
func PeriodFor(fps float32) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / float64(fps))
}
