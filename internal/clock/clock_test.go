package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTick_Uncapped(t *testing.T) {
	c := New(0)

	time.Sleep(5 * time.Millisecond)
	dt := c.Tick()

	// Slept 5ms; allow generous scheduler slack downward.
	assert.GreaterOrEqual(t, dt, float32(0.004))

	dt = c.Tick()
	assert.GreaterOrEqual(t, dt, float32(0))
}

func TestTick_CappedHoldsMinimumPeriod(t *testing.T) {
	const period = 2 * time.Millisecond
	const ticks = 100

	c := New(period)
	minDt := float32(period.Seconds()) * 0.999 // float32 conversion slack

	var sum float32
	for i := 0; i < ticks; i++ {
		dt := c.Tick()
		require.GreaterOrEqual(t, dt, minDt, "tick %d under the frame period", i)
		sum += dt
	}

	assert.GreaterOrEqual(t, sum, minDt*ticks)
}

func TestPeriodFor(t *testing.T) {
	assert.InDelta(t, 1.0/120, PeriodFor(120).Seconds(), 1e-6)
	assert.Equal(t, time.Duration(0), PeriodFor(0))
	assert.Equal(t, time.Duration(0), PeriodFor(-30))
}
