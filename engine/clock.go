package engine

import (
	"time"
)

// Clock accumulates simulated time; it never reads the wall clock
type Clock struct {
	now  time.Duration
	tick uint64
}

// Advance moves simulated time forward by one tick of dt
func (c *Clock) Advance(dt time.Duration) {
	c.now += dt
	c.tick++
}

// Now returns the simulated time since start
func (c *Clock) Now() time.Duration { return c.now }

// Tick returns the number of completed ticks
func (c *Clock) Tick() uint64 { return c.tick }

// Timer is a recurring countdown over simulated time
// Reset marks the start; Elapsed reports whether Interval has passed since, restarting on success
type Timer struct {
	Interval time.Duration
	start    time.Duration
}

// Reset marks now as the start instant
func (t *Timer) Reset(now time.Duration) {
	t.start = now
}

// Elapsed reports and restarts when the interval has passed
func (t *Timer) Elapsed(now time.Duration) bool {
	if now-t.start < t.Interval {
		return false
	}
	t.start = now
	return true
}

// Since returns the time since the last start
func (t *Timer) Since(now time.Duration) time.Duration {
	return now - t.start
}

// Cooldown is a one-shot window over simulated time
type Cooldown struct {
	until time.Duration
	set   bool
}

// Start opens the window for d from now
func (c *Cooldown) Start(now, d time.Duration) {
	c.until = now + d
	c.set = true
}

// Active reports whether the window is still open
func (c *Cooldown) Active(now time.Duration) bool {
	return c.set && now < c.until
}

// Remaining returns the time left, zero when inactive
func (c *Cooldown) Remaining(now time.Duration) time.Duration {
	if !c.Active(now) {
		return 0
	}
	return c.until - now
}
