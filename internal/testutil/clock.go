package testutil

import (
	"sync"
	"time"
)

// FixedClock provides a thread-safe, manually advanced wall clock for tests.
//
// Commands stamp items with an injected now-function; substituting
// FixedClock.Now makes created_at/updated_at/closed_at deterministic, so
// the same test produces identical rows and rendered output every run.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedClock creates a clock pinned to the given unix time (UTC).
func NewFixedClock(unix int64) *FixedClock {
	return &FixedClock{now: time.Unix(unix, 0).UTC()}
}

// Now returns the current fixed time.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set pins the clock to the given unix time (UTC).
func (c *FixedClock) Set(unix int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = time.Unix(unix, 0).UTC()
}
