package core

// Clock is a monotonic millisecond time source.
type Clock interface {
	NowMillis() uint64
}

// ManualClock only moves when told to. Games use it for deterministic
// frame-based timing and tests use it to drive spawn timers.
type ManualClock struct {
	now uint64
}

// NowMillis implements Clock.
func (c *ManualClock) NowMillis() uint64 {
	return c.now
}

// Advance moves the clock forward by ms milliseconds.
func (c *ManualClock) Advance(ms uint64) {
	c.now += ms
}

// Set jumps the clock to an absolute timestamp.
func (c *ManualClock) Set(ms uint64) {
	c.now = ms
}
