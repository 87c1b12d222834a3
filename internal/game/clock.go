package game

// Clock converts variable per-tick wall time into fixed physics steps.
// At most one step is reported per tick; surplus time carries over to later ticks.
type Clock struct {
	stepMillis  float64
	accumulated float64
	steps       uint64
}

// NewClock creates a clock that steps every stepMillis of accumulated time.
func NewClock(stepMillis float64) Clock {
	return Clock{stepMillis: stepMillis}
}

// Advance adds elapsed milliseconds and reports whether a physics step is due.
func (c *Clock) Advance(elapsedMs float64) bool {
	if elapsedMs > 0 {
		c.accumulated += elapsedMs
	}
	if c.accumulated < c.stepMillis {
		return false
	}
	c.accumulated -= c.stepMillis
	c.steps++
	return true
}

// Accumulated returns the time carried towards the next step.
func (c Clock) Accumulated() float64 {
	return c.accumulated
}

// Steps returns the number of physics steps taken since the last reset.
func (c Clock) Steps() uint64 {
	return c.steps
}

// Reset zeroes the accumulator and the step count.
func (c *Clock) Reset() {
	c.accumulated = 0
	c.steps = 0
}
