package engine

import "time"

// Cooldown lets an action through at most once per Interval.
type Cooldown struct {
	Interval time.Duration

	last   time.Time
	primed bool
}

// Ready reports whether the action may run at now and, if so, restarts the
// cooldown.
func (c *Cooldown) Ready(now time.Time) bool {
	if c.primed && now.Sub(c.last) <= c.Interval {
		return false
	}
	c.last = now
	c.primed = true
	return true
}

func (c *Cooldown) Reset() {
	c.primed = false
	c.last = time.Time{}
}
