package game

import "time"

// gameClock tracks elapsed play time. Once stopped it stays stopped until
// the next restart.
type gameClock struct {
	start   time.Time
	elapsed time.Duration
	running bool
}

func (c *gameClock) restart(now time.Time) {
	c.start = now
	c.elapsed = 0
	c.running = true
}

// observe recomputes elapsed time at now. It reports false when stopped.
func (c *gameClock) observe(now time.Time) (time.Duration, bool) {
	if !c.running {
		return c.elapsed, false
	}
	d := now.Sub(c.start)
	if d < 0 {
		d = 0
	}
	c.elapsed = d
	return d, true
}

func (c *gameClock) stop(now time.Time) time.Duration {
	if c.running {
		c.observe(now)
		c.running = false
	}
	return c.elapsed
}
