package polgame

import "time"

// frameClock paces a manually stepped loop to a fixed framerate. Each wait
// blocks until the next frame deadline. A caller that falls more than one
// frame behind is not made to catch up.
type frameClock struct {
	interval time.Duration
	next     time.Time
	disabled bool

	now   func() time.Time
	sleep func(time.Duration)
}

func newFrameClock(framerate int, disabled bool) frameClock {
	c := frameClock{
		interval: time.Second / time.Duration(framerate),
		disabled: disabled,
		now:      time.Now,
		sleep:    time.Sleep,
	}
	c.next = c.now().Add(c.interval)
	return c
}

// wait sleeps until the current frame deadline and schedules the next one.
func (c *frameClock) wait() {
	if c.disabled {
		return
	}
	now := c.now()
	if d := c.next.Sub(now); d > 0 {
		c.sleep(d)
	} else if -d > c.interval {
		c.next = now
	}
	c.next = c.next.Add(c.interval)
}
