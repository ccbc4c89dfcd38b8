package memdom

import "time"

// frameInterval is the virtual duration of one animation frame.
const frameInterval = 16 * time.Millisecond

// clock is a manually advanced time source that runs scheduled callbacks
// in due order.
type clock struct {
	now    time.Time
	seq    int
	timers []*timer
}

type timer struct {
	due     time.Time
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

// Stop cancels the timer. It reports false if the timer already fired or
// was already stopped.
func (t *timer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

func (c *clock) schedule(d time.Duration, fn func()) *timer {
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &timer{due: c.now.Add(d), seq: c.seq, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// advance moves the clock forward by d, running every callback that falls
// due on the way, including ones scheduled by earlier callbacks.
func (c *clock) advance(d time.Duration) {
	target := c.now.Add(d)
	for {
		next := c.nextDue(target)
		if next == nil {
			break
		}
		c.now = next.due
		next.fired = true
		next.fn()
	}
	c.now = target
	c.prune()
}

func (c *clock) nextDue(limit time.Time) *timer {
	var next *timer
	for _, t := range c.timers {
		if t.fired || t.stopped || t.due.After(limit) {
			continue
		}
		if next == nil || t.due.Before(next.due) || (t.due.Equal(next.due) && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (c *clock) prune() {
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.fired && !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(c.timers); i++ {
		c.timers[i] = nil
	}
	c.timers = live
}

// pending returns the number of timers that have neither fired nor stopped.
func (c *clock) pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}
