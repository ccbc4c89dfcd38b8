package page

import (
	"time"

	"github.com/ericfisherdev/portfolio/internal/dom"
)

// timers tracks every pending callback the page schedules so they can be
// cancelled when their element goes away or the page closes.
type timers struct {
	win    dom.Window
	groups map[*timerGroup]struct{}
}

func newTimers(win dom.Window) *timers {
	return &timers{win: win, groups: make(map[*timerGroup]struct{})}
}

// group returns a timer group bound to owner. Removing owner from the
// document stops every timer in the group. owner may be nil.
func (t *timers) group(owner dom.Element) *timerGroup {
	g := &timerGroup{parent: t, pending: make(map[dom.Timer]struct{})}
	if owner != nil {
		owner.OnRemove(g.stop)
	}
	return g
}

func (t *timers) stopAll() {
	for g := range t.groups {
		g.stop()
	}
}

// pending returns the number of scheduled callbacks that have not run.
func (t *timers) pending() int {
	n := 0
	for g := range t.groups {
		n += len(g.pending)
	}
	return n
}

type timerGroup struct {
	parent  *timers
	pending map[dom.Timer]struct{}
	stopped bool
}

// after runs fn once d has elapsed unless the group is stopped first.
func (g *timerGroup) after(d time.Duration, fn func()) {
	g.track(func(run func()) dom.Timer { return g.parent.win.SetTimeout(d, run) }, fn)
}

// frame runs fn on the next animation frame unless the group is stopped first.
func (g *timerGroup) frame(fn func()) {
	g.track(g.parent.win.RequestAnimationFrame, fn)
}

func (g *timerGroup) track(schedule func(func()) dom.Timer, fn func()) {
	if g.stopped {
		return
	}
	g.parent.groups[g] = struct{}{}

	var timer dom.Timer
	timer = schedule(func() {
		delete(g.pending, timer)
		fn()
		if len(g.pending) == 0 {
			delete(g.parent.groups, g)
		}
	})
	g.pending[timer] = struct{}{}
}

func (g *timerGroup) stop() {
	g.stopped = true
	for timer := range g.pending {
		timer.Stop()
	}
	clear(g.pending)
	delete(g.parent.groups, g)
}
