package memdom

import (
	"github.com/ericfisherdev/portfolio/internal/dom"
)

// observer simulates IntersectionObserver against layout boxes. Entries are
// reported for the first evaluation of each target and whenever its
// intersecting state changes.
type observer struct {
	win     *Window
	opts    dom.ObserverOptions
	cb      func([]dom.IntersectionEntry)
	targets []*Element
	last    map[*Element]bool
	pending map[*Element]bool
	closed  bool
}

func (o *observer) Observe(el dom.Element) {
	e, ok := el.(*Element)
	if !ok || e == nil || o.closed {
		return
	}
	for _, t := range o.targets {
		if t == e {
			return
		}
	}
	o.targets = append(o.targets, e)
	if o.pending == nil {
		o.pending = make(map[*Element]bool)
	}
	o.pending[e] = true
	o.win.SetTimeout(0, o.check)
}

func (o *observer) Unobserve(el dom.Element) {
	e, ok := el.(*Element)
	if !ok {
		return
	}
	for i, t := range o.targets {
		if t == e {
			o.targets = append(o.targets[:i], o.targets[i+1:]...)
			break
		}
	}
	delete(o.last, e)
	delete(o.pending, e)
}

func (o *observer) Disconnect() {
	o.closed = true
	o.targets = nil
	o.last = make(map[*Element]bool)
	o.pending = nil
}

func (o *observer) check() {
	if o.closed {
		return
	}

	var entries []dom.IntersectionEntry
	for _, t := range o.targets {
		ratio, intersecting := o.measure(t)
		prev, seen := o.last[t]
		if seen && prev == intersecting && !o.pending[t] {
			continue
		}
		o.last[t] = intersecting
		delete(o.pending, t)
		entries = append(entries, dom.IntersectionEntry{
			Target:         t,
			IsIntersecting: intersecting,
			Ratio:          ratio,
		})
	}

	if len(entries) > 0 {
		o.cb(entries)
	}
}

// measure intersects the element's viewport box with the root box grown by
// the root margin.
func (o *observer) measure(e *Element) (float64, bool) {
	if !e.Connected() {
		return 0, false
	}

	m := o.opts.RootMargin
	rootTop := -m.Top
	rootBottom := o.win.innerHeight + m.Bottom

	r := e.BoundingClientRect()
	if r.Height <= 0 {
		if r.Top >= rootTop && r.Top <= rootBottom {
			return 1, true
		}
		return 0, false
	}

	visible := min(r.Bottom(), rootBottom) - max(r.Top, rootTop)
	if visible <= 0 {
		return 0, false
	}
	ratio := visible / r.Height
	return ratio, ratio >= o.opts.Threshold
}
