package memdom

import (
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/ericfisherdev/portfolio/internal/dom"
)

// Compile-time interface satisfaction check.
var _ dom.Window = (*Window)(nil)

const defaultInnerHeight = 800

// Window is an in-memory browsing context with a virtual clock.
type Window struct {
	doc         *Document
	clock       *clock
	listeners   listenerSet
	observers   []*observer
	scrollY     float64
	innerHeight float64
}

// Option configures a Window.
type Option func(*Window)

// WithViewportHeight sets the viewport height in CSS pixels.
func WithViewportHeight(h float64) Option {
	return func(w *Window) {
		w.innerHeight = h
	}
}

// WithStartTime sets the virtual clock's starting instant.
func WithStartTime(t time.Time) Option {
	return func(w *Window) {
		w.clock.now = t
	}
}

// Parse builds a Window around the parsed HTML document.
func Parse(r io.Reader, opts ...Option) (*Window, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	doc, err := newDocument(root)
	if err != nil {
		return nil, err
	}

	w := &Window{
		doc:         doc,
		clock:       &clock{now: time.Now()},
		listeners:   listenerSet{},
		innerHeight: defaultInnerHeight,
	}
	doc.win = w

	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// MustParse is like Parse but panics on error.
func MustParse(markup string, opts ...Option) *Window {
	w, err := Parse(strings.NewReader(markup), opts...)
	if err != nil {
		panic(err)
	}
	return w
}

// AddEventListener registers a window-level listener.
func (w *Window) AddEventListener(eventType string, h dom.Handler) func() {
	return w.listeners.add(eventType, h)
}

// Document returns the window's document.
func (w *Window) Document() dom.Document {
	return w.doc
}

// Doc returns the concrete document.
func (w *Window) Doc() *Document {
	return w.doc
}

// ScrollY returns the vertical scroll offset.
func (w *Window) ScrollY() float64 {
	return w.scrollY
}

// InnerHeight returns the viewport height.
func (w *Window) InnerHeight() float64 {
	return w.innerHeight
}

// ScrollTo jumps to top. Smooth scrolling completes instantly.
func (w *Window) ScrollTo(top float64, _ bool) {
	w.Scroll(top)
}

// Scroll sets the scroll offset clamped to the scrollable range, fires
// scroll listeners and re-evaluates intersection observers.
func (w *Window) Scroll(y float64) {
	maxY := w.doc.ScrollHeight() - w.innerHeight
	if y > maxY {
		y = maxY
	}
	if y < 0 {
		y = 0
	}
	w.scrollY = y
	w.listeners.fire(&dom.Event{Type: dom.EventScroll})
	w.checkObservers()
}

// MouseMove dispatches a mousemove event at the given page coordinates.
func (w *Window) MouseMove(x, y float64) {
	ev := &dom.Event{Type: dom.EventMouseMove, PageX: x, PageY: y}
	w.doc.dispatch(w.doc.wrap(w.doc.body), ev)
}

// Now returns the virtual time.
func (w *Window) Now() time.Time {
	return w.clock.now
}

// SetTimeout schedules fn after d of virtual time.
func (w *Window) SetTimeout(d time.Duration, fn func()) dom.Timer {
	return w.clock.schedule(d, fn)
}

// RequestAnimationFrame schedules fn for the next 16ms frame.
func (w *Window) RequestAnimationFrame(fn func()) dom.Timer {
	return w.clock.schedule(frameInterval, fn)
}

// Advance moves virtual time forward, running due callbacks.
func (w *Window) Advance(d time.Duration) {
	w.clock.advance(d)
}

// Flush runs callbacks that are already due.
func (w *Window) Flush() {
	w.clock.advance(0)
}

// PendingTimers returns the number of scheduled callbacks still waiting.
func (w *Window) PendingTimers() int {
	return w.clock.pending()
}

// NewIntersectionObserver returns an observer evaluated on every Scroll and
// once after each Observe.
func (w *Window) NewIntersectionObserver(opts dom.ObserverOptions, cb func([]dom.IntersectionEntry)) dom.IntersectionObserver {
	o := &observer{win: w, opts: opts, cb: cb, last: make(map[*Element]bool)}
	w.observers = append(w.observers, o)
	return o
}

func (w *Window) checkObservers() {
	for _, o := range append([]*observer(nil), w.observers...) {
		o.check()
	}
}
