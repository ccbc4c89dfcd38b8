//go:build js && wasm

package browser

import (
	"syscall/js"
	"time"

	"github.com/ericfisherdev/portfolio/internal/dom"
)

// Compile-time interface satisfaction check.
var _ dom.Window = (*Window)(nil)

// Window wraps the global window object.
type Window struct {
	v   js.Value
	doc *Document
}

// NewWindow binds the global window and its document.
func NewWindow() *Window {
	v := js.Global()
	return &Window{v: v, doc: newDocument(v.Get("document"))}
}

func (w *Window) AddEventListener(eventType string, h dom.Handler) func() {
	return w.doc.listen(w.v, eventType, h)
}

func (w *Window) Document() dom.Document {
	return w.doc
}

// Doc returns the concrete document.
func (w *Window) Doc() *Document {
	return w.doc
}

func (w *Window) ScrollY() float64 {
	return w.v.Get("scrollY").Float()
}

func (w *Window) InnerHeight() float64 {
	return w.v.Get("innerHeight").Float()
}

func (w *Window) ScrollTo(top float64, smooth bool) {
	behavior := "auto"
	if smooth {
		behavior = "smooth"
	}
	w.v.Call("scrollTo", map[string]any{"top": top, "behavior": behavior})
}

func (w *Window) Now() time.Time {
	return time.Now()
}

func (w *Window) SetTimeout(d time.Duration, fn func()) dom.Timer {
	return w.schedule("setTimeout", "clearTimeout", fn, d.Milliseconds())
}

func (w *Window) RequestAnimationFrame(fn func()) dom.Timer {
	return w.schedule("requestAnimationFrame", "cancelAnimationFrame", fn)
}

func (w *Window) NewIntersectionObserver(opts dom.ObserverOptions, cb func([]dom.IntersectionEntry)) dom.IntersectionObserver {
	return newObserver(w.v, w.doc, opts, cb)
}

// timer is a pending setTimeout or requestAnimationFrame callback.
type timer struct {
	w      *Window
	cancel string
	id     js.Value
	fn     js.Func
	done   bool
}

func (w *Window) schedule(method, cancel string, fn func(), extra ...any) *timer {
	t := &timer{w: w, cancel: cancel}
	t.fn = js.FuncOf(func(js.Value, []js.Value) any {
		if t.done {
			return nil
		}
		t.done = true
		t.fn.Release()
		fn()
		return nil
	})
	t.id = w.v.Call(method, append([]any{t.fn}, extra...)...)
	return t
}

func (t *timer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.w.v.Call(t.cancel, t.id)
	t.fn.Release()
	return true
}
