//go:build js && wasm

package browser

import (
	"fmt"
	"syscall/js"

	"github.com/ericfisherdev/portfolio/internal/dom"
)

// observer wraps a native IntersectionObserver.
type observer struct {
	v        js.Value
	callback js.Func
}

func newObserver(global js.Value, doc *Document, opts dom.ObserverOptions, cb func([]dom.IntersectionEntry)) *observer {
	o := &observer{}
	o.callback = js.FuncOf(func(_ js.Value, args []js.Value) any {
		raw := args[0]
		entries := make([]dom.IntersectionEntry, 0, raw.Length())
		for i := range raw.Length() {
			e := raw.Index(i)
			entries = append(entries, dom.IntersectionEntry{
				Target:         &Element{v: e.Get("target"), doc: doc},
				IsIntersecting: e.Get("isIntersecting").Bool(),
				Ratio:          e.Get("intersectionRatio").Float(),
			})
		}
		cb(entries)
		return nil
	})

	m := opts.RootMargin
	o.v = global.Get("IntersectionObserver").New(o.callback, map[string]any{
		"threshold":  opts.Threshold,
		"rootMargin": fmt.Sprintf("%gpx %gpx %gpx %gpx", m.Top, m.Right, m.Bottom, m.Left),
	})
	return o
}

func (o *observer) Observe(el dom.Element) {
	if e, ok := el.(*Element); ok && e != nil {
		o.v.Call("observe", e.v)
	}
}

func (o *observer) Unobserve(el dom.Element) {
	if e, ok := el.(*Element); ok && e != nil {
		o.v.Call("unobserve", e.v)
	}
}

func (o *observer) Disconnect() {
	o.v.Call("disconnect")
	o.callback.Release()
}
