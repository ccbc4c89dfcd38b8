//go:build js && wasm

package browser

import (
	"syscall/js"

	"github.com/ericfisherdev/portfolio/internal/dom"
)

// Compile-time interface satisfaction check.
var _ dom.Document = (*Document)(nil)

// Document wraps window.document.
type Document struct {
	v        js.Value
	removals *removals
}

func newDocument(v js.Value) *Document {
	d := &Document{v: v}
	d.removals = newRemovals(v)
	return d
}

// Value returns the underlying JavaScript object.
func (d *Document) Value() js.Value {
	return d.v
}

func (d *Document) AddEventListener(eventType string, h dom.Handler) func() {
	return d.listen(d.v, eventType, h)
}

func (d *Document) Body() dom.Element {
	return d.wrap(d.v.Get("body"))
}

func (d *Document) GetElementByID(id string) dom.Element {
	return d.wrap(d.v.Call("getElementById", id))
}

func (d *Document) QuerySelector(selector string) dom.Element {
	return d.query(d.v, selector)
}

func (d *Document) QuerySelectorAll(selector string) []dom.Element {
	return d.queryAll(d.v, selector)
}

func (d *Document) CreateElement(tag string) dom.Element {
	return d.wrap(d.v.Call("createElement", tag))
}

func (d *Document) ScrollHeight() float64 {
	return d.v.Get("documentElement").Get("scrollHeight").Float()
}

// wrap returns nil for null so lookups compare equal to a nil dom.Element.
func (d *Document) wrap(v js.Value) dom.Element {
	if isNullish(v) {
		return nil
	}
	return &Element{v: v, doc: d}
}

func (d *Document) wrapList(list js.Value) []dom.Element {
	n := list.Length()
	out := make([]dom.Element, 0, n)
	for i := range n {
		out = append(out, &Element{v: list.Index(i), doc: d})
	}
	return out
}

// query treats an invalid selector as matching nothing.
func (d *Document) query(from js.Value, selector string) dom.Element {
	var found js.Value
	if err := try(func() { found = from.Call("querySelector", selector) }); err != nil {
		return nil
	}
	return d.wrap(found)
}

func (d *Document) queryAll(from js.Value, selector string) []dom.Element {
	var list js.Value
	if err := try(func() { list = from.Call("querySelectorAll", selector) }); err != nil {
		return nil
	}
	return d.wrapList(list)
}

// listen adds a listener that translates the JavaScript event.
func (d *Document) listen(target js.Value, eventType string, h dom.Handler) func() {
	fn := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		raw := args[0]
		ev := &dom.Event{Type: eventType}
		if t := raw.Get("target"); !isNullish(t) && t.Get("nodeType").Int() == 1 {
			ev.Target = &Element{v: t, doc: d}
		}
		if x := raw.Get("pageX"); x.Type() == js.TypeNumber {
			ev.PageX = x.Float()
			ev.PageY = raw.Get("pageY").Float()
		}

		h(ev)

		if ev.DefaultPrevented() {
			raw.Call("preventDefault")
		}
		return nil
	})
	target.Call("addEventListener", eventType, fn)

	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		target.Call("removeEventListener", eventType, fn)
		fn.Release()
	}
}
