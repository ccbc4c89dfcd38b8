//go:build js && wasm

package browser

import (
	"strings"
	"syscall/js"

	"github.com/ericfisherdev/portfolio/internal/dom"
)

// Compile-time interface satisfaction check.
var _ dom.Element = (*Element)(nil)

// Element wraps one DOM element.
type Element struct {
	v   js.Value
	doc *Document
}

// Value returns the underlying JavaScript object.
func (e *Element) Value() js.Value {
	return e.v
}

func (e *Element) AddEventListener(eventType string, h dom.Handler) func() {
	return e.doc.listen(e.v, eventType, h)
}

func (e *Element) TagName() string {
	return strings.ToLower(e.v.Get("tagName").String())
}

func (e *Element) ID() string {
	return e.v.Get("id").String()
}

func (e *Element) Attr(name string) (string, bool) {
	if !e.v.Call("hasAttribute", name).Bool() {
		return "", false
	}
	return e.v.Call("getAttribute", name).String(), true
}

func (e *Element) SetAttr(name, value string) {
	e.v.Call("setAttribute", name, value)
}

func (e *Element) HasClass(class string) bool {
	return e.v.Get("classList").Call("contains", class).Bool()
}

func (e *Element) AddClass(classes ...string) {
	args := make([]any, len(classes))
	for i, c := range classes {
		args[i] = c
	}
	e.v.Get("classList").Call("add", args...)
}

func (e *Element) RemoveClass(class string) {
	e.v.Get("classList").Call("remove", class)
}

func (e *Element) ToggleClass(class string) bool {
	return e.v.Get("classList").Call("toggle", class).Bool()
}

func (e *Element) Text() string {
	return e.v.Get("textContent").String()
}

func (e *Element) SetText(text string) {
	e.v.Set("textContent", text)
}

func (e *Element) SetHTML(markup string) {
	e.v.Set("innerHTML", markup)
}

func (e *Element) Style(prop string) string {
	return e.v.Get("style").Call("getPropertyValue", prop).String()
}

func (e *Element) SetStyle(prop, value string) {
	e.v.Get("style").Call("setProperty", prop, value)
}

func (e *Element) Parent() dom.Element {
	return e.doc.wrap(e.v.Get("parentElement"))
}

func (e *Element) Children() []dom.Element {
	return e.doc.wrapList(e.v.Get("children"))
}

func (e *Element) AppendChild(child dom.Element) {
	if c, ok := child.(*Element); ok && c != nil {
		e.v.Call("appendChild", c.v)
	}
}

func (e *Element) ReplaceChildren(children ...dom.Element) {
	args := make([]any, 0, len(children))
	for _, child := range children {
		if c, ok := child.(*Element); ok && c != nil {
			args = append(args, c.v)
		}
	}
	e.v.Call("replaceChildren", args...)
}

func (e *Element) Remove() {
	e.v.Call("remove")
}

func (e *Element) Connected() bool {
	return e.v.Get("isConnected").Bool()
}

func (e *Element) OnRemove(fn func()) {
	e.doc.removals.register(e.v, fn)
}

func (e *Element) QuerySelector(selector string) dom.Element {
	return e.doc.query(e.v, selector)
}

func (e *Element) QuerySelectorAll(selector string) []dom.Element {
	return e.doc.queryAll(e.v, selector)
}

func (e *Element) OffsetTop() float64 {
	return e.v.Get("offsetTop").Float()
}

func (e *Element) OffsetHeight() float64 {
	return e.v.Get("offsetHeight").Float()
}

func (e *Element) BoundingClientRect() dom.Rect {
	r := e.v.Call("getBoundingClientRect")
	return dom.Rect{
		Top:    r.Get("top").Float(),
		Left:   r.Get("left").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
}
