// Package dom defines the narrow document/element/window surface the page
// controllers run against. The browser adapter binds it to the live DOM and
// memdom provides an in-memory implementation.
package dom

import "time"

// Event types the controllers subscribe to.
const (
	EventClick     = "click"
	EventScroll    = "scroll"
	EventMouseMove = "mousemove"
)

// Event is a dispatched DOM event.
type Event struct {
	Type   string
	Target Element
	PageX  float64
	PageY  float64

	defaultPrevented bool
}

// PreventDefault suppresses the browser's default action for the event.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Handler reacts to an event.
type Handler func(ev *Event)

// EventTarget accepts listeners. The returned func removes the listener.
type EventTarget interface {
	AddEventListener(eventType string, h Handler) (remove func())
}

// Rect is a box in CSS pixels.
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Bottom returns Top+Height.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Element is one node in the document tree. Lookups that find nothing
// return a nil Element.
type Element interface {
	EventTarget

	TagName() string
	ID() string
	Attr(name string) (string, bool)
	SetAttr(name, value string)

	HasClass(class string) bool
	AddClass(classes ...string)
	RemoveClass(class string)
	ToggleClass(class string) bool

	Text() string
	SetText(text string)
	// SetHTML replaces the children with parsed markup. Callers pass
	// sanitized markup only.
	SetHTML(markup string)
	Style(prop string) string
	SetStyle(prop, value string)

	Parent() Element
	Children() []Element
	AppendChild(child Element)
	ReplaceChildren(children ...Element)
	Remove()
	Connected() bool
	// OnRemove registers fn to run once when the element leaves the document.
	OnRemove(fn func())

	QuerySelector(selector string) Element
	QuerySelectorAll(selector string) []Element

	OffsetTop() float64
	OffsetHeight() float64
	BoundingClientRect() Rect
}

// Document is the page document.
type Document interface {
	EventTarget

	Body() Element
	GetElementByID(id string) Element
	QuerySelector(selector string) Element
	QuerySelectorAll(selector string) []Element
	CreateElement(tag string) Element
	ScrollHeight() float64
}

// Timer is a pending callback. Stop reports whether it prevented the call.
type Timer interface {
	Stop() bool
}

// Margin grows (positive) or shrinks (negative) the observer's root box.
type Margin struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// ObserverOptions configures an IntersectionObserver.
type ObserverOptions struct {
	Threshold  float64
	RootMargin Margin
}

// IntersectionEntry reports the visibility of one observed element.
type IntersectionEntry struct {
	Target         Element
	IsIntersecting bool
	Ratio          float64
}

// IntersectionObserver watches elements against the viewport.
type IntersectionObserver interface {
	Observe(el Element)
	Unobserve(el Element)
	Disconnect()
}

// Window is the browsing context: viewport, scrolling and scheduling.
type Window interface {
	EventTarget

	Document() Document
	ScrollY() float64
	InnerHeight() float64
	ScrollTo(top float64, smooth bool)

	Now() time.Time
	SetTimeout(d time.Duration, fn func()) Timer
	RequestAnimationFrame(fn func()) Timer
	NewIntersectionObserver(opts ObserverOptions, cb func([]IntersectionEntry)) IntersectionObserver
}
