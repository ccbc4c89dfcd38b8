// Package memdom is an in-memory implementation of the dom interfaces built
// on golang.org/x/net/html. Time only moves when the caller advances the
// window's virtual clock, and layout boxes are assigned explicitly, so
// controllers can be driven deterministically without a browser.
package memdom

import (
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ericfisherdev/portfolio/internal/dom"
)

// Compile-time interface satisfaction check.
var _ dom.Document = (*Document)(nil)

// Document is an in-memory HTML document.
type Document struct {
	root         *html.Node
	body         *html.Node
	win          *Window
	elements     map[*html.Node]*Element
	selectors    map[string]cascadia.SelectorGroup
	listeners    listenerSet
	scrollHeight float64
}

func newDocument(root *html.Node) (*Document, error) {
	body := findFirst(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Body
	})
	if body == nil {
		return nil, fmt.Errorf("document has no body element")
	}

	return &Document{
		root:      root,
		body:      body,
		elements:  make(map[*html.Node]*Element),
		selectors: make(map[string]cascadia.SelectorGroup),
		listeners: listenerSet{},
	}, nil
}

// AddEventListener registers a document-level listener. Element events
// bubble up to it.
func (d *Document) AddEventListener(eventType string, h dom.Handler) func() {
	return d.listeners.add(eventType, h)
}

// Body returns the body element.
func (d *Document) Body() dom.Element {
	return d.wrap(d.body)
}

// GetElementByID returns the element with the given id, or nil.
func (d *Document) GetElementByID(id string) dom.Element {
	n := findFirst(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && attr(n, "id") == id
	})
	return d.element(n)
}

// QuerySelector returns the first element matching selector, or nil.
func (d *Document) QuerySelector(selector string) dom.Element {
	return d.element(d.queryFirst(d.root, selector))
}

// QuerySelectorAll returns every element matching selector in document order.
func (d *Document) QuerySelectorAll(selector string) []dom.Element {
	return d.elementsOf(d.queryAll(d.root, selector))
}

// CreateElement returns a new detached element.
func (d *Document) CreateElement(tag string) dom.Element {
	tag = strings.ToLower(tag)
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	return d.wrap(n)
}

// ScrollHeight returns the explicit scroll height if set, otherwise the
// larger of the viewport height and the lowest laid-out element.
func (d *Document) ScrollHeight() float64 {
	if d.scrollHeight > 0 {
		return d.scrollHeight
	}
	h := d.win.innerHeight
	for _, el := range d.elements {
		if el.hasLayout && el.layout.Bottom() > h {
			h = el.layout.Bottom()
		}
	}
	return h
}

// SetScrollHeight fixes the document's scroll height.
func (d *Document) SetScrollHeight(h float64) {
	d.scrollHeight = h
}

// Find returns the first element matching selector as a concrete *Element,
// or nil.
func (d *Document) Find(selector string) *Element {
	n := d.queryFirst(d.root, selector)
	if n == nil {
		return nil
	}
	return d.wrap(n)
}

// FindAll returns every element matching selector as concrete elements.
func (d *Document) FindAll(selector string) []*Element {
	nodes := d.queryAll(d.root, selector)
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, d.wrap(n))
	}
	return out
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the document, returning an empty string on error.
func (d *Document) String() string {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return ""
	}
	return b.String()
}

func (d *Document) wrap(n *html.Node) *Element {
	if el, ok := d.elements[n]; ok {
		return el
	}
	el := &Element{doc: d, node: n, listeners: listenerSet{}}
	d.elements[n] = el
	return el
}

// element wraps n, returning a nil interface for a nil node.
func (d *Document) element(n *html.Node) dom.Element {
	if n == nil {
		return nil
	}
	return d.wrap(n)
}

func (d *Document) elementsOf(nodes []*html.Node) []dom.Element {
	out := make([]dom.Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, d.wrap(n))
	}
	return out
}

func (d *Document) compile(selector string) (cascadia.SelectorGroup, bool) {
	if sel, ok := d.selectors[selector]; ok {
		return sel, true
	}
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, false
	}
	d.selectors[selector] = sel
	return sel, true
}

func (d *Document) queryFirst(from *html.Node, selector string) *html.Node {
	sel, ok := d.compile(selector)
	if !ok {
		return nil
	}
	return cascadia.Query(from, sel)
}

func (d *Document) queryAll(from *html.Node, selector string) []*html.Node {
	sel, ok := d.compile(selector)
	if !ok {
		return nil
	}
	return cascadia.QueryAll(from, sel)
}

// dispatch runs listeners on target and its ancestors, then on the document.
func (d *Document) dispatch(target *Element, ev *dom.Event) {
	if ev.Target == nil {
		ev.Target = target
	}
	for n := target.node; n != nil; n = n.Parent {
		if el, ok := d.elements[n]; ok {
			el.listeners.fire(ev)
		}
	}
	if target.Connected() {
		d.listeners.fire(ev)
	}
}

// detach unlinks n from its parent and, if it was part of the document,
// fires removal callbacks for n and every wrapped descendant.
func (d *Document) detach(n *html.Node) {
	if n.Parent == nil {
		return
	}
	wasConnected := d.connected(n)
	n.Parent.RemoveChild(n)
	if wasConnected {
		d.fireRemoved(n)
	}
}

func (d *Document) fireRemoved(n *html.Node) {
	if el, ok := d.elements[n]; ok {
		el.fireRemoved()
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.fireRemoved(c)
	}
}

func (d *Document) connected(n *html.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur == d.root {
			return true
		}
	}
	return false
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// listenerSet holds listeners per event type in registration order.
type listenerSet map[string][]*listener

type listener struct {
	h dom.Handler
}

func (s listenerSet) add(eventType string, h dom.Handler) func() {
	l := &listener{h: h}
	s[eventType] = append(s[eventType], l)
	return func() {
		ls := s[eventType]
		for i, cur := range ls {
			if cur == l {
				s[eventType] = append(ls[:i:i], ls[i+1:]...)
				return
			}
		}
	}
}

func (s listenerSet) fire(ev *dom.Event) {
	ls := append([]*listener(nil), s[ev.Type]...)
	for _, l := range ls {
		l.h(ev)
	}
}
