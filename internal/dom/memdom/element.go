package memdom

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/ericfisherdev/portfolio/internal/dom"
)

// Compile-time interface satisfaction check.
var _ dom.Element = (*Element)(nil)

// Element wraps an html.Node with listeners, removal hooks and a layout box.
// Wrappers are unique per node, so Elements compare by identity.
type Element struct {
	doc       *Document
	node      *html.Node
	listeners listenerSet
	onRemove  []func()
	layout    dom.Rect
	hasLayout bool
}

// AddEventListener registers a listener on this element.
func (e *Element) AddEventListener(eventType string, h dom.Handler) func() {
	return e.listeners.add(eventType, h)
}

// TagName returns the lowercase tag name.
func (e *Element) TagName() string {
	return e.node.Data
}

// ID returns the id attribute.
func (e *Element) ID() string {
	return attr(e.node, "id")
}

// Attr returns the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces an attribute.
func (e *Element) SetAttr(name, value string) {
	for i, a := range e.node.Attr {
		if a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

func (e *Element) removeAttr(name string) {
	for i, a := range e.node.Attr {
		if a.Key == name {
			e.node.Attr = append(e.node.Attr[:i], e.node.Attr[i+1:]...)
			return
		}
	}
}

func (e *Element) classes() []string {
	v, _ := e.Attr("class")
	return strings.Fields(v)
}

func (e *Element) setClasses(classes []string) {
	if len(classes) == 0 {
		e.removeAttr("class")
		return
	}
	e.SetAttr("class", strings.Join(classes, " "))
}

// HasClass reports whether class is in the class list.
func (e *Element) HasClass(class string) bool {
	for _, c := range e.classes() {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass appends classes not already present.
func (e *Element) AddClass(classes ...string) {
	current := e.classes()
	changed := false
	for _, class := range classes {
		if class == "" || contains(current, class) {
			continue
		}
		current = append(current, class)
		changed = true
	}
	if changed {
		e.setClasses(current)
	}
}

// RemoveClass drops class from the class list.
func (e *Element) RemoveClass(class string) {
	current := e.classes()
	kept := current[:0]
	for _, c := range current {
		if c != class {
			kept = append(kept, c)
		}
	}
	if len(kept) != len(e.classes()) {
		e.setClasses(kept)
	}
}

// ToggleClass flips class and reports whether it is now present.
func (e *Element) ToggleClass(class string) bool {
	if e.HasClass(class) {
		e.RemoveClass(class)
		return false
	}
	e.AddClass(class)
	return true
}

// Text returns the concatenated text of all descendant text nodes.
func (e *Element) Text() string {
	var b strings.Builder
	collectText(e.node, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// SetText replaces all children with a single text node.
func (e *Element) SetText(text string) {
	e.removeChildren()
	if text != "" {
		e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

// SetHTML replaces all children with the parsed markup.
func (e *Element) SetHTML(markup string) {
	e.removeChildren()
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.node)
	if err != nil {
		e.node.AppendChild(&html.Node{Type: html.TextNode, Data: markup})
		return
	}
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
}

// Style returns one inline style property.
func (e *Element) Style(prop string) string {
	v, _ := e.Attr("style")
	for _, decl := range parseStyle(v) {
		if decl[0] == prop {
			return decl[1]
		}
	}
	return ""
}

// SetStyle sets one inline style property; an empty value removes it.
func (e *Element) SetStyle(prop, value string) {
	v, _ := e.Attr("style")
	decls := parseStyle(v)

	found := false
	out := decls[:0]
	for _, decl := range decls {
		if decl[0] == prop {
			found = true
			if value == "" {
				continue
			}
			decl[1] = value
		}
		out = append(out, decl)
	}
	if !found && value != "" {
		out = append(out, [2]string{prop, value})
	}

	if len(out) == 0 {
		e.removeAttr("style")
		return
	}
	parts := make([]string, 0, len(out))
	for _, decl := range out {
		parts = append(parts, decl[0]+": "+decl[1])
	}
	e.SetAttr("style", strings.Join(parts, "; ")+";")
}

func parseStyle(v string) [][2]string {
	var decls [][2]string
	for _, part := range strings.Split(v, ";") {
		prop, val, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		if prop == "" {
			continue
		}
		decls = append(decls, [2]string{prop, strings.TrimSpace(val)})
	}
	return decls
}

// Parent returns the parent element, or nil for the root or a detached node.
func (e *Element) Parent() dom.Element {
	p := e.node.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return e.doc.wrap(p)
}

// Children returns the element children in order.
func (e *Element) Children() []dom.Element {
	var out []dom.Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, e.doc.wrap(c))
		}
	}
	return out
}

// AppendChild moves child to the end of this element's children.
func (e *Element) AppendChild(child dom.Element) {
	c, ok := child.(*Element)
	if !ok || c == nil {
		return
	}
	if c.node.Parent != nil {
		c.node.Parent.RemoveChild(c.node)
	}
	e.node.AppendChild(c.node)
}

// ReplaceChildren removes every child and appends the given elements.
func (e *Element) ReplaceChildren(children ...dom.Element) {
	e.removeChildren()
	for _, child := range children {
		e.AppendChild(child)
	}
}

func (e *Element) removeChildren() {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.doc.detach(c)
		c = next
	}
}

// Remove detaches the element from its parent.
func (e *Element) Remove() {
	e.doc.detach(e.node)
}

// Connected reports whether the element is part of the document tree.
func (e *Element) Connected() bool {
	return e.doc.connected(e.node)
}

// OnRemove registers fn to run when the element leaves the document.
func (e *Element) OnRemove(fn func()) {
	e.onRemove = append(e.onRemove, fn)
}

func (e *Element) fireRemoved() {
	fns := e.onRemove
	e.onRemove = nil
	for _, fn := range fns {
		fn()
	}
}

// QuerySelector returns the first matching descendant, or nil.
func (e *Element) QuerySelector(selector string) dom.Element {
	return e.doc.element(e.doc.queryFirst(e.node, selector))
}

// QuerySelectorAll returns every matching descendant in document order.
func (e *Element) QuerySelectorAll(selector string) []dom.Element {
	return e.doc.elementsOf(e.doc.queryAll(e.node, selector))
}

// OffsetTop returns the top of the layout box in document coordinates.
func (e *Element) OffsetTop() float64 {
	return e.layout.Top
}

// OffsetHeight returns the height of the layout box.
func (e *Element) OffsetHeight() float64 {
	return e.layout.Height
}

// BoundingClientRect returns the layout box relative to the viewport.
func (e *Element) BoundingClientRect() dom.Rect {
	r := e.layout
	r.Top -= e.doc.win.scrollY
	return r
}

// SetLayout assigns the element's box in document coordinates.
func (e *Element) SetLayout(r dom.Rect) {
	e.layout = r
	e.hasLayout = true
}

// Dispatch delivers ev to this element's listeners and bubbles it up.
func (e *Element) Dispatch(ev *dom.Event) {
	e.doc.dispatch(e, ev)
}

// Click dispatches a click event and returns it so callers can inspect
// DefaultPrevented.
func (e *Element) Click() *dom.Event {
	ev := &dom.Event{Type: dom.EventClick}
	e.Dispatch(ev)
	return ev
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
