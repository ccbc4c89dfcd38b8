//go:build js && wasm

package browser

import (
	"strconv"
	"syscall/js"
)

// hookAttr marks elements that have removal hooks so a detached subtree can
// be searched for them.
const hookAttr = "data-on-remove"

// removals runs OnRemove hooks. A MutationObserver on the document reports
// detached subtrees; hooks run once the removed nodes are no longer
// connected.
type removals struct {
	next     int
	hooks    map[int][]func()
	observer js.Value
	callback js.Func
}

func newRemovals(doc js.Value) *removals {
	r := &removals{hooks: make(map[int][]func())}

	r.callback = js.FuncOf(func(_ js.Value, args []js.Value) any {
		records := args[0]
		for i := range records.Length() {
			removed := records.Index(i).Get("removedNodes")
			for j := range removed.Length() {
				r.detached(removed.Index(j))
			}
		}
		return nil
	})

	r.observer = js.Global().Get("MutationObserver").New(r.callback)
	r.observer.Call("observe", doc, map[string]any{"childList": true, "subtree": true})
	return r
}

func (r *removals) register(el js.Value, fn func()) {
	id := r.idOf(el)
	if id == 0 {
		r.next++
		id = r.next
		el.Call("setAttribute", hookAttr, strconv.Itoa(id))
	}
	r.hooks[id] = append(r.hooks[id], fn)
}

func (r *removals) idOf(el js.Value) int {
	raw := el.Call("getAttribute", hookAttr)
	if raw.IsNull() {
		return 0
	}
	id, err := strconv.Atoi(raw.String())
	if err != nil {
		return 0
	}
	return id
}

// detached fires the hooks of node and its marked descendants unless the
// node was moved rather than removed.
func (r *removals) detached(node js.Value) {
	if node.Get("nodeType").Int() != 1 || node.Get("isConnected").Bool() {
		return
	}

	r.fire(node)
	marked := node.Call("querySelectorAll", "["+hookAttr+"]")
	for i := range marked.Length() {
		r.fire(marked.Index(i))
	}
}

func (r *removals) fire(el js.Value) {
	id := r.idOf(el)
	if id == 0 {
		return
	}
	hooks := r.hooks[id]
	delete(r.hooks, id)
	el.Call("removeAttribute", hookAttr)
	for _, fn := range hooks {
		fn()
	}
}
