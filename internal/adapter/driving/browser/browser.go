//go:build js && wasm

// Package browser binds the dom interfaces to the live browser DOM through
// syscall/js.
package browser

import (
	"fmt"
	"syscall/js"
)

// try runs fn and converts a thrown JavaScript exception into an error.
func try(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if jsErr, ok := r.(js.Error); ok {
				err = fmt.Errorf("javascript: %w", jsErr)
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}

func isNullish(v js.Value) bool {
	return v.IsNull() || v.IsUndefined()
}
