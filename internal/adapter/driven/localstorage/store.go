//go:build js && wasm

// Package localstorage implements the PreferenceStore port on the browser's
// window.localStorage.
package localstorage

import (
	"context"
	"errors"
	"fmt"
	"syscall/js"

	"github.com/ericfisherdev/portfolio/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.PreferenceStore = (*Store)(nil)

// ErrUnavailable is returned when the browser exposes no localStorage, for
// example in some private browsing modes.
var ErrUnavailable = errors.New("localStorage unavailable")

// Store reads and writes string preferences in localStorage.
type Store struct {
	storage js.Value
}

// New binds window.localStorage.
func New() (*Store, error) {
	var storage js.Value
	if err := try(func() { storage = js.Global().Get("localStorage") }); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if storage.IsNull() || storage.IsUndefined() {
		return nil, ErrUnavailable
	}
	return &Store{storage: storage}, nil
}

// Get returns the stored value for key. A missing key yields ("", false, nil).
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	var v js.Value
	if err := try(func() { v = s.storage.Call("getItem", key) }); err != nil {
		return "", false, fmt.Errorf("get preference %q: %w", key, err)
	}
	if v.IsNull() {
		return "", false, nil
	}
	return v.String(), true, nil
}

// Set stores value under key. Quota and security errors are returned.
func (s *Store) Set(_ context.Context, key, value string) error {
	if err := try(func() { s.storage.Call("setItem", key, value) }); err != nil {
		return fmt.Errorf("set preference %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Removing a missing key is not an error.
func (s *Store) Delete(_ context.Context, key string) error {
	if err := try(func() { s.storage.Call("removeItem", key) }); err != nil {
		return fmt.Errorf("delete preference %q: %w", key, err)
	}
	return nil
}

func try(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if jsErr, ok := r.(js.Error); ok {
				err = jsErr
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}
