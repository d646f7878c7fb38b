// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"sync"

	"golang.org/x/exp/slices"

	"github.com/evloop/evloop/app/native"
	"github.com/evloop/evloop/io/event"
)

// registry is the list of windows known to the loop. Windows may be
// added from any goroutine while the loop runs.
type registry struct {
	mu      sync.Mutex
	windows []native.Window
}

func (r *registry) add(w native.Window) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.windows = append(r.windows, w)
}

func (r *registry) remove(id event.WindowID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := slices.IndexFunc(r.windows, func(w native.Window) bool {
		return w.ID() == id
	})
	if i == -1 {
		return false
	}
	r.windows = slices.Delete(r.windows, i, i+1)
	return true
}

func (r *registry) find(id event.WindowID) (native.Window, bool) {
	if id == 0 {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := slices.IndexFunc(r.windows, func(w native.Window) bool {
		return w.ID() == id
	})
	if i == -1 {
		return nil, false
	}
	return r.windows[i], true
}

// keyWindow returns the registered window that receives keyboard
// input, if any. IsKey is queried without holding the lock.
func (r *registry) keyWindow() (native.Window, bool) {
	for _, w := range r.snapshot() {
		if w.IsKey() {
			return w, true
		}
	}
	return nil, false
}

func (r *registry) snapshot() []native.Window {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.windows)
}
