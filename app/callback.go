// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"sync"

	"github.com/evloop/evloop/io/event"
)

// callbackGuard holds the callback of the innermost running
// PollEvents or RunForever call.
//
// The callback is taken out of the slot for the duration of each
// invocation, so a callback that re-enters the loop installs its own
// callback into an empty slot. The lock is never held while the
// callback runs.
type callbackGuard struct {
	mu sync.Mutex
	fn func(event.Event)
}

// install stores fn. It reports false if a callback is already
// installed.
func (g *callbackGuard) install(fn func(event.Event)) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.fn != nil {
		return false
	}
	g.fn = fn
	return true
}

// invoke calls the installed callback with e. It reports false,
// without calling anything, if the slot is empty.
func (g *callbackGuard) invoke(e event.Event) bool {
	g.mu.Lock()
	fn := g.fn
	g.fn = nil
	g.mu.Unlock()
	if fn == nil {
		return false
	}
	defer func() {
		g.mu.Lock()
		g.fn = fn
		g.mu.Unlock()
	}()
	fn(e)
	return true
}

// uninstall empties the slot.
func (g *callbackGuard) uninstall() {
	g.mu.Lock()
	g.fn = nil
	g.mu.Unlock()
}

func (g *callbackGuard) installed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.fn != nil
}
