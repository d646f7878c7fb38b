// SPDX-License-Identifier: Unlicense OR MIT

// Package system contains events usually handled at the top-level
// program level.
package system

import "github.com/evloop/evloop/io/event"

// A WakeupEvent is delivered when the event loop is woken up
// without real input, typically by an interrupt. It carries no
// information and can be ignored.
type WakeupEvent struct {
	Window event.WindowID
}

func (WakeupEvent) ImplementsEvent() {}
