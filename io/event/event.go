// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
package event

import "strconv"

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}

// WindowID is the stable identity of a native window. It is derived
// from the native window handle, so events from windows the loop does
// not know about still carry a usable identity. The zero WindowID
// means the event has no window.
type WindowID uintptr

func (w WindowID) String() string {
	return "window#" + strconv.FormatUint(uint64(w), 16)
}
