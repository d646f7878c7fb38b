// SPDX-License-Identifier: Unlicense OR MIT

// Package native is the boundary between the event loop and the
// platform window system. Backends decode platform events into Event
// values and implement Queue and Window; everything above this package
// is ordinary Go.
//
// The numbering of Type, Flags, Phase and Subtype follows AppKit.
package native

import (
	"github.com/evloop/evloop/f32"
	"github.com/evloop/evloop/io/event"
)

// Event is a decoded native event. Only the fields relevant to Type
// are set.
type Event struct {
	Type Type
	// Window is the native handle of the window the event belongs to,
	// or 0 if it has none. Location is in screen coordinates when
	// Window is 0.
	Window uintptr

	KeyCode    uint16
	Characters string
	Flags      Flags

	// Location is in the coordinate space of Window, with the origin
	// in the bottom left corner.
	Location f32.Point

	Scroll  f32.Point
	Precise bool
	Phase   Phase

	Pressure float32
	Stage    int64

	Subtype Subtype

	// Ref is the backend's reference to the underlying platform
	// object. It is opaque to the event loop.
	Ref uintptr
}

// Queue is the platform event queue of the current application.
type Queue interface {
	// NextEvent dequeues the next event. If wait is false and no event
	// is queued it returns nil. If wait is true it blocks until an
	// event arrives, including a wakeup posted by PostWakeup, and
	// returns nil only if the queue can produce no more events.
	NextEvent(wait bool) *Event
	// Dispatch hands ev to the platform's default handling (focus,
	// activation, window dragging).
	Dispatch(ev *Event)
	// Release frees platform resources held by ev. The loop calls it
	// once per event returned from NextEvent, after translation.
	Release(ev *Event)
	// PostWakeup enqueues an application defined event with
	// SubtypeApplicationActivated. It is safe to call from any
	// goroutine.
	PostWakeup()
	// OnOwnerThread reports whether the calling thread owns the
	// queue.
	OnOwnerThread() bool
	// ConvertToScreen converts p from the coordinate space of the
	// native window to screen coordinates.
	ConvertToScreen(window uintptr, p f32.Point) f32.Point
}

// Window is a native window as seen by the event loop.
type Window interface {
	// ID returns the stable identity of the window. It must equal
	// event.WindowID of the native handle reported in Event.Window.
	ID() event.WindowID
	// ScaleFactor returns the number of pixels per logical point.
	ScaleFactor() float32
	// ViewFrame returns the frame of the content view in window
	// coordinates.
	ViewFrame() f32.Rectangle
	// ConvertFromScreen converts p from screen coordinates to
	// window coordinates.
	ConvertFromScreen(p f32.Point) f32.Point
	// ConvertToView converts p from window coordinates to the content
	// view's coordinates.
	ConvertToView(p f32.Point) f32.Point
	// IsKey reports whether the window currently receives keyboard
	// input.
	IsKey() bool
}
