// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"sync"

	"github.com/evloop/evloop/app/native"
	"github.com/evloop/evloop/f32"
	"github.com/evloop/evloop/io/event"
)

// WindowConfig describes a Window. Coordinates follow AppKit: the
// origin is in the bottom left corner and the y axis points up.
type WindowConfig struct {
	// Handle is the native handle events refer to. It must not be
	// zero.
	Handle uintptr
	// Scale is the number of pixels per point. Zero means 1.
	Scale float32
	// Origin is the position of the window on the screen.
	Origin f32.Point
	// View is the frame of the content view in window coordinates.
	View f32.Rectangle
	Key  bool
}

// Window is an in-memory native.Window.
type Window struct {
	handle uintptr

	mu     sync.Mutex
	scale  float32
	view   f32.Rectangle
	screen f32.Affine2D
	key    bool
}

var _ native.Window = (*Window)(nil)

func NewWindow(cnf WindowConfig) *Window {
	if cnf.Handle == 0 {
		panic("headless: zero window handle")
	}
	w := &Window{handle: cnf.Handle}
	w.Configure(cnf)
	return w
}

// Configure updates the geometry and key state of w. The handle
// cannot be changed.
func (w *Window) Configure(cnf WindowConfig) {
	scale := cnf.Scale
	if scale == 0 {
		scale = 1
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.scale = scale
	w.view = cnf.View.Canon()
	w.screen = f32.Affine2D{}.Offset(cnf.Origin)
	w.key = cnf.Key
}

// SetKey sets whether w receives keyboard input.
func (w *Window) SetKey(key bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.key = key
}

// Handle returns the native handle of w.
func (w *Window) Handle() uintptr {
	return w.handle
}

func (w *Window) ID() event.WindowID {
	return event.WindowID(w.handle)
}

func (w *Window) ScaleFactor() float32 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scale
}

func (w *Window) ViewFrame() f32.Rectangle {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.view
}

// ConvertToScreen converts p from window to screen coordinates.
func (w *Window) ConvertToScreen(p f32.Point) f32.Point {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.screen.Transform(p)
}

func (w *Window) ConvertFromScreen(p f32.Point) f32.Point {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.screen.Invert().Transform(p)
}

func (w *Window) ConvertToView(p f32.Point) f32.Point {
	w.mu.Lock()
	defer w.mu.Unlock()
	return f32.Affine2D{}.Offset(w.view.Min.Mul(-1)).Transform(p)
}

func (w *Window) IsKey() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.key
}
