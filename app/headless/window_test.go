// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evloop/evloop/f32"
	"github.com/evloop/evloop/io/event"
)

func TestWindowConversions(t *testing.T) {
	w := NewWindow(WindowConfig{
		Handle: 42,
		Scale:  2,
		Origin: f32.Pt(100, 50),
		View:   f32.Rect(0, 20, 300, 220),
	})
	assert.Equal(t, event.WindowID(42), w.ID())
	assert.Equal(t, uintptr(42), w.Handle())
	assert.Equal(t, float32(2), w.ScaleFactor())
	assert.Equal(t, float32(200), w.ViewFrame().Dy())

	screen := w.ConvertToScreen(f32.Pt(5, 25))
	assert.Equal(t, f32.Pt(105, 75), screen)
	assert.Equal(t, f32.Pt(5, 25), w.ConvertFromScreen(screen))
	assert.Equal(t, f32.Pt(5, 5), w.ConvertToView(f32.Pt(5, 25)))
}

func TestWindowDefaults(t *testing.T) {
	w := NewWindow(WindowConfig{Handle: 1, View: f32.Rect(10, 10, 0, 0)})
	assert.Equal(t, float32(1), w.ScaleFactor())
	assert.Equal(t, f32.Rect(0, 0, 10, 10), w.ViewFrame())
	assert.False(t, w.IsKey())
	w.SetKey(true)
	assert.True(t, w.IsKey())
	assert.Panics(t, func() {
		NewWindow(WindowConfig{})
	})
}

func TestWindowConfigure(t *testing.T) {
	w := NewWindow(WindowConfig{Handle: 1, Key: true})
	w.Configure(WindowConfig{Handle: 99, Scale: 3, Origin: f32.Pt(1, 1)})
	assert.Equal(t, event.WindowID(1), w.ID(), "handle is fixed")
	assert.Equal(t, float32(3), w.ScaleFactor())
	assert.False(t, w.IsKey())
	assert.Equal(t, f32.Pt(0, 0), w.ConvertFromScreen(f32.Pt(1, 1)))
}
