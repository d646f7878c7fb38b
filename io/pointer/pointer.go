// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements mouse, scroll and touchpad events.
//
// Positions are in physical pixels relative to the top left corner
// of the window content area.
package pointer

import (
	"fmt"

	"github.com/evloop/evloop/io/event"
	"github.com/evloop/evloop/io/key"
)

// Event is a mouse button press or release. It carries no position;
// track MoveEvents for that.
type Event struct {
	Window event.WindowID
	State  key.State
	Button Button
}

// MoveEvent reports the cursor position in integer pixels.
type MoveEvent struct {
	Window event.WindowID
	X, Y   int
}

// EnterEvent is generated when the cursor enters a tracked area.
type EnterEvent struct {
	Window event.WindowID
}

// LeaveEvent is generated when the cursor leaves a tracked area.
type LeaveEvent struct {
	Window event.WindowID
}

// ScrollEvent is a mouse wheel or trackpad scroll.
type ScrollEvent struct {
	Window event.WindowID
	Delta  Delta
	Phase  Phase
}

// PressureEvent reports force touch pressure. The values are passed
// through from the platform unconverted.
type PressureEvent struct {
	Window   event.WindowID
	Pressure float32
	Stage    int64
}

// Delta is a scroll amount in either lines or pixels. Both
// axes are already multiplied by the window scale factor.
type Delta struct {
	Kind DeltaKind
	X, Y float32
}

// DeltaKind distinguishes coarse wheel clicks from precise
// trackpad deltas.
type DeltaKind uint8

// Button identifies a mouse button.
type Button uint8

// Phase of a scroll gesture.
type Phase uint8

const (
	// LineDelta is a scroll amount in lines, from a notched wheel.
	LineDelta DeltaKind = iota
	// PixelDelta is a scroll amount in pixels, from a high precision
	// device such as a trackpad.
	PixelDelta
)

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

const (
	PhaseStarted Phase = iota
	PhaseMoved
	PhaseEnded
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonMiddle:
		return "Middle"
	default:
		panic("invalid Button")
	}
}

func (p Phase) String() string {
	switch p {
	case PhaseStarted:
		return "Started"
	case PhaseMoved:
		return "Moved"
	case PhaseEnded:
		return "Ended"
	default:
		panic("invalid Phase")
	}
}

func (k DeltaKind) String() string {
	switch k {
	case LineDelta:
		return "Line"
	case PixelDelta:
		return "Pixel"
	default:
		panic("invalid DeltaKind")
	}
}

func (d Delta) String() string {
	return fmt.Sprintf("%s(%g,%g)", d.Kind, d.X, d.Y)
}

func (Event) ImplementsEvent()         {}
func (MoveEvent) ImplementsEvent()     {}
func (EnterEvent) ImplementsEvent()    {}
func (LeaveEvent) ImplementsEvent()    {}
func (ScrollEvent) ImplementsEvent()   {}
func (PressureEvent) ImplementsEvent() {}
