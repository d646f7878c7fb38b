// SPDX-License-Identifier: Unlicense OR MIT

// Package key implements key and text events.
package key

import (
	"strings"

	"github.com/evloop/evloop/io/event"
)

// An Event is generated when a key is pressed or released. For text
// input use CharEvent.
type Event struct {
	Window event.WindowID
	// State is the state of the key when the event was fired.
	State State
	// ScanCode is the raw virtual key code reported by the platform,
	// unchanged.
	ScanCode uint16
	// Code is the symbolic key, or CodeNone if the scan code is not
	// mapped. Applications can fall back to ScanCode in that case.
	Code Code
	// Modifiers is the set of active modifiers when the event was
	// translated.
	Modifiers Modifiers
}

// A CharEvent is generated for every character of text received
// by a key press, in arrival order.
type CharEvent struct {
	Window event.WindowID
	Rune   rune
}

// State is the state of a key or button during an event.
type State uint8

const (
	// Press is the state of a pressed key.
	Press State = iota
	// Release is the state of a key that has been released.
	Release
)

// Modifiers
type Modifiers uint32

const (
	// ModCtrl is the ctrl modifier key.
	ModCtrl Modifiers = 1 << iota
	// ModCommand is the command modifier key
	// found on Apple keyboards.
	ModCommand
	// ModShift is the shift modifier key.
	ModShift
	// ModAlt is the alt modifier key, or the option
	// key on Apple keyboards.
	ModAlt
)

// Contain reports whether m contains all modifiers
// in m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

func (m Modifiers) String() string {
	var strs []string
	if m.Contain(ModCtrl) {
		strs = append(strs, "Ctrl")
	}
	if m.Contain(ModCommand) {
		strs = append(strs, "⌘")
	}
	if m.Contain(ModShift) {
		strs = append(strs, "Shift")
	}
	if m.Contain(ModAlt) {
		strs = append(strs, "Alt")
	}
	return strings.Join(strs, "-")
}

func (s State) String() string {
	switch s {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		panic("invalid State")
	}
}

func (Event) ImplementsEvent()     {}
func (CharEvent) ImplementsEvent() {}
