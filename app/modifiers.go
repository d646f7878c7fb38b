// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"sync"

	"github.com/evloop/evloop/app/native"
	"github.com/evloop/evloop/io/event"
	"github.com/evloop/evloop/io/key"
)

// modifierKey describes one tracked modifier. The order of
// modifierKeys is the order transitions are reported in.
type modifierKey struct {
	flag native.Flags
	code key.Code
	mod  key.Modifiers
}

var modifierKeys = [...]modifierKey{
	{flag: native.FlagShift, code: key.CodeLShift, mod: key.ModShift},
	{flag: native.FlagControl, code: key.CodeLControl, mod: key.ModCtrl},
	{flag: native.FlagCommand, code: key.CodeLWin, mod: key.ModCommand},
	{flag: native.FlagAlternate, code: key.CodeLAlt, mod: key.ModAlt},
}

// modifierState turns the level triggered modifier flags of native
// events into press and release edges.
type modifierState struct {
	mu      sync.Mutex
	pressed [len(modifierKeys)]bool
}

// modifierEdge compares the native flag level against the tracked
// state of one modifier.
func modifierEdge(flags, mask native.Flags, pressed bool) (key.State, bool) {
	down := flags&mask != 0
	switch {
	case down && !pressed:
		return key.Press, true
	case !down && pressed:
		return key.Release, true
	}
	return 0, false
}

// update records flags and returns one key event per modifier that
// changed, in modifierKeys order.
func (m *modifierState) update(win event.WindowID, scanCode uint16, flags native.Flags) []event.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	var evts []event.Event
	for i, k := range modifierKeys {
		st, ok := modifierEdge(flags, k.flag, m.pressed[i])
		if !ok {
			continue
		}
		m.pressed[i] = !m.pressed[i]
		evts = append(evts, key.Event{
			Window:    win,
			State:     st,
			ScanCode:  scanCode,
			Code:      k.code,
			Modifiers: m.modifiersLocked(),
		})
	}
	return evts
}

// modifiers returns the currently pressed modifiers.
func (m *modifierState) modifiers() key.Modifiers {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.modifiersLocked()
}

func (m *modifierState) modifiersLocked() key.Modifiers {
	var mods key.Modifiers
	for i, k := range modifierKeys {
		if m.pressed[i] {
			mods |= k.mod
		}
	}
	return mods
}
