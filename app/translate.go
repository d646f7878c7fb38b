// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"unicode/utf8"

	"github.com/evloop/evloop/app/native"
	"github.com/evloop/evloop/f32"
	"github.com/evloop/evloop/io/event"
	"github.com/evloop/evloop/io/key"
	"github.com/evloop/evloop/io/pointer"
	"github.com/evloop/evloop/io/system"
)

// translate converts a native event into at most one event for the
// callback. Additional events produced by the same native event are
// appended to the pending queue. A nil result means ev produced no
// events.
func (l *EventsLoop) translate(ev *native.Event) event.Event {
	if ev == nil {
		return nil
	}
	if l.ignores(ev.Type) {
		l.log.Trace().Stringer("type", ev.Type).Log("ignored native event")
		return nil
	}
	// Key down is left to the callback; forwarding it would trigger
	// the platform's text input machinery.
	if ev.Type != native.TypeKeyDown {
		l.queue.Dispatch(ev)
	}
	win := event.WindowID(ev.Window)
	switch ev.Type {
	case native.TypeKeyDown:
		return l.first(l.keyDown(win, ev))
	case native.TypeKeyUp:
		code, _ := virtualKeyCode(ev.KeyCode)
		return key.Event{
			Window:    win,
			State:     key.Release,
			ScanCode:  ev.KeyCode,
			Code:      code,
			Modifiers: l.mods.modifiers(),
		}
	case native.TypeFlagsChanged:
		return l.first(l.mods.update(win, ev.KeyCode, ev.Flags))
	case native.TypeLeftMouseDown:
		return pointer.Event{Window: win, State: key.Press, Button: pointer.ButtonLeft}
	case native.TypeLeftMouseUp:
		return pointer.Event{Window: win, State: key.Release, Button: pointer.ButtonLeft}
	case native.TypeRightMouseDown:
		return pointer.Event{Window: win, State: key.Press, Button: pointer.ButtonRight}
	case native.TypeRightMouseUp:
		return pointer.Event{Window: win, State: key.Release, Button: pointer.ButtonRight}
	case native.TypeOtherMouseDown:
		return pointer.Event{Window: win, State: key.Press, Button: pointer.ButtonMiddle}
	case native.TypeOtherMouseUp:
		return pointer.Event{Window: win, State: key.Release, Button: pointer.ButtonMiddle}
	case native.TypeMouseEntered:
		return pointer.EnterEvent{Window: win}
	case native.TypeMouseExited:
		return pointer.LeaveEvent{Window: win}
	case native.TypeMouseMoved,
		native.TypeLeftMouseDragged,
		native.TypeRightMouseDragged,
		native.TypeOtherMouseDragged:
		return l.mouseMoved(ev)
	case native.TypeScrollWheel:
		return l.scroll(ev)
	case native.TypePressure:
		return pointer.PressureEvent{Window: win, Pressure: ev.Pressure, Stage: ev.Stage}
	case native.TypeApplicationDefined:
		if ev.Subtype == native.SubtypeApplicationActivated {
			return system.WakeupEvent{Window: win}
		}
	}
	l.log.Trace().Stringer("type", ev.Type).Log("untranslated native event")
	return nil
}

// first returns the first of evts and queues the rest.
func (l *EventsLoop) first(evts []event.Event) event.Event {
	if len(evts) == 0 {
		return nil
	}
	l.pending.pushAll(evts[1:])
	return evts[0]
}

// keyDown returns a CharEvent for every character of the event text
// followed by the key press itself.
func (l *EventsLoop) keyDown(win event.WindowID, ev *native.Event) []event.Event {
	evts := make([]event.Event, 0, len(ev.Characters)+1)
	for s := ev.Characters; len(s) > 0; {
		r, n := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && n <= 1 {
			l.log.Debug().
				Stringer("window", win).
				Int("byte", int(s[0])).
				Log("skipped invalid text in key event")
		} else {
			evts = append(evts, key.CharEvent{Window: win, Rune: r})
		}
		s = s[n:]
	}
	code, _ := virtualKeyCode(ev.KeyCode)
	return append(evts, key.Event{
		Window:    win,
		State:     key.Press,
		ScanCode:  ev.KeyCode,
		Code:      code,
		Modifiers: l.mods.modifiers(),
	})
}

// mouseMoved routes a move or drag to the window it happened in, or
// else to the key window, and converts the location to pixels
// relative to the top left corner of the content view.
func (l *EventsLoop) mouseMoved(ev *native.Event) event.Event {
	w, ok := l.windows.find(event.WindowID(ev.Window))
	if !ok {
		w, ok = l.windows.keyWindow()
	}
	if !ok {
		l.log.Trace().Stringer("type", ev.Type).Log("dropped mouse move without a target window")
		return nil
	}
	p := ev.Location
	if w.ID() != event.WindowID(ev.Window) {
		if ev.Window != 0 {
			p = l.queue.ConvertToScreen(ev.Window, p)
		}
		p = w.ConvertFromScreen(p)
	}
	px := toPixels(w, w.ConvertToView(p))
	return pointer.MoveEvent{Window: w.ID(), X: px.X, Y: px.Y}
}

type pixel struct {
	X, Y int
}

// toPixels converts p in view coordinates, origin bottom left, to
// pixels with the origin in the top left corner.
func toPixels(w native.Window, p f32.Point) pixel {
	scale := w.ScaleFactor()
	h := w.ViewFrame().Dy()
	return pixel{
		X: int(scale * p.X),
		Y: int(scale * (h - p.Y)),
	}
}

func (l *EventsLoop) scroll(ev *native.Event) event.Event {
	w, ok := l.windows.find(event.WindowID(ev.Window))
	if !ok {
		l.log.Trace().Stringer("type", ev.Type).Log("dropped scroll outside a registered window")
		return nil
	}
	scale := w.ScaleFactor()
	d := pointer.Delta{
		Kind: pointer.LineDelta,
		X:    scale * ev.Scroll.X,
		Y:    scale * ev.Scroll.Y,
	}
	if ev.Precise {
		d.Kind = pointer.PixelDelta
	}
	return pointer.ScrollEvent{
		Window: w.ID(),
		Delta:  d,
		Phase:  scrollPhase(ev.Phase),
	}
}

func scrollPhase(p native.Phase) pointer.Phase {
	switch p {
	case native.PhaseMayBegin, native.PhaseBegan:
		return pointer.PhaseStarted
	case native.PhaseEnded:
		return pointer.PhaseEnded
	default:
		return pointer.PhaseMoved
	}
}
