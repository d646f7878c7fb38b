// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app reads events from the operating system's event queue and
delivers them to a Go callback.

It does not create windows or draw. Windows are created by the program or
another library and registered with AddWindow so that mouse and scroll
events can be routed to them.

# Events

An EventsLoop translates native events into the types of the packages under
io: key.Event and key.CharEvent for keyboard input, the pointer events for
the mouse and trackpad, and system.WakeupEvent when the loop is woken by
Interrupt. A single native event may produce several events; they are
delivered in order before the next native event is read.

For example:

	l, err := app.NewEventsLoop()
	if err != nil {
		log.Fatal(err)
	}
	l.AddWindow(w)
	l.RunForever(func(e event.Event) {
		switch e := e.(type) {
		case key.CharEvent:
			fmt.Printf("%c", e.Rune)
		case key.Event:
			if e.Code == key.CodeEscape {
				l.Interrupt()
			}
		}
	})

PollEvents delivers what is already queued and returns. RunForever waits for
input until Interrupt is called from the callback or any other goroutine.

# Main Thread

Native event queues belong to one thread, on macOS the main thread. This
package locks the main goroutine to the main thread on macOS, so the loop
must be driven from the main goroutine. Calling PollEvents or RunForever from
another thread panics.

# Other platforms

Only macOS has a native backend. Elsewhere, pass a queue with WithQueue,
such as the in-memory queue of package headless.

# Logging

The loop logs through github.com/joeycumines/logiface. The default logger
writes JSON to standard error at the warning level; set EVLOOP_LOG_LEVEL or
use WithLogger to change it.
*/
package app
