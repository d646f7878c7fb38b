// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/joeycumines/logiface"
	"golang.org/x/exp/slices"

	"github.com/evloop/evloop/app/native"
	"github.com/evloop/evloop/io/event"
)

// ErrNoNativeQueue is returned by NewEventsLoop when the platform has
// no native event queue and no queue was supplied with WithQueue.
var ErrNoNativeQueue = errors.New("no native event queue on this platform")

// LoopState is the activity of an EventsLoop.
type LoopState uint32

const (
	// StateIdle means no PollEvents or RunForever call is active.
	StateIdle LoopState = iota
	// StatePolling means PollEvents is draining the queue.
	StatePolling
	// StateRunning means RunForever is waiting for or delivering
	// events.
	StateRunning
	// StateInterrupted means Interrupt was called and the running
	// loop has not observed it yet.
	StateInterrupted
)

// EventsLoop reads events from the native event queue, translates
// them and delivers them to a callback.
//
// PollEvents and RunForever must be called from the thread that owns
// the native queue. They may be called again from inside the
// callback. Interrupt, AddWindow and RemoveWindow may be called from
// any goroutine.
type EventsLoop struct {
	queue   native.Queue
	log     *logiface.Logger[logiface.Event]
	ignored []native.Type

	windows  registry
	pending  pendingQueue
	mods     modifierState
	callback callbackGuard

	interrupted atomic.Bool
	state       atomic.Uint32
}

// NewEventsLoop creates a loop over the platform's native event
// queue, or over the queue given by WithQueue.
func NewEventsLoop(options ...Option) (*EventsLoop, error) {
	cnf := config{
		ignored: []native.Type{native.TypeUndocumented21},
	}
	for _, o := range options {
		o(&cnf)
	}
	if cnf.logger == nil {
		cnf.logger = defaultLogger()
	}
	if cnf.queue == nil {
		q, err := newNativeQueue()
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		cnf.queue = q
	}
	return &EventsLoop{
		queue:   cnf.queue,
		log:     cnf.logger,
		ignored: cnf.ignored,
	}, nil
}

// PollEvents delivers every pending and queued event to fn and
// returns once the native queue is empty. It never blocks waiting
// for input.
func (l *EventsLoop) PollEvents(fn func(e event.Event)) {
	defer l.enter(fn, StatePolling)()
	for {
		l.drainPending()
		ev := l.queue.NextEvent(false)
		if ev == nil {
			return
		}
		l.deliver(ev)
	}
}

// RunForever delivers events to fn, waiting for input when there is
// none, until Interrupt is called or the queue stops producing events.
// An Interrupt that happens before RunForever is called has no effect.
func (l *EventsLoop) RunForever(fn func(e event.Event)) {
	l.interrupted.Store(false)
	defer l.enter(fn, StateRunning)()
	for {
		l.drainPending()
		ev := l.queue.NextEvent(true)
		if ev == nil {
			// A blocking fetch only comes back empty from a closed queue.
			l.interrupted.Store(false)
			l.log.Debug().Log("event queue closed")
			return
		}
		l.deliver(ev)
		if l.interrupted.CompareAndSwap(true, false) {
			l.drainPending()
			return
		}
	}
}

// Interrupt makes the innermost RunForever return after it finishes
// delivering its current event. It is safe to call from any
// goroutine, any number of times.
func (l *EventsLoop) Interrupt() {
	if l.interrupted.Swap(true) {
		return
	}
	l.queue.PostWakeup()
}

// Emit delivers e to the callback of the running loop. It is meant
// for native window delegates that produce events outside the
// native queue, such as resizes. Emit panics if no loop is running
// on the calling thread.
func (l *EventsLoop) Emit(e event.Event) {
	if !l.queue.OnOwnerThread() {
		l.fatal("Emit called from a thread that does not own the event queue")
	}
	l.dispatch(e)
}

// State returns the current activity of the loop.
func (l *EventsLoop) State() LoopState {
	s := LoopState(l.state.Load())
	if s == StateRunning && l.interrupted.Load() {
		return StateInterrupted
	}
	return s
}

// AddWindow registers w as a target for mouse and scroll events.
func (l *EventsLoop) AddWindow(w native.Window) {
	l.windows.add(w)
	l.log.Debug().Stringer("window", w.ID()).Log("window added")
}

// RemoveWindow unregisters the window with the given ID. It reports
// whether the window was registered.
func (l *EventsLoop) RemoveWindow(id event.WindowID) bool {
	ok := l.windows.remove(id)
	if ok {
		l.log.Debug().Stringer("window", id).Log("window removed")
	}
	return ok
}

// Windows returns the registered windows in registration order.
func (l *EventsLoop) Windows() []native.Window {
	return l.windows.snapshot()
}

// enter installs fn for the duration of a loop call and returns the
// function that undoes it.
func (l *EventsLoop) enter(fn func(e event.Event), s LoopState) (exit func()) {
	if fn == nil {
		l.fatal("nil event callback")
	}
	if !l.queue.OnOwnerThread() {
		l.fatal("events can only be read from the thread that owns the event queue")
	}
	if !l.callback.install(fn) {
		l.fatal("event callback already installed")
	}
	prev := LoopState(l.state.Swap(uint32(s)))
	l.log.Debug().Stringer("state", s).Log("event loop entered")
	return func() {
		l.callback.uninstall()
		l.state.Store(uint32(prev))
		l.log.Debug().Stringer("state", s).Log("event loop exited")
	}
}

// deliver translates ev, releases it and hands the result to the
// callback.
func (l *EventsLoop) deliver(ev *native.Event) {
	e := l.translate(ev)
	l.queue.Release(ev)
	if e != nil {
		l.dispatch(e)
	}
}

func (l *EventsLoop) drainPending() {
	for {
		e, ok := l.pending.pop()
		if !ok {
			return
		}
		l.dispatch(e)
	}
}

func (l *EventsLoop) dispatch(e event.Event) {
	if !l.callback.invoke(e) {
		l.fatal("no event callback installed")
	}
}

func (l *EventsLoop) ignores(t native.Type) bool {
	return slices.Contains(l.ignored, t)
}

// fatal logs msg at critical level and panics.
func (l *EventsLoop) fatal(msg string) {
	l.log.Crit().Log(msg)
	panic("app: " + msg)
}

func (s LoopState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePolling:
		return "Polling"
	case StateRunning:
		return "Running"
	case StateInterrupted:
		return "Interrupted"
	default:
		return fmt.Sprintf("LoopState(%d)", uint32(s))
	}
}
