// SPDX-License-Identifier: Unlicense OR MIT

// Package headless implements an in-memory native event queue and
// windows. It lets an EventsLoop run without a window system, for
// tests and for replaying recorded events.
package headless

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/evloop/evloop/app/native"
	"github.com/evloop/evloop/f32"
)

// ErrClosed is returned by Post after Close.
var ErrClosed = errors.New("headless: queue closed")

// Queue is a native.Queue fed by Post. The zero value is not usable;
// use NewQueue.
type Queue struct {
	mu         sync.Mutex
	events     []*native.Event
	closed     bool
	windows    map[uintptr]*Window
	dispatched []*native.Event
	released   int

	// signal has room for one token, so a Post between a failed
	// check and the wait is not lost.
	signal chan struct{}
	done   chan struct{}

	owner atomic.Int64
}

var _ native.Queue = (*Queue)(nil)

func NewQueue() *Queue {
	return &Queue{
		windows: make(map[uintptr]*Window),
		signal:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

// Post appends events to the queue. It is safe to call from any
// goroutine.
func (q *Queue) Post(evts ...*native.Event) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	q.events = append(q.events, evts...)
	q.mu.Unlock()
	select {
	case q.signal <- struct{}{}:
	default:
	}
	return nil
}

// Close wakes up any waiting NextEvent. Events already queued are
// still returned; after that NextEvent returns nil even when asked to
// wait, which ends a running EventsLoop.RunForever.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	close(q.done)
}

func (q *Queue) NextEvent(wait bool) *native.Event {
	for {
		q.mu.Lock()
		if len(q.events) > 0 {
			ev := q.events[0]
			q.events[0] = nil
			q.events = q.events[1:]
			q.mu.Unlock()
			return ev
		}
		closed := q.closed
		q.mu.Unlock()
		if !wait || closed {
			return nil
		}
		select {
		case <-q.signal:
		case <-q.done:
		}
	}
}

// Dispatch records ev. See Dispatched.
func (q *Queue) Dispatch(ev *native.Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.dispatched = append(q.dispatched, ev)
}

// Dispatched returns the events passed to Dispatch, oldest first.
func (q *Queue) Dispatched() []*native.Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]*native.Event(nil), q.dispatched...)
}

func (q *Queue) Release(ev *native.Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.released++
}

// Released returns the number of Release calls.
func (q *Queue) Released() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.released
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// PostWakeup posts an application defined event. It is dropped if
// the queue is closed.
func (q *Queue) PostWakeup() {
	q.Post(&native.Event{
		Type:    native.TypeApplicationDefined,
		Subtype: native.SubtypeApplicationActivated,
	})
}

// LockOwner locks the calling goroutine to its OS thread and makes
// that thread the owner of q. Until LockOwner is called every thread
// owns the queue. On platforms without thread ids LockOwner only
// locks the goroutine.
func (q *Queue) LockOwner() {
	runtime.LockOSThread()
	q.owner.Store(threadID())
}

func (q *Queue) OnOwnerThread() bool {
	owner := q.owner.Load()
	return owner == 0 || owner == threadID()
}

// AddWindow makes w known to ConvertToScreen.
func (q *Queue) AddWindow(w *Window) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.windows[w.handle] = w
}

// ConvertToScreen converts p from the coordinates of the window with
// the given handle. Points of unknown windows are returned
// unchanged.
func (q *Queue) ConvertToScreen(window uintptr, p f32.Point) f32.Point {
	q.mu.Lock()
	w, ok := q.windows[window]
	q.mu.Unlock()
	if !ok {
		return p
	}
	return w.ConvertToScreen(p)
}
