// SPDX-License-Identifier: Unlicense OR MIT

package app_test

import (
	"bytes"
	"io"
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/joeycumines/logiface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/evloop/evloop/app"
	"github.com/evloop/evloop/app/headless"
	"github.com/evloop/evloop/app/native"
	"github.com/evloop/evloop/f32"
	"github.com/evloop/evloop/io/event"
	"github.com/evloop/evloop/io/key"
	"github.com/evloop/evloop/io/pointer"
	"github.com/evloop/evloop/io/system"
)

func newLoop(t *testing.T, q native.Queue, logs io.Writer) *app.EventsLoop {
	t.Helper()
	if logs == nil {
		logs = io.Discard
	}
	l, err := app.NewEventsLoop(
		app.WithQueue(q),
		app.WithLogger(app.NewLogger(logs, logiface.LevelTrace)),
	)
	require.NoError(t, err)
	return l
}

// collect returns a callback that appends to evts.
func collect(evts *[]event.Event) func(event.Event) {
	return func(e event.Event) {
		*evts = append(*evts, e)
	}
}

func TestPollEventsEmpty(t *testing.T) {
	q := headless.NewQueue()
	l := newLoop(t, q, nil)
	assert.Equal(t, app.StateIdle, l.State())
	var calls int
	l.PollEvents(func(event.Event) { calls++ })
	assert.Zero(t, calls)
	assert.Equal(t, app.StateIdle, l.State())

	// The loop is reusable.
	l.PollEvents(func(event.Event) { calls++ })
	assert.Zero(t, calls)
}

func TestPollEventsOrder(t *testing.T) {
	q := headless.NewQueue()
	l := newLoop(t, q, nil)
	require.NoError(t, q.Post(
		&native.Event{Type: native.TypeKeyDown, Window: 1, KeyCode: 0x00, Characters: "ab"},
		&native.Event{Type: native.TypePeriodic},
		&native.Event{Type: native.TypeMouseEntered, Window: 1},
	))
	var got []event.Event
	l.PollEvents(collect(&got))
	want := []event.Event{
		key.CharEvent{Window: 1, Rune: 'a'},
		key.CharEvent{Window: 1, Rune: 'b'},
		key.Event{Window: 1, State: key.Press, Code: key.CodeA},
		pointer.EnterEvent{Window: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, q.Released(), "every native event is released")
	assert.Zero(t, q.Len())
}

func TestPollEventsStates(t *testing.T) {
	q := headless.NewQueue()
	l := newLoop(t, q, nil)
	require.NoError(t, q.Post(&native.Event{Type: native.TypeMouseEntered}))
	var states []app.LoopState
	l.PollEvents(func(event.Event) {
		states = append(states, l.State())
	})
	assert.Equal(t, []app.LoopState{app.StatePolling}, states)
	assert.Equal(t, app.StateIdle, l.State())
}

func TestNestedPollEvents(t *testing.T) {
	q := headless.NewQueue()
	l := newLoop(t, q, nil)
	require.NoError(t, q.Post(
		&native.Event{Type: native.TypeKeyDown, Characters: "x"},
		&native.Event{Type: native.TypeMouseEntered},
	))
	var outer, inner []event.Event
	var innerStates []app.LoopState
	l.PollEvents(func(e event.Event) {
		outer = append(outer, e)
		if len(outer) > 1 {
			return
		}
		l.PollEvents(func(e event.Event) {
			inner = append(inner, e)
			innerStates = append(innerStates, l.State())
		})
		assert.Equal(t, app.StatePolling, l.State())
		require.NoError(t, q.Post(&native.Event{Type: native.TypeMouseExited}))
	})
	assert.Equal(t, []event.Event{key.CharEvent{Rune: 'x'}, pointer.LeaveEvent{}}, outer)
	assert.Equal(t, []event.Event{key.Event{State: key.Press, Code: key.CodeA}, pointer.EnterEvent{}}, inner)
	assert.Equal(t, []app.LoopState{app.StatePolling, app.StatePolling}, innerStates)
}

func TestRunForeverInterrupt(t *testing.T) {
	q := headless.NewQueue()
	l := newLoop(t, q, nil)
	var g errgroup.Group
	g.Go(func() error {
		for l.State() != app.StateRunning {
			runtime.Gosched()
		}
		l.Interrupt()
		l.Interrupt()
		return nil
	})
	var got []event.Event
	l.RunForever(collect(&got))
	require.NoError(t, g.Wait())
	assert.Equal(t, []event.Event{system.WakeupEvent{}}, got)
	assert.Equal(t, app.StateIdle, l.State())
}

func TestRunForeverInterruptFromCallback(t *testing.T) {
	q := headless.NewQueue()
	l := newLoop(t, q, nil)
	require.NoError(t, q.Post(
		&native.Event{Type: native.TypeMouseEntered},
		&native.Event{Type: native.TypeMouseExited},
	))
	var got []event.Event
	var state app.LoopState
	l.RunForever(func(e event.Event) {
		got = append(got, e)
		l.Interrupt()
		state = l.State()
	})
	assert.Equal(t, []event.Event{pointer.EnterEvent{}}, got)
	assert.Equal(t, app.StateInterrupted, state)
	assert.Equal(t, 2, q.Len(), "remaining event and wakeup stay queued")
}

func TestInterruptBeforeRunForever(t *testing.T) {
	q := headless.NewQueue()
	l := newLoop(t, q, nil)
	l.Interrupt()
	require.NoError(t, q.Post(&native.Event{Type: native.TypeMouseEntered}))
	var got []event.Event
	l.RunForever(func(e event.Event) {
		got = append(got, e)
		if _, ok := e.(pointer.EnterEvent); ok {
			l.Interrupt()
		}
	})
	assert.Equal(t, []event.Event{system.WakeupEvent{}, pointer.EnterEvent{}}, got)
}

func TestRunForeverDrainsPendingOnInterrupt(t *testing.T) {
	q := headless.NewQueue()
	l := newLoop(t, q, nil)
	l.AddWindow(headless.NewWindow(headless.WindowConfig{Handle: 1}))
	require.NoError(t, q.Post(&native.Event{Type: native.TypeKeyDown, Window: 1, KeyCode: 0x0b, Characters: "b"}))
	var got []event.Event
	l.RunForever(func(e event.Event) {
		got = append(got, e)
		l.Interrupt()
	})
	assert.Equal(t, []event.Event{
		key.CharEvent{Window: 1, Rune: 'b'},
		key.Event{Window: 1, State: key.Press, ScanCode: 0x0b, Code: key.CodeB},
	}, got)
}

func TestCloseUnblocksRunForever(t *testing.T) {
	q := &countingQueue{Queue: headless.NewQueue()}
	l := newLoop(t, q, nil)
	require.NoError(t, q.Post(&native.Event{Type: native.TypeMouseEntered}))
	var g errgroup.Group
	g.Go(func() error {
		for l.State() != app.StateRunning {
			runtime.Gosched()
		}
		q.Close()
		return nil
	})
	var got []event.Event
	l.RunForever(collect(&got))
	require.NoError(t, g.Wait())
	assert.Equal(t, []event.Event{pointer.EnterEvent{}}, got)
	assert.Equal(t, app.StateIdle, l.State())
	assert.LessOrEqual(t, q.waits.Load(), int64(3), "RunForever must not spin on a closed queue")
	assert.ErrorIs(t, q.Post(&native.Event{}), headless.ErrClosed)

	// A closed queue ends RunForever straight away.
	l.RunForever(collect(&got))
	assert.Len(t, got, 1)
}

// countingQueue counts blocking fetches.
type countingQueue struct {
	*headless.Queue
	waits atomic.Int64
}

func (q *countingQueue) NextEvent(wait bool) *native.Event {
	if wait {
		q.waits.Add(1)
	}
	return q.Queue.NextEvent(wait)
}

// delegateQueue emits an event through the loop whenever an event is
// forwarded to the platform, like a window delegate reacting to a
// resize.
type delegateQueue struct {
	*headless.Queue
	loop *app.EventsLoop
}

func (q *delegateQueue) Dispatch(ev *native.Event) {
	q.Queue.Dispatch(ev)
	q.loop.Emit(system.WakeupEvent{Window: event.WindowID(ev.Window)})
}

func TestEmit(t *testing.T) {
	q := &delegateQueue{Queue: headless.NewQueue()}
	l := newLoop(t, q, nil)
	q.loop = l
	require.NoError(t, q.Post(&native.Event{Type: native.TypeMouseEntered, Window: 9}))
	var got []event.Event
	l.PollEvents(collect(&got))
	assert.Equal(t, []event.Event{
		system.WakeupEvent{Window: 9},
		pointer.EnterEvent{Window: 9},
	}, got)
}

func TestEmitOutsideLoop(t *testing.T) {
	var logs bytes.Buffer
	l := newLoop(t, headless.NewQueue(), &logs)
	assert.Panics(t, func() {
		l.Emit(system.WakeupEvent{})
	})
	assert.Contains(t, logs.String(), "no event callback installed")
}

func TestEmitFromCallback(t *testing.T) {
	q := headless.NewQueue()
	l := newLoop(t, q, nil)
	require.NoError(t, q.Post(&native.Event{Type: native.TypeMouseEntered}))
	assert.Panics(t, func() {
		l.PollEvents(func(e event.Event) {
			l.Emit(e)
		})
	})
	// The callback was removed on the way out.
	var calls int
	require.NoError(t, q.Post(&native.Event{Type: native.TypeMouseEntered}))
	l.PollEvents(func(event.Event) { calls++ })
	assert.Equal(t, 1, calls)
}

func TestNilCallback(t *testing.T) {
	l := newLoop(t, headless.NewQueue(), nil)
	assert.Panics(t, func() {
		l.PollEvents(nil)
	})
}

// foreignQueue is owned by some other thread.
type foreignQueue struct {
	*headless.Queue
}

func (foreignQueue) OnOwnerThread() bool { return false }

func TestForeignThread(t *testing.T) {
	var logs bytes.Buffer
	l := newLoop(t, foreignQueue{headless.NewQueue()}, &logs)
	assert.Panics(t, func() {
		l.PollEvents(func(event.Event) {})
	})
	assert.Panics(t, func() {
		l.RunForever(func(event.Event) {})
	})
	assert.Contains(t, logs.String(), "thread that owns the event queue")
	assert.Equal(t, app.StateIdle, l.State())
}

func TestLockOwner(t *testing.T) {
	switch runtime.GOOS {
	case "linux", "windows":
	default:
		t.Skipf("no thread ids on %s", runtime.GOOS)
	}
	q := headless.NewQueue()
	l := newLoop(t, q, nil)
	polled := make(chan struct{})
	release := make(chan struct{})
	go func() {
		defer runtime.UnlockOSThread()
		q.LockOwner()
		l.PollEvents(func(event.Event) {})
		close(polled)
		<-release
	}()
	<-polled
	defer close(release)
	panicked := make(chan bool)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		defer func() {
			panicked <- recover() != nil
		}()
		l.PollEvents(func(event.Event) {})
	}()
	assert.True(t, <-panicked, "polling from a non-owner thread")
}

func TestConcurrentAddWindow(t *testing.T) {
	q := headless.NewQueue()
	l := newLoop(t, q, nil)
	const n = 16
	target := headless.NewWindow(headless.WindowConfig{Handle: 1000, View: f32.Rect(0, 0, 10, 10), Key: true})
	l.AddWindow(target)
	for i := 0; i < 100; i++ {
		require.NoError(t, q.Post(&native.Event{Type: native.TypeMouseMoved, Location: f32.Pt(1, 1)}))
	}

	var g errgroup.Group
	for i := 1; i <= n; i++ {
		h := uintptr(i)
		g.Go(func() error {
			l.AddWindow(headless.NewWindow(headless.WindowConfig{Handle: h}))
			return nil
		})
	}
	var moves int
	l.PollEvents(func(e event.Event) {
		if m, ok := e.(pointer.MoveEvent); ok && m.Window == target.ID() {
			moves++
		}
	})
	require.NoError(t, g.Wait())
	assert.Equal(t, 100, moves)
	assert.Len(t, l.Windows(), n+1)
}

func TestRemoveWindow(t *testing.T) {
	q := headless.NewQueue()
	l := newLoop(t, q, nil)
	w := headless.NewWindow(headless.WindowConfig{Handle: 3, Key: true})
	l.AddWindow(w)
	assert.True(t, l.RemoveWindow(w.ID()))
	assert.False(t, l.RemoveWindow(w.ID()))
	assert.Empty(t, l.Windows())

	require.NoError(t, q.Post(&native.Event{Type: native.TypeScrollWheel, Window: 3}))
	var got []event.Event
	l.PollEvents(collect(&got))
	assert.Empty(t, got, "events for removed windows are dropped")
}

func TestNewEventsLoopWithoutQueue(t *testing.T) {
	if runtime.GOOS == "darwin" {
		t.Skip("darwin has a native queue")
	}
	_, err := app.NewEventsLoop(app.WithLogger(app.NewLogger(io.Discard, logiface.LevelDisabled)))
	require.ErrorIs(t, err, app.ErrNoNativeQueue)
}
