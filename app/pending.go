// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"sync"

	"github.com/evloop/evloop/io/event"
)

// pendingQueue holds the second and later events translated from a
// single native event. It is drained before the next native event is
// fetched.
type pendingQueue struct {
	mu     sync.Mutex
	events []event.Event
	head   int
}

func (q *pendingQueue) pushAll(evts []event.Event) {
	if len(evts) == 0 {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, evts...)
}

func (q *pendingQueue) pop() (event.Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.head == len(q.events) {
		return nil, false
	}
	e := q.events[q.head]
	q.events[q.head] = nil
	q.head++
	if q.head == len(q.events) {
		q.events = q.events[:0]
		q.head = 0
	}
	return e, true
}

func (q *pendingQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events) - q.head
}
