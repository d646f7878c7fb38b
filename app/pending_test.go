// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evloop/evloop/io/event"
	"github.com/evloop/evloop/io/key"
)

func TestPendingFIFO(t *testing.T) {
	var q pendingQueue
	_, ok := q.pop()
	assert.False(t, ok)

	q.pushAll([]event.Event{key.CharEvent{Rune: 'a'}, key.CharEvent{Rune: 'b'}})
	q.pushAll(nil)
	q.pushAll([]event.Event{key.CharEvent{Rune: 'c'}})
	require.Equal(t, 3, q.len())

	for _, want := range "abc" {
		e, ok := q.pop()
		require.True(t, ok)
		assert.Equal(t, key.CharEvent{Rune: want}, e)
	}
	assert.Zero(t, q.len())
	_, ok = q.pop()
	assert.False(t, ok)
}

func TestPendingInterleaved(t *testing.T) {
	var q pendingQueue
	q.pushAll([]event.Event{key.CharEvent{Rune: '1'}})
	e, _ := q.pop()
	assert.Equal(t, key.CharEvent{Rune: '1'}, e)
	q.pushAll([]event.Event{key.CharEvent{Rune: '2'}, key.CharEvent{Rune: '3'}})
	e, _ = q.pop()
	assert.Equal(t, key.CharEvent{Rune: '2'}, e)
	q.pushAll([]event.Event{key.CharEvent{Rune: '4'}})
	assert.Equal(t, 2, q.len())
	e, _ = q.pop()
	assert.Equal(t, key.CharEvent{Rune: '3'}, e)
	e, _ = q.pop()
	assert.Equal(t, key.CharEvent{Rune: '4'}, e)
}
