// SPDX-License-Identifier: Unlicense OR MIT

//go:build darwin && !ios

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/evloop/evloop/app/native"
)

func newAppKitQueue(t *testing.T) *appKitQueue {
	t.Helper()
	q, err := newNativeQueue()
	if err != nil {
		t.Skipf("AppKit unavailable: %v", err)
	}
	return q.(*appKitQueue)
}

func TestWakeupEventDecodes(t *testing.T) {
	newAppKitQueue(t)
	var e *native.Event
	autoreleased(func() {
		e = decodeEvent(newWakeupEvent())
	})
	require.NotNil(t, e)
	assert.Equal(t, native.TypeApplicationDefined, e.Type)
	assert.Equal(t, native.SubtypeApplicationActivated, e.Subtype)
	assert.Zero(t, e.Window)
}

func TestAutoreleasedNests(t *testing.T) {
	newAppKitQueue(t)
	var calls int
	autoreleased(func() {
		calls++
		autoreleased(func() {
			calls++
			nsString("inner")
		})
		nsString("outer")
	})
	assert.Equal(t, 2, calls)
}

func TestPostWakeupFromGoroutines(t *testing.T) {
	q := newAppKitQueue(t)
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 10; j++ {
				q.PostWakeup()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
