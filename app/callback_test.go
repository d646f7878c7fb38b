// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evloop/evloop/io/event"
	"github.com/evloop/evloop/io/system"
)

func TestCallbackGuard(t *testing.T) {
	var g callbackGuard
	assert.False(t, g.invoke(system.WakeupEvent{}), "empty guard")

	var got []event.Event
	require.True(t, g.install(func(e event.Event) {
		got = append(got, e)
	}))
	assert.False(t, g.install(func(event.Event) {}), "occupied guard")

	assert.True(t, g.invoke(system.WakeupEvent{Window: 1}))
	assert.True(t, g.invoke(system.WakeupEvent{Window: 2}))
	assert.Equal(t, []event.Event{system.WakeupEvent{Window: 1}, system.WakeupEvent{Window: 2}}, got)

	g.uninstall()
	assert.False(t, g.installed())
	g.uninstall()
}

func TestCallbackGuardReentry(t *testing.T) {
	var g callbackGuard
	var inner int
	g.install(func(event.Event) {
		assert.False(t, g.installed(), "slot must be empty during the call")
		require.True(t, g.install(func(event.Event) { inner++ }))
		g.invoke(system.WakeupEvent{})
		g.uninstall()
	})
	require.True(t, g.invoke(system.WakeupEvent{}))
	assert.Equal(t, 1, inner)
	assert.True(t, g.installed(), "outer callback restored")
}

func TestCallbackGuardRestoresAfterPanic(t *testing.T) {
	var g callbackGuard
	g.install(func(event.Event) { panic("boom") })
	assert.PanicsWithValue(t, "boom", func() {
		g.invoke(system.WakeupEvent{})
	})
	assert.True(t, g.installed())
}
