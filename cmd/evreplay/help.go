// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The evreplay command feeds recorded native events through an event loop
and prints the events delivered to the application.

Usage:

	evreplay [flags] <script.json>

The script is a JSON object with two lists. "windows" describes the windows
the events refer to:

	{"id": 1, "scale": 2, "origin": [0, 0], "frame": [0, 0, 800, 600], "key": true}

The frame is the content view in window coordinates, as x0, y0, x1, y1 with
the origin in the bottom left corner. Windows with "foreign": true are known to
the native queue for coordinate conversion but are not registered with the
event loop.

"events" lists native events in delivery order:

	{"type": "KeyDown", "window": 1, "keyCode": 0, "characters": "a"}
	{"type": "FlagsChanged", "keyCode": 56, "flags": ["shift"]}
	{"type": "ScrollWheel", "window": 1, "scroll": [0, 2], "precise": true, "phase": "began"}

Type names are those of the AppKit event types without the NSEventType
prefix.

The -scale flag sets the scale factor of windows that do not specify one.

The -log-level flag sets the level of the JSON log written to standard error:
trace, debug, info, warning, error or off.
`
