// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"io"
	"os"
	"strings"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// LevelEnv names the environment variable that sets the level of the
// default logger.
const LevelEnv = "EVLOOP_LOG_LEVEL"

// NewLogger returns a JSON logger writing to w at the given level.
func NewLogger(w io.Writer, level logiface.Level) *logiface.Logger[logiface.Event] {
	return stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(w)),
		stumpy.L.WithLevel(level),
	).Logger()
}

// ParseLevel parses a level name as accepted by LevelEnv: trace,
// debug, info, warning, error or off.
func ParseLevel(s string) (logiface.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return logiface.LevelTrace, true
	case "debug":
		return logiface.LevelDebug, true
	case "info":
		return logiface.LevelInformational, true
	case "warning", "warn":
		return logiface.LevelWarning, true
	case "error", "err":
		return logiface.LevelError, true
	case "off", "disabled":
		return logiface.LevelDisabled, true
	}
	return 0, false
}

func defaultLogger() *logiface.Logger[logiface.Event] {
	level := logiface.LevelWarning
	if s, ok := os.LookupEnv(LevelEnv); ok {
		if l, ok := ParseLevel(s); ok {
			level = l
		}
	}
	return NewLogger(os.Stderr, level)
}
