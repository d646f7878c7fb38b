// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"github.com/joeycumines/logiface"

	"github.com/evloop/evloop/app/native"
)

// Option configures an EventsLoop.
type Option func(cnf *config)

type config struct {
	queue   native.Queue
	logger  *logiface.Logger[logiface.Event]
	ignored []native.Type
}

// WithQueue makes the loop read events from q instead of the
// platform's native event queue.
func WithQueue(q native.Queue) Option {
	return func(cnf *config) {
		cnf.queue = q
	}
}

// WithLogger replaces the default logger.
func WithLogger(l *logiface.Logger[logiface.Event]) Option {
	return func(cnf *config) {
		cnf.logger = l
	}
}

// IgnoreTypes replaces the set of native event types the loop drops
// before any processing. By default only native.TypeUndocumented21
// is dropped.
func IgnoreTypes(types ...native.Type) Option {
	return func(cnf *config) {
		cnf.ignored = append([]native.Type(nil), types...)
	}
}
