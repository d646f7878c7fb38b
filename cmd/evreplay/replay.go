// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"io"

	"github.com/joeycumines/logiface"

	"github.com/evloop/evloop/app"
	"github.com/evloop/evloop/app/headless"
	"github.com/evloop/evloop/f32"
	"github.com/evloop/evloop/io/event"
)

type replayOptions struct {
	scale  float32
	logger *logiface.Logger[logiface.Event]
}

// replay posts the events of s to a headless queue, polls them once
// and writes one line per delivered event to w.
func replay(s *script, w io.Writer, opts replayOptions) error {
	q := headless.NewQueue()
	l, err := app.NewEventsLoop(app.WithQueue(q), app.WithLogger(opts.logger))
	if err != nil {
		return err
	}
	for _, sw := range s.Windows {
		scale := sw.Scale
		if scale == 0 {
			scale = opts.scale
		}
		win := headless.NewWindow(headless.WindowConfig{
			Handle: sw.ID,
			Scale:  scale,
			Origin: f32.Pt(sw.Origin[0], sw.Origin[1]),
			View:   f32.Rect(sw.Frame[0], sw.Frame[1], sw.Frame[2], sw.Frame[3]),
			Key:    sw.Key,
		})
		q.AddWindow(win)
		if !sw.Foreign {
			l.AddWindow(win)
		}
	}
	for i := range s.Events {
		ev, err := s.Events[i].native()
		if err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
		if err := q.Post(ev); err != nil {
			return err
		}
	}
	var werr error
	l.PollEvents(func(e event.Event) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(w, "%T %+v\n", e, e)
	})
	return werr
}
