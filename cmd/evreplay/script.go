// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/evloop/evloop/app/native"
	"github.com/evloop/evloop/f32"
)

type script struct {
	Windows []scriptWindow `json:"windows"`
	Events  []scriptEvent  `json:"events"`
}

type scriptWindow struct {
	ID      uintptr    `json:"id"`
	Scale   float32    `json:"scale"`
	Origin  [2]float32 `json:"origin"`
	Frame   [4]float32 `json:"frame"`
	Key     bool       `json:"key"`
	Foreign bool       `json:"foreign"`
}

type scriptEvent struct {
	Type       string     `json:"type"`
	Window     uintptr    `json:"window"`
	KeyCode    uint16     `json:"keyCode"`
	Characters string     `json:"characters"`
	Flags      []string   `json:"flags"`
	Location   [2]float32 `json:"location"`
	Scroll     [2]float32 `json:"scroll"`
	Precise    bool       `json:"precise"`
	Phase      string     `json:"phase"`
	Pressure   float32    `json:"pressure"`
	Stage      int64      `json:"stage"`
	Subtype    int16      `json:"subtype"`
}

var flagNames = map[string]native.Flags{
	"capslock":  native.FlagCapsLock,
	"shift":     native.FlagShift,
	"control":   native.FlagControl,
	"alternate": native.FlagAlternate,
	"command":   native.FlagCommand,
}

var phaseNames = map[string]native.Phase{
	"":           native.PhaseNone,
	"none":       native.PhaseNone,
	"began":      native.PhaseBegan,
	"stationary": native.PhaseStationary,
	"changed":    native.PhaseChanged,
	"ended":      native.PhaseEnded,
	"cancelled":  native.PhaseCancelled,
	"maybegin":   native.PhaseMayBegin,
}

func parseScript(r io.Reader) (*script, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	s := new(script)
	if err := dec.Decode(s); err != nil {
		return nil, err
	}
	for i, w := range s.Windows {
		if w.ID == 0 {
			return nil, fmt.Errorf("window %d: missing id", i)
		}
	}
	return s, nil
}

func (e *scriptEvent) native() (*native.Event, error) {
	typ, ok := native.ParseType(e.Type)
	if !ok {
		return nil, fmt.Errorf("unknown event type %q", e.Type)
	}
	var flags native.Flags
	for _, n := range e.Flags {
		f, ok := flagNames[strings.ToLower(n)]
		if !ok {
			return nil, fmt.Errorf("unknown modifier flag %q", n)
		}
		flags |= f
	}
	phase, ok := phaseNames[strings.ToLower(e.Phase)]
	if !ok {
		return nil, fmt.Errorf("unknown phase %q", e.Phase)
	}
	if typ == native.TypeApplicationDefined && e.Subtype == 0 {
		return nil, errors.New("application defined event without subtype")
	}
	return &native.Event{
		Type:       typ,
		Window:     e.Window,
		KeyCode:    e.KeyCode,
		Characters: e.Characters,
		Flags:      flags,
		Location:   f32.Pt(e.Location[0], e.Location[1]),
		Scroll:     f32.Pt(e.Scroll[0], e.Scroll[1]),
		Precise:    e.Precise,
		Phase:      phase,
		Pressure:   e.Pressure,
		Stage:      e.Stage,
		Subtype:    native.Subtype(e.Subtype),
	}, nil
}
