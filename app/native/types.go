// SPDX-License-Identifier: Unlicense OR MIT

package native

import "strconv"

// Type is the kind of a native event.
type Type uint32

const (
	TypeLeftMouseDown      Type = 1
	TypeLeftMouseUp        Type = 2
	TypeRightMouseDown     Type = 3
	TypeRightMouseUp       Type = 4
	TypeMouseMoved         Type = 5
	TypeLeftMouseDragged   Type = 6
	TypeRightMouseDragged  Type = 7
	TypeMouseEntered       Type = 8
	TypeMouseExited        Type = 9
	TypeKeyDown            Type = 10
	TypeKeyUp              Type = 11
	TypeFlagsChanged       Type = 12
	TypeAppKitDefined      Type = 13
	TypeSystemDefined      Type = 14
	TypeApplicationDefined Type = 15
	TypePeriodic           Type = 16
	TypeCursorUpdate       Type = 17
	TypeRotate             Type = 18
	TypeBeginGesture       Type = 19
	TypeEndGesture         Type = 20
	// TypeUndocumented21 is not part of the documented enumeration.
	// It has been observed while Spotlight is opened over a focused
	// application. Its meaning is unknown.
	TypeUndocumented21    Type = 21
	TypeScrollWheel       Type = 22
	TypeTabletPoint       Type = 23
	TypeTabletProximity   Type = 24
	TypeOtherMouseDown    Type = 25
	TypeOtherMouseUp      Type = 26
	TypeOtherMouseDragged Type = 27
	TypeGesture           Type = 29
	TypeMagnify           Type = 30
	TypeSwipe             Type = 31
	TypeSmartMagnify      Type = 32
	TypeQuickLook         Type = 33
	TypePressure          Type = 34
)

// Flags is the modifier key state of an event. Only the device
// independent bits are named.
type Flags uint64

const (
	FlagCapsLock  Flags = 1 << 16
	FlagShift     Flags = 1 << 17
	FlagControl   Flags = 1 << 18
	FlagAlternate Flags = 1 << 19
	FlagCommand   Flags = 1 << 20
)

// Phase is the gesture phase of a scroll event. A zero Phase means
// the device reports no phase, as for notched wheels.
type Phase uint32

const (
	PhaseNone       Phase = 0
	PhaseBegan      Phase = 1 << 0
	PhaseStationary Phase = 1 << 1
	PhaseChanged    Phase = 1 << 2
	PhaseEnded      Phase = 1 << 3
	PhaseCancelled  Phase = 1 << 4
	PhaseMayBegin   Phase = 1 << 5
)

// Subtype refines TypeApplicationDefined and friends.
type Subtype int16

// SubtypeApplicationActivated marks the synthetic event posted by
// Queue.PostWakeup.
const SubtypeApplicationActivated Subtype = 1

var typeNames = map[Type]string{
	TypeLeftMouseDown:      "LeftMouseDown",
	TypeLeftMouseUp:        "LeftMouseUp",
	TypeRightMouseDown:     "RightMouseDown",
	TypeRightMouseUp:       "RightMouseUp",
	TypeMouseMoved:         "MouseMoved",
	TypeLeftMouseDragged:   "LeftMouseDragged",
	TypeRightMouseDragged:  "RightMouseDragged",
	TypeMouseEntered:       "MouseEntered",
	TypeMouseExited:        "MouseExited",
	TypeKeyDown:            "KeyDown",
	TypeKeyUp:              "KeyUp",
	TypeFlagsChanged:       "FlagsChanged",
	TypeAppKitDefined:      "AppKitDefined",
	TypeSystemDefined:      "SystemDefined",
	TypeApplicationDefined: "ApplicationDefined",
	TypePeriodic:           "Periodic",
	TypeCursorUpdate:       "CursorUpdate",
	TypeRotate:             "Rotate",
	TypeBeginGesture:       "BeginGesture",
	TypeEndGesture:         "EndGesture",
	TypeUndocumented21:     "Undocumented21",
	TypeScrollWheel:        "ScrollWheel",
	TypeTabletPoint:        "TabletPoint",
	TypeTabletProximity:    "TabletProximity",
	TypeOtherMouseDown:     "OtherMouseDown",
	TypeOtherMouseUp:       "OtherMouseUp",
	TypeOtherMouseDragged:  "OtherMouseDragged",
	TypeGesture:            "Gesture",
	TypeMagnify:            "Magnify",
	TypeSwipe:              "Swipe",
	TypeSmartMagnify:       "SmartMagnify",
	TypeQuickLook:          "QuickLook",
	TypePressure:           "Pressure",
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "Type(" + strconv.FormatUint(uint64(t), 10) + ")"
}

// ParseType returns the Type with the given name, as returned by
// Type.String.
func ParseType(name string) (Type, bool) {
	for t, n := range typeNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}
