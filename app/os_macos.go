// SPDX-License-Identifier: Unlicense OR MIT

//go:build darwin && !ios

package app

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"

	"github.com/evloop/evloop/app/native"
	"github.com/evloop/evloop/f32"
	"github.com/evloop/evloop/io/event"
)

type nsPoint struct {
	X float64
	Y float64
}

type nsSize struct {
	W float64
	H float64
}

type nsRect struct {
	Origin nsPoint
	Size   nsSize
}

const nsEventMaskAny = ^uint64(0)

var (
	loadOnce sync.Once
	loadErr  error

	defaultRunLoopMode objc.ID

	selAlloc                  objc.SEL
	selInit                   objc.SEL
	selRetain                 objc.SEL
	selRelease                objc.SEL
	selDrain                  objc.SEL
	selSharedApplication      objc.SEL
	selNextEventMatchingMask  objc.SEL
	selSendEvent              objc.SEL
	selPostEvent              objc.SEL
	selOtherEventWithType     objc.SEL
	selDistantPast            objc.SEL
	selDistantFuture          objc.SEL
	selIsMainThread           objc.SEL
	selStringWithUTF8String   objc.SEL
	selUTF8String             objc.SEL
	selType                   objc.SEL
	selWindow                 objc.SEL
	selKeyCode                objc.SEL
	selCharacters             objc.SEL
	selModifierFlags          objc.SEL
	selLocationInWindow       objc.SEL
	selScrollingDeltaX        objc.SEL
	selScrollingDeltaY        objc.SEL
	selHasPreciseDeltas       objc.SEL
	selPhase                  objc.SEL
	selPressure               objc.SEL
	selStage                  objc.SEL
	selSubtype                objc.SEL
	selConvertPointToScreen   objc.SEL
	selConvertPointFromScreen objc.SEL
	selConvertPointFromView   objc.SEL
	selContentView            objc.SEL
	selFrame                  objc.SEL
	selBackingScaleFactor     objc.SEL
	selIsKeyWindow            objc.SEL
)

func init() {
	// AppKit requires that events are read on the main thread.
	runtime.LockOSThread()
}

func loadAppKit() error {
	loadOnce.Do(func() {
		if _, err := purego.Dlopen("/usr/lib/libobjc.A.dylib", purego.RTLD_GLOBAL); err != nil {
			loadErr = fmt.Errorf("loading libobjc: %w", err)
			return
		}
		if _, err := purego.Dlopen("/System/Library/Frameworks/AppKit.framework/AppKit", purego.RTLD_GLOBAL); err != nil {
			loadErr = fmt.Errorf("loading AppKit: %w", err)
			return
		}
		loadSelectors()
		defaultRunLoopMode = nsString("kCFRunLoopDefaultMode").Send(selRetain)
	})
	return loadErr
}

func loadSelectors() {
	selAlloc = objc.RegisterName("alloc")
	selInit = objc.RegisterName("init")
	selRetain = objc.RegisterName("retain")
	selRelease = objc.RegisterName("release")
	selDrain = objc.RegisterName("drain")
	selSharedApplication = objc.RegisterName("sharedApplication")
	selNextEventMatchingMask = objc.RegisterName("nextEventMatchingMask:untilDate:inMode:dequeue:")
	selSendEvent = objc.RegisterName("sendEvent:")
	selPostEvent = objc.RegisterName("postEvent:atStart:")
	selOtherEventWithType = objc.RegisterName("otherEventWithType:location:modifierFlags:timestamp:windowNumber:context:subtype:data1:data2:")
	selDistantPast = objc.RegisterName("distantPast")
	selDistantFuture = objc.RegisterName("distantFuture")
	selIsMainThread = objc.RegisterName("isMainThread")
	selStringWithUTF8String = objc.RegisterName("stringWithUTF8String:")
	selUTF8String = objc.RegisterName("UTF8String")
	selType = objc.RegisterName("type")
	selWindow = objc.RegisterName("window")
	selKeyCode = objc.RegisterName("keyCode")
	selCharacters = objc.RegisterName("characters")
	selModifierFlags = objc.RegisterName("modifierFlags")
	selLocationInWindow = objc.RegisterName("locationInWindow")
	selScrollingDeltaX = objc.RegisterName("scrollingDeltaX")
	selScrollingDeltaY = objc.RegisterName("scrollingDeltaY")
	selHasPreciseDeltas = objc.RegisterName("hasPreciseScrollingDeltas")
	selPhase = objc.RegisterName("phase")
	selPressure = objc.RegisterName("pressure")
	selStage = objc.RegisterName("stage")
	selSubtype = objc.RegisterName("subtype")
	selConvertPointToScreen = objc.RegisterName("convertPointToScreen:")
	selConvertPointFromScreen = objc.RegisterName("convertPointFromScreen:")
	selConvertPointFromView = objc.RegisterName("convertPoint:fromView:")
	selContentView = objc.RegisterName("contentView")
	selFrame = objc.RegisterName("frame")
	selBackingScaleFactor = objc.RegisterName("backingScaleFactor")
	selIsKeyWindow = objc.RegisterName("isKeyWindow")
}

// appKitQueue reads events from the shared NSApplication.
type appKitQueue struct {
	app objc.ID
}

func newNativeQueue() (native.Queue, error) {
	if err := loadAppKit(); err != nil {
		return nil, err
	}
	app := objc.ID(objc.GetClass("NSApplication")).Send(selSharedApplication)
	if app == 0 {
		return nil, errors.New("NSApplication unavailable")
	}
	return &appKitQueue{app: app}, nil
}

func (q *appKitQueue) NextEvent(wait bool) *native.Event {
	var e *native.Event
	autoreleased(func() {
		until := selDistantPast
		if wait {
			until = selDistantFuture
		}
		date := objc.ID(objc.GetClass("NSDate")).Send(until)
		ev := objc.Send[objc.ID](q.app, selNextEventMatchingMask, nsEventMaskAny, date, defaultRunLoopMode, true)
		if ev == 0 {
			return
		}
		ev.Send(selRetain)
		e = decodeEvent(ev)
	})
	return e
}

func (q *appKitQueue) Dispatch(ev *native.Event) {
	autoreleased(func() {
		q.app.Send(selSendEvent, objc.ID(ev.Ref))
	})
}

func (q *appKitQueue) Release(ev *native.Event) {
	if ev.Ref != 0 {
		objc.ID(ev.Ref).Send(selRelease)
		ev.Ref = 0
	}
}

// PostWakeup may run on any goroutine.
func (q *appKitQueue) PostWakeup() {
	autoreleased(func() {
		q.app.Send(selPostEvent, newWakeupEvent(), false)
	})
}

// newWakeupEvent returns an autoreleased application defined event
// with the activated subtype.
func newWakeupEvent() objc.ID {
	return objc.ID(objc.GetClass("NSEvent")).Send(selOtherEventWithType,
		uint64(native.TypeApplicationDefined),
		nsPoint{},
		uint64(0),
		float64(0),
		int64(0),
		objc.ID(0),
		int16(native.SubtypeApplicationActivated),
		int64(0),
		int64(0),
	)
}

func (q *appKitQueue) OnOwnerThread() bool {
	return objc.Send[bool](objc.ID(objc.GetClass("NSThread")), selIsMainThread)
}

func (q *appKitQueue) ConvertToScreen(window uintptr, p f32.Point) f32.Point {
	return fromNSPoint(objc.Send[nsPoint](objc.ID(window), selConvertPointToScreen, toNSPoint(p)))
}

// decodeEvent copies the fields of ev that are valid for its type.
// AppKit raises an exception for accessors that do not apply.
func decodeEvent(ev objc.ID) *native.Event {
	e := &native.Event{
		Type:   native.Type(objc.Send[uint64](ev, selType)),
		Window: uintptr(ev.Send(selWindow)),
		Flags:  native.Flags(objc.Send[uint64](ev, selModifierFlags)),
		Ref:    uintptr(ev),
	}
	switch e.Type {
	case native.TypeKeyDown, native.TypeKeyUp:
		e.KeyCode = objc.Send[uint16](ev, selKeyCode)
		e.Characters = goString(ev.Send(selCharacters))
	case native.TypeFlagsChanged:
		e.KeyCode = objc.Send[uint16](ev, selKeyCode)
	case native.TypeLeftMouseDown, native.TypeLeftMouseUp,
		native.TypeRightMouseDown, native.TypeRightMouseUp,
		native.TypeOtherMouseDown, native.TypeOtherMouseUp,
		native.TypeMouseMoved, native.TypeLeftMouseDragged,
		native.TypeRightMouseDragged, native.TypeOtherMouseDragged,
		native.TypeMouseEntered, native.TypeMouseExited:
		e.Location = fromNSPoint(objc.Send[nsPoint](ev, selLocationInWindow))
	case native.TypeScrollWheel:
		e.Location = fromNSPoint(objc.Send[nsPoint](ev, selLocationInWindow))
		e.Scroll = f32.Pt(
			float32(objc.Send[float64](ev, selScrollingDeltaX)),
			float32(objc.Send[float64](ev, selScrollingDeltaY)),
		)
		e.Precise = objc.Send[bool](ev, selHasPreciseDeltas)
		e.Phase = native.Phase(objc.Send[uint64](ev, selPhase))
	case native.TypePressure:
		e.Pressure = objc.Send[float32](ev, selPressure)
		e.Stage = objc.Send[int64](ev, selStage)
	case native.TypeApplicationDefined:
		e.Subtype = native.Subtype(objc.Send[int16](ev, selSubtype))
	}
	return e
}

// nsWindow is an application created NSWindow.
type nsWindow struct {
	window objc.ID
	view   objc.ID
}

// NewWindow wraps the NSWindow with the given handle for use with
// EventsLoop.AddWindow. The window and its content view must outlive
// the registration.
func NewWindow(handle uintptr) (native.Window, error) {
	if err := loadAppKit(); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	w := objc.ID(handle)
	view := w.Send(selContentView)
	if view == 0 {
		return nil, errors.New("app: window has no content view")
	}
	return &nsWindow{window: w, view: view}, nil
}

func (w *nsWindow) ID() event.WindowID {
	return event.WindowID(w.window)
}

func (w *nsWindow) ScaleFactor() float32 {
	return float32(objc.Send[float64](w.window, selBackingScaleFactor))
}

func (w *nsWindow) ViewFrame() f32.Rectangle {
	r := objc.Send[nsRect](w.view, selFrame)
	return f32.Rect(
		float32(r.Origin.X), float32(r.Origin.Y),
		float32(r.Origin.X+r.Size.W), float32(r.Origin.Y+r.Size.H),
	)
}

func (w *nsWindow) ConvertFromScreen(p f32.Point) f32.Point {
	return fromNSPoint(objc.Send[nsPoint](w.window, selConvertPointFromScreen, toNSPoint(p)))
}

func (w *nsWindow) ConvertToView(p f32.Point) f32.Point {
	return fromNSPoint(objc.Send[nsPoint](w.view, selConvertPointFromView, toNSPoint(p), objc.ID(0)))
}

func (w *nsWindow) IsKey() bool {
	return objc.Send[bool](w.window, selIsKeyWindow)
}

// autoreleased runs fn inside an autorelease pool. A pool must be
// drained on the thread that created it, so the goroutine stays on
// its thread until fn returns.
func autoreleased(fn func()) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	pool := objc.ID(objc.GetClass("NSAutoreleasePool")).Send(selAlloc).Send(selInit)
	defer pool.Send(selDrain)
	fn()
}

func nsString(s string) objc.ID {
	return objc.ID(objc.GetClass("NSString")).Send(selStringWithUTF8String, s+"\x00")
}

// goString copies the contents of an NSString.
func goString(s objc.ID) string {
	if s == 0 {
		return ""
	}
	ptr := objc.Send[unsafe.Pointer](s, selUTF8String)
	if ptr == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(ptr, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(ptr), n))
}

func toNSPoint(p f32.Point) nsPoint {
	return nsPoint{X: float64(p.X), Y: float64(p.Y)}
}

func fromNSPoint(p nsPoint) f32.Point {
	return f32.Pt(float32(p.X), float32(p.Y))
}
