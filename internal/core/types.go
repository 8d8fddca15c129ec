// Package core is the input dispatch hot path: the keyboard modal filter,
// pointer motion/button/axis/gesture handling, the pure hit-test function,
// and the action dispatcher that executes an intercepted binding against
// the shell. Every entry point is driven one event at a time by the event
// loop (internal/evloop) — nothing in this package starts its own
// goroutine.
package core

import (
	"github.com/tidewm/tide/internal/keysym"
	"github.com/tidewm/tide/internal/seat"
	"github.com/tidewm/tide/internal/shell"
)

// EventKind discriminates the backend-agnostic input events ProcessInputEvent
// accepts.
type EventKind int

const (
	EventDeviceAdded EventKind = iota
	EventDeviceRemoved
	EventKeyboard
	EventPointerMotion
	EventPointerMotionAbsolute
	EventPointerButton
	EventPointerAxis
	EventGestureSwipeBegin
	EventGestureSwipeUpdate
	EventGestureSwipeEnd
	EventGesturePinchBegin
	EventGesturePinchUpdate
	EventGesturePinchEnd
	EventGestureHoldBegin
	EventGestureHoldEnd
)

// AxisSource mirrors the wl_pointer.axis_source values relevant to scroll
// factor application and the finger-stop heuristic.
type AxisSource int

const (
	AxisSourceWheel AxisSource = iota
	AxisSourceFinger
	AxisSourceContinuous
	AxisSourceWheelTilt
)

// Event is every backend-produced input occurrence, translated into one
// shape so ProcessInputEvent can route on Kind without a type switch over
// backend-specific structs. Only the fields relevant to Kind are populated.
type Event struct {
	Kind     EventKind
	Time     uint32
	DeviceID string

	// DeviceAdded
	Capabilities []seat.Capability

	// Keyboard
	KeyCode  uint16
	KeyState keysym.KeyState

	// PointerMotion (relative)
	DX, DY float64

	// PointerMotionAbsolute — unit square [0,1]x[0,1], device-relative
	UX, UY float64

	// PointerButton
	Button      uint32
	ButtonState keysym.KeyState

	// PointerAxis
	AxisHorizontal, AxisVertical         float64
	AxisDiscreteH, AxisDiscreteV         float64
	AxisSource                           AxisSource

	// Gestures
	GestureFingers   int32
	GestureDX        float64
	GestureDY        float64
	GestureScale     float64
	GestureRotation  float64
	GestureCancelled bool
}

// AxisFrame is the single per-axis-event payload sent to a client, mirroring
// wl_pointer's distinction between continuous value and discrete steps, and
// whether the axis stopped (finger lifted).
type AxisFrame struct {
	Horizontal, Vertical               float64
	DiscreteH, DiscreteV               int32
	StopHorizontal, StopVertical       bool
	HasDiscrete                        bool
}

// ClientSink receives every effect the core produces on behalf of the
// (unimplemented, out of scope) Wayland server: keyboard/pointer protocol
// events and keyboard focus changes. Screencopy notifications go to the
// shell's screencopy sessions instead. Tests substitute a recording
// implementation; a real server wires this to its client protocol state.
type ClientSink interface {
	KeyboardKey(seatName string, code uint16, state keysym.KeyState, time uint32)
	PointerRelativeMotion(seatName string, dx, dy float64, time uint32)
	PointerMotion(seatName string, x, y float64, time uint32)
	PointerButton(seatName string, button uint32, state keysym.KeyState, time uint32)
	PointerAxis(seatName string, frame AxisFrame, time uint32)
	PointerFrame(seatName string)
	GestureSwipeBegin(seatName string, fingers int32, time uint32)
	GestureSwipeUpdate(seatName string, dx, dy float64, time uint32)
	GestureSwipeEnd(seatName string, cancelled bool, time uint32)
	GesturePinchBegin(seatName string, fingers int32, time uint32)
	GesturePinchUpdate(seatName string, dx, dy, scale, rotation float64, time uint32)
	GesturePinchEnd(seatName string, cancelled bool, time uint32)
	GestureHoldBegin(seatName string, fingers int32, time uint32)
	GestureHoldEnd(seatName string, cancelled bool, time uint32)
	SetKeyboardFocus(seatName string, target shell.FocusTarget)
}

// Binding pairs a configured chord with the action it runs. Order matters:
// the first matching pattern wins, mirroring a map keyed by pattern in the
// original but kept as a slice here so config load order is preserved for
// diagnostics.
type Binding struct {
	Pattern keysym.KeyPattern
	Action  shell.Action
}
