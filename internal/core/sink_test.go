package core

import (
	"github.com/tidewm/tide/internal/keysym"
	"github.com/tidewm/tide/internal/shell"
)

// recordingSink is a ClientSink that just appends every call's name, for
// assertions on call order and forwarded/absorbed behavior.
type recordingSink struct {
	calls    []string
	focus    shell.FocusTarget
	lastAxis AxisFrame
}

func (r *recordingSink) KeyboardKey(seatName string, code uint16, state keysym.KeyState, time uint32) {
	r.calls = append(r.calls, "key")
}
func (r *recordingSink) PointerRelativeMotion(seatName string, dx, dy float64, time uint32) {
	r.calls = append(r.calls, "relative-motion")
}
func (r *recordingSink) PointerMotion(seatName string, x, y float64, time uint32) {
	r.calls = append(r.calls, "motion")
}
func (r *recordingSink) PointerButton(seatName string, button uint32, state keysym.KeyState, time uint32) {
	r.calls = append(r.calls, "button")
}
func (r *recordingSink) PointerAxis(seatName string, frame AxisFrame, time uint32) {
	r.calls = append(r.calls, "axis")
	r.lastAxis = frame
}
func (r *recordingSink) PointerFrame(seatName string) { r.calls = append(r.calls, "frame") }
func (r *recordingSink) GestureSwipeBegin(seatName string, fingers int32, time uint32) {
	r.calls = append(r.calls, "swipe-begin")
}
func (r *recordingSink) GestureSwipeUpdate(seatName string, dx, dy float64, time uint32) {
	r.calls = append(r.calls, "swipe-update")
}
func (r *recordingSink) GestureSwipeEnd(seatName string, cancelled bool, time uint32) {
	r.calls = append(r.calls, "swipe-end")
}
func (r *recordingSink) GesturePinchBegin(seatName string, fingers int32, time uint32) {
	r.calls = append(r.calls, "pinch-begin")
}
func (r *recordingSink) GesturePinchUpdate(seatName string, dx, dy, scale, rotation float64, time uint32) {
	r.calls = append(r.calls, "pinch-update")
}
func (r *recordingSink) GesturePinchEnd(seatName string, cancelled bool, time uint32) {
	r.calls = append(r.calls, "pinch-end")
}
func (r *recordingSink) GestureHoldBegin(seatName string, fingers int32, time uint32) {
	r.calls = append(r.calls, "hold-begin")
}
func (r *recordingSink) GestureHoldEnd(seatName string, cancelled bool, time uint32) {
	r.calls = append(r.calls, "hold-end")
}
func (r *recordingSink) SetKeyboardFocus(seatName string, target shell.FocusTarget) {
	r.calls = append(r.calls, "focus")
	r.focus = target
}

type fakeVT struct {
	switched []int
}

func (f *fakeVT) SwitchTo(vt int) error {
	f.switched = append(f.switched, vt)
	return nil
}

type fakeSpawner struct {
	commands []string
}

func (f *fakeSpawner) Spawn(command string) error {
	f.commands = append(f.commands, command)
	return nil
}
