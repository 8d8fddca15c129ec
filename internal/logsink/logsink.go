// Package logsink is a ClientSink that logs every effect instead of
// forwarding it to a Wayland client protocol implementation. Wiring a real
// client state tracker (wl_seat/wl_pointer/wl_keyboard protocol objects) is
// out of scope here; this sink lets the dispatch core run and be observed
// end to end without one.
package logsink

import (
	"github.com/tidewm/tide/internal/core"
	"github.com/tidewm/tide/internal/keysym"
	"github.com/tidewm/tide/internal/shell"
)

// Sink logs every ClientSink call at debug level, keyed by seat name.
type Sink struct {
	log func(format string, args ...interface{})
}

// New builds a Sink that logs through logf (typically logger.Debugf).
func New(logf func(format string, args ...interface{})) *Sink {
	return &Sink{log: logf}
}

func (s *Sink) KeyboardKey(seatName string, code uint16, state keysym.KeyState, time uint32) {
	s.log("sink[%s]: keyboard key=%d state=%v time=%d", seatName, code, state, time)
}

func (s *Sink) PointerRelativeMotion(seatName string, dx, dy float64, time uint32) {
	s.log("sink[%s]: pointer relative dx=%.2f dy=%.2f time=%d", seatName, dx, dy, time)
}

func (s *Sink) PointerMotion(seatName string, x, y float64, time uint32) {
	s.log("sink[%s]: pointer motion x=%.2f y=%.2f time=%d", seatName, x, y, time)
}

func (s *Sink) PointerButton(seatName string, button uint32, state keysym.KeyState, time uint32) {
	s.log("sink[%s]: pointer button=%d state=%v time=%d", seatName, button, state, time)
}

func (s *Sink) PointerAxis(seatName string, frame core.AxisFrame, time uint32) {
	s.log("sink[%s]: pointer axis h=%.2f v=%.2f time=%d", seatName, frame.Horizontal, frame.Vertical, time)
}

func (s *Sink) PointerFrame(seatName string) {
	s.log("sink[%s]: pointer frame", seatName)
}

func (s *Sink) GestureSwipeBegin(seatName string, fingers int32, time uint32) {
	s.log("sink[%s]: swipe begin fingers=%d time=%d", seatName, fingers, time)
}

func (s *Sink) GestureSwipeUpdate(seatName string, dx, dy float64, time uint32) {
	s.log("sink[%s]: swipe update dx=%.2f dy=%.2f time=%d", seatName, dx, dy, time)
}

func (s *Sink) GestureSwipeEnd(seatName string, cancelled bool, time uint32) {
	s.log("sink[%s]: swipe end cancelled=%v time=%d", seatName, cancelled, time)
}

func (s *Sink) GesturePinchBegin(seatName string, fingers int32, time uint32) {
	s.log("sink[%s]: pinch begin fingers=%d time=%d", seatName, fingers, time)
}

func (s *Sink) GesturePinchUpdate(seatName string, dx, dy, scale, rotation float64, time uint32) {
	s.log("sink[%s]: pinch update dx=%.2f dy=%.2f scale=%.2f rotation=%.2f time=%d", seatName, dx, dy, scale, rotation, time)
}

func (s *Sink) GesturePinchEnd(seatName string, cancelled bool, time uint32) {
	s.log("sink[%s]: pinch end cancelled=%v time=%d", seatName, cancelled, time)
}

func (s *Sink) GestureHoldBegin(seatName string, fingers int32, time uint32) {
	s.log("sink[%s]: hold begin fingers=%d time=%d", seatName, fingers, time)
}

func (s *Sink) GestureHoldEnd(seatName string, cancelled bool, time uint32) {
	s.log("sink[%s]: hold end cancelled=%v time=%d", seatName, cancelled, time)
}

func (s *Sink) SetKeyboardFocus(seatName string, target shell.FocusTarget) {
	s.log("sink[%s]: keyboard focus -> %v", seatName, target)
}
