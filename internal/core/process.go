package core

// ProcessInputEvent is the single entry point the event loop calls for
// every backend-produced event, one at a time — nothing in this package is
// reentered mid-dispatch. It is a pure router — all the actual logic lives
// in the per-kind handlers this fans out to.
func (c *Core) ProcessInputEvent(seatName string, ev Event) {
	switch ev.Kind {
	case EventDeviceAdded:
		c.deviceAdded(seatName, ev)
	case EventDeviceRemoved:
		c.deviceRemoved(ev)
	case EventKeyboard:
		c.ProcessKeyboard(seatName, ev)
	case EventPointerMotion:
		c.ProcessPointerMotion(seatName, ev)
	case EventPointerMotionAbsolute:
		c.ProcessPointerMotionAbsolute(seatName, ev)
	case EventPointerButton:
		c.ProcessPointerButton(seatName, ev)
	case EventPointerAxis:
		c.ProcessPointerAxis(seatName, ev)
	case EventGestureSwipeBegin:
		c.Sink.GestureSwipeBegin(seatName, ev.GestureFingers, ev.Time)
	case EventGestureSwipeUpdate:
		c.Sink.GestureSwipeUpdate(seatName, ev.GestureDX, ev.GestureDY, ev.Time)
	case EventGestureSwipeEnd:
		c.Sink.GestureSwipeEnd(seatName, ev.GestureCancelled, ev.Time)
	case EventGesturePinchBegin:
		c.Sink.GesturePinchBegin(seatName, ev.GestureFingers, ev.Time)
	case EventGesturePinchUpdate:
		c.Sink.GesturePinchUpdate(seatName, ev.GestureDX, ev.GestureDY, ev.GestureScale, ev.GestureRotation, ev.Time)
	case EventGesturePinchEnd:
		c.Sink.GesturePinchEnd(seatName, ev.GestureCancelled, ev.Time)
	case EventGestureHoldBegin:
		c.Sink.GestureHoldBegin(seatName, ev.GestureFingers, ev.Time)
	case EventGestureHoldEnd:
		c.Sink.GestureHoldEnd(seatName, ev.GestureCancelled, ev.Time)
	}
}
