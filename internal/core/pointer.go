package core

import (
	"github.com/tidewm/tide/internal/keysym"
	"github.com/tidewm/tide/internal/output"
	"github.com/tidewm/tide/internal/screencopy"
	"github.com/tidewm/tide/internal/shell"
)

// ProcessPointerMotion applies a relative motion delta: it moves the seat's
// global position, re-resolves the active output (crossing boundaries
// notifies screencopy sessions before the seat's active output actually
// changes), clamps to the new output's geometry, and forwards both a
// relative-motion and an absolute-motion event to the client — in that
// order, so they land in the same input frame.
func (c *Core) ProcessPointerMotion(seatName string, ev Event) {
	s := c.Seats.Get(seatName)
	if s == nil {
		return
	}
	x, y := s.PointerPosition()
	x += ev.DX
	y += ev.DY

	oldOutputID := s.ActiveOutput()
	newOutput := c.Shell.Outputs().At(x, y)
	if newOutput == nil {
		// Motion carried the pointer off every known output: stay put
		// rather than losing active-output tracking entirely.
		if old := c.findOutput(oldOutputID); old != nil {
			newOutput = old
		}
	}

	if newOutput != nil && newOutput.ID != oldOutputID {
		c.notifyCursorCrossing(seatName, oldOutputID, newOutput.ID)
		s.SetActiveOutput(newOutput.ID)
	}

	outputID := s.ActiveOutput()
	if out := c.findOutput(outputID); out != nil {
		x, y = out.Geometry.Clamp(x, y)
	}
	s.SetPointerPosition(x, y)

	c.notifyCursorInfo(seatName, outputID, x, y)

	c.Sink.PointerRelativeMotion(seatName, ev.DX, ev.DY, ev.Time)
	c.Sink.PointerMotion(seatName, x, y, ev.Time)
}

// ProcessPointerMotionAbsolute places the pointer at a device-relative
// absolute position on the seat's active output. Unlike
// relative motion this never changes the active output, and only a plain
// motion event is sent (no relative-motion companion).
func (c *Core) ProcessPointerMotionAbsolute(seatName string, ev Event) {
	s := c.Seats.Get(seatName)
	if s == nil {
		return
	}
	outputID := s.ActiveOutput()
	out := c.findOutput(outputID)
	if out == nil {
		return
	}
	lx, ly := out.TransformPosition(ev.UX, ev.UY)
	x, y := float64(out.Geometry.X)+lx, float64(out.Geometry.Y)+ly
	s.SetPointerPosition(x, y)

	c.notifyCursorInfo(seatName, outputID, x, y)
	c.Sink.PointerMotion(seatName, x, y, ev.Time)
}

// ProcessPointerButton refocuses the keyboard on press — but only when
// neither pointer nor keyboard is currently grabbed — by hit-testing
// restricted to focusable targets (layer-shell surfaces not marked
// KeyboardInteractive and override-redirect windows are skipped); a press
// over nothing focusable clears keyboard focus rather than leaving the
// previous window focused. On release it watches for a pointer-triggered
// overview session ending on the same button. The button event itself is
// always forwarded.
func (c *Core) ProcessPointerButton(seatName string, ev Event) {
	s := c.Seats.Get(seatName)
	if s == nil {
		return
	}
	outputID := s.ActiveOutput()
	x, y := s.PointerPosition()

	if ev.ButtonState == keysym.KeyPressed {
		if !c.Shell.KeyboardGrabbed() {
			hit := FocusableSurfaceUnder(c.Shell, outputID, x, y)
			var target shell.FocusTarget
			switch hit.Kind {
			case SurfaceWindow:
				target = shell.FocusTarget{WindowID: hit.ID}
			case SurfaceLayer:
				target = shell.FocusTarget{WindowID: hit.ID, IsLayer: true}
			}
			c.Shell.SetFocus(outputID, target)
			c.Sink.SetKeyboardFocus(seatName, target)
		}
	} else {
		if ov := c.Shell.OverviewMode(); ov.Active && ov.Trigger.Kind == shell.TriggerPointer && ov.Trigger.Button == ev.Button {
			c.Shell.SetOverviewMode(shell.OverviewMode{})
		}
	}

	c.Sink.PointerButton(seatName, ev.Button, ev.ButtonState, ev.Time)
}

// ProcessPointerAxis builds a single AxisFrame from a scroll event and
// forwards it. The device's configured scroll factor applies to
// wheel-sourced axis events; finger/continuous sources are already
// pre-scaled by the backend that produced them.
func (c *Core) ProcessPointerAxis(seatName string, ev Event) {
	factor := 1.0
	if ev.AxisSource == AxisSourceWheel {
		factor = c.ScrollFactor(ev.DeviceID)
	}

	horiz := ev.AxisHorizontal
	if horiz == 0 {
		horiz = ev.AxisDiscreteH * 3.0
	}
	vert := ev.AxisVertical
	if vert == 0 {
		vert = ev.AxisDiscreteV * 3.0
	}
	horiz *= factor
	vert *= factor

	frame := AxisFrame{
		Horizontal: horiz, Vertical: vert,
		DiscreteH: int32(ev.AxisDiscreteH), DiscreteV: int32(ev.AxisDiscreteV),
		HasDiscrete: ev.AxisDiscreteH != 0 || ev.AxisDiscreteV != 0,
	}
	if horiz == 0 && ev.AxisSource == AxisSourceFinger {
		frame.StopHorizontal = true
	}
	if vert == 0 && ev.AxisSource == AxisSourceFinger {
		frame.StopVertical = true
	}

	c.Sink.PointerAxis(seatName, frame, ev.Time)
	c.Sink.PointerFrame(seatName)
}

func (c *Core) findOutput(id string) *output.Output {
	for _, o := range c.Shell.Outputs().All() {
		if o.ID == id {
			return o
		}
	}
	return nil
}

func (c *Core) notifyCursorCrossing(seatName, oldOutputID, newOutputID string) {
	for _, sess := range c.Shell.SessionsForOutput(oldOutputID) {
		sess.CursorLeave(seatName, screencopy.InputTypePointer)
	}
	for _, sess := range c.Shell.SessionsForOutput(newOutputID) {
		sess.CursorEnter(seatName, screencopy.InputTypePointer)
	}
}

func (c *Core) notifyCursorInfo(seatName, outputID string, x, y float64) {
	out := c.findOutput(outputID)
	if out == nil {
		return
	}
	hit := SurfaceUnder(c.Shell, outputID, x, y)
	geom := screencopy.Geometry{X: hit.X, Y: hit.Y, Width: 0, Height: 0}
	offset := screencopy.Offset{X: int32(x) - hit.X, Y: int32(y) - hit.Y}
	for _, sess := range c.Shell.SessionsForOutput(outputID) {
		sess.CursorInfo(seatName, screencopy.InputTypePointer, geom, offset)
	}
}
