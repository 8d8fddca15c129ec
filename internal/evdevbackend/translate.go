package evdevbackend

import (
	evdev "github.com/gvalkov/golang-evdev"

	"github.com/tidewm/tide/internal/core"
	"github.com/tidewm/tide/internal/keysym"
)

// absRange is the unit-square normalization divisor used for absolute axes
// when a device's real min/max isn't queried; most touch/tablet devices
// report in one of a handful of common ranges, and core.Event's UX/UY only
// need to land in [0,1] for Output.TransformPosition to work.
const absRange = 32767.0

// translateState accumulates the per-axis deltas a device reports across
// several EV_REL/EV_ABS events until the terminating EV_SYN, mirroring how
// a physical device reports one motion/scroll "frame" as a burst of
// un-synced events — core.Event's relative motion needs both dx and dy
// together, never one axis at a time.
type translateState struct {
	relX, relY           float64
	relPending           bool
	absX, absY           float64
	absPending           bool
	axisH, axisV         float64
	axisDiscreteH        float64
	axisDiscreteV        float64
	axisPending          bool
}

// translate converts one raw evdev event into zero or more core.Events.
// EV_KEY produces an event immediately; EV_REL/EV_ABS/EV_SYN accumulate
// into st and are only emitted as a batch on EV_SYN, once a full frame of
// axis deltas has arrived.
func translate(st *translateState, re evdev.InputEvent) []core.Event {
	switch re.Type {
	case evdev.EV_KEY:
		if ev, ok := translateKey(re); ok {
			return []core.Event{ev}
		}
		return nil
	case evdev.EV_REL:
		accumulateRel(st, re)
		return nil
	case evdev.EV_ABS:
		accumulateAbs(st, re)
		return nil
	case evdev.EV_SYN:
		return flush(st)
	default:
		return nil
	}
}

func translateKey(re evdev.InputEvent) (core.Event, bool) {
	if re.Value == 2 {
		// Autorepeat: the modal filter and suppressed-key tracker only
		// care about press/release edges.
		return core.Event{}, false
	}
	state := keysym.KeyPressed
	if re.Value == 0 {
		state = keysym.KeyReleased
	}
	if re.Code >= evdev.BTN_MISC {
		return core.Event{Kind: core.EventPointerButton, Button: uint32(re.Code), ButtonState: state}, true
	}
	return core.Event{Kind: core.EventKeyboard, KeyCode: re.Code, KeyState: state}, true
}

func accumulateRel(st *translateState, re evdev.InputEvent) {
	switch re.Code {
	case evdev.REL_X:
		st.relX += float64(re.Value)
		st.relPending = true
	case evdev.REL_Y:
		st.relY += float64(re.Value)
		st.relPending = true
	case evdev.REL_WHEEL:
		st.axisV += float64(re.Value) * 15
		st.axisDiscreteV += float64(re.Value)
		st.axisPending = true
	case evdev.REL_HWHEEL:
		st.axisH += float64(re.Value) * 15
		st.axisDiscreteH += float64(re.Value)
		st.axisPending = true
	}
}

func accumulateAbs(st *translateState, re evdev.InputEvent) {
	switch re.Code {
	case evdev.ABS_X:
		st.absX = clamp01(float64(re.Value) / absRange)
		st.absPending = true
	case evdev.ABS_Y:
		st.absY = clamp01(float64(re.Value) / absRange)
		st.absPending = true
	}
}

func flush(st *translateState) []core.Event {
	var out []core.Event
	if st.relPending {
		out = append(out, core.Event{Kind: core.EventPointerMotion, DX: st.relX, DY: st.relY})
		st.relX, st.relY, st.relPending = 0, 0, false
	}
	if st.absPending {
		out = append(out, core.Event{Kind: core.EventPointerMotionAbsolute, UX: st.absX, UY: st.absY})
		st.absPending = false
	}
	if st.axisPending {
		out = append(out, core.Event{
			Kind:           core.EventPointerAxis,
			AxisHorizontal: st.axisH,
			AxisVertical:   st.axisV,
			AxisDiscreteH:  st.axisDiscreteH,
			AxisDiscreteV:  st.axisDiscreteV,
			AxisSource:     core.AxisSourceWheel,
		})
		st.axisH, st.axisV, st.axisDiscreteH, st.axisDiscreteV, st.axisPending = 0, 0, 0, 0, false
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
