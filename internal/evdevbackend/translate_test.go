package evdevbackend

import (
	"testing"

	evdev "github.com/gvalkov/golang-evdev"

	"github.com/tidewm/tide/internal/core"
	"github.com/tidewm/tide/internal/keysym"
)

func syn() evdev.InputEvent { return evdev.InputEvent{Type: evdev.EV_SYN} }

func TestTranslateKeyPressAndRelease(t *testing.T) {
	var st translateState
	evs := translate(&st, evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_A, Value: 1})
	if len(evs) != 1 || evs[0].Kind != core.EventKeyboard || evs[0].KeyState != keysym.KeyPressed {
		t.Fatalf("expected one keyboard press event, got %v", evs)
	}

	evs = translate(&st, evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_A, Value: 0})
	if len(evs) != 1 || evs[0].KeyState != keysym.KeyReleased {
		t.Fatalf("expected one keyboard release event, got %v", evs)
	}
}

func TestTranslateKeyAutorepeatDropped(t *testing.T) {
	var st translateState
	evs := translate(&st, evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_A, Value: 2})
	if len(evs) != 0 {
		t.Fatalf("expected autorepeat to be dropped, got %v", evs)
	}
}

func TestTranslateButtonAboveMiscThreshold(t *testing.T) {
	var st translateState
	evs := translate(&st, evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.BTN_LEFT, Value: 1})
	if len(evs) != 1 || evs[0].Kind != core.EventPointerButton {
		t.Fatalf("expected a pointer button event for BTN_LEFT, got %v", evs)
	}
}

func TestTranslateRelativeMotionWaitsForSync(t *testing.T) {
	var st translateState
	if evs := translate(&st, evdev.InputEvent{Type: evdev.EV_REL, Code: evdev.REL_X, Value: 5}); len(evs) != 0 {
		t.Fatalf("expected no event before sync, got %v", evs)
	}
	evs := translate(&st, evdev.InputEvent{Type: evdev.EV_REL, Code: evdev.REL_Y, Value: -3})
	if len(evs) != 0 {
		t.Fatalf("expected still no event before sync, got %v", evs)
	}
	evs = translate(&st, syn())
	if len(evs) != 1 || evs[0].Kind != core.EventPointerMotion || evs[0].DX != 5 || evs[0].DY != -3 {
		t.Fatalf("expected one combined motion event with both axes, got %v", evs)
	}
}

func TestTranslateSyncWithNothingPendingProducesNoEvents(t *testing.T) {
	var st translateState
	evs := translate(&st, syn())
	if len(evs) != 0 {
		t.Fatalf("expected no events from an empty sync frame, got %v", evs)
	}
}

func TestTranslateWheelAccumulatesDiscreteSteps(t *testing.T) {
	var st translateState
	translate(&st, evdev.InputEvent{Type: evdev.EV_REL, Code: evdev.REL_WHEEL, Value: 1})
	translate(&st, evdev.InputEvent{Type: evdev.EV_REL, Code: evdev.REL_WHEEL, Value: 1})
	evs := translate(&st, syn())
	if len(evs) != 1 || evs[0].Kind != core.EventPointerAxis || evs[0].AxisDiscreteV != 2 {
		t.Fatalf("expected one axis event with 2 discrete steps accumulated, got %v", evs)
	}
}
