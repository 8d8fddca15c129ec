package core

import (
	"testing"

	evdev "github.com/gvalkov/golang-evdev"

	"github.com/tidewm/tide/internal/evloop"
	"github.com/tidewm/tide/internal/keysym"
	"github.com/tidewm/tide/internal/output"
	"github.com/tidewm/tide/internal/seat"
	"github.com/tidewm/tide/internal/shell"
)

func newTestCore(t *testing.T, bindings []Binding) (*Core, *recordingSink, string) {
	t.Helper()
	reg := output.NewRegistry()
	reg.Add(&output.Output{ID: "out-0", Name: "out-0", Scale: 1, Geometry: output.Rect{Width: 1920, Height: 1080}})
	reg.Add(&output.Output{ID: "out-1", Name: "out-1", Scale: 1, Geometry: output.Rect{X: 1920, Width: 1920, Height: 1080}})

	sh := shell.New(reg, shell.WorkspaceLayoutHorizontal)
	seats := seat.NewRegistry()
	s := seats.AddSeat("seat0")
	s.SetActiveOutput("out-0")

	sink := &recordingSink{}
	c := New(sh, seats, evloop.New(), sink, bindings)
	return c, sink, "seat0"
}

func press(code uint16) Event  { return Event{Kind: EventKeyboard, KeyCode: code, KeyState: keysym.KeyPressed} }
func release(code uint16) Event { return Event{Kind: EventKeyboard, KeyCode: code, KeyState: keysym.KeyReleased} }

func TestGlobalShortcutSuppressesMatchingRelease(t *testing.T) {
	binding := Binding{
		Pattern: keysym.KeyPattern{Modifiers: keysym.Modifiers{Logo: true}, Key: keysym.Keysym(evdev.KEY_Q)},
		Action:  shell.Terminate(),
	}
	c, sink, seatName := newTestCore(t, []Binding{binding})

	c.ProcessInputEvent(seatName, press(evdev.KEY_LEFTMETA))
	c.ProcessInputEvent(seatName, press(evdev.KEY_Q))
	c.ProcessInputEvent(seatName, release(evdev.KEY_Q))
	c.ProcessInputEvent(seatName, release(evdev.KEY_LEFTMETA))

	// LEFTMETA itself is a tracked modifier but still forwarded as a key;
	// Q's press is consumed by the binding and its release is absorbed by
	// the suppressed-key rule, so only the two LEFTMETA events forward.
	keyForwards := 0
	for _, call := range sink.calls {
		if call == "key" {
			keyForwards++
		}
	}
	if keyForwards != 2 {
		t.Fatalf("expected exactly 2 forwarded key events (both LEFTMETA edges), got %d: %v", keyForwards, sink.calls)
	}
}

func TestUnboundKeyForwardsNormally(t *testing.T) {
	c, sink, seatName := newTestCore(t, nil)
	c.ProcessInputEvent(seatName, press(evdev.KEY_A))
	c.ProcessInputEvent(seatName, release(evdev.KEY_A))

	if len(sink.calls) != 2 || sink.calls[0] != "key" || sink.calls[1] != "key" {
		t.Fatalf("expected both press and release forwarded, got %v", sink.calls)
	}
}

func TestVTSwitchIsAbsorbedAndNeverForwarded(t *testing.T) {
	c, sink, seatName := newTestCore(t, nil)
	vt := &fakeVT{}
	c.VT = vt

	c.ProcessInputEvent(seatName, press(evdev.KEY_LEFTCTRL))
	c.ProcessInputEvent(seatName, press(evdev.KEY_LEFTALT))
	sink.calls = nil // clear the two modifier key forwards, irrelevant here
	c.ProcessInputEvent(seatName, press(evdev.KEY_F3))

	if len(vt.switched) != 1 || vt.switched[0] != 3 {
		t.Fatalf("expected VT switch to VT 3, got %v", vt.switched)
	}
	if len(sink.calls) != 0 {
		t.Fatalf("expected VT switch key never forwarded, got %v", sink.calls)
	}
}

func TestResizeModeArrowGrowsEdgeAndEndsOnTriggerRelease(t *testing.T) {
	resizeBinding := Binding{
		Pattern: keysym.KeyPattern{Modifiers: keysym.Modifiers{Alt: true}, Key: keysym.Keysym(evdev.KEY_R)},
		Action:  shell.Resizing(shell.ResizeOutwards),
	}
	c, _, seatName := newTestCore(t, []Binding{resizeBinding})
	ws := c.Shell.CurrentWorkspace("out-0")
	win := &shell.Window{ID: "w1", Width: 400, Height: 300}
	ws.AddWindow(win)

	c.ProcessInputEvent(seatName, press(evdev.KEY_LEFTALT))
	c.ProcessInputEvent(seatName, press(evdev.KEY_R))
	if !c.Shell.ResizeMode().Active {
		t.Fatalf("expected resize mode active after binding press")
	}

	c.ProcessInputEvent(seatName, press(evdev.KEY_L))
	if win.Width != 420 {
		t.Fatalf("expected right edge to grow by one step, got width %d", win.Width)
	}

	c.ProcessInputEvent(seatName, release(evdev.KEY_L))

	c.ProcessInputEvent(seatName, release(evdev.KEY_R))
	if c.Shell.ResizeMode().Active {
		t.Fatalf("expected resize mode to end on matching key release")
	}
}

func TestPointerMotionCrossesOutputAndUpdatesActiveOutput(t *testing.T) {
	c, sink, seatName := newTestCore(t, nil)
	s := c.Seats.Get(seatName)
	s.SetPointerPosition(1900, 500)

	c.ProcessInputEvent(seatName, Event{Kind: EventPointerMotion, DX: 100, DY: 0})

	if s.ActiveOutput() != "out-1" {
		t.Fatalf("expected active output to become out-1, got %s", s.ActiveOutput())
	}
	foundRelative, foundMotion := false, false
	for _, call := range sink.calls {
		if call == "relative-motion" {
			foundRelative = true
		}
		if call == "motion" {
			foundMotion = true
		}
	}
	if !foundRelative || !foundMotion {
		t.Fatalf("expected both relative and absolute motion forwarded, got %v", sink.calls)
	}
	if sink.calls[0] != "relative-motion" {
		t.Fatalf("expected relative motion to be sent before absolute motion, got %v", sink.calls)
	}
}

func TestDispatchMoveToPreviousWorkspaceFallsBackToPreviousOutput(t *testing.T) {
	c, _, seatName := newTestCore(t, nil)
	c.Shell.ActivateWorkspace("out-1", 0)
	s := c.Seats.Get(seatName)
	s.SetActiveOutput("out-1")
	ws := c.Shell.CurrentWorkspace("out-1")
	win := &shell.Window{ID: "w1"}
	ws.AddWindow(win)

	c.Dispatch(seatName, shell.MoveToPreviousWorkspace(), keysym.KeyPattern{})

	if s.ActiveOutput() != "out-0" {
		t.Fatalf("expected the corrected fallthrough to land on the previous output, got %s", s.ActiveOutput())
	}
}

func TestDispatchNextWorkspaceFallsBackToNextOutput(t *testing.T) {
	c, _, seatName := newTestCore(t, nil)

	c.Dispatch(seatName, shell.NextWorkspace(), keysym.KeyPattern{})

	s := c.Seats.Get(seatName)
	if s.ActiveOutput() != "out-1" {
		t.Fatalf("expected next-workspace with nothing further to fall back to the next output, got %s", s.ActiveOutput())
	}
}

func TestSurfaceUnderPrefersOverlayLayerOverTilingWindow(t *testing.T) {
	c, _, _ := newTestCore(t, nil)
	ws := c.Shell.CurrentWorkspace("out-0")
	ws.AddWindow(&shell.Window{ID: "w1", Width: 1920, Height: 1080})

	hit := SurfaceUnder(c.Shell, "out-0", 10, 10)
	if hit.Kind != SurfaceWindow || hit.ID != "w1" {
		t.Fatalf("expected tiled window hit with no layers present, got %+v", hit)
	}

	c.Shell.AddLayerSurface(&shell.LayerSurface{ID: "bar", Output: "out-0", Layer: shell.LayerOverlay, Width: 1920, Height: 40})
	hit = SurfaceUnder(c.Shell, "out-0", 10, 10)
	if hit.Kind != SurfaceLayer || hit.ID != "bar" {
		t.Fatalf("expected overlay layer to take precedence over the tiled window, got %+v", hit)
	}
}

func TestSwapWindowEntersOverviewAndCommitsOnKeyRelease(t *testing.T) {
	swapBinding := Binding{
		Pattern: keysym.KeyPattern{Modifiers: keysym.Modifiers{Logo: true}, Key: keysym.Keysym(evdev.KEY_S)},
		Action:  shell.SwapWindow(),
	}
	c, sink, seatName := newTestCore(t, []Binding{swapBinding})
	ws := c.Shell.CurrentWorkspace("out-0")
	a, b := &shell.Window{ID: "a"}, &shell.Window{ID: "b"}
	ws.AddWindow(a)
	ws.AddWindow(b) // b is now focused

	c.ProcessInputEvent(seatName, press(evdev.KEY_LEFTMETA))
	c.ProcessInputEvent(seatName, press(evdev.KEY_S))
	if !c.Shell.OverviewMode().Active {
		t.Fatalf("expected SwapWindow to enter overview mode")
	}

	c.ProcessInputEvent(seatName, release(evdev.KEY_S))
	c.Loop.FlushIdle()

	if c.Shell.OverviewMode().Active {
		t.Fatalf("expected overview mode to end on matching key release")
	}
	found := false
	for _, call := range sink.calls {
		if call == "focus" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a deferred focus update after the swap commit, got %v", sink.calls)
	}
}

func TestPointerAxisAppliesScrollFactorForWheelSource(t *testing.T) {
	c, sink, seatName := newTestCore(t, nil)
	c.ScrollFactor = func(deviceID string) float64 {
		if deviceID == "/dev/input/event4" {
			return 2.0
		}
		return 1.0
	}

	c.ProcessInputEvent(seatName, Event{
		Kind: EventPointerAxis, DeviceID: "/dev/input/event4",
		AxisVertical: 15, AxisDiscreteV: 1, AxisSource: AxisSourceWheel,
	})

	if sink.lastAxis.Vertical != 30 {
		t.Fatalf("expected wheel scroll factor to double vertical amount, got %v", sink.lastAxis.Vertical)
	}
}

func TestPointerAxisIgnoresScrollFactorForFingerSource(t *testing.T) {
	c, sink, seatName := newTestCore(t, nil)
	c.ScrollFactor = func(deviceID string) float64 { return 5.0 }

	c.ProcessInputEvent(seatName, Event{
		Kind: EventPointerAxis, DeviceID: "touchpad0",
		AxisVertical: 10, AxisSource: AxisSourceFinger,
	})

	if sink.lastAxis.Vertical != 10 {
		t.Fatalf("expected finger-sourced axis to bypass scroll factor, got %v", sink.lastAxis.Vertical)
	}
}

func TestResizeModeRebindsOnModifierChange(t *testing.T) {
	outBinding := Binding{
		Pattern: keysym.KeyPattern{Modifiers: keysym.Modifiers{Alt: true}, Key: keysym.Keysym(evdev.KEY_R)},
		Action:  shell.Resizing(shell.ResizeOutwards),
	}
	inBinding := Binding{
		Pattern: keysym.KeyPattern{Modifiers: keysym.Modifiers{Alt: true, Shift: true}, Key: keysym.Keysym(evdev.KEY_R)},
		Action:  shell.Resizing(shell.ResizeInwards),
	}
	c, _, seatName := newTestCore(t, []Binding{outBinding, inBinding})
	ws := c.Shell.CurrentWorkspace("out-0")
	win := &shell.Window{ID: "w1", Width: 400, Height: 300}
	ws.AddWindow(win)

	c.ProcessInputEvent(seatName, press(evdev.KEY_LEFTALT))
	c.ProcessInputEvent(seatName, press(evdev.KEY_R))
	if dir := c.Shell.ResizeMode().Direction; dir != shell.ResizeOutwards {
		t.Fatalf("expected outwards resize direction after initial binding, got %v", dir)
	}

	// Pressing shift changes the held modifiers while R is still the
	// original trigger key (still held, though Shift is the key of this
	// event) — should re-look-up the
	// binding under (new modifiers, original key) and rebind, not key off
	// whatever key is currently pressed.
	c.ProcessInputEvent(seatName, press(evdev.KEY_LEFTSHIFT))
	if dir := c.Shell.ResizeMode().Direction; dir != shell.ResizeInwards {
		t.Fatalf("expected resize direction to rebind to inwards on modifier change, got %v", dir)
	}
}

func TestResizeModeTearsDownWhenNoBindingMatchesNewModifiers(t *testing.T) {
	resizeBinding := Binding{
		Pattern: keysym.KeyPattern{Modifiers: keysym.Modifiers{Alt: true}, Key: keysym.Keysym(evdev.KEY_R)},
		Action:  shell.Resizing(shell.ResizeOutwards),
	}
	c, _, seatName := newTestCore(t, []Binding{resizeBinding})
	ws := c.Shell.CurrentWorkspace("out-0")
	win := &shell.Window{ID: "w1", Width: 400, Height: 300}
	ws.AddWindow(win)

	c.ProcessInputEvent(seatName, press(evdev.KEY_LEFTALT))
	c.ProcessInputEvent(seatName, press(evdev.KEY_R))
	if !c.Shell.ResizeMode().Active {
		t.Fatalf("expected resize mode active after binding press")
	}

	// Ctrl added on top of Alt+R no longer matches any Resizing binding.
	c.ProcessInputEvent(seatName, press(evdev.KEY_LEFTCTRL))
	if c.Shell.ResizeMode().Active {
		t.Fatalf("expected resize mode to tear down when no binding matches the new modifiers")
	}
}

func TestShortcutsInhibitedSkipsGlobalShortcutScan(t *testing.T) {
	binding := Binding{
		Pattern: keysym.KeyPattern{Modifiers: keysym.Modifiers{Logo: true}, Key: keysym.Keysym(evdev.KEY_Q)},
		Action:  shell.Terminate(),
	}
	c, sink, seatName := newTestCore(t, []Binding{binding})
	ws := c.Shell.CurrentWorkspace("out-0")
	win := &shell.Window{ID: "w1", ShortcutsInhibited: true}
	ws.AddWindow(win)

	c.ProcessInputEvent(seatName, press(evdev.KEY_LEFTMETA))
	c.ProcessInputEvent(seatName, press(evdev.KEY_Q))

	keyForwards := 0
	for _, call := range sink.calls {
		if call == "key" {
			keyForwards++
		}
	}
	// With the inhibitor active, Q's press is never intercepted by the
	// binding and forwards like any other key, alongside LEFTMETA.
	if keyForwards != 2 {
		t.Fatalf("expected both LEFTMETA and Q to forward while shortcuts are inhibited, got %d: %v", keyForwards, sink.calls)
	}
}

func TestPointerButtonRefocusesToFocusableLayerThenTiledWindow(t *testing.T) {
	c, sink, seatName := newTestCore(t, nil)
	ws := c.Shell.CurrentWorkspace("out-0")
	win := &shell.Window{ID: "w1", Width: 1920, Height: 1080}
	ws.AddWindow(win)

	c.Shell.AddLayerSurface(&shell.LayerSurface{
		ID: "bar", Output: "out-0", Layer: shell.LayerOverlay,
		Width: 1920, Height: 40, KeyboardInteractive: true,
	})

	s := c.Seats.Get(seatName)
	s.SetPointerPosition(10, 10)
	c.ProcessInputEvent(seatName, Event{Kind: EventPointerButton, Button: 272, ButtonState: keysym.KeyPressed})

	if sink.focus.WindowID != "bar" || !sink.focus.IsLayer {
		t.Fatalf("expected keyboard focus to move to the interactive overlay layer, got %+v", sink.focus)
	}

	c.Shell.RemoveLayerSurface("out-0", "bar")
	s.SetPointerPosition(10, 10)
	c.ProcessInputEvent(seatName, Event{Kind: EventPointerButton, Button: 272, ButtonState: keysym.KeyPressed})
	if sink.focus.WindowID != "w1" || sink.focus.IsLayer {
		t.Fatalf("expected keyboard focus to move to the tiled window once the layer is gone, got %+v", sink.focus)
	}
}

func TestPointerButtonDoesNotRefocusWhenKeyboardGrabbed(t *testing.T) {
	swapBinding := Binding{
		Pattern: keysym.KeyPattern{Modifiers: keysym.Modifiers{Logo: true}, Key: keysym.Keysym(evdev.KEY_S)},
		Action:  shell.SwapWindow(),
	}
	c, sink, seatName := newTestCore(t, []Binding{swapBinding})
	ws := c.Shell.CurrentWorkspace("out-0")
	a := &shell.Window{ID: "a"}
	ws.AddWindow(a)

	c.ProcessInputEvent(seatName, press(evdev.KEY_LEFTMETA))
	c.ProcessInputEvent(seatName, press(evdev.KEY_S))
	if !c.Shell.KeyboardGrabbed() {
		t.Fatalf("expected the overview-swap session to hold the keyboard grab")
	}

	sink.calls = nil
	sink.focus = shell.FocusTarget{}
	s := c.Seats.Get(seatName)
	s.SetPointerPosition(10, 10)
	c.ProcessInputEvent(seatName, Event{Kind: EventPointerButton, Button: 272, ButtonState: keysym.KeyPressed})

	if sink.focus != (shell.FocusTarget{}) {
		t.Fatalf("expected no refocus while the keyboard is grabbed, got %+v", sink.focus)
	}
}
