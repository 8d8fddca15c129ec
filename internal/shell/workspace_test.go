package shell

import "testing"

func TestWorkspaceNextFocusAlongTree(t *testing.T) {
	ws := NewWorkspace("1")
	a, b, c := &Window{ID: "a"}, &Window{ID: "b"}, &Window{ID: "c"}
	ws.AddWindow(a)
	ws.AddWindow(b)
	ws.AddWindow(c)

	if got := ws.CurrentFocus().WindowID; got != "c" {
		t.Fatalf("expected most recently added window focused, got %q", got)
	}

	res := ws.NextFocus(DirectionLeft)
	if res.Kind != FocusResultTarget || res.Target.WindowID != "b" {
		t.Fatalf("expected focus to move to b, got %+v", res)
	}

	res = ws.NextFocus(DirectionLeft)
	if res.Kind != FocusResultTarget || res.Target.WindowID != "a" {
		t.Fatalf("expected focus to move to a, got %+v", res)
	}

	res = ws.NextFocus(DirectionLeft)
	if res.Kind != FocusResultNone {
		t.Fatalf("expected running off the tree to report None, got %+v", res)
	}
}

func TestWorkspaceMoveCurrentWindowReachesEdge(t *testing.T) {
	ws := NewWorkspace("1")
	a, b := &Window{ID: "a"}, &Window{ID: "b"}
	ws.AddWindow(a)
	ws.AddWindow(b)

	res := ws.MoveCurrentWindow(DirectionRight)
	if res.Kind != MoveResultFurther || res.Direction != DirectionRight {
		t.Fatalf("expected MoveFurther off the right edge, got %+v", res)
	}

	res = ws.MoveCurrentWindow(DirectionLeft)
	if res.Kind != MoveResultShiftFocus {
		t.Fatalf("expected swap with left neighbor to report ShiftFocus, got %+v", res)
	}
	if ws.tiles[0].activeWindow().ID != "b" {
		t.Fatalf("expected windows to have swapped tile order")
	}
}

func TestWorkspaceToggleFloatingRoundTrip(t *testing.T) {
	ws := NewWorkspace("1")
	a := &Window{ID: "a"}
	ws.AddWindow(a)

	ws.ToggleFloating()
	if !a.Floating || len(ws.tiles) != 0 || len(ws.floating) != 1 {
		t.Fatalf("expected window to move to floating layer")
	}

	ws.ToggleFloating()
	if a.Floating || len(ws.tiles) != 1 || len(ws.floating) != 0 {
		t.Fatalf("expected window to move back to tiling layer")
	}
}

func TestWorkspaceToggleStackingMergesAndSplits(t *testing.T) {
	ws := NewWorkspace("1")
	a, b := &Window{ID: "a"}, &Window{ID: "b"}
	ws.AddWindow(a)
	ws.AddWindow(b)

	ws.pushFocus("a")
	ws.ToggleStacking()
	if len(ws.tiles) != 1 || len(ws.tiles[0].windows) != 2 {
		t.Fatalf("expected a to merge into b's stack, got %d tiles", len(ws.tiles))
	}

	ws.ToggleStacking()
	if len(ws.tiles) != 2 {
		t.Fatalf("expected splitting the stack back into two tiles, got %d", len(ws.tiles))
	}
}

func TestElementUnderPrefersFullscreenThenFloatingThenTiling(t *testing.T) {
	ws := NewWorkspace("1")
	tiled := &Window{ID: "tiled", X: 0, Y: 0, Width: 100, Height: 100}
	ws.AddWindow(tiled)

	if got := ws.ElementUnder(10, 10); got == nil || got.ID != "tiled" {
		t.Fatalf("expected tiled window hit, got %v", got)
	}

	floatWin := &Window{ID: "float", X: 0, Y: 0, Width: 100, Height: 100}
	ws.AddFloating(floatWin)
	if got := ws.ElementUnder(10, 10); got == nil || got.ID != "float" {
		t.Fatalf("expected floating window to take precedence, got %v", got)
	}

	full := &Window{ID: "full", X: 0, Y: 0, Width: 100, Height: 100}
	ws.SetFullscreen(full)
	if got := ws.ElementUnder(10, 10); got == nil || got.ID != "full" {
		t.Fatalf("expected fullscreen window to take precedence over everything, got %v", got)
	}
}

func TestSwapTreesAcrossWorkspaces(t *testing.T) {
	ws1, ws2 := NewWorkspace("1"), NewWorkspace("2")
	a, b := &Window{ID: "a"}, &Window{ID: "b"}
	ws1.AddWindow(a)
	ws2.AddWindow(b)

	descA, _ := ws1.NodeDescriptorFor("a")
	descB, _ := ws2.NodeDescriptorFor("b")

	reg := map[string]*Workspace{"1": ws1, "2": ws2}
	SwapTrees(reg, descA, descB)

	if ws1.tiles[0].activeWindow().ID != "b" {
		t.Fatalf("expected b to have moved into workspace 1's tile")
	}
	if ws2.tiles[0].activeWindow().ID != "a" {
		t.Fatalf("expected a to have moved into workspace 2's tile")
	}
}
