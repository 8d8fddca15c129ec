package shell

import (
	"testing"

	"github.com/tidewm/tide/internal/output"
)

func newTestShell(t *testing.T, outputIDs ...string) (*Shell, *output.Registry) {
	t.Helper()
	reg := output.NewRegistry()
	for i, id := range outputIDs {
		reg.Add(&output.Output{ID: id, Name: id, Scale: 1,
			Geometry: output.Rect{X: int32(i * 1920), Width: 1920, Height: 1080}})
	}
	return New(reg, WorkspaceLayoutHorizontal), reg
}

func TestActivateWorkspaceAllocatesLazily(t *testing.T) {
	s, _ := newTestShell(t, "out-0")
	if !s.ActivateWorkspace("out-0", 3) {
		t.Fatalf("expected activation to succeed")
	}
	if s.WorkspaceIndex("out-0") != 3 {
		t.Fatalf("expected workspace index 3 active")
	}
	if s.CurrentWorkspace("out-0") == nil {
		t.Fatalf("expected workspace 3 to have been allocated")
	}
}

func TestActivateNextPreviousWorkspaceDoNotWrap(t *testing.T) {
	s, _ := newTestShell(t, "out-0")
	if s.ActivatePreviousWorkspace("out-0") {
		t.Fatalf("expected no previous workspace from index 0")
	}
	s.ActivateWorkspace("out-0", 1)
	if !s.ActivatePreviousWorkspace("out-0") || s.WorkspaceIndex("out-0") != 0 {
		t.Fatalf("expected previous to land back on workspace 0")
	}
}

func TestMoveWindowToWorkspaceFollowVsSend(t *testing.T) {
	s, _ := newTestShell(t, "out-0")
	ws0 := s.CurrentWorkspace("out-0")
	win := &Window{ID: "w1"}
	ws0.AddWindow(win)

	s.MoveWindowToWorkspace(win, "out-0", 1, false)
	if s.WorkspaceIndex("out-0") != 0 {
		t.Fatalf("SendTo should not activate the destination workspace")
	}
	if s.CurrentWorkspace("out-0").findWindow("w1") != nil {
		t.Fatalf("expected window removed from source workspace")
	}

	s.MoveWindowToWorkspace(win, "out-0", 2, true)
	if s.WorkspaceIndex("out-0") != 2 {
		t.Fatalf("MoveTo should activate the destination workspace")
	}
}

func TestOverviewModeRoundTrip(t *testing.T) {
	s, _ := newTestShell(t, "out-0")
	if s.OverviewMode().Active {
		t.Fatalf("expected no overview mode initially")
	}
	s.SetOverviewMode(OverviewMode{Active: true, Trigger: Trigger{Kind: TriggerPointer, Button: 1}})
	if !s.OverviewMode().Active {
		t.Fatalf("expected overview mode active after Set")
	}
	s.SetOverviewMode(OverviewMode{})
	if s.OverviewMode().Active {
		t.Fatalf("expected overview mode cleared")
	}
}

func TestOutputRegistryWiredThroughHotplug(t *testing.T) {
	s, reg := newTestShell(t, "out-0")
	reg.Add(&output.Output{ID: "out-1", Name: "out-1", Scale: 1, Geometry: output.Rect{X: 1920, Width: 1920, Height: 1080}})
	if s.CurrentWorkspace("out-1") == nil {
		t.Fatalf("expected hotplugged output to get a workspace automatically")
	}
	reg.Remove("out-1")
	if s.CurrentWorkspace("out-1") != nil {
		t.Fatalf("expected removed output's state to be dropped")
	}
}
