package shell

import (
	"sync"

	"github.com/tidewm/tide/internal/keysym"
	"github.com/tidewm/tide/internal/output"
	"github.com/tidewm/tide/internal/screencopy"
)

// outputState is the per-output slice of shell state: its own workspace set
// and which one is currently visible.
type outputState struct {
	output     *output.Output
	workspaces []*Workspace
	active     int

	screencopy screencopy.Registry
	layers     []*LayerSurface
}

func (o *outputState) currentWorkspace() *Workspace {
	if o.active < 0 || o.active >= len(o.workspaces) {
		return nil
	}
	return o.workspaces[o.active]
}

// Shell is the aggregate root for everything the action dispatcher and
// pointer/keyboard handlers operate on: per-output workspace sets, the two
// transient modal states, and the layer-shell-adjacent surfaces (override
// redirect windows) that sit outside any workspace.
type Shell struct {
	mu     sync.Mutex
	layout WorkspaceLayout

	outputs  *output.Registry
	byOutput map[string]*outputState

	overview OverviewMode
	resize   ResizeMode

	overrideRedirect []*Window
}

// New builds a Shell over the given output registry, seeding one workspace
// per output. Hotplugged outputs (added after New) get their own workspace
// as soon as the registry reports them.
func New(outputs *output.Registry, layout WorkspaceLayout) *Shell {
	s := &Shell{outputs: outputs, byOutput: make(map[string]*outputState), layout: layout}
	for _, o := range outputs.All() {
		s.ensureOutput(o)
	}
	outputs.SetHotplugHandlers(
		func(o *output.Output) { s.mu.Lock(); s.ensureOutput(o); s.mu.Unlock() },
		func(o *output.Output) { s.mu.Lock(); delete(s.byOutput, o.ID); s.mu.Unlock() },
	)
	return s
}

func (s *Shell) ensureOutput(o *output.Output) *outputState {
	if st, ok := s.byOutput[o.ID]; ok {
		st.output = o
		return st
	}
	st := &outputState{output: o, workspaces: []*Workspace{NewWorkspace("1")}}
	s.byOutput[o.ID] = st
	return st
}

// Outputs exposes the underlying output registry.
func (s *Shell) Outputs() *output.Registry { return s.outputs }

// CurrentWorkspace returns the active workspace on outputID, or nil if the
// output is unknown.
func (s *Shell) CurrentWorkspace(outputID string) *Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.byOutput[outputID]
	if !ok {
		return nil
	}
	return st.currentWorkspace()
}

// WorkspaceCount returns how many workspaces exist on outputID.
func (s *Shell) WorkspaceCount(outputID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.byOutput[outputID]; ok {
		return len(st.workspaces)
	}
	return 0
}

// WorkspaceIndex returns the active workspace's 0-based index on outputID.
func (s *Shell) WorkspaceIndex(outputID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.byOutput[outputID]; ok {
		return st.active
	}
	return -1
}

// ActivateWorkspace switches outputID to the workspace at index n,
// allocating empty workspaces up to n if needed. The "0 means the 10th
// workspace" keypad convention is handled by the caller before this.
func (s *Shell) ActivateWorkspace(outputID string, n int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.byOutput[outputID]
	if !ok || n < 0 {
		return false
	}
	for len(st.workspaces) <= n {
		st.workspaces = append(st.workspaces, NewWorkspace(indexName(len(st.workspaces))))
	}
	st.active = n
	return true
}

func indexName(i int) string {
	const digits = "0123456789"
	return string(digits[(i+1)%10])
}

// ActivateNextWorkspace/ActivatePreviousWorkspace move by one, saturating at
// the ends (no wraparound, matching NextOutput's non-wrapping walk).
func (s *Shell) ActivateNextWorkspace(outputID string) bool {
	s.mu.Lock()
	st, ok := s.byOutput[outputID]
	if !ok {
		s.mu.Unlock()
		return false
	}
	if st.active+1 >= len(st.workspaces) {
		s.mu.Unlock()
		return false
	}
	n := st.active + 1
	s.mu.Unlock()
	return s.ActivateWorkspace(outputID, n)
}

func (s *Shell) ActivatePreviousWorkspace(outputID string) bool {
	s.mu.Lock()
	st, ok := s.byOutput[outputID]
	if !ok || st.active-1 < 0 {
		s.mu.Unlock()
		return false
	}
	n := st.active - 1
	s.mu.Unlock()
	return s.ActivateWorkspace(outputID, n)
}

// ActivateLastWorkspace switches to the highest-indexed workspace on
// outputID, whether or not it holds any windows.
func (s *Shell) ActivateLastWorkspace(outputID string) bool {
	s.mu.Lock()
	st, ok := s.byOutput[outputID]
	if !ok || len(st.workspaces) == 0 {
		s.mu.Unlock()
		return false
	}
	n := len(st.workspaces) - 1
	s.mu.Unlock()
	return s.ActivateWorkspace(outputID, n)
}

// MoveWindowToWorkspace relocates a window from its current workspace to
// workspace n on outputID. follow mirrors Action's Move/SendTo distinction:
// true also activates the destination (MoveToWorkspace), false leaves the
// source active (SendToWorkspace).
func (s *Shell) MoveWindowToWorkspace(win *Window, outputID string, n int, follow bool) bool {
	s.mu.Lock()
	st, ok := s.byOutput[outputID]
	if !ok || n < 0 {
		s.mu.Unlock()
		return false
	}
	for len(st.workspaces) <= n {
		st.workspaces = append(st.workspaces, NewWorkspace(indexName(len(st.workspaces))))
	}
	dst := st.workspaces[n]
	s.mu.Unlock()

	s.removeWindowFromAllWorkspaces(win.ID)
	win.Output = outputID
	dst.AddWindow(win)
	if follow {
		s.ActivateWorkspace(outputID, n)
	}
	return true
}

func (s *Shell) removeWindowFromAllWorkspaces(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.byOutput {
		for _, ws := range st.workspaces {
			ws.RemoveWindow(id)
		}
	}
}

// workspaceRegistry returns every workspace across every output keyed by
// name — used by SwapTrees/MoveTree, which operate across output
// boundaries during an overview session. Names collide across outputs in
// this simplified model only insofar as the caller always resolves through
// a NodeDescriptor captured from a live workspace, so the lookup only ever
// needs the one instance that produced the descriptor.
func (s *Shell) workspaceRegistry() map[string]*Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()
	reg := make(map[string]*Workspace)
	for _, st := range s.byOutput {
		for _, ws := range st.workspaces {
			reg[ws.Name] = ws
		}
	}
	return reg
}

// CommitSwap performs the overview-swap commit: exchange the tile positions
// named by the two descriptors.
func (s *Shell) CommitSwap(a, b NodeDescriptor) {
	SwapTrees(s.workspaceRegistry(), a, b)
}

// CommitMove moves the tile named by src onto dstWorkspace; the overview-swap
// commit uses it when there is no focused window to swap with.
func (s *Shell) CommitMove(src NodeDescriptor, dstWorkspace string) {
	MoveTree(s.workspaceRegistry(), src, dstWorkspace)
}

// SetFocus is the single place focus changes flow through; idle-deferred
// callers (overview-swap commit) and synchronous callers (pointer button)
// both end up here. A target that is empty or a layer surface clears the
// workspace's window-focus stack rather than pushing onto it.
func (s *Shell) SetFocus(outputID string, target FocusTarget) {
	ws := s.CurrentWorkspace(outputID)
	if ws == nil {
		return
	}
	if target.Empty() || target.IsLayer {
		ws.ClearFocus()
		return
	}
	ws.pushFocus(target.WindowID)
}

// ShortcutsInhibited reports whether the window currently focused on
// outputID has an active keyboard_shortcuts_inhibitor, read at the moment a
// key is processed — the global shortcut scan consults this and skips
// itself for as long as the inhibitor stays active.
func (s *Shell) ShortcutsInhibited(outputID string) bool {
	ws := s.CurrentWorkspace(outputID)
	if ws == nil {
		return false
	}
	target := ws.CurrentFocus()
	if target.Empty() || target.IsLayer {
		return false
	}
	win := ws.FindWindow(target.WindowID)
	return win != nil && win.ShortcutsInhibited
}

// SessionsForOutput unions the screencopy sessions watching outputID: the
// active workspace's own sessions, the output's own sessions, and — if a
// window is currently fullscreen there — that window's per-surface
// sessions, deduplicated so a session watching through more than one of
// these is only notified once per cursor update.
func (s *Shell) SessionsForOutput(outputID string) []screencopy.Session {
	ws := s.CurrentWorkspace(outputID)
	outReg := s.OutputScreencopy(outputID)
	if ws == nil {
		return screencopy.Broadcast(outReg)
	}
	if full := ws.Fullscreen(); full != nil {
		return screencopy.Broadcast(&ws.Screencopy, &full.Screencopy, outReg)
	}
	return screencopy.Broadcast(&ws.Screencopy, outReg)
}

// OverviewMode returns the current overview-mode state.
func (s *Shell) OverviewMode() OverviewMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.overview
}

// SetOverviewMode installs a new overview-mode state (or clears it, when
// passed the zero value).
func (s *Shell) SetOverviewMode(m OverviewMode) {
	s.mu.Lock()
	s.overview = m
	s.mu.Unlock()
}

// KeyboardGrabbed reports whether the seat's keyboard is currently held by
// an exclusive grab. The only grab this simplified core models is the one
// installed while an overview-swap session is running: swapping windows via
// the keyboard holds the keyboard until the session ends.
func (s *Shell) KeyboardGrabbed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.overview.Active && s.overview.Trigger.Kind == TriggerKeyboardSwap
}

// ResizeMode returns the current keyboard-resize modal state.
func (s *Shell) ResizeMode() ResizeMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resize
}

// SetResizeMode installs a new resize-mode state (or clears it).
func (s *Shell) SetResizeMode(m ResizeMode) {
	s.mu.Lock()
	s.resize = m
	s.mu.Unlock()
}

// Resize applies one auto-repeat tick of a keyboard resize to the focused
// window on outputID: a press starts growing/shrinking the named edge, a
// release stops it. Outwards grows the edge and Inwards shrinks it, read
// from the current ResizeMode's Direction.
func (s *Shell) Resize(outputID string, edge ResizeEdge, state keysym.KeyState) {
	ws := s.CurrentWorkspace(outputID)
	if ws == nil {
		return
	}
	cur := ws.CurrentFocus()
	win := ws.findWindow(cur.WindowID)
	if win == nil {
		return
	}
	if state == keysym.KeyReleased {
		return
	}
	const step = 20
	d := int32(step)
	if s.ResizeMode().Direction == ResizeInwards {
		d = -step
	}
	switch edge {
	case ResizeEdgeLeft:
		win.X -= d
		win.Width += d
	case ResizeEdgeRight:
		win.Width += d
	case ResizeEdgeTop:
		win.Y -= d
		win.Height += d
	case ResizeEdgeBottom:
		win.Height += d
	}
}

// FinishResize ends an in-progress keyboard resize. It is a no-op in this
// simplified layout model: Resize already mutates geometry directly, and
// the keyboard filter clears ResizeMode itself.
func (s *Shell) FinishResize(outputID string) {}

// OverrideRedirectWindows returns the X11 override-redirect windows tracked
// outside any workspace (always-on-top, never tiled).
func (s *Shell) OverrideRedirectWindows() []*Window {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Window(nil), s.overrideRedirect...)
}

// AddOverrideRedirect / RemoveOverrideRedirect maintain that list.
func (s *Shell) AddOverrideRedirect(w *Window) {
	s.mu.Lock()
	s.overrideRedirect = append(s.overrideRedirect, w)
	s.mu.Unlock()
}

func (s *Shell) RemoveOverrideRedirect(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, w := range s.overrideRedirect {
		if w.ID == id {
			s.overrideRedirect = append(s.overrideRedirect[:i], s.overrideRedirect[i+1:]...)
			return
		}
	}
}

// MapGlobalToSpace converts a global (output-space) coordinate into the
// workspace-relative coordinate ElementUnder expects.
func (s *Shell) MapGlobalToSpace(outputID string, gx, gy float64) (float64, float64) {
	s.mu.Lock()
	st, ok := s.byOutput[outputID]
	s.mu.Unlock()
	if !ok {
		return gx, gy
	}
	return gx - float64(st.output.Geometry.X), gy - float64(st.output.Geometry.Y)
}

// OutputScreencopy returns the screencopy registry tracking sessions bound
// to outputID directly (as opposed to a workspace or fullscreen surface).
func (s *Shell) OutputScreencopy(outputID string) *screencopy.Registry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.byOutput[outputID]; ok {
		return &st.screencopy
	}
	return nil
}

// MaximizedZone returns the non-exclusive rectangle maximized windows fill
// on outputID: the output geometry shrunk by every layer surface's
// ExclusiveZone reservation on the edge it's anchored to. A layer surface
// with no positive ExclusiveZone reserves nothing. Defaults to the full
// output geometry when no layer reserves space.
func (s *Shell) MaximizedZone(outputID string) output.Rect {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.byOutput[outputID]
	if !ok {
		return output.Rect{}
	}
	zone := st.output.Geometry
	for _, l := range st.layers {
		if l.ExclusiveZone <= 0 {
			continue
		}
		switch {
		case l.Anchor&AnchorTop != 0:
			zone.Y += l.ExclusiveZone
			zone.Height -= l.ExclusiveZone
		case l.Anchor&AnchorBottom != 0:
			zone.Height -= l.ExclusiveZone
		case l.Anchor&AnchorLeft != 0:
			zone.X += l.ExclusiveZone
			zone.Width -= l.ExclusiveZone
		case l.Anchor&AnchorRight != 0:
			zone.Width -= l.ExclusiveZone
		}
	}
	return zone
}

// Layout returns the configured workspace arrangement axis.
func (s *Shell) Layout() WorkspaceLayout { return s.layout }
