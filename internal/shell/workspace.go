package shell

import (
	"fmt"

	"github.com/tidewm/tide/internal/screencopy"
)

// Workspace is one output's tiling space: an ordered row (or column, per
// Orientation) of stacks plus a floating layer on top. Each output owns an
// independent sequence of workspaces; only one per output is active at a
// time.
type Workspace struct {
	Name        string
	Orientation Orientation

	tiles    []*stack
	floating []*Window

	focusStack []string // most-recently-focused window IDs, front = current
	fullscreen *Window

	Screencopy screencopy.Registry
}

// NewWorkspace creates an empty workspace.
func NewWorkspace(name string) *Workspace {
	return &Workspace{Name: name, Orientation: OrientationHorizontal}
}

// AddWindow inserts a new tiled window as its own stack at the end of the
// tree and gives it focus.
func (w *Workspace) AddWindow(win *Window) {
	w.tiles = append(w.tiles, newStack(win))
	w.pushFocus(win.ID)
}

// AddFloating inserts a new floating window above the tiling layer.
func (w *Workspace) AddFloating(win *Window) {
	win.Floating = true
	w.floating = append(w.floating, win)
	w.pushFocus(win.ID)
}

// RemoveWindow drops a window from wherever it lives (tiled stack or
// floating layer) and fixes up focus.
func (w *Workspace) RemoveWindow(id string) {
	for i, s := range w.tiles {
		if _, ok := s.remove(id); ok {
			if len(s.windows) == 0 {
				w.tiles = append(w.tiles[:i], w.tiles[i+1:]...)
			}
			break
		}
	}
	for i, win := range w.floating {
		if win.ID == id {
			w.floating = append(w.floating[:i], w.floating[i+1:]...)
			break
		}
	}
	if w.fullscreen != nil && w.fullscreen.ID == id {
		w.fullscreen = nil
	}
	w.dropFocus(id)
}

func (w *Workspace) pushFocus(id string) {
	w.dropFocus(id)
	w.focusStack = append([]string{id}, w.focusStack...)
}

func (w *Workspace) dropFocus(id string) {
	for i, existing := range w.focusStack {
		if existing == id {
			w.focusStack = append(w.focusStack[:i], w.focusStack[i+1:]...)
			return
		}
	}
}

// CurrentFocus returns the most-recently-focused window on this workspace,
// or a zero FocusTarget if it's empty.
func (w *Workspace) CurrentFocus() FocusTarget {
	for _, id := range w.focusStack {
		if win := w.findWindow(id); win != nil {
			return win.Target()
		}
	}
	return FocusTarget{}
}

// ClearFocus drops the window-focus stack entirely, e.g. when keyboard focus
// moves to a layer surface or to nothing at all.
func (w *Workspace) ClearFocus() {
	w.focusStack = nil
}

// FindWindow looks up a window on this workspace (tiled, stacked, or
// floating) by ID.
func (w *Workspace) FindWindow(id string) *Window {
	return w.findWindow(id)
}

func (w *Workspace) findWindow(id string) *Window {
	for _, s := range w.tiles {
		if win := s.activeWindow(); win != nil && win.ID == id {
			return win
		}
		for _, win := range s.windows {
			if win.ID == id {
				return win
			}
		}
	}
	for _, win := range w.floating {
		if win.ID == id {
			return win
		}
	}
	return nil
}

func (w *Workspace) tileIndexOf(id string) (int, bool) {
	for i, s := range w.tiles {
		if _, ok := s.indexOf(id); ok {
			return i, true
		}
	}
	return -1, false
}

// NodeDescriptorFor resolves the tree position a window currently occupies,
// used by SwapWindow to capture its source before entering overview mode and
// by the overview-swap commit to resolve its target.
func (w *Workspace) NodeDescriptorFor(id string) (NodeDescriptor, bool) {
	i, ok := w.tileIndexOf(id)
	if !ok {
		return NodeDescriptor{}, false
	}
	return NodeDescriptor{Workspace: w.Name, Path: fmt.Sprintf("%d", i)}, true
}

// NextFocus walks the tiling tree one step in dir from the currently focused
// window. Horizontal workspaces treat Left/Right as tree navigation and
// Up/Down as stack navigation (and vice versa for Vertical workspaces);
// running off either end of the tree yields FocusResultNone so the caller
// can fall through to a workspace or output switch.
func (w *Workspace) NextFocus(dir Direction) FocusResult {
	cur := w.CurrentFocus()
	if cur.Empty() {
		return FocusResult{Kind: FocusResultNone}
	}
	i, ok := w.tileIndexOf(cur.WindowID)
	if !ok {
		return FocusResult{Kind: FocusResultNone}
	}

	alongTree := (w.Orientation == OrientationHorizontal && (dir == DirectionLeft || dir == DirectionRight)) ||
		(w.Orientation == OrientationVertical && (dir == DirectionUp || dir == DirectionDown))

	if alongTree {
		step := 1
		if dir == DirectionLeft || dir == DirectionUp {
			step = -1
		}
		j := i + step
		if j < 0 || j >= len(w.tiles) {
			return FocusResult{Kind: FocusResultNone}
		}
		target := w.tiles[j].activeWindow()
		w.pushFocus(target.ID)
		return FocusResult{Kind: FocusResultTarget, Target: target.Target()}
	}

	s := w.tiles[i]
	step := 1
	if dir == DirectionLeft || dir == DirectionUp {
		step = -1
	}
	next := s.active + step
	if next < 0 || next >= len(s.windows) {
		return FocusResult{Kind: FocusResultNone}
	}
	s.active = next
	target := s.activeWindow()
	w.pushFocus(target.ID)
	return FocusResult{Kind: FocusResultHandled, Target: target.Target()}
}

// MoveCurrentWindow moves the focused window one step along dir within the
// tree (swapping it with its neighbor), or reports MoveResultFurther once it
// reaches the tree's edge so the dispatcher can continue the move into the
// next workspace or output.
func (w *Workspace) MoveCurrentWindow(dir Direction) MoveResult {
	if w.fullscreen != nil {
		return MoveResult{Kind: MoveResultNone}
	}
	cur := w.CurrentFocus()
	if cur.Empty() {
		return MoveResult{Kind: MoveResultNone}
	}
	i, ok := w.tileIndexOf(cur.WindowID)
	if !ok {
		return MoveResult{Kind: MoveResultNone}
	}

	alongTree := (w.Orientation == OrientationHorizontal && (dir == DirectionLeft || dir == DirectionRight)) ||
		(w.Orientation == OrientationVertical && (dir == DirectionUp || dir == DirectionDown))
	if !alongTree {
		return MoveResult{Kind: MoveResultNone}
	}

	step := 1
	if dir == DirectionLeft || dir == DirectionUp {
		step = -1
	}
	j := i + step
	if j < 0 || j >= len(w.tiles) {
		return MoveResult{Kind: MoveResultFurther, Direction: dir, Target: cur}
	}
	w.tiles[i], w.tiles[j] = w.tiles[j], w.tiles[i]
	return MoveResult{Kind: MoveResultShiftFocus, Target: cur}
}

// SwapTrees exchanges the tile positions named by a and b, which may belong
// to different workspaces — the commit step of an overview-swap session.
func SwapTrees(wsByName map[string]*Workspace, a, b NodeDescriptor) {
	wsA, wsB := wsByName[a.Workspace], wsByName[b.Workspace]
	if wsA == nil || wsB == nil {
		return
	}
	var ia, ib int
	fmt.Sscanf(a.Path, "%d", &ia)
	fmt.Sscanf(b.Path, "%d", &ib)
	if ia < 0 || ia >= len(wsA.tiles) || ib < 0 || ib >= len(wsB.tiles) {
		return
	}
	if wsA == wsB {
		wsA.tiles[ia], wsA.tiles[ib] = wsA.tiles[ib], wsA.tiles[ia]
		return
	}
	wsA.tiles[ia], wsB.tiles[ib] = wsB.tiles[ib], wsA.tiles[ia]
}

// MoveTree relocates the tile at src onto dst's workspace, appending it
// there — used when an overview-swap session ends with no focused window
// to swap with.
func MoveTree(wsByName map[string]*Workspace, src NodeDescriptor, dstWorkspace string) {
	wsSrc, wsDst := wsByName[src.Workspace], wsByName[dstWorkspace]
	if wsSrc == nil || wsDst == nil {
		return
	}
	var is int
	fmt.Sscanf(src.Path, "%d", &is)
	if is < 0 || is >= len(wsSrc.tiles) {
		return
	}
	moved := wsSrc.tiles[is]
	wsSrc.tiles = append(wsSrc.tiles[:is], wsSrc.tiles[is+1:]...)
	wsDst.tiles = append(wsDst.tiles, moved)
}

// Relayout recomputes each tile and floating window's on-screen geometry
// within bounds, splitting evenly along Orientation — a simplified stand-in
// for the real layout engine, sufficient to keep element_under accurate.
func (w *Workspace) Relayout(x, y, width, height int32) {
	n := int32(len(w.tiles))
	if n == 0 {
		return
	}
	if w.Orientation == OrientationHorizontal {
		each := width / n
		for i, s := range w.tiles {
			for _, win := range s.windows {
				win.X, win.Y, win.Width, win.Height = x+int32(i)*each, y, each, height
			}
		}
	} else {
		each := height / n
		for i, s := range w.tiles {
			for _, win := range s.windows {
				win.X, win.Y, win.Width, win.Height = x, y+int32(i)*each, width, each
			}
		}
	}
}

// ElementUnder hit-tests the tiling and floating layers at a
// workspace-relative point, floating windows taking precedence (they are
// always above the tiling layer), per the fullscreen/maximized-aware
// ordering the SurfaceUnder function composes around this.
func (w *Workspace) ElementUnder(x, y float64) *Window {
	if w.fullscreen != nil {
		return w.fullscreen
	}
	for i := len(w.floating) - 1; i >= 0; i-- {
		if w.floating[i].Contains(x, y) {
			return w.floating[i]
		}
	}
	for _, s := range w.tiles {
		if win := s.activeWindow(); win != nil && win.Contains(x, y) {
			return win
		}
	}
	return nil
}

// SetFullscreen marks win as the workspace's single fullscreen window, or
// clears fullscreen state if win is nil.
func (w *Workspace) SetFullscreen(win *Window) {
	if w.fullscreen != nil {
		w.fullscreen.Fullscreen = false
	}
	w.fullscreen = win
	if win != nil {
		win.Fullscreen = true
	}
}

// Fullscreen returns the workspace's current fullscreen window, if any.
func (w *Workspace) Fullscreen() *Window { return w.fullscreen }

// ToggleMaximize flips the focused window's maximized flag.
func (w *Workspace) ToggleMaximize() {
	cur := w.CurrentFocus()
	if win := w.findWindow(cur.WindowID); win != nil {
		win.Maximized = !win.Maximized
	}
}

// ToggleFloating moves the focused window between the tiling tree and the
// floating layer.
func (w *Workspace) ToggleFloating() {
	cur := w.CurrentFocus()
	if cur.Empty() {
		return
	}
	if i, ok := w.tileIndexOf(cur.WindowID); ok {
		s := w.tiles[i]
		win, _ := s.remove(cur.WindowID)
		if len(s.windows) == 0 {
			w.tiles = append(w.tiles[:i], w.tiles[i+1:]...)
		}
		w.AddFloating(win)
		return
	}
	for i, win := range w.floating {
		if win.ID == cur.WindowID {
			w.floating = append(w.floating[:i], w.floating[i+1:]...)
			win.Floating = false
			w.tiles = append(w.tiles, newStack(win))
			w.pushFocus(win.ID)
			return
		}
	}
}

// ToggleStacking merges the focused tile with its tree-neighbor into one
// stack, or — if it is already stacked — splits it back out into its own
// tile.
func (w *Workspace) ToggleStacking() {
	cur := w.CurrentFocus()
	i, ok := w.tileIndexOf(cur.WindowID)
	if !ok {
		return
	}
	s := w.tiles[i]
	if len(s.windows) > 1 {
		win, _ := s.remove(cur.WindowID)
		w.tiles = append(w.tiles, newStack(win))
		return
	}
	if i+1 < len(w.tiles) {
		neighbor := w.tiles[i+1]
		neighbor.windows = append(neighbor.windows, s.windows...)
		w.tiles = append(w.tiles[:i], w.tiles[i+1:]...)
	}
}

// ToggleOrientation flips the workspace's split axis.
func (w *Workspace) ToggleOrientation() {
	if w.Orientation == OrientationHorizontal {
		w.Orientation = OrientationVertical
	} else {
		w.Orientation = OrientationHorizontal
	}
}

// SetOrientation sets the workspace's split axis explicitly.
func (w *Workspace) SetOrientation(o Orientation) { w.Orientation = o }
