// Package shell owns the modal and spatial state the keyboard filter and
// action dispatcher act on: the tiling tree, workspaces, outputs-to-
// workspaces assignment, and the two transient interaction modes (overview
// move/swap and keyboard resize) that the filter's ordered rules exist to
// maintain.
package shell

import "github.com/tidewm/tide/internal/keysym"

// Direction is a spatial direction used for both window movement and
// cross-workspace/output navigation once a move or focus change runs off
// the edge of the current workspace's tiling tree.
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
	DirectionUp
	DirectionDown
)

// Orientation is a tiling split's layout axis, toggled by ToggleOrientation
// or set explicitly by Orientation(o).
type Orientation int

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

// WorkspaceLayout says whether workspaces are arranged horizontally or
// vertically; it decides which Direction values, when a Focus/Move runs off
// the tree, become a workspace switch versus an output switch.
type WorkspaceLayout int

const (
	WorkspaceLayoutHorizontal WorkspaceLayout = iota
	WorkspaceLayoutVertical
)

// NextWorkspaceDirection reports the Direction that, in this layout, steps
// to the next workspace (Right for horizontal, Down for vertical).
func (l WorkspaceLayout) NextWorkspaceDirection() Direction {
	if l == WorkspaceLayoutVertical {
		return DirectionDown
	}
	return DirectionRight
}

// PreviousWorkspaceDirection is the complement of NextWorkspaceDirection.
func (l WorkspaceLayout) PreviousWorkspaceDirection() Direction {
	if l == WorkspaceLayoutVertical {
		return DirectionUp
	}
	return DirectionLeft
}

// ResizeDirection is the sense a resize-mode arrow moves an edge: Outwards
// grows the window, Inwards shrinks it. Left/Up arrows are Outwards on the
// left/top edge and Inwards on the right/bottom edge, and vice versa for
// Right/Down — ResizeEdgeFor below resolves the flip.
type ResizeDirection int

const (
	ResizeOutwards ResizeDirection = iota
	ResizeInwards
)

// ResizeEdge is one edge of a window's bounding box.
type ResizeEdge int

const (
	ResizeEdgeLeft ResizeEdge = iota
	ResizeEdgeRight
	ResizeEdgeTop
	ResizeEdgeBottom
)

// ResizeEdgeFor resolves which edge an arrow key controls, honoring the
// Inwards/Outwards flip: pressing Left normally grows the left edge
// (Outwards), but once the mode has been flipped to Inwards the same key
// shrinks the opposite edge instead — mirrors the original's edge-flip rule
// in the resize-arrow filter step.
func ResizeEdgeFor(arrow string, dir ResizeDirection) ResizeEdge {
	left, right, top, bottom := ResizeEdgeLeft, ResizeEdgeRight, ResizeEdgeTop, ResizeEdgeBottom
	if dir == ResizeInwards {
		left, right, top, bottom = right, left, bottom, top
	}
	switch arrow {
	case "left":
		return left
	case "right":
		return right
	case "up":
		return top
	case "down":
		return bottom
	}
	return left
}

// FocusDirection is the direction argument to the Focus action.
type FocusDirection int

const (
	FocusLeft FocusDirection = iota
	FocusRight
	FocusUp
	FocusDown
)

// ToDirection maps a FocusDirection onto the spatial Direction space used
// for workspace/output fallthrough.
func (f FocusDirection) ToDirection() Direction {
	switch f {
	case FocusLeft:
		return DirectionLeft
	case FocusRight:
		return DirectionRight
	case FocusUp:
		return DirectionUp
	default:
		return DirectionDown
	}
}

// NodeDescriptor identifies a position in a workspace's tiling tree: the
// workspace's name and a path usable by SwapTrees/MoveTree to
// relocate a subtree without needing a live window reference. Two
// descriptors with equal fields refer to the same tree position.
type NodeDescriptor struct {
	Workspace string
	Path      string
}

// Trigger names what started an OverviewMode session, so the filter knows
// how to end it: a pointer button release watches for that exact button; a
// keyboard chord watches for its modifiers being dropped or its key
// released.
type Trigger struct {
	Kind     TriggerKind
	Button   uint32
	Pattern  keysym.KeyPattern
	Modifiers keysym.Modifiers
	Node     NodeDescriptor
}

// TriggerKind discriminates the three ways an overview session can be
// started.
type TriggerKind int

const (
	TriggerPointer TriggerKind = iota
	TriggerKeyboardMove
	TriggerKeyboardSwap
)

// OverviewMode is the compositor-wide window move/swap modal state. Only one
// can be active at a time.
type OverviewMode struct {
	Active  bool
	Trigger Trigger
}

// ResizeMode is the keyboard resize modal state: which chord is currently
// rebound to arrow keys, and in which sense (Inwards/Outwards).
type ResizeMode struct {
	Active    bool
	Pattern   keysym.KeyPattern
	Direction ResizeDirection
}

// FocusTarget is an opaque handle to something that can hold keyboard focus:
// a tiled or floating window, or a layer-shell surface. The core only needs
// identity and a couple of predicates on it, never its pixel contents.
type FocusTarget struct {
	WindowID string
	IsLayer  bool
}

// Empty reports whether this FocusTarget refers to nothing.
func (f FocusTarget) Empty() bool { return f.WindowID == "" && !f.IsLayer }

// FocusResultKind discriminates the outcome of a workspace-internal focus
// navigation attempt.
type FocusResultKind int

const (
	// FocusResultNone means the navigation ran off the edge of the tree;
	// the caller should translate it into a workspace or output switch.
	FocusResultNone FocusResultKind = iota
	// FocusResultHandled means the workspace already changed focus
	// internally (e.g. entered/left a stack) and nothing further is
	// needed.
	FocusResultHandled
	// FocusResultTarget carries the new FocusTarget to install.
	FocusResultTarget
)

// FocusResult is returned by Workspace.NextFocus.
type FocusResult struct {
	Kind   FocusResultKind
	Target FocusTarget
}

// MoveResultKind discriminates the outcome of a workspace-internal window
// move attempt.
type MoveResultKind int

const (
	// MoveResultNone means nothing moved: there is no focused tiled
	// window, a window is fullscreen, or the direction runs across the
	// workspace's orientation rather than along it.
	MoveResultNone MoveResultKind = iota
	// MoveResultFurther means the moved window reached the edge of the
	// tree and the caller should continue the move into the next
	// workspace or output in Direction.
	MoveResultFurther
	// MoveResultShiftFocus means the focused window swapped places with
	// its neighbor; Target is the moved window, and the caller should
	// call Shell.SetFocus(Target).
	MoveResultShiftFocus
)

// MoveResult is returned by Workspace.MoveCurrentWindow.
type MoveResult struct {
	Kind      MoveResultKind
	Direction Direction
	Target    FocusTarget
}
