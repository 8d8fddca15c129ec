package shell

import "github.com/tidewm/tide/internal/screencopy"

// Window is the compositor's view of a single top-level surface. The
// geometry fields are populated by whatever lays the workspace out
// (Workspace.Relayout) and consulted by the hit tester and pointer handler;
// everything else is state the action dispatcher flips.
type Window struct {
	ID     string
	Output string

	Floating   bool
	Maximized  bool
	Fullscreen bool

	X, Y, Width, Height int32

	// Screencopy holds sessions scoped to this specific surface, used
	// only while the window is fullscreen (sessionsForOutput folds these
	// into an output's broadcast set).
	Screencopy screencopy.Registry

	// ShortcutsInhibited mirrors an active keyboard_shortcuts_inhibitor for
	// this window's surface; while true, the global shortcut scan skips
	// this window so the client can receive raw key chords itself.
	ShortcutsInhibited bool
}

// Contains reports whether (x, y) in workspace-relative coordinates falls
// within this window's current bounds.
func (w *Window) Contains(x, y float64) bool {
	return x >= float64(w.X) && x < float64(w.X+w.Width) &&
		y >= float64(w.Y) && y < float64(w.Y+w.Height)
}

// Target returns the FocusTarget handle for this window.
func (w *Window) Target() FocusTarget {
	if w == nil {
		return FocusTarget{}
	}
	return FocusTarget{WindowID: w.ID}
}

// stack is one tile position in the tree: one or more windows occupying the
// same slot, only the active one visible (ToggleStacking groups windows
// into these; an unstacked tile is simply a stack of length one).
type stack struct {
	windows []*Window
	active  int
}

func newStack(w *Window) *stack {
	return &stack{windows: []*Window{w}}
}

func (s *stack) activeWindow() *Window {
	if s == nil || len(s.windows) == 0 {
		return nil
	}
	return s.windows[s.active]
}

func (s *stack) indexOf(id string) (int, bool) {
	for i, w := range s.windows {
		if w.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s *stack) remove(id string) (*Window, bool) {
	i, ok := s.indexOf(id)
	if !ok {
		return nil, false
	}
	removed := s.windows[i]
	s.windows = append(s.windows[:i], s.windows[i+1:]...)
	if s.active >= len(s.windows) && s.active > 0 {
		s.active--
	}
	return removed, true
}
