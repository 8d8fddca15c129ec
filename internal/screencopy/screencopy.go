// Package screencopy tracks external subscribers ("sessions") that receive
// cursor and frame updates for an output. The actual frame/cursor buffer
// transport is out of scope here — this package only implements the
// session bookkeeping and the notify contract the pointer handler depends
// on.
package screencopy

import "sync"

// InputType mirrors the cosmic-protocols screencopy InputType enum; only
// Pointer is produced by this core (no touch support, per Non-goals).
type InputType int

const (
	InputTypePointer InputType = iota
)

// Geometry is a cursor hotspot-relative rectangle in buffer space.
type Geometry struct {
	X, Y, Width, Height int32
}

// Offset is the cursor image's hotspot offset.
type Offset struct {
	X, Y int32
}

// Session is anything that wants to be told about cursor motion and output
// crossings for the output(s) it is watching.
type Session interface {
	CursorEnter(seatName string, kind InputType)
	CursorLeave(seatName string, kind InputType)
	CursorInfo(seatName string, kind InputType, geom Geometry, offset Offset)
}

// Registry is a per-owner (workspace, output, or fullscreen-surface) set of
// active sessions. The zero value is usable.
type Registry struct {
	mu       sync.Mutex
	sessions []Session
}

// Add registers a session.
func (r *Registry) Add(s Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = append(r.sessions, s)
}

// Remove unregisters a session.
func (r *Registry) Remove(s Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.sessions {
		if existing == s {
			r.sessions = append(r.sessions[:i], r.sessions[i+1:]...)
			return
		}
	}
}

// All returns a snapshot of the currently registered sessions.
func (r *Registry) All() []Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Session, len(r.sessions))
	copy(out, r.sessions)
	return out
}

// Broadcast returns the union of the sessions in regs, without
// duplicating sessions present in more than one (e.g. a session watching
// both the workspace and its output). Used by Shell.SessionsForOutput to
// combine a workspace's own sessions, a fullscreen window's per-surface
// sessions, and the output's sessions.
func Broadcast(regs ...*Registry) []Session {
	seen := make(map[Session]bool)
	var all []Session
	for _, r := range regs {
		if r == nil {
			continue
		}
		for _, s := range r.All() {
			if !seen[s] {
				seen[s] = true
				all = append(all, s)
			}
		}
	}
	return all
}
