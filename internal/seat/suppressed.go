package seat

import "github.com/tidewm/tide/internal/evloop"

// SuppressedKeys records keysyms whose press was intercepted by the filter
// (a global shortcut, a resize arrow, a VT switch) so their matching
// release is swallowed too instead of reaching a client as a dangling
// key-up. Each entry also carries the timer tokens (the resize auto-repeat
// timer) that the filter cancels when the matching release arrives.
type SuppressedKeys struct {
	byKey map[uint32][]evloop.Token
}

// NewSuppressedKeys creates an empty tracker.
func NewSuppressedKeys() *SuppressedKeys {
	return &SuppressedKeys{byKey: make(map[uint32][]evloop.Token)}
}

// Add records that sym's press was intercepted, along with zero or more
// timer tokens (e.g. the resize auto-repeat timer) that belong to this
// press and must be torn down together with it.
func (s *SuppressedKeys) Add(sym uint32, tokens ...evloop.Token) {
	s.byKey[sym] = append(s.byKey[sym], tokens...)
}

// Filter reports whether sym was suppressed and, if so, drains and returns
// its associated tokens — the caller is expected to cancel them on the
// event loop. A release for a sym never recorded by Add returns ok=false
// and should be forwarded to the client normally.
func (s *SuppressedKeys) Filter(sym uint32) (tokens []evloop.Token, ok bool) {
	tokens, ok = s.byKey[sym]
	if ok {
		delete(s.byKey, sym)
	}
	return tokens, ok
}

// IsSuppressed reports whether sym currently has a pending suppression,
// without draining it.
func (s *SuppressedKeys) IsSuppressed(sym uint32) bool {
	_, ok := s.byKey[sym]
	return ok
}
