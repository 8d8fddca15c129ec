// Package keysym defines the modifier/keysym vocabulary the keyboard filter
// and configuration layer match bindings against. It mirrors the subset of
// xkbcommon's keysym space the compositor actually cares about: letters,
// arrows, function row, and the XF86 VT-switch range.
package keysym

import evdev "github.com/gvalkov/golang-evdev"

// Modifiers is the modifier mask carried on every keyboard event.
type Modifiers struct {
	Ctrl  bool
	Alt   bool
	Logo  bool
	Shift bool
}

// Empty reports whether no modifier bit is set.
func (m Modifiers) Empty() bool {
	return !m.Ctrl && !m.Alt && !m.Logo && !m.Shift
}

// DroppedFrom reports whether any bit set in required is now absent from m,
// i.e. the user released at least one of the modifiers that started a modal
// mode keyed on `required`.
func (m Modifiers) DroppedFrom(required Modifiers) bool {
	return (required.Ctrl && !m.Ctrl) ||
		(required.Alt && !m.Alt) ||
		(required.Logo && !m.Logo) ||
		(required.Shift && !m.Shift)
}

// KeyPattern is a configured or runtime key chord: a modifier mask plus a
// single keysym.
type KeyPattern struct {
	Modifiers Modifiers
	Key       uint32
}

// KeyState is whether a key event is a press or a release.
type KeyState int

const (
	KeyPressed KeyState = iota
	KeyReleased
)

// Equal reports whether two patterns match the same chord.
func (p KeyPattern) Equal(o KeyPattern) bool {
	return p.Modifiers == o.Modifiers && p.Key == o.Key
}

// Keysym is a small, compositor-local numbering of the symbols the filter
// needs to recognize by name. Values below 0xff00 track evdev KEY_* codes
// directly (modified syms for printable keys coincide with the physical
// keycode in the default "us" layout, which is all the filter needs — the
// modal FSM matches on symbol identity, not rendering).
type Keysym = uint32

// Named keysyms used by the filter and by the default key-binding table.
// The numeric space above 0xff00 is reserved for non-printable/XF86 symbols
// so it never collides with a translated evdev keycode.
const (
	KeyLeft  Keysym = 0xff51
	KeyUp    Keysym = 0xff52
	KeyRight Keysym = 0xff53
	KeyDown  Keysym = 0xff54

	KeyXF86SwitchVT1  Keysym = 0x1008FE01
	KeyXF86SwitchVT12 Keysym = 0x1008FE0C
)

// FromEvdev translates a raw evdev keycode to the keysym space used by the
// filter. Letters and digits map to their evdev code (so configs can write
// KEY_Q-style bindings); the dedicated arrow keys map to the named Key*
// constants; everything else passes through unchanged.
func FromEvdev(code uint16) Keysym {
	switch code {
	case evdev.KEY_LEFT:
		return KeyLeft
	case evdev.KEY_UP:
		return KeyUp
	case evdev.KEY_RIGHT:
		return KeyRight
	case evdev.KEY_DOWN:
		return KeyDown
	default:
		return Keysym(code)
	}
}

// IsVTSwitch reports whether sym is in the XF86Switch_VT_1..12 range and
// returns the 1-based VT number if so.
func IsVTSwitch(sym Keysym) (int, bool) {
	if sym < KeyXF86SwitchVT1 || sym > KeyXF86SwitchVT12 {
		return 0, false
	}
	return int(sym-KeyXF86SwitchVT1) + 1, true
}

// IsVTSwitchKey reports whether code+mods is the Ctrl+Alt+F1..F12 chord the
// kernel/xkb convention maps to a VT switch, returning the 1-based VT
// number. Modeled on the raw keycode directly (rather than a translated
// keysym) since VT switching predates — and is independent of — whatever
// layout is active.
func IsVTSwitchKey(code uint16, mods Modifiers) (int, bool) {
	if !mods.Ctrl || !mods.Alt {
		return 0, false
	}
	if code < evdev.KEY_F1 || code > evdev.KEY_F12 {
		return 0, false
	}
	return int(code-evdev.KEY_F1) + 1, true
}

// IsHJKLArrow reports whether sym is one of the arrow keys or their vim
// (h/j/k/l) equivalents, returning a canonical Direction-free edge name
// ("left", "down", "up", "right") for the resize-mode rule.
func IsHJKLArrow(sym Keysym) (string, bool) {
	switch sym {
	case KeyLeft, Keysym(evdev.KEY_H):
		return "left", true
	case KeyDown, Keysym(evdev.KEY_J):
		return "down", true
	case KeyUp, Keysym(evdev.KEY_K):
		return "up", true
	case KeyRight, Keysym(evdev.KEY_L):
		return "right", true
	default:
		return "", false
	}
}
