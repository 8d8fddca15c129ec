package core

import (
	evdev "github.com/gvalkov/golang-evdev"

	"github.com/tidewm/tide/internal/keysym"
)

// updateModifiers folds a raw key event into a seat's held-modifier mask.
// Modifier keys are tracked independently of whatever else the filter does
// with the event — they still get forwarded to the client like any other
// key (a client may itself care about bare Ctrl/Alt presses).
func updateModifiers(m keysym.Modifiers, code uint16, state keysym.KeyState) keysym.Modifiers {
	pressed := state == keysym.KeyPressed
	switch code {
	case evdev.KEY_LEFTCTRL, evdev.KEY_RIGHTCTRL:
		m.Ctrl = pressed
	case evdev.KEY_LEFTALT, evdev.KEY_RIGHTALT:
		m.Alt = pressed
	case evdev.KEY_LEFTMETA, evdev.KEY_RIGHTMETA:
		m.Logo = pressed
	case evdev.KEY_LEFTSHIFT, evdev.KEY_RIGHTSHIFT:
		m.Shift = pressed
	}
	return m
}
