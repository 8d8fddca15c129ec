package core

import (
	"time"

	"github.com/tidewm/tide/internal/keysym"
	"github.com/tidewm/tide/internal/logger"
	"github.com/tidewm/tide/internal/shell"
)

const (
	resizeRepeatInitial = 200 * time.Millisecond
	resizeRepeatNext    = 25 * time.Millisecond
)

// ProcessKeyboard runs a raw key event through the ordered filter rules and
// either absorbs it (a modal transition, a bound shortcut, a VT switch, a
// suppressed release) or forwards it to the client as a plain key event.
// The rules run in a fixed order because later ones assume earlier ones
// already handled their case — e.g. a key that ends overview mode must never
// also be looked up as a global shortcut.
func (c *Core) ProcessKeyboard(seatName string, ev Event) {
	s := c.Seats.Get(seatName)
	if s == nil {
		return
	}
	sym := keysym.FromEvdev(ev.KeyCode)
	mods := updateModifiers(s.Modifiers(), ev.KeyCode, ev.KeyState)
	s.SetModifiers(mods)
	outputID := s.ActiveOutput()

	// Rule 1: overview-move teardown.
	if ov := c.Shell.OverviewMode(); ov.Active && ov.Trigger.Kind == shell.TriggerKeyboardMove {
		if mods.DroppedFrom(ov.Trigger.Modifiers) {
			c.Shell.SetOverviewMode(shell.OverviewMode{})
			return
		}
	}

	// Rule 2: overview-swap teardown + commit.
	if ov := c.Shell.OverviewMode(); ov.Active && ov.Trigger.Kind == shell.TriggerKeyboardSwap {
		keyReleased := ev.KeyState == keysym.KeyReleased && sym == ov.Trigger.Pattern.Key
		if mods.DroppedFrom(ov.Trigger.Modifiers) || keyReleased {
			c.commitOverviewSwap(seatName, outputID, ov.Trigger.Node)
			c.Shell.SetOverviewMode(shell.OverviewMode{})
			return
		}
	}

	// Rule 3: resize mode maintenance.
	if rm := c.Shell.ResizeMode(); rm.Active {
		if ev.KeyState == keysym.KeyReleased && sym == rm.Pattern.Key {
			c.Shell.SetResizeMode(shell.ResizeMode{})
			return
		}
		if ev.KeyState == keysym.KeyPressed && mods != rm.Pattern.Modifiers {
			candidate := keysym.KeyPattern{Modifiers: mods, Key: rm.Pattern.Key}
			if action, ok := c.lookupBinding(candidate); ok && action.Kind == shell.ActionResizing {
				c.Shell.SetResizeMode(shell.ResizeMode{Active: true, Pattern: candidate, Direction: action.Resize})
			} else {
				c.Shell.SetResizeMode(shell.ResizeMode{})
			}
		}
	}

	// Rule 4: resize arrow interception.
	if rm := c.Shell.ResizeMode(); rm.Active {
		if arrow, ok := keysym.IsHJKLArrow(sym); ok {
			edge := shell.ResizeEdgeFor(arrow, rm.Direction)
			c.Shell.Resize(outputID, edge, ev.KeyState)
			if ev.KeyState == keysym.KeyPressed {
				token := c.Loop.InsertTimer(resizeRepeatInitial, func(elapsed time.Duration) time.Duration {
					c.Shell.Resize(outputID, edge, keysym.KeyPressed)
					return resizeRepeatNext
				})
				s.Suppressed().Add(sym, token)
			} else {
				if tokens, ok := s.Suppressed().Filter(sym); ok {
					for _, t := range tokens {
						c.Loop.Remove(t)
					}
				}
			}
			return
		}
	}

	// Rule 5: suppressed-key release.
	if ev.KeyState == keysym.KeyReleased {
		if tokens, ok := s.Suppressed().Filter(sym); ok {
			for _, t := range tokens {
				c.Loop.Remove(t)
			}
			return
		}
	}

	// Rule 6: VT switch.
	if ev.KeyState == keysym.KeyPressed {
		if vt, ok := keysym.IsVTSwitchKey(ev.KeyCode, mods); ok {
			if err := c.VT.SwitchTo(vt); err != nil {
				logger.Warnf("core: vt switch to %d failed: %v", vt, err)
			}
			s.Suppressed().Add(sym)
			return
		}
	}

	// Rule 7: global shortcut scan. Skipped entirely while the focused
	// surface holds an active keyboard_shortcuts_inhibitor, so clients
	// that want raw key chords (terminal emulators, remote desktop
	// viewers) aren't intercepted by the compositor's own bindings.
	if ev.KeyState == keysym.KeyPressed && !c.Shell.ShortcutsInhibited(outputID) {
		pattern := keysym.KeyPattern{Modifiers: mods, Key: sym}
		if action, ok := c.lookupBinding(pattern); ok {
			s.Suppressed().Add(sym)
			c.Dispatch(seatName, action, pattern)
			return
		}
	}

	// Rule 8: default forward.
	c.Sink.KeyboardKey(seatName, ev.KeyCode, ev.KeyState, ev.Time)
}

// commitOverviewSwap resolves the node descriptor of the keyboard focus
// at the moment the swap session ends and exchanges it with the trigger's
// captured source descriptor, deferred past the current dispatch so the
// focus change it causes never reenters the filter mid-event.
func (c *Core) commitOverviewSwap(seatName, outputID string, src shell.NodeDescriptor) {
	ws := c.Shell.CurrentWorkspace(outputID)
	if ws == nil {
		return
	}
	target := ws.CurrentFocus()
	if target.Empty() {
		// Nothing focused to swap with: fall back to relocating the
		// source tree onto this now-empty workspace.
		c.Shell.CommitMove(src, ws.Name)
		return
	}
	dst, ok := ws.NodeDescriptorFor(target.WindowID)
	if !ok {
		c.Shell.CommitMove(src, ws.Name)
		return
	}
	c.Shell.CommitSwap(src, dst)
	c.Loop.InsertIdle(func() {
		newFocus := ws.CurrentFocus()
		c.Shell.SetFocus(outputID, newFocus)
		c.Sink.SetKeyboardFocus(seatName, newFocus)
	})
}
