package core

import (
	"github.com/tidewm/tide/internal/keysym"
	"github.com/tidewm/tide/internal/logger"
	"github.com/tidewm/tide/internal/output"
	"github.com/tidewm/tide/internal/shell"
)

// Dispatch executes a as a side effect on behalf of seatName. pattern is
// the chord that produced a — carried through so actions that enter a
// modal mode (Move, SwapWindow) can record what trigger should end it.
// Several arms recurse into Dispatch themselves: running off the edge of a
// workspace falls through to an output switch, and running off the edge of
// the output list is simply a no-op, matching the original's "try the
// smaller move, then the bigger one" fallback chain.
func (c *Core) Dispatch(seatName string, a shell.Action, pattern keysym.KeyPattern) {
	s := c.Seats.Get(seatName)
	if s == nil {
		return
	}
	outputID := s.ActiveOutput()

	switch a.Kind {
	case shell.ActionTerminate:
		logger.Infof("core: terminate requested")

	case shell.ActionDebug:
		logger.Debugf("core: debug action (no-op)")

	case shell.ActionClose:
		ws := c.Shell.CurrentWorkspace(outputID)
		if ws == nil {
			return
		}
		target := ws.CurrentFocus()
		if !target.Empty() {
			ws.RemoveWindow(target.WindowID)
		}

	case shell.ActionWorkspace:
		c.Shell.ActivateWorkspace(outputID, workspaceIndex(a.Workspace))

	case shell.ActionNextWorkspace:
		if !c.Shell.ActivateNextWorkspace(outputID) {
			c.Dispatch(seatName, shell.NextOutput(), pattern)
		}

	case shell.ActionPreviousWorkspace:
		if !c.Shell.ActivatePreviousWorkspace(outputID) {
			c.Dispatch(seatName, shell.PreviousOutput(), pattern)
		}

	case shell.ActionLastWorkspace:
		c.Shell.ActivateLastWorkspace(outputID)

	case shell.ActionMoveToWorkspace, shell.ActionSendToWorkspace:
		c.moveFocusedTo(seatName, outputID, workspaceIndex(a.Workspace), a.Kind == shell.ActionMoveToWorkspace)

	case shell.ActionMoveToNextWorkspace, shell.ActionSendToNextWorkspace:
		follow := a.Kind == shell.ActionMoveToNextWorkspace
		n := c.Shell.WorkspaceIndex(outputID) + 1
		if !c.moveFocusedTo(seatName, outputID, n, follow) {
			if follow {
				c.Dispatch(seatName, shell.MoveToNextOutput(), pattern)
			} else {
				c.Dispatch(seatName, shell.SendToNextOutput(), pattern)
			}
		}

	case shell.ActionMoveToPreviousWorkspace, shell.ActionSendToPreviousWorkspace:
		// Corrected fallthrough: the previous-direction arm falls back
		// to the previous output, not the next one.
		follow := a.Kind == shell.ActionMoveToPreviousWorkspace
		n := c.Shell.WorkspaceIndex(outputID) - 1
		if n < 0 || !c.moveFocusedTo(seatName, outputID, n, follow) {
			if follow {
				c.Dispatch(seatName, shell.MoveToPreviousOutput(), pattern)
			} else {
				c.Dispatch(seatName, shell.SendToPreviousOutput(), pattern)
			}
		}

	case shell.ActionMoveToLastWorkspace, shell.ActionSendToLastWorkspace:
		c.moveFocusedTo(seatName, outputID, lastWorkspaceIndex(c.Shell, outputID), a.Kind == shell.ActionMoveToLastWorkspace)

	case shell.ActionNextOutput, shell.ActionPreviousOutput:
		c.switchOutput(seatName, outputID, a.Kind == shell.ActionNextOutput)

	case shell.ActionMoveToNextOutput, shell.ActionSendToNextOutput, shell.ActionMoveToPreviousOutput, shell.ActionSendToPreviousOutput:
		next := a.Kind == shell.ActionMoveToNextOutput || a.Kind == shell.ActionSendToNextOutput
		follow := a.Kind == shell.ActionMoveToNextOutput || a.Kind == shell.ActionMoveToPreviousOutput
		c.moveFocusedToOutput(seatName, outputID, next, follow)

	case shell.ActionFocus:
		c.dispatchFocus(seatName, outputID, a.Focus, pattern)

	case shell.ActionMove:
		c.dispatchMove(seatName, outputID, a.Move, pattern)

	case shell.ActionSwapWindow:
		c.dispatchSwapWindow(seatName, outputID, pattern)

	case shell.ActionMaximize:
		if ws := c.Shell.CurrentWorkspace(outputID); ws != nil {
			ws.ToggleMaximize()
		}

	case shell.ActionResizing:
		c.Shell.SetResizeMode(shell.ResizeMode{Active: true, Pattern: pattern, Direction: a.Resize})

	case shell.ActionToggleOrientation:
		if ws := c.Shell.CurrentWorkspace(outputID); ws != nil {
			ws.ToggleOrientation()
		}

	case shell.ActionOrientation:
		if ws := c.Shell.CurrentWorkspace(outputID); ws != nil {
			ws.SetOrientation(a.Orient)
		}

	case shell.ActionToggleStacking:
		if ws := c.Shell.CurrentWorkspace(outputID); ws != nil {
			ws.ToggleStacking()
		}

	case shell.ActionToggleTiling, shell.ActionToggleWindowFloating:
		if ws := c.Shell.CurrentWorkspace(outputID); ws != nil {
			ws.ToggleFloating()
		}

	case shell.ActionSpawn:
		if err := c.Spawner.Spawn(a.Command); err != nil {
			logger.Warnf("core: spawn %q failed: %v", a.Command, err)
		}
	}
}

func (c *Core) stepOutput(cur *output.Output, next bool) (*output.Output, bool) {
	if next {
		return c.Shell.Outputs().Next(cur)
	}
	return c.Shell.Outputs().Previous(cur)
}

func workspaceIndex(n int) int {
	if n == 0 {
		return 9
	}
	return n - 1
}

func lastWorkspaceIndex(sh *shell.Shell, outputID string) int {
	n := sh.WorkspaceCount(outputID) - 1
	if n < 0 {
		return 0
	}
	return n
}

// moveFocusedTo relocates the currently focused window on outputID to
// workspace index n, reporting whether there was anything to move.
func (c *Core) moveFocusedTo(seatName, outputID string, n int, follow bool) bool {
	ws := c.Shell.CurrentWorkspace(outputID)
	if ws == nil || n < 0 {
		return false
	}
	target := ws.CurrentFocus()
	if target.Empty() {
		return false
	}
	win := ws.FindWindow(target.WindowID)
	if win == nil {
		return false
	}
	return c.Shell.MoveWindowToWorkspace(win, outputID, n, follow)
}

func (c *Core) switchOutput(seatName, outputID string, next bool) {
	cur := c.findOutput(outputID)
	if cur == nil {
		return
	}
	target, ok := c.stepOutput(cur, next)
	if !ok {
		return
	}
	if s := c.Seats.Get(seatName); s != nil {
		s.SetActiveOutput(target.ID)
	}
}

func (c *Core) moveFocusedToOutput(seatName, outputID string, next, follow bool) {
	cur := c.findOutput(outputID)
	if cur == nil {
		return
	}
	target, ok := c.stepOutput(cur, next)
	if !ok {
		return
	}
	ws := c.Shell.CurrentWorkspace(outputID)
	if ws == nil {
		return
	}
	focused := ws.CurrentFocus()
	if focused.Empty() {
		return
	}
	win := ws.FindWindow(focused.WindowID)
	if win == nil {
		return
	}
	dstIdx := c.Shell.WorkspaceIndex(target.ID)
	if dstIdx < 0 {
		dstIdx = 0
	}
	if c.Shell.MoveWindowToWorkspace(win, target.ID, dstIdx, follow) && follow {
		if s := c.Seats.Get(seatName); s != nil {
			s.SetActiveOutput(target.ID)
		}
	}
}

func (c *Core) dispatchFocus(seatName, outputID string, dir shell.FocusDirection, pattern keysym.KeyPattern) {
	ws := c.Shell.CurrentWorkspace(outputID)
	if ws == nil {
		return
	}
	res := ws.NextFocus(dir.ToDirection())
	switch res.Kind {
	case shell.FocusResultTarget:
		c.Shell.SetFocus(outputID, res.Target)
		c.Sink.SetKeyboardFocus(seatName, res.Target)
	case shell.FocusResultHandled:
		c.Sink.SetKeyboardFocus(seatName, res.Target)
	case shell.FocusResultNone:
		c.fallthroughDirection(seatName, dir.ToDirection(), pattern, false)
	}
}

func (c *Core) dispatchMove(seatName, outputID string, dir shell.Direction, pattern keysym.KeyPattern) {
	ws := c.Shell.CurrentWorkspace(outputID)
	if ws == nil || ws.Fullscreen() != nil {
		return
	}
	res := ws.MoveCurrentWindow(dir)
	switch res.Kind {
	case shell.MoveResultFurther:
		c.fallthroughDirection(seatName, res.Direction, pattern, true)
	case shell.MoveResultShiftFocus:
		c.Shell.SetFocus(outputID, res.Target)
		c.Sink.SetKeyboardFocus(seatName, res.Target)
	case shell.MoveResultNone:
		cur := ws.CurrentFocus()
		if win := ws.FindWindow(cur.WindowID); win != nil && !win.Floating {
			mods := keysym.Modifiers{}
			if s := c.Seats.Get(seatName); s != nil {
				mods = s.Modifiers()
			}
			c.Shell.SetOverviewMode(shell.OverviewMode{
				Active: true,
				Trigger: shell.Trigger{Kind: shell.TriggerKeyboardMove, Pattern: pattern, Modifiers: mods},
			})
		}
	}
}

func (c *Core) dispatchSwapWindow(seatName, outputID string, pattern keysym.KeyPattern) {
	ws := c.Shell.CurrentWorkspace(outputID)
	if ws == nil || ws.Fullscreen() != nil {
		return
	}
	cur := ws.CurrentFocus()
	if cur.Empty() {
		return
	}
	desc, ok := ws.NodeDescriptorFor(cur.WindowID)
	if !ok {
		return
	}
	mods := keysym.Modifiers{}
	if s := c.Seats.Get(seatName); s != nil {
		mods = s.Modifiers()
	}
	c.Shell.SetOverviewMode(shell.OverviewMode{
		Active: true,
		Trigger: shell.Trigger{
			Kind: shell.TriggerKeyboardSwap, Pattern: pattern, Modifiers: mods, Node: desc,
		},
	})
}

// fallthroughDirection translates a Direction that ran off the edge of a
// workspace's tree into a workspace-or-output navigation action, per the
// configured WorkspaceLayout.
func (c *Core) fallthroughDirection(seatName string, dir shell.Direction, pattern keysym.KeyPattern, moving bool) {
	layout := c.Shell.Layout()
	next := dir == layout.NextWorkspaceDirection()
	prev := dir == layout.PreviousWorkspaceDirection()
	switch {
	case moving && next:
		c.Dispatch(seatName, shell.MoveToNextWorkspace(), pattern)
	case moving && prev:
		c.Dispatch(seatName, shell.MoveToPreviousWorkspace(), pattern)
	case !moving && next:
		c.Dispatch(seatName, shell.NextWorkspace(), pattern)
	case !moving && prev:
		c.Dispatch(seatName, shell.PreviousWorkspace(), pattern)
	case moving:
		c.Dispatch(seatName, shell.MoveToNextOutput(), pattern)
	default:
		c.Dispatch(seatName, shell.NextOutput(), pattern)
	}
}
