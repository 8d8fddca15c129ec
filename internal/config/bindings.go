package config

import (
	evdev "github.com/gvalkov/golang-evdev"

	"github.com/tidewm/tide/internal/keysym"
	"github.com/tidewm/tide/internal/shell"
)

// keyNames maps the lowercase key names a TOML binding row can spell out to
// the keysym keysym.FromEvdev produces for that key. Only the subset a default or
// reasonable custom binding set would ever name is listed; an unrecognized
// name just drops that row (KeyBindings skips it).
var keyNames = map[string]keysym.Keysym{
	"a": keysym.Keysym(evdev.KEY_A), "b": keysym.Keysym(evdev.KEY_B), "c": keysym.Keysym(evdev.KEY_C),
	"d": keysym.Keysym(evdev.KEY_D), "e": keysym.Keysym(evdev.KEY_E), "f": keysym.Keysym(evdev.KEY_F),
	"g": keysym.Keysym(evdev.KEY_G), "h": keysym.Keysym(evdev.KEY_H), "i": keysym.Keysym(evdev.KEY_I),
	"j": keysym.Keysym(evdev.KEY_J), "k": keysym.Keysym(evdev.KEY_K), "l": keysym.Keysym(evdev.KEY_L),
	"m": keysym.Keysym(evdev.KEY_M), "n": keysym.Keysym(evdev.KEY_N), "o": keysym.Keysym(evdev.KEY_O),
	"p": keysym.Keysym(evdev.KEY_P), "q": keysym.Keysym(evdev.KEY_Q), "r": keysym.Keysym(evdev.KEY_R),
	"s": keysym.Keysym(evdev.KEY_S), "t": keysym.Keysym(evdev.KEY_T), "u": keysym.Keysym(evdev.KEY_U),
	"v": keysym.Keysym(evdev.KEY_V), "w": keysym.Keysym(evdev.KEY_W), "x": keysym.Keysym(evdev.KEY_X),
	"y": keysym.Keysym(evdev.KEY_Y), "z": keysym.Keysym(evdev.KEY_Z),

	"0": keysym.Keysym(evdev.KEY_0), "1": keysym.Keysym(evdev.KEY_1), "2": keysym.Keysym(evdev.KEY_2),
	"3": keysym.Keysym(evdev.KEY_3), "4": keysym.Keysym(evdev.KEY_4), "5": keysym.Keysym(evdev.KEY_5),
	"6": keysym.Keysym(evdev.KEY_6), "7": keysym.Keysym(evdev.KEY_7), "8": keysym.Keysym(evdev.KEY_8),
	"9": keysym.Keysym(evdev.KEY_9),

	"left": keysym.KeyLeft, "right": keysym.KeyRight, "up": keysym.KeyUp, "down": keysym.KeyDown,
	"return": keysym.Keysym(evdev.KEY_ENTER), "enter": keysym.Keysym(evdev.KEY_ENTER),
	"space": keysym.Keysym(evdev.KEY_SPACE), "tab": keysym.Keysym(evdev.KEY_TAB),
	"escape": keysym.Keysym(evdev.KEY_ESC),
}

func keyByName(name string) (keysym.Keysym, bool) {
	k, ok := keyNames[name]
	return k, ok
}

// actionByName builds the shell.Action a binding row names. Most actions
// take no argument; Workspace/MoveToWorkspace/SendToWorkspace take the
// numeric workspace field, Focus/Move take the direction field, and Spawn
// takes the command field. Resize and orientation variants are separate
// action names rather than a direction field.
func actionByName(b BindingConfig) (shell.Action, bool) {
	switch b.Action {
	case "terminate":
		return shell.Terminate(), true
	case "debug":
		return shell.Debug(), true
	case "close":
		return shell.Close(), true
	case "workspace":
		return shell.Workspace(b.Workspace), true
	case "next_workspace":
		return shell.NextWorkspace(), true
	case "previous_workspace":
		return shell.PreviousWorkspace(), true
	case "last_workspace":
		return shell.LastWorkspace(), true
	case "move_to_workspace":
		return shell.MoveToWorkspace(b.Workspace), true
	case "send_to_workspace":
		return shell.SendToWorkspace(b.Workspace), true
	case "move_to_next_workspace":
		return shell.MoveToNextWorkspace(), true
	case "send_to_next_workspace":
		return shell.SendToNextWorkspace(), true
	case "move_to_previous_workspace":
		return shell.MoveToPreviousWorkspace(), true
	case "send_to_previous_workspace":
		return shell.SendToPreviousWorkspace(), true
	case "move_to_last_workspace":
		return shell.MoveToLastWorkspace(), true
	case "send_to_last_workspace":
		return shell.SendToLastWorkspace(), true
	case "next_output":
		return shell.NextOutput(), true
	case "previous_output":
		return shell.PreviousOutput(), true
	case "move_to_next_output":
		return shell.MoveToNextOutput(), true
	case "send_to_next_output":
		return shell.SendToNextOutput(), true
	case "move_to_previous_output":
		return shell.MoveToPreviousOutput(), true
	case "send_to_previous_output":
		return shell.SendToPreviousOutput(), true
	case "focus":
		if dir, ok := focusDirectionByName(b.Direction); ok {
			return shell.Focus(dir), true
		}
		return shell.Action{}, false
	case "move":
		if dir, ok := directionByName(b.Direction); ok {
			return shell.Move(dir), true
		}
		return shell.Action{}, false
	case "swap_window":
		return shell.SwapWindow(), true
	case "maximize":
		return shell.Maximize(), true
	case "resize_outwards":
		return shell.Resizing(shell.ResizeOutwards), true
	case "resize_inwards":
		return shell.Resizing(shell.ResizeInwards), true
	case "toggle_orientation":
		return shell.ToggleOrientation(), true
	case "orientation_horizontal":
		return shell.SetOrientation(shell.OrientationHorizontal), true
	case "orientation_vertical":
		return shell.SetOrientation(shell.OrientationVertical), true
	case "toggle_stacking":
		return shell.ToggleStacking(), true
	case "toggle_floating":
		return shell.ToggleWindowFloating(), true
	case "spawn":
		return shell.Spawn(b.Command), true
	default:
		return shell.Action{}, false
	}
}

func directionByName(name string) (shell.Direction, bool) {
	switch name {
	case "left":
		return shell.DirectionLeft, true
	case "right":
		return shell.DirectionRight, true
	case "up":
		return shell.DirectionUp, true
	case "down":
		return shell.DirectionDown, true
	default:
		return 0, false
	}
}

func focusDirectionByName(name string) (shell.FocusDirection, bool) {
	switch name {
	case "left":
		return shell.FocusLeft, true
	case "right":
		return shell.FocusRight, true
	case "up":
		return shell.FocusUp, true
	case "down":
		return shell.FocusDown, true
	default:
		return 0, false
	}
}

// DefaultBindings is the out-of-the-box binding set: Logo+arrow to focus,
// Logo+Shift+arrow to move, Logo+1..0 for workspaces 1-10, Logo+Q to
// close, Logo+F to maximize, Logo+S to swap, Alt+R to enter resize mode,
// Logo+Return to spawn a terminal.
func DefaultBindings() []BindingConfig {
	return []BindingConfig{
		{Modifiers: []string{"logo"}, Key: "left", Action: "focus", Direction: "left"},
		{Modifiers: []string{"logo"}, Key: "right", Action: "focus", Direction: "right"},
		{Modifiers: []string{"logo"}, Key: "up", Action: "focus", Direction: "up"},
		{Modifiers: []string{"logo"}, Key: "down", Action: "focus", Direction: "down"},

		{Modifiers: []string{"logo", "shift"}, Key: "left", Action: "move", Direction: "left"},
		{Modifiers: []string{"logo", "shift"}, Key: "right", Action: "move", Direction: "right"},
		{Modifiers: []string{"logo", "shift"}, Key: "up", Action: "move", Direction: "up"},
		{Modifiers: []string{"logo", "shift"}, Key: "down", Action: "move", Direction: "down"},

		{Modifiers: []string{"logo"}, Key: "1", Action: "workspace", Workspace: 1},
		{Modifiers: []string{"logo"}, Key: "2", Action: "workspace", Workspace: 2},
		{Modifiers: []string{"logo"}, Key: "3", Action: "workspace", Workspace: 3},
		{Modifiers: []string{"logo"}, Key: "4", Action: "workspace", Workspace: 4},
		{Modifiers: []string{"logo"}, Key: "5", Action: "workspace", Workspace: 5},
		{Modifiers: []string{"logo"}, Key: "6", Action: "workspace", Workspace: 6},
		{Modifiers: []string{"logo"}, Key: "7", Action: "workspace", Workspace: 7},
		{Modifiers: []string{"logo"}, Key: "8", Action: "workspace", Workspace: 8},
		{Modifiers: []string{"logo"}, Key: "9", Action: "workspace", Workspace: 9},
		{Modifiers: []string{"logo"}, Key: "0", Action: "workspace", Workspace: 0},

		{Modifiers: []string{"logo"}, Key: "q", Action: "close"},
		{Modifiers: []string{"logo"}, Key: "f", Action: "maximize"},
		{Modifiers: []string{"logo"}, Key: "s", Action: "swap_window"},
		{Modifiers: []string{"logo"}, Key: "g", Action: "toggle_floating"},
		{Modifiers: []string{"logo"}, Key: "t", Action: "toggle_stacking"},
		{Modifiers: []string{"logo"}, Key: "o", Action: "toggle_orientation"},
		{Modifiers: []string{"alt"}, Key: "r", Action: "resize_outwards"},

		{Modifiers: []string{"logo"}, Key: "return", Action: "spawn", Command: "alacritty"},
	}
}
