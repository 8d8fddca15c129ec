package shell

import "github.com/tidewm/tide/internal/keysym"

// ActionKind discriminates the keybinding action vocabulary.
type ActionKind int

const (
	ActionTerminate ActionKind = iota
	ActionDebug
	ActionClose

	ActionWorkspace
	ActionNextWorkspace
	ActionPreviousWorkspace
	ActionLastWorkspace

	ActionMoveToWorkspace
	ActionSendToWorkspace
	ActionMoveToNextWorkspace
	ActionSendToNextWorkspace
	ActionMoveToPreviousWorkspace
	ActionSendToPreviousWorkspace
	ActionMoveToLastWorkspace
	ActionSendToLastWorkspace

	ActionNextOutput
	ActionPreviousOutput
	ActionMoveToNextOutput
	ActionSendToNextOutput
	ActionMoveToPreviousOutput
	ActionSendToPreviousOutput

	ActionFocus
	ActionMove
	ActionSwapWindow
	ActionMaximize
	ActionResizing

	// actionResizingInternal is never bound by configuration, and nothing
	// in the tree dispatches it: the resize-arrow filter rule calls
	// Shell.Resize directly.
	actionResizingInternal

	ActionToggleOrientation
	ActionOrientation
	ActionToggleStacking
	ActionToggleTiling
	ActionToggleWindowFloating

	ActionSpawn
)

// Action is a single bound keyboard command. Only the fields relevant to
// Kind are populated; the rest are zero.
type Action struct {
	Kind ActionKind

	Workspace int // ActionWorkspace/MoveToWorkspace/SendToWorkspace: 0 means 10th
	Focus     FocusDirection
	Move      Direction
	Resize    ResizeDirection
	Orient    Orientation
	Command   string

	resizeEdge  ResizeEdge
	resizeState keysym.KeyState
}

func Terminate() Action                     { return Action{Kind: ActionTerminate} }
func Debug() Action                         { return Action{Kind: ActionDebug} }
func Close() Action                         { return Action{Kind: ActionClose} }
func Workspace(n int) Action                { return Action{Kind: ActionWorkspace, Workspace: n} }
func NextWorkspace() Action                 { return Action{Kind: ActionNextWorkspace} }
func PreviousWorkspace() Action             { return Action{Kind: ActionPreviousWorkspace} }
func LastWorkspace() Action                 { return Action{Kind: ActionLastWorkspace} }
func MoveToWorkspace(n int) Action          { return Action{Kind: ActionMoveToWorkspace, Workspace: n} }
func SendToWorkspace(n int) Action          { return Action{Kind: ActionSendToWorkspace, Workspace: n} }
func MoveToNextWorkspace() Action           { return Action{Kind: ActionMoveToNextWorkspace} }
func SendToNextWorkspace() Action           { return Action{Kind: ActionSendToNextWorkspace} }
func MoveToPreviousWorkspace() Action       { return Action{Kind: ActionMoveToPreviousWorkspace} }
func SendToPreviousWorkspace() Action       { return Action{Kind: ActionSendToPreviousWorkspace} }
func MoveToLastWorkspace() Action           { return Action{Kind: ActionMoveToLastWorkspace} }
func SendToLastWorkspace() Action           { return Action{Kind: ActionSendToLastWorkspace} }
func NextOutput() Action                    { return Action{Kind: ActionNextOutput} }
func PreviousOutput() Action                { return Action{Kind: ActionPreviousOutput} }
func MoveToNextOutput() Action              { return Action{Kind: ActionMoveToNextOutput} }
func SendToNextOutput() Action              { return Action{Kind: ActionSendToNextOutput} }
func MoveToPreviousOutput() Action          { return Action{Kind: ActionMoveToPreviousOutput} }
func SendToPreviousOutput() Action          { return Action{Kind: ActionSendToPreviousOutput} }
func Focus(d FocusDirection) Action         { return Action{Kind: ActionFocus, Focus: d} }
func Move(d Direction) Action               { return Action{Kind: ActionMove, Move: d} }
func SwapWindow() Action                    { return Action{Kind: ActionSwapWindow} }
func Maximize() Action                      { return Action{Kind: ActionMaximize} }
func Resizing(d ResizeDirection) Action     { return Action{Kind: ActionResizing, Resize: d} }
func ToggleOrientation() Action             { return Action{Kind: ActionToggleOrientation} }
func SetOrientation(o Orientation) Action   { return Action{Kind: ActionOrientation, Orient: o} }
func ToggleStacking() Action                { return Action{Kind: ActionToggleStacking} }
func ToggleTiling() Action                  { return Action{Kind: ActionToggleTiling} }
func ToggleWindowFloating() Action          { return Action{Kind: ActionToggleWindowFloating} }
func Spawn(command string) Action           { return Action{Kind: ActionSpawn, Command: command} }

// resizingInternal builds an actionResizingInternal action; it has no
// callers, and config parsing never produces one.
func resizingInternal(edge ResizeEdge, state keysym.KeyState) Action {
	return Action{Kind: actionResizingInternal, resizeEdge: edge, resizeState: state}
}
