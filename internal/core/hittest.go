package core

import "github.com/tidewm/tide/internal/shell"

// SurfaceKind discriminates what SurfaceUnder found.
type SurfaceKind int

const (
	SurfaceNone SurfaceKind = iota
	SurfaceLayer
	SurfaceOverrideRedirect
	SurfaceWindow
)

// HitResult is the pure outcome of a hit test: what was hit, its ID, and
// its origin in output-space (so a caller can compute a surface-local
// pointer position by subtracting it from the global position).
type HitResult struct {
	Kind SurfaceKind
	ID   string
	X, Y int32
}

// SurfaceUnder resolves what a global (output-space) point lands on,
// following the exact layer/override-redirect/window precedence a
// compositor's pointer and button handlers need: when the workspace has a
// fullscreen window, only the overlay layer and override-redirect windows
// can still appear above it; otherwise overlay-or-top layers, then
// override-redirect, then a maximized window, then the ordinary
// tiling/floating layer, then finally bottom-or-background layers.
func SurfaceUnder(sh *shell.Shell, outputID string, globalX, globalY float64) HitResult {
	return surfaceUnder(sh, outputID, globalX, globalY, false)
}

// FocusableSurfaceUnder is SurfaceUnder restricted to targets eligible for
// keyboard focus: layer surfaces not marked KeyboardInteractive are
// transparent to this hit test (the precedence chain continues past them,
// even though they still occlude the ordinary pointer hit test), and
// override-redirect windows never receive keyboard focus at all.
func FocusableSurfaceUnder(sh *shell.Shell, outputID string, globalX, globalY float64) HitResult {
	return surfaceUnder(sh, outputID, globalX, globalY, true)
}

func surfaceUnder(sh *shell.Shell, outputID string, globalX, globalY float64, focusableOnly bool) HitResult {
	ws := sh.CurrentWorkspace(outputID)
	if ws == nil {
		return HitResult{Kind: SurfaceNone}
	}
	relX, relY := sh.MapGlobalToSpace(outputID, globalX, globalY)

	if full := ws.Fullscreen(); full != nil {
		if hit := hitLayer(sh, outputID, relX, relY, shell.LayerOverlay, focusableOnly); hit.Kind != SurfaceNone {
			return hit
		}
		if !focusableOnly {
			if hit := hitOverrideRedirect(sh, relX, relY); hit.Kind != SurfaceNone {
				return hit
			}
		}
		return HitResult{Kind: SurfaceWindow, ID: full.ID, X: full.X, Y: full.Y}
	}

	if hit := hitLayer(sh, outputID, relX, relY, shell.LayerOverlay, focusableOnly); hit.Kind != SurfaceNone {
		return hit
	}
	if hit := hitLayer(sh, outputID, relX, relY, shell.LayerTop, focusableOnly); hit.Kind != SurfaceNone {
		return hit
	}
	if !focusableOnly {
		if hit := hitOverrideRedirect(sh, relX, relY); hit.Kind != SurfaceNone {
			return hit
		}
	}
	if win := ws.FindWindow(ws.CurrentFocus().WindowID); win != nil && win.Maximized {
		zone := sh.MaximizedZone(outputID)
		return HitResult{Kind: SurfaceWindow, ID: win.ID, X: zone.X, Y: zone.Y}
	}
	if win := ws.ElementUnder(relX, relY); win != nil {
		return HitResult{Kind: SurfaceWindow, ID: win.ID, X: win.X, Y: win.Y}
	}
	if hit := hitLayer(sh, outputID, relX, relY, shell.LayerBottom, focusableOnly); hit.Kind != SurfaceNone {
		return hit
	}
	if hit := hitLayer(sh, outputID, relX, relY, shell.LayerBackground, focusableOnly); hit.Kind != SurfaceNone {
		return hit
	}
	return HitResult{Kind: SurfaceNone}
}

func hitLayer(sh *shell.Shell, outputID string, x, y float64, layer shell.LayerShellLayer, focusableOnly bool) HitResult {
	surfaces := sh.Layers(outputID, layer)
	for i := len(surfaces) - 1; i >= 0; i-- {
		l := surfaces[i]
		if !l.Contains(x, y) {
			continue
		}
		if focusableOnly && !l.KeyboardInteractive {
			continue
		}
		return HitResult{Kind: SurfaceLayer, ID: l.ID, X: l.X, Y: l.Y}
	}
	return HitResult{Kind: SurfaceNone}
}

func hitOverrideRedirect(sh *shell.Shell, x, y float64) HitResult {
	windows := sh.OverrideRedirectWindows()
	for i := len(windows) - 1; i >= 0; i-- {
		w := windows[i]
		if w.Contains(x, y) {
			return HitResult{Kind: SurfaceOverrideRedirect, ID: w.ID, X: w.X, Y: w.Y}
		}
	}
	return HitResult{Kind: SurfaceNone}
}

