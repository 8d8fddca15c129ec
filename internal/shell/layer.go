package shell

// LayerShellLayer mirrors the four wlr-layer-shell stacking layers, in
// back-to-front order.
type LayerShellLayer int

const (
	LayerBackground LayerShellLayer = iota
	LayerBottom
	LayerTop
	LayerOverlay
)

// LayerSurface is a layer-shell client surface anchored to an output,
// outside any workspace's tiling tree.
type LayerSurface struct {
	ID     string
	Output string
	Layer  LayerShellLayer

	X, Y, Width, Height int32

	// InputRegion restricts hit-testing to a sub-rectangle of the
	// surface's bounds when set (a layer surface can claim a
	// larger exclusive zone than the area that actually accepts input).
	InputRegion *struct{ X, Y, Width, Height int32 }

	ExclusiveZone int32

	// Anchor says which edge(s) of the output ExclusiveZone is reserved
	// against, mirroring wlr-layer-shell's anchor bitmask.
	Anchor LayerAnchor

	// KeyboardInteractive marks a layer surface as eligible to receive
	// keyboard focus on pointer press; non-interactive layers (the common
	// case — backgrounds, most bars) are click-through for focus purposes
	// even though they still occlude the pointer hit test.
	KeyboardInteractive bool
}

// LayerAnchor mirrors wlr-layer-shell's anchor bitmask: which output
// edge(s) a layer surface is anchored to, and therefore which edge its
// ExclusiveZone reserves space against.
type LayerAnchor int

const (
	AnchorTop LayerAnchor = 1 << iota
	AnchorBottom
	AnchorLeft
	AnchorRight
)

// Contains reports whether an output-relative point (the space X and Y are
// in) falls inside the
// surface's input region (or its full bounds, if no input region was set).
func (l *LayerSurface) Contains(x, y float64) bool {
	rx, ry, rw, rh := l.X, l.Y, l.Width, l.Height
	if l.InputRegion != nil {
		rx, ry, rw, rh = l.X+l.InputRegion.X, l.Y+l.InputRegion.Y, l.InputRegion.Width, l.InputRegion.Height
	}
	return x >= float64(rx) && x < float64(rx+rw) && y >= float64(ry) && y < float64(ry+rh)
}

// Layers returns the layer surfaces on outputID at the given layer, for hit
// testing in per-layer precedence order.
func (s *Shell) Layers(outputID string, layer LayerShellLayer) []*LayerSurface {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.byOutput[outputID]
	if !ok {
		return nil
	}
	var out []*LayerSurface
	for _, l := range st.layers {
		if l.Layer == layer {
			out = append(out, l)
		}
	}
	return out
}

// AddLayerSurface registers a layer-shell surface on its output.
func (s *Shell) AddLayerSurface(l *LayerSurface) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.byOutput[l.Output]
	if !ok {
		return
	}
	st.layers = append(st.layers, l)
}

// RemoveLayerSurface unregisters a layer-shell surface by ID.
func (s *Shell) RemoveLayerSurface(outputID, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.byOutput[outputID]
	if !ok {
		return
	}
	for i, l := range st.layers {
		if l.ID == id {
			st.layers = append(st.layers[:i], st.layers[i+1:]...)
			return
		}
	}
}
