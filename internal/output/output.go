// Package output maintains the compositor's output (display) registry:
// geometry, scale, transform, and hotplug add/remove. Seats, the hit
// tester, and the pointer handler all consult it to resolve the output a
// pointer position or surface lives on.
package output

import "fmt"

// Transform mirrors the wl_output.transform enum values the compositor
// cares about (normal vs. the four rotations; flipped variants are not
// supported, matching the teacher's monitor detection which never reports
// them).
type Transform int

const (
	TransformNormal Transform = iota
	Transform90
	Transform180
	Transform270
)

// Rect is an integer logical-space rectangle, origin + size.
type Rect struct {
	X, Y          int32
	Width, Height int32
}

// Contains reports whether the float point p lies within r, inclusive of
// both bounds — the active output must always intersect the pointer
// location after every motion.
func (r Rect) Contains(x, y float64) bool {
	return x >= float64(r.X) && x <= float64(r.X+r.Width) &&
		y >= float64(r.Y) && y <= float64(r.Y+r.Height)
}

// Clamp clamps (x, y) to r's bounds.
func (r Rect) Clamp(x, y float64) (float64, float64) {
	if x < float64(r.X) {
		x = float64(r.X)
	}
	if x > float64(r.X+r.Width) {
		x = float64(r.X + r.Width)
	}
	if y < float64(r.Y) {
		y = float64(r.Y)
	}
	if y > float64(r.Y+r.Height) {
		y = float64(r.Y + r.Height)
	}
	return x, y
}

// Output is a physical or logical display.
type Output struct {
	ID        string
	Name      string
	Geometry  Rect
	Scale     float64
	Transform Transform
}

func (o *Output) String() string {
	return fmt.Sprintf("%s(%dx%d+%d+%d)", o.Name, o.Geometry.Width, o.Geometry.Height, o.Geometry.X, o.Geometry.Y)
}

// TransformPosition maps a device-relative absolute position (in the
// [0,1]x[0,1] unit square, as libinput reports absolute motion) onto o's
// pixel geometry, honoring the output's current transform for the 90/270
// rotated cases.
func (o *Output) TransformPosition(ux, uy float64) (float64, float64) {
	w, h := float64(o.Geometry.Width), float64(o.Geometry.Height)
	switch o.Transform {
	case Transform90:
		return uy * w, (1 - ux) * h
	case Transform180:
		return (1 - ux) * w, (1 - uy) * h
	case Transform270:
		return (1 - uy) * w, ux * h
	default:
		return ux * w, uy * h
	}
}

// Registry owns the live set of outputs and notifies on hotplug.
type Registry struct {
	outputs []*Output
	onAdded func(*Output)
	onLost  func(*Output)
}

// NewRegistry creates an empty output registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// SetHotplugHandlers registers callbacks invoked when Add/Remove change the
// set of known outputs.
func (r *Registry) SetHotplugHandlers(onAdded, onLost func(*Output)) {
	r.onAdded = onAdded
	r.onLost = onLost
}

// Add registers a new output, or replaces an existing one with the same ID
// (e.g. a mode change reported by the detection backend).
func (r *Registry) Add(o *Output) {
	for i, existing := range r.outputs {
		if existing.ID == o.ID {
			r.outputs[i] = o
			return
		}
	}
	r.outputs = append(r.outputs, o)
	if r.onAdded != nil {
		r.onAdded(o)
	}
}

// Remove drops the output with the given ID, if present.
func (r *Registry) Remove(id string) {
	for i, existing := range r.outputs {
		if existing.ID == id {
			r.outputs = append(r.outputs[:i], r.outputs[i+1:]...)
			if r.onLost != nil {
				r.onLost(existing)
			}
			return
		}
	}
}

// All returns the outputs in registration order — the order the dispatcher
// walks for Next/PreviousOutput.
func (r *Registry) All() []*Output {
	return r.outputs
}

// At returns the output whose geometry contains (x, y), if any.
func (r *Registry) At(x, y float64) *Output {
	for _, o := range r.outputs {
		if o.Geometry.Contains(x, y) {
			return o
		}
	}
	return nil
}

// Next returns the output following current in registration order. It
// never wraps (nor do Next/PreviousOutput in this compositor: running off
// either end is a no-op, matching the original's `skip_while`
// iterator which does not cycle).
func (r *Registry) Next(current *Output) (*Output, bool) {
	for i, o := range r.outputs {
		if o.ID == current.ID {
			if i+1 < len(r.outputs) {
				return r.outputs[i+1], true
			}
			return nil, false
		}
	}
	return nil, false
}

// Previous returns the output preceding current in registration order.
func (r *Registry) Previous(current *Output) (*Output, bool) {
	for i, o := range r.outputs {
		if o.ID == current.ID {
			if i-1 >= 0 {
				return r.outputs[i-1], true
			}
			return nil, false
		}
	}
	return nil, false
}
