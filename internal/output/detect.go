package output

import (
	"fmt"

	"github.com/rajveermalviya/go-wayland/wayland/client"
	"github.com/tidewm/tide/internal/logger"
)

// wlrBackend detects outputs by connecting to the running Wayland display as
// a client and listening for wl_output globals. It is the compositor's own
// bootstrap path for populating the registry before any backend device has
// produced a single input event — mirrors the teacher's
// internal/display.Backend chain, trimmed to the one backend this
// compositor actually needs: it IS the compositor, so there is no "ask the
// running compositor" fallback chain, only "read the globals wlroots core
// already created for us".
type wlrBackend struct {
	display *client.Display
	conn    map[uint32]*Output
}

func newWlrBackend() (*wlrBackend, error) {
	display, err := client.Connect("")
	if err != nil {
		return nil, fmt.Errorf("connect to wayland display: %w", err)
	}
	return &wlrBackend{display: display, conn: make(map[uint32]*Output)}, nil
}

// Detect performs one round-trip against the compositor's global registry
// and returns every advertised wl_output. It's meant to be called once at
// startup. Nothing re-polls the Wayland globals afterwards: later output
// changes reach the registry only through Registry.Add/Remove.
func (b *wlrBackend) Detect() ([]*Output, error) {
	registry, err := b.display.GetRegistry()
	if err != nil {
		return nil, fmt.Errorf("get registry: %w", err)
	}

	var outs []*client.Output
	registry.SetGlobalHandler(func(e client.RegistryGlobalEvent) {
		if e.Interface == "wl_output" {
			o := client.NewOutput(b.display.Context())
			if err := registry.Bind(e.Name, e.Interface, e.Version, o); err != nil {
				logger.Warnf("output: failed binding wl_output %d: %v", e.Name, err)
				return
			}
			outs = append(outs, o)
		}
	})

	if err := b.roundtrip(); err != nil {
		return nil, err
	}

	var result []*Output
	for i, wo := range outs {
		out := &Output{
			ID:     fmt.Sprintf("wl_output-%d", i),
			Name:   fmt.Sprintf("output-%d", i),
			Scale:  1.0,
		}
		wo.SetGeometryHandler(func(e client.OutputGeometryEvent) {
			out.Geometry.X, out.Geometry.Y = e.X, e.Y
			out.Transform = Transform(e.Transform)
		})
		wo.SetModeHandler(func(e client.OutputModeEvent) {
			out.Geometry.Width, out.Geometry.Height = e.Width, e.Height
		})
		wo.SetScaleHandler(func(e client.OutputScaleEvent) {
			out.Scale = float64(e.Factor)
		})
		wo.SetNameHandler(func(e client.OutputNameEvent) {
			out.Name = e.Name
		})
		result = append(result, out)
	}
	if err := b.roundtrip(); err != nil {
		return nil, err
	}
	for i, out := range result {
		if out.Name == "" {
			out.Name = fmt.Sprintf("output-%d", i)
		}
		if out.ID == "" {
			out.ID = out.Name
		}
	}
	return result, nil
}

func (b *wlrBackend) roundtrip() error {
	callback, err := b.display.Sync()
	if err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	done := make(chan struct{})
	callback.SetDoneHandler(func(client.CallbackDoneEvent) { close(done) })
	for {
		select {
		case <-done:
			return nil
		default:
			if err := b.display.Context().Dispatch(); err != nil {
				return fmt.Errorf("dispatch: %w", err)
			}
		}
	}
}

func (b *wlrBackend) Close() error {
	if b.display != nil {
		return b.display.Context().Close()
	}
	return nil
}

// Detect populates and returns a Registry from the best available backend.
// A single outputs entry with a synthetic 1920x1080 geometry is used as a
// last resort so a headless dev build still has somewhere for the seat's
// active output to point.
func Detect() *Registry {
	reg := NewRegistry()

	backend, err := newWlrBackend()
	if err != nil {
		logger.Warnf("output: wlr backend unavailable (%v), using fallback geometry", err)
		reg.Add(&Output{ID: "fallback-0", Name: "fallback-0", Scale: 1.0,
			Geometry: Rect{Width: 1920, Height: 1080}})
		return reg
	}
	defer backend.Close()

	outs, err := backend.Detect()
	if err != nil || len(outs) == 0 {
		logger.Warnf("output: detection failed (%v), using fallback geometry", err)
		reg.Add(&Output{ID: "fallback-0", Name: "fallback-0", Scale: 1.0,
			Geometry: Rect{Width: 1920, Height: 1080}})
		return reg
	}
	for _, o := range outs {
		reg.Add(o)
	}
	return reg
}
