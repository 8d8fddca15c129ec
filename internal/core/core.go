package core

import (
	"github.com/tidewm/tide/internal/evloop"
	"github.com/tidewm/tide/internal/keysym"
	"github.com/tidewm/tide/internal/logger"
	"github.com/tidewm/tide/internal/seat"
	"github.com/tidewm/tide/internal/shell"
)

// VTSwitcher abstracts the virtual-terminal switch syscall so the filter's
// VT-switch rule stays testable without root.
type VTSwitcher interface {
	SwitchTo(vt int) error
}

// Spawner abstracts launching a shell command for the Spawn action,
// isolated so tests don't fork real processes.
type Spawner interface {
	Spawn(command string) error
}

// noopVT and noopSpawner are safe zero-value fallbacks so a Core built
// without a real backend never panics on a nil interface.
type noopVT struct{}

func (noopVT) SwitchTo(int) error { return nil }

type noopSpawner struct{}

func (noopSpawner) Spawn(string) error { return nil }

// Core wires together every piece ProcessInputEvent needs: the shell it
// mutates, the seat registry it reads/updates, the event loop it schedules
// idle callbacks and timers on, the configured key bindings, and the
// client-facing sink effects are sent to.
type Core struct {
	Shell    *shell.Shell
	Seats    *seat.Registry
	Loop     *evloop.Loop
	Sink     ClientSink
	Bindings []Binding

	ScrollFactor func(deviceID string) float64
	VT           VTSwitcher
	Spawner      Spawner
}

// New builds a Core with safe fallbacks for the optional backend-specific
// fields (VT, Spawner, ScrollFactor) so callers that don't need them (most
// unit tests) can omit them.
func New(sh *shell.Shell, seats *seat.Registry, loop *evloop.Loop, sink ClientSink, bindings []Binding) *Core {
	return &Core{
		Shell:        sh,
		Seats:        seats,
		Loop:         loop,
		Sink:         sink,
		Bindings:     bindings,
		ScrollFactor: func(string) float64 { return 1.0 },
		VT:           noopVT{},
		Spawner:      noopSpawner{},
	}
}

func (c *Core) lookupBinding(pattern keysym.KeyPattern) (shell.Action, bool) {
	for _, b := range c.Bindings {
		if b.Pattern.Equal(pattern) {
			return b.Action, true
		}
	}
	return shell.Action{}, false
}

func (c *Core) deviceAdded(seatName string, ev Event) {
	s, newly := c.Seats.AssignDevice(seatName, ev.DeviceID, ev.Capabilities)
	if len(newly) > 0 {
		logger.Infof("seat %s: new capability from device %s: %v", s.Name, ev.DeviceID, newly)
	}
}

func (c *Core) deviceRemoved(ev Event) {
	s, lost := c.Seats.RemoveDevice(ev.DeviceID)
	if s != nil && len(lost) > 0 {
		logger.Infof("seat %s: lost capability after removing device %s: %v", s.Name, ev.DeviceID, lost)
	}
}
