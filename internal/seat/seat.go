package seat

import (
	"fmt"
	"sync"

	"github.com/tidewm/tide/internal/keysym"
)

// Seat is one logical input endpoint: a keyboard plus a pointer, always
// present once created, fed by however many physical devices happen to be
// plugged in. Multi-seat setups (one physical person per seat) are
// supported by the registry below, though a single-seat compositor only
// ever has one.
type Seat struct {
	Name string

	mu            sync.Mutex
	activeOutput  string
	pointerX      float64
	pointerY      float64
	modifiers     keysym.Modifiers
	devices       *Devices
	suppressed    *SuppressedKeys
}

func newSeat(name string) *Seat {
	return &Seat{Name: name, devices: NewDevices(), suppressed: NewSuppressedKeys()}
}

// Devices returns the seat's physical device tracker.
func (s *Seat) Devices() *Devices { return s.devices }

// Suppressed returns the seat's suppressed-key tracker.
func (s *Seat) Suppressed() *SuppressedKeys { return s.suppressed }

// ActiveOutput returns the ID of the output the seat's pointer currently
// sits over.
func (s *Seat) ActiveOutput() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeOutput
}

// SetActiveOutput updates the seat's active output. Called after a pointer
// motion resolves which output the new position falls on, strictly after
// any cursor_leave/cursor_enter screencopy notifications for the old/new
// output have already fired.
func (s *Seat) SetActiveOutput(id string) {
	s.mu.Lock()
	s.activeOutput = id
	s.mu.Unlock()
}

// PointerPosition returns the seat's last-known global pointer location.
func (s *Seat) PointerPosition() (float64, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pointerX, s.pointerY
}

// SetPointerPosition records a new global pointer location.
func (s *Seat) SetPointerPosition(x, y float64) {
	s.mu.Lock()
	s.pointerX, s.pointerY = x, y
	s.mu.Unlock()
}

// Modifiers returns the currently-held modifier mask.
func (s *Seat) Modifiers() keysym.Modifiers {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modifiers
}

// SetModifiers updates the currently-held modifier mask, recomputed by the
// caller from raw keyboard state on every key event.
func (s *Seat) SetModifiers(m keysym.Modifiers) {
	s.mu.Lock()
	s.modifiers = m
	s.mu.Unlock()
}

func (s *Seat) String() string {
	return fmt.Sprintf("seat(%s)", s.Name)
}

// Registry owns every live seat and the device-to-seat assignment (a
// device always belongs to exactly one seat; this compositor's default
// configuration assigns every detected device to a single "seat0").
type Registry struct {
	mu          sync.Mutex
	seats       map[string]*Seat
	deviceSeat  map[string]string
}

// NewRegistry creates an empty seat registry.
func NewRegistry() *Registry {
	return &Registry{seats: make(map[string]*Seat), deviceSeat: make(map[string]string)}
}

// AddSeat creates and registers a new seat, returning it unchanged if one
// with that name already exists.
func (r *Registry) AddSeat(name string) *Seat {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.seats[name]; ok {
		return s
	}
	s := newSeat(name)
	r.seats[name] = s
	return s
}

// Get returns the named seat, or nil.
func (r *Registry) Get(name string) *Seat {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seats[name]
}

// All returns every registered seat.
func (r *Registry) All() []*Seat {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Seat, 0, len(r.seats))
	for _, s := range r.seats {
		out = append(out, s)
	}
	return out
}

// AssignDevice records that deviceID's events should be delivered through
// seatName, then folds its capabilities into that seat's Devices.
func (r *Registry) AssignDevice(seatName, deviceID string, caps []Capability) (*Seat, []Capability) {
	r.mu.Lock()
	s, ok := r.seats[seatName]
	if !ok {
		s = newSeat(seatName)
		r.seats[seatName] = s
	}
	r.deviceSeat[deviceID] = seatName
	r.mu.Unlock()
	return s, s.devices.AddDevice(deviceID, caps)
}

// SeatWithDevice returns the seat deviceID is currently assigned to, or nil.
func (r *Registry) SeatWithDevice(deviceID string) *Seat {
	r.mu.Lock()
	name, ok := r.deviceSeat[deviceID]
	r.mu.Unlock()
	if !ok {
		return nil
	}
	return r.Get(name)
}

// RemoveDevice unassigns deviceID from whichever seat holds it and returns
// that seat plus the capabilities it lost, if any.
func (r *Registry) RemoveDevice(deviceID string) (*Seat, []Capability) {
	r.mu.Lock()
	name, ok := r.deviceSeat[deviceID]
	if !ok {
		r.mu.Unlock()
		return nil, nil
	}
	delete(r.deviceSeat, deviceID)
	s := r.seats[name]
	r.mu.Unlock()
	if s == nil {
		return nil, nil
	}
	return s, s.devices.RemoveDevice(deviceID)
}
