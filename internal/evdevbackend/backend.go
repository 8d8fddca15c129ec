// Package evdevbackend is the InputBackend implementation: it scans
// /dev/input/event* for devices, classifies them into keyboard/pointer
// capabilities via the EVIOCGBIT ioctl, and turns their raw evdev events
// into core.Event values posted onto the compositor's event loop.
package evdevbackend

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	evdev "github.com/gvalkov/golang-evdev"

	"github.com/tidewm/tide/internal/core"
	"github.com/tidewm/tide/internal/evloop"
	"github.com/tidewm/tide/internal/logger"
	"github.com/tidewm/tide/internal/seat"
)

const (
	inputDir     = "/dev/input"
	rescanPeriod = 2 * time.Second
)

type openDevice struct {
	dev  *evdev.InputDevice
	caps []seat.Capability
	stop chan struct{}
}

// Backend drives one seat's worth of evdev devices. It assumes a single
// seat ("seat0"-style setups) — multi-seat assignment would key devices by
// udev seat tags, which is out of scope here.
type Backend struct {
	SeatName string
	Loop     *evloop.Loop
	Core     *core.Core

	mu      sync.Mutex
	devices map[string]*openDevice
	stop    chan struct{}
}

// New builds a Backend that posts translated events onto loop for core to
// process.
func New(seatName string, loop *evloop.Loop, c *core.Core) *Backend {
	return &Backend{
		SeatName: seatName,
		Loop:     loop,
		Core:     c,
		devices:  make(map[string]*openDevice),
	}
}

// Start scans for existing devices, opens each one, and begins a periodic
// rescan goroutine that detects hotplug add/remove by diffing directory
// contents against what's already open.
func (b *Backend) Start() error {
	b.stop = make(chan struct{})

	paths, err := scanDevicePaths()
	if err != nil {
		return fmt.Errorf("evdevbackend: initial scan: %w", err)
	}
	for _, p := range paths {
		if err := b.openDevice(p); err != nil {
			logger.Warnf("evdevbackend: skipping %s: %v", p, err)
		}
	}

	go b.rescanLoop()
	return nil
}

// Stop closes every open device and halts the rescan goroutine.
func (b *Backend) Stop() {
	if b.stop != nil {
		close(b.stop)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for path, od := range b.devices {
		close(od.stop)
		od.dev.File.Close()
		delete(b.devices, path)
	}
}

func scanDevicePaths() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(inputDir, "event*"))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

func (b *Backend) rescanLoop() {
	ticker := time.NewTicker(rescanPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-b.stop:
			return
		case <-ticker.C:
			b.rescanOnce()
		}
	}
}

func (b *Backend) rescanOnce() {
	paths, err := scanDevicePaths()
	if err != nil {
		logger.Warnf("evdevbackend: rescan failed: %v", err)
		return
	}
	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		seen[p] = true
		b.mu.Lock()
		_, known := b.devices[p]
		b.mu.Unlock()
		if !known {
			if err := b.openDevice(p); err != nil {
				logger.Warnf("evdevbackend: skipping new device %s: %v", p, err)
			}
		}
	}

	b.mu.Lock()
	var gone []string
	for p := range b.devices {
		if !seen[p] {
			gone = append(gone, p)
		}
	}
	b.mu.Unlock()
	for _, p := range gone {
		b.closeDevice(p)
	}
}

func (b *Backend) openDevice(path string) error {
	dev, err := evdev.Open(path)
	if err != nil {
		return err
	}
	caps := Classify(dev)
	if len(caps) == 0 {
		dev.File.Close()
		return fmt.Errorf("no keyboard or pointer capability")
	}

	od := &openDevice{dev: dev, caps: caps, stop: make(chan struct{})}
	b.mu.Lock()
	b.devices[path] = od
	b.mu.Unlock()

	b.Loop.Post(func() {
		b.Core.ProcessInputEvent(b.SeatName, core.Event{
			Kind: core.EventDeviceAdded, DeviceID: path, Capabilities: caps,
		})
	})

	go b.readLoop(path, od)
	logger.Infof("evdevbackend: opened %s (%v)", path, caps)
	return nil
}

func (b *Backend) closeDevice(path string) {
	b.mu.Lock()
	od, ok := b.devices[path]
	if ok {
		delete(b.devices, path)
	}
	b.mu.Unlock()
	if !ok {
		return
	}
	close(od.stop)
	od.dev.File.Close()

	b.Loop.Post(func() {
		b.Core.ProcessInputEvent(b.SeatName, core.Event{Kind: core.EventDeviceRemoved, DeviceID: path})
	})
	logger.Infof("evdevbackend: removed %s", path)
}

func (b *Backend) readLoop(path string, od *openDevice) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("evdevbackend: read loop for %s panicked: %v", path, r)
		}
	}()
	var st translateState
	for {
		select {
		case <-od.stop:
			return
		default:
		}
		rawEvents, err := od.dev.Read()
		if err != nil {
			if isTransient(err) {
				time.Sleep(5 * time.Millisecond)
				continue
			}
			b.closeDevice(path)
			return
		}
		for _, re := range rawEvents {
			for _, ev := range translate(&st, re) {
				ev.DeviceID = path
				b.Loop.Post(func(ev core.Event) func() {
					return func() { b.Core.ProcessInputEvent(b.SeatName, ev) }
				}(ev))
			}
		}
	}
}

func isTransient(err error) bool {
	return strings.Contains(err.Error(), "resource temporarily unavailable")
}
