// Package vt switches the Linux virtual terminal via the VT_ACTIVATE /
// VT_WAITACTIVE ioctls, the kernel mechanism a Ctrl+Alt+Fn chord maps onto.
package vt

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/tidewm/tide/internal/logger"
)

// Switcher activates a VT by number and implements core.VTSwitcher.
type Switcher struct {
	ttyPath string
}

// New records the console device used to issue VT ioctls; SwitchTo opens it
// on each call. ttyPath is usually "/dev/tty0" or "/dev/console"; an empty
// string defaults to "/dev/tty0".
func New(ttyPath string) *Switcher {
	if ttyPath == "" {
		ttyPath = "/dev/tty0"
	}
	return &Switcher{ttyPath: ttyPath}
}

// SwitchTo activates vt and blocks until the kernel reports the switch
// complete. Matches the original's "log and suppress the key" recovery
// policy: any failure here is returned to the caller to log, never panics.
func (s *Switcher) SwitchTo(vtNum int) error {
	f, err := os.OpenFile(s.ttyPath, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("vt: open %s: %w", s.ttyPath, err)
	}
	defer f.Close()

	fd := int(f.Fd())
	if err := unix.IoctlSetInt(fd, unix.VT_ACTIVATE, vtNum); err != nil {
		return fmt.Errorf("vt: activate %d: %w", vtNum, err)
	}
	if err := unix.IoctlSetInt(fd, unix.VT_WAITACTIVE, vtNum); err != nil {
		return fmt.Errorf("vt: wait active %d: %w", vtNum, err)
	}
	logger.Debugf("vt: switched to VT %d", vtNum)
	return nil
}
