package evdevbackend

import (
	"unsafe"

	evdev "github.com/gvalkov/golang-evdev"
	"golang.org/x/sys/unix"

	"github.com/tidewm/tide/internal/seat"
)

// bitsLen is wide enough to cover every evdev EV_KEY code (KEY_MAX is
// 0x2ff); matches the original EVIOCGBIT bit array the teacher's raw
// syscall-based device detection used, sized the same way here over
// golang.org/x/sys/unix instead of the syscall package directly.
const bitsLen = 96

const (
	iocRead    = 2
	evIOCGBase = 0x45 // ioctl 'E' magic, matches <linux/input.h>
)

func eviocgbit(evType, length int) uintptr {
	return uintptr((iocRead << 30) | (evIOCGBase << 8) | (0x20 + evType) | (length << 16))
}

func hasEventType(fd int, evType int) bool {
	var bits [bitsLen]byte
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), eviocgbit(evType, bitsLen), uintptr(unsafe.Pointer(&bits[0])))
	if errno != 0 {
		return false
	}
	for _, b := range bits {
		if b != 0 {
			return true
		}
	}
	return false
}

// Classify inspects a device's supported event types to decide whether it
// contributes keyboard and/or pointer capability to its seat: EV_KEY
// presence means keyboard, EV_REL or EV_ABS means pointer (a touchpad
// reports EV_ABS, a mouse EV_REL).
func Classify(dev *evdev.InputDevice) []seat.Capability {
	fd := int(dev.File.Fd())
	var caps []seat.Capability
	if hasEventType(fd, evdev.EV_KEY) {
		caps = append(caps, seat.CapabilityKeyboard)
	}
	if hasEventType(fd, evdev.EV_REL) || hasEventType(fd, evdev.EV_ABS) {
		caps = append(caps, seat.CapabilityPointer)
	}
	return caps
}
