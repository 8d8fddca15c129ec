// Package spawn launches client processes for the Spawn keybinding action,
// with the session environment a compositor-launched child expects.
package spawn

import (
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/tidewm/tide/internal/logger"
)

// Launcher runs shell commands detached from the compositor and implements
// core.Spawner.
type Launcher struct {
	WaylandDisplay string
	XDisplay       string
}

// New builds a Launcher for the given session sockets. xdisplay is empty
// when no Xwayland instance is running.
func New(waylandDisplay, xdisplay string) *Launcher {
	return &Launcher{WaylandDisplay: waylandDisplay, XDisplay: xdisplay}
}

// Spawn runs command through /bin/sh -c, detached from the compositor's
// process group, with WAYLAND_DISPLAY/DISPLAY set for the session and
// COSMIC_SESSION_SOCK scrubbed so the child never tries to reconnect to a
// session manager that isn't this compositor. Failures are the caller's to
// log; this never blocks waiting for the child to exit.
func (l *Launcher) Spawn(command string) error {
	cmd := exec.Command("/bin/sh", "-c", command)
	cmd.Env = l.childEnv()
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			logger.Debugf("spawn: %q exited: %v", command, err)
		}
	}()
	return nil
}

func (l *Launcher) childEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "COSMIC_SESSION_SOCK=") {
			continue
		}
		env = append(env, kv)
	}
	env = append(env, "WAYLAND_DISPLAY="+l.WaylandDisplay)
	if l.XDisplay != "" {
		env = append(env, "DISPLAY="+l.XDisplay)
	}
	return env
}
