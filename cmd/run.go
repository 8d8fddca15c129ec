package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tidewm/tide/internal/config"
	"github.com/tidewm/tide/internal/core"
	"github.com/tidewm/tide/internal/evdevbackend"
	"github.com/tidewm/tide/internal/evloop"
	"github.com/tidewm/tide/internal/logger"
	"github.com/tidewm/tide/internal/logsink"
	"github.com/tidewm/tide/internal/output"
	"github.com/tidewm/tide/internal/seat"
	"github.com/tidewm/tide/internal/shell"
	"github.com/tidewm/tide/internal/spawn"
	"github.com/tidewm/tide/internal/vt"
)

const defaultSeatName = "seat0"

var (
	runSeatName string
	runTTYPath  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "run the compositor's input dispatch core",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runSeatName, "seat", defaultSeatName, "seat name to assign evdev devices to")
	runCmd.Flags().StringVar(&runTTYPath, "tty", "", "tty device used for VT switching (defaults to /dev/tty0)")
}

func runRun(cmd *cobra.Command, args []string) error {
	if err := config.Init(); err != nil {
		return err
	}
	cfg := config.Get()

	outputs := output.Detect()
	sh := shell.New(outputs, cfg.Layout())

	seats := seat.NewRegistry()
	seats.AddSeat(runSeatName)

	loop := evloop.New()
	sink := logsink.New(logger.Debugf)

	c := core.New(sh, seats, loop, sink, cfg.KeyBindings())
	c.ScrollFactor = cfg.ScrollFactor
	c.VT = vt.New(runTTYPath)
	c.Spawner = spawn.New(os.Getenv("WAYLAND_DISPLAY"), os.Getenv("DISPLAY"))

	backend := evdevbackend.New(runSeatName, loop, c)
	if err := backend.Start(); err != nil {
		return err
	}
	defer backend.Stop()

	stop := make(chan struct{})
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		logger.Info("shutting down")
		close(stop)
	}()

	logger.Infof("tide running on seat %s", runSeatName)
	loop.Run(stop)
	return nil
}
