package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tidewm/tide/internal/logger"
)

var (
	// Version is set during build.
	Version = "0.1.0-dev"

	logLevel string

	rootCmd = &cobra.Command{
		Use:   "tide",
		Short: "tide - tiling Wayland compositor input dispatch core",
		Long: `tide is the seat, keyboard-filter, pointer, and action-dispatch core of a
tiling Wayland compositor: one event loop reading from evdev devices,
driving a tiling shell through a modal keyboard filter and action
dispatcher.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.SetLevel(logLevel)
			return nil
		},
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(vtCmd)
}

func exitError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
