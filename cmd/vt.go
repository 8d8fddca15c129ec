package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tidewm/tide/internal/vt"
)

var vtTTYPath string

var vtCmd = &cobra.Command{
	Use:   "vt <number>",
	Short: "switch to a virtual terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runVT,
}

func init() {
	vtCmd.Flags().StringVar(&vtTTYPath, "tty", "", "tty device used for VT switching (defaults to /dev/tty0)")
}

func runVT(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		exitError("invalid VT number %q", args[0])
		return nil
	}
	return vt.New(vtTTYPath).SwitchTo(n)
}
