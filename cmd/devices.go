package cmd

import (
	"fmt"
	"path/filepath"
	"sort"

	evdev "github.com/gvalkov/golang-evdev"
	"github.com/spf13/cobra"

	"github.com/tidewm/tide/internal/evdevbackend"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "list evdev devices and their classified capabilities",
	RunE:  runDevices,
}

func runDevices(cmd *cobra.Command, args []string) error {
	matches, err := filepath.Glob("/dev/input/event*")
	if err != nil {
		return err
	}
	sort.Strings(matches)
	if len(matches) == 0 {
		fmt.Println("no input devices found")
		return nil
	}

	for _, path := range matches {
		dev, err := evdev.Open(path)
		if err != nil {
			fmt.Printf("%-24s (failed to open: %v)\n", path, err)
			continue
		}
		caps := evdevbackend.Classify(dev)
		fmt.Printf("%-24s %-32s caps=%v\n", path, dev.Name, caps)
		dev.File.Close()
	}
	return nil
}
