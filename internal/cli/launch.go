// Package cli — launch.go implements the root command's action: the actual
// locate-and-launch handoff.
//
// This is the terminal path of the binary. On success the process image is
// replaced and nothing below Execute ever runs; an error return means the
// handoff could not even be attempted.
package cli

import (
	"os"

	"github.com/shinji-kodama/tslaunch/internal/launcher"
)

// runLaunch performs the launch with all original arguments forwarded
// verbatim. os.Args[0] is the invocation path the install directory is
// derived from — deliberately not os.Executable(), so symlinked installs
// resolve relative to the symlink's directory, matching how node module
// layouts place the launcher.
func runLaunch(args []string) error {
	l, err := launcher.New(os.Args[0])
	if err != nil {
		return err
	}
	return l.Launch(args)
}
