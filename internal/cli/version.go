// Package cli — version.go implements the "tslaunch version" command.
//
// Version information lives in a subcommand rather than the conventional
// --version flag: flag-style arguments are forwarded verbatim to tsserver,
// so `tslaunch --version` reports the server's version, not the launcher's.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the "version" cobra command.
func NewVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the launcher's own version",
		Long: `Print the tslaunch binary's version information.

Note: "tslaunch --version" forwards --version to tsserver and reports the
server's version instead — use this subcommand for the launcher itself.`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion()
		},
	}

	return cmd
}

// runVersion prints the ldflags-injected build identification.
func runVersion() error {
	if IsJSONOutput() {
		out := map[string]string{
			"version": Version,
			"commit":  Commit,
			"date":    Date,
		}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("tslaunch %s (commit: %s, built: %s)\n", Version, Commit, Date)
	return nil
}
