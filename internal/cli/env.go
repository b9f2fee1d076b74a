// Package cli — env.go implements the "tslaunch env" command.
//
// env prints the single environment mutation the launcher would apply —
// the final NODE_PATH assignment — without executing anything. The text
// form is shell-assignable, so `eval "$(tslaunch env)"` reproduces the
// launch environment for manual debugging.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/tslaunch/internal/launcher"
)

// NewEnvCommand creates the "env" cobra command.
func NewEnvCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Print the NODE_PATH the launcher would set",
		Long: `Compute the module search path exactly as a launch would — the five
derived entries first, then configured extras, then any pre-existing
NODE_PATH value — and print the resulting assignment.

Examples:
  tslaunch env
  tslaunch env --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnv()
		},
	}

	return cmd
}

// runEnv computes the resolution and prints the NODE_PATH assignment.
func runEnv() error {
	l, err := launcher.New(os.Args[0])
	if err != nil {
		return err
	}

	res := l.Resolve()

	if IsJSONOutput() {
		out := map[string]interface{}{
			"NODE_PATH": res.NodePathValue(),
			"entries":   res.NodePath,
		}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("%s=%s\n", launcher.NodePathVar, res.NodePathValue())
	return nil
}
