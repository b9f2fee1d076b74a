// Package cli implements the cobra-based CLI for tslaunch.
//
// The root command is the launcher itself: flag parsing is disabled on it so
// that every flag-style argument (--version, --logVerbosity, even --help) is
// forwarded verbatim to tsserver rather than consumed. Diagnostic
// subcommands (doctor, env, version) are dispatched by bare first word;
// tsserver takes only flag-style arguments, so the reserved words cannot
// collide with a real server invocation.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/tslaunch/internal/model"
)

// Global flag variables shared across the diagnostic subcommands.
// These are bound to cobra persistent flags on the root command. The root
// itself never parses them (its flag parsing is disabled); they only take
// effect on subcommands.
var (
	// jsonOutput controls whether subcommand output is formatted as JSON
	// for machine consumption.
	jsonOutput bool

	// verbose enables detailed logging output to stderr for debugging.
	verbose bool
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package for the version subcommand.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
//
// Invoked without a recognized subcommand, the root performs the launch:
// it resolves the install directory, configures NODE_PATH, and replaces the
// process with node running tsserver. On success this call never returns.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tslaunch [tsserver arguments...]",
		Short: "Locate a Node.js interpreter and launch tsserver",
		Long: `tslaunch is a launcher shim for the TypeScript language server.

It resolves its own install directory, extends NODE_PATH with module
directories derived from that location, prefers a sibling node binary over
the system one, and replaces itself with node running
../typescript/bin/tsserver, forwarding all arguments unmodified.

Every flag-style argument is forwarded to tsserver, not interpreted here.
Diagnostics are available via the doctor and env subcommands.`,

		// All arguments belong to tsserver; nothing is parsed as a flag.
		// This is what keeps the forwarding contract verbatim: --version
		// reaches tsserver, not cobra.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		// A failed handoff should look like a failed exec, not a CLI
		// misuse.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaunch(args)
		},
	}

	// PersistentFlags are inherited by all subcommands. With root flag
	// parsing disabled they are inert on the launch path — a forwarded
	// "--json" belongs to tsserver — but doctor/env/version parse them.
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewDoctorCommand())
	rootCmd.AddCommand(NewEnvCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// It inspects errors returned by cobra commands and translates them
// into appropriate OS exit codes. CLIError types carry their own
// exit codes; other errors default to exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		// Generic error — exit with code 1.
		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		// Errors go to stderr even in JSON mode; stdout is reserved for
		// successful command output.
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}
