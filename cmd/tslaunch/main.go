// Package main is the entry point for the tslaunch binary.
//
// tslaunch is a launcher shim for the TypeScript language server: it
// resolves its own install directory, configures NODE_PATH, selects a
// Node.js interpreter, and replaces itself with that interpreter running
// tsserver. All functionality lives in the internal/cli package, which
// defines the cobra commands.
//
// Build-time variables (version, commit, date) are injected via ldflags
// by GoReleaser during the release process. During development, they
// default to "dev", "none", and "unknown" respectively.
package main

import (
	"github.com/shinji-kodama/tslaunch/internal/cli"
)

// version, commit, and date are set by GoReleaser at build time
// via ldflags. They provide binary identification for the version
// subcommand output.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Inject build-time version info into the CLI package.
	// This decouples the build system (GoReleaser ldflags) from the
	// CLI framework (cobra), keeping main.go minimal.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	// Create the root command and execute it. On the launch path a
	// successful Execute never returns — the process image has been
	// replaced by node running tsserver.
	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
