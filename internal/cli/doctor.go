// Package cli — doctor.go implements the "tslaunch doctor" command.
//
// Doctor performs the full locate phase without the launch: it resolves the
// install directory, assembles NODE_PATH, selects the interpreter — and then
// reports what it found instead of handing the process over. Unlike the
// launch path, doctor does check existence (of the interpreter, the server
// script, and every module search entry), because that is exactly the
// speculation a diagnostic command is for.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/tslaunch/internal/launcher"
	"github.com/shinji-kodama/tslaunch/internal/model"
)

// NewDoctorCommand creates the "doctor" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewDoctorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose interpreter and module path resolution",
		Long: `Perform the full resolution a launch would perform, then report it
instead of executing tsserver.

The report covers the resolved install directory, the config file in
effect, the NODE_PATH that would be set (flagging entries that do not
exist), the chosen interpreter with its version, and whether the tsserver
entry point is present.

Exits 0 when an interpreter and the server script were found, 1 otherwise.

Examples:
  tslaunch doctor
  tslaunch doctor --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd.Context())
		},
	}

	return cmd
}

// pathEntry is one NODE_PATH entry with its existence status.
type pathEntry struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

// doctorReport is the full diagnostic result, shaped for JSON output.
type doctorReport struct {
	InstallDir string `json:"installDir"`

	// ConfigPath is the config file the resolution used, empty for defaults.
	ConfigPath string `json:"configPath,omitempty"`

	// Interpreter is the selection result; InterpreterPath is what the
	// command search path resolved it to (empty when not found).
	Interpreter      model.Interpreter `json:"interpreter"`
	InterpreterPath  string            `json:"interpreterPath,omitempty"`
	InterpreterFound bool              `json:"interpreterFound"`

	// NodeVersion is the probed `node --version` output, when available.
	NodeVersion string `json:"nodeVersion,omitempty"`

	ServerPath  string `json:"serverPath"`
	ServerFound bool   `json:"serverFound"`

	NodePath []pathEntry `json:"nodePath"`
}

// healthy reports whether a launch from this state would plausibly succeed:
// an interpreter resolves and the server entry point exists.
func (r *doctorReport) healthy() bool {
	return r.InterpreterFound && r.ServerFound
}

// runDoctor is the main logic function for the doctor command.
func runDoctor(ctx context.Context) error {
	l, err := launcher.New(os.Args[0])
	if err != nil {
		return err
	}

	res := l.Resolve()
	VerboseLog("Resolved install directory %q", res.InstallDir)

	report := buildReport(ctx, res)

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(report, "", "  ")
		fmt.Println(string(data))
	} else {
		fmt.Print(formatReportText(report))
	}

	if !report.healthy() {
		return model.NewCLIError(model.ExitGeneralError, "resolution incomplete (see report above)")
	}
	return nil
}

// buildReport fills a doctorReport from a computed resolution, performing
// the existence checks and the interpreter version probe.
func buildReport(ctx context.Context, res *model.Resolution) *doctorReport {
	report := &doctorReport{
		InstallDir:  res.InstallDir,
		ConfigPath:  res.ConfigPath,
		Interpreter: res.Interpreter,
		ServerPath:  res.ServerPath,
	}

	if resolved, err := exec.LookPath(res.Interpreter.Path); err == nil {
		report.InterpreterFound = true
		report.InterpreterPath = resolved

		if version, err := launcher.ProbeVersion(ctx, resolved); err == nil {
			report.NodeVersion = version
		} else {
			VerboseLog("version probe failed: %v", err)
		}
	}

	if info, err := os.Stat(res.ServerPath); err == nil && !info.IsDir() {
		report.ServerFound = true
	}

	for _, entry := range res.NodePath {
		info, err := os.Stat(entry)
		report.NodePath = append(report.NodePath, pathEntry{
			Path:   entry,
			Exists: err == nil && info.IsDir(),
		})
	}

	return report
}

// formatReportText renders the report as human-readable text.
// Missing pieces are marked rather than omitted, since the point of doctor
// is showing what a launch would not find.
func formatReportText(report *doctorReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Install directory:  %s\n", report.InstallDir)

	configLine := "none (defaults)"
	if report.ConfigPath != "" {
		configLine = report.ConfigPath
	}
	fmt.Fprintf(&b, "Config file:        %s\n", configLine)

	if report.InterpreterFound {
		line := fmt.Sprintf("%s (%s)", report.InterpreterPath, report.Interpreter.Source)
		if report.NodeVersion != "" {
			line += " " + report.NodeVersion
		}
		fmt.Fprintf(&b, "Interpreter:        %s\n", line)
	} else {
		fmt.Fprintf(&b, "Interpreter:        %s (%s)  [not found]\n",
			report.Interpreter.Path, report.Interpreter.Source)
	}

	if report.ServerFound {
		fmt.Fprintf(&b, "Server script:      %s\n", report.ServerPath)
	} else {
		fmt.Fprintf(&b, "Server script:      %s  [missing]\n", report.ServerPath)
	}

	fmt.Fprintln(&b, "NODE_PATH entries:")
	for _, entry := range report.NodePath {
		if entry.Exists {
			fmt.Fprintf(&b, "  %s\n", entry.Path)
		} else {
			fmt.Fprintf(&b, "  %s  [missing]\n", entry.Path)
		}
	}

	return b.String()
}
