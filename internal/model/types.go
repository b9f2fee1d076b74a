// Package model defines the domain types for the tslaunch CLI.
//
// All entities in this package are transient, process-local values computed
// once per invocation. Nothing is persisted: the launcher's entire job is to
// compute a Resolution and then replace its own process image, at which point
// every value here ceases to exist.
package model

import (
	"fmt"
	"os"
	"strings"
)

// InterpreterSource identifies where the chosen Node.js interpreter came from.
// The selection order is:
//
//	config override → local sibling binary → system PATH lookup
//
// Exactly one source is chosen per invocation; there is no fallback chaining
// beyond local → system.
type InterpreterSource string

const (
	// SourceLocal indicates the sibling binary at <InstallDir>/node was
	// present and executable, and was preferred over any system interpreter.
	SourceLocal InterpreterSource = "local"

	// SourceSystem indicates the interpreter is resolved as the bare name
	// "node" through the ambient command search path. The launcher performs
	// no existence check on this fallback before attempting the handoff.
	SourceSystem InterpreterSource = "system"

	// SourceConfig indicates an explicit interpreter path from a tslaunch
	// config file, which takes precedence over both local and system.
	SourceConfig InterpreterSource = "config"
)

// String returns the string representation of InterpreterSource.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI commands.
func (s InterpreterSource) String() string {
	return string(s)
}

// IsValid checks whether the InterpreterSource value is one of the
// predefined valid sources.
func (s InterpreterSource) IsValid() bool {
	switch s {
	case SourceLocal, SourceSystem, SourceConfig:
		return true
	default:
		return false
	}
}

// ParseInterpreterSource converts a string to an InterpreterSource.
// Returns an error if the string does not match any valid source.
func ParseInterpreterSource(s string) (InterpreterSource, error) {
	source := InterpreterSource(strings.ToLower(s))
	if !source.IsValid() {
		return "", fmt.Errorf("invalid interpreter source: %q (valid: local, system, config)", s)
	}
	return source, nil
}

// Interpreter is the Node.js interpreter chosen for the handoff.
//
// For SourceLocal and SourceConfig the Path is a concrete filesystem path.
// For SourceSystem the Path is the bare name "node" — it is resolved through
// the command search path only at exec time, so a missing system interpreter
// surfaces as the host's native "command not found" failure rather than a
// synthesized diagnostic.
type Interpreter struct {
	// Path is the interpreter path or bare command name to execute.
	Path string `json:"path"`

	// Source records which selection rule produced Path.
	Source InterpreterSource `json:"source"`
}

// Resolution is the complete plan for a single launch: everything the
// launcher computes before the terminal process-replacement call.
//
// The three-phase lifecycle is linear with no branching back:
// install directory resolution → module path configuration → handoff.
// A Resolution is fully determined before the handoff is attempted.
type Resolution struct {
	// InstallDir is the directory the launcher resolved itself into,
	// derived from its own invocation path.
	InstallDir string `json:"installDir"`

	// ServerPath is the tsserver entry point handed to the interpreter.
	// By default this is <InstallDir>/../typescript/bin/tsserver. It is not
	// existence-checked: a missing script surfaces as the interpreter's own
	// error after the handoff.
	ServerPath string `json:"serverPath"`

	// Interpreter is the chosen Node.js interpreter.
	Interpreter Interpreter `json:"interpreter"`

	// NodePath is the ordered module search list: the five launcher-derived
	// entries first, then any configured extras, then the components of a
	// pre-existing NODE_PATH value. Always non-empty.
	NodePath []string `json:"nodePath"`

	// ConfigPath is the config file the resolution used, empty when the
	// launcher ran with defaults.
	ConfigPath string `json:"configPath,omitempty"`
}

// NodePathValue joins the module search list into the single NODE_PATH
// environment value, using the platform list separator (colon on POSIX).
func (r *Resolution) NodePathValue() string {
	return strings.Join(r.NodePath, string(os.PathListSeparator))
}

// Argv builds the argument vector for the replaced process: the interpreter,
// the server script, then the forwarded arguments in their original order
// and count.
func (r *Resolution) Argv(forwarded []string) []string {
	argv := make([]string, 0, 2+len(forwarded))
	argv = append(argv, r.Interpreter.Path, r.ServerPath)
	return append(argv, forwarded...)
}

// ExitCode defines the CLI exit codes. The launcher deliberately defines no
// codes of its own for the launch path — on a successful handoff the visible
// exit status is entirely that of the replaced process. The codes below cover
// the cases where the handoff itself could not be attempted, mirroring the
// shell convention for exec failures (126/127).
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitConfigInvalid indicates a tslaunch config file was present but
	// could not be read or parsed.
	ExitConfigInvalid ExitCode = 2

	// ExitNotExecutable indicates the chosen interpreter exists but is not
	// executable, matching the shell's 126 convention.
	ExitNotExecutable ExitCode = 126

	// ExitNotFound indicates no interpreter could be located, matching the
	// shell's 127 "command not found" convention.
	ExitNotFound ExitCode = 127
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
