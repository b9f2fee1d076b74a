// Package model defines the domain types and value objects for the
// tslaunch CLI.
//
// This package contains pure data structures with no external dependencies.
// All entities (Resolution, Interpreter, etc.) are transient, process-local
// values computed once per invocation — nothing here is persisted, and none
// of it survives the process handoff.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
