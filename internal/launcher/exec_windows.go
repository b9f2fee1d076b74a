//go:build windows

package launcher

import (
	"errors"
	"os"
	"os/exec"
)

// interpreterFileName is the sibling binary probed in the install directory.
const interpreterFileName = "node.exe"

// execReplace approximates execve on native Windows, which has no process
// replacement: the child is spawned with inherited stdio and the launcher
// exits with the child's status. Control still never returns to the caller
// on success, preserving the terminal-handoff contract.
func execReplace(argv0 string, argv []string, env []string) error {
	cmd := exec.Command(argv0, argv[1:]...)
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The child ran and failed; mirror its exit code.
			os.Exit(exitErr.ExitCode())
		}
		return err
	}

	os.Exit(0)
	return nil
}

// isExecutable reports whether path exists as a regular file. Windows has no
// execute permission bit; existence of node.exe is the whole check.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
