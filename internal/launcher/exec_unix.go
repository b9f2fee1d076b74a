//go:build !windows

package launcher

import (
	"os"
	"syscall"
)

// interpreterFileName is the sibling binary probed in the install directory.
const interpreterFileName = "node"

// execReplace replaces the current process image via execve. It does not
// return on success; the launcher's exit status becomes whatever the
// replaced process eventually exits with, and no cleanup code runs after it.
func execReplace(argv0 string, argv []string, env []string) error {
	return syscall.Exec(argv0, argv, env)
}

// isExecutable reports whether path is a regular file with at least one
// execute permission bit set. A present-but-unexecutable sibling node is
// treated as absent, so selection falls through to the system interpreter
// instead of failing the handoff.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode()&0o111 != 0
}
