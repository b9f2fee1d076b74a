package launcher

import (
	"os"
	"os/exec"
	"path"
	"strings"
)

// ResolveInstallDir derives the launcher's install directory from its own
// invocation path (argv[0]).
//
// Backslash separators are rewritten to forward slashes before the directory
// is extracted, so a Windows-style invocation path and its Unix-style
// spelling resolve to the same directory. Under a POSIX-compatibility layer
// on Windows (Cygwin/MSYS), the result is additionally converted to native
// Windows form, because node is a native binary there and does not
// understand /cygdrive-style paths.
//
// There is no error path. An empty or bare invocation path degrades to "."
// (whatever path.Dir produces), and any resulting misresolution surfaces
// later as the handoff's own failure.
func ResolveInstallDir(invocationPath string) string {
	normalized := strings.ReplaceAll(invocationPath, `\`, "/")
	dir := path.Dir(normalized)

	if underPOSIXLayer(os.Getenv) {
		dir = toNativePath(dir)
	}

	return dir
}

// underPOSIXLayer reports whether the process is running inside a POSIX
// compatibility layer on Windows (Cygwin or MSYS/MinGW). Detection is purely
// environmental: these layers export OSTYPE or MSYSTEM to their children.
func underPOSIXLayer(getenv func(string) string) bool {
	ostype := strings.ToLower(getenv("OSTYPE"))
	if strings.HasPrefix(ostype, "cygwin") || strings.HasPrefix(ostype, "msys") {
		return true
	}
	return getenv("MSYSTEM") != ""
}

// toNativePath converts a POSIX-layer path to native Windows form via the
// layer's cygpath utility. Conversion is best-effort: if cygpath is missing
// or fails, the input is returned unchanged and the downstream interpreter
// gets to complain.
func toNativePath(dir string) string {
	out, err := exec.Command("cygpath", "-w", dir).Output()
	if err != nil {
		return dir
	}
	native := strings.TrimSpace(string(out))
	if native == "" {
		return dir
	}
	return native
}
