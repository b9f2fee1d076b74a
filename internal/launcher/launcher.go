package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/shinji-kodama/tslaunch/internal/config"
	"github.com/shinji-kodama/tslaunch/internal/model"
)

// defaultServerSubpath locates the tsserver entry point relative to the
// install directory: the typescript package is a sibling of the launcher's
// own package directory.
const defaultServerSubpath = "../typescript/bin/tsserver"

// configPathVar points at an explicit config file, bypassing discovery in
// the install directory.
const configPathVar = "TSLAUNCH_CONFIG"

// Launcher performs the locate-and-launch sequence for one invocation.
//
// It is constructed once from the invocation path, computes a Resolution,
// and hands the process over. The function fields are seams for tests;
// production code never touches them after New.
type Launcher struct {
	installDir string
	cfg        *config.Config
	configPath string

	getenv   func(string) string
	environ  func() []string
	lookPath func(string) (string, error)
	execFn   func(argv0 string, argv []string, env []string) error
}

// New builds a Launcher from the invocation path (argv[0]).
//
// This resolves the install directory and loads the optional config file.
// The only error path is a config file that exists but cannot be parsed;
// absence of configuration is the normal case.
func New(invocationPath string) (*Launcher, error) {
	installDir := ResolveInstallDir(invocationPath)

	cfg, configPath, err := config.Load(installDir, os.Getenv(configPathVar))
	if err != nil {
		return nil, err
	}

	return &Launcher{
		installDir: installDir,
		cfg:        cfg,
		configPath: configPath,
		getenv:     os.Getenv,
		environ:    os.Environ,
		lookPath:   exec.LookPath,
		execFn:     execReplace,
	}, nil
}

// InstallDir returns the resolved install directory.
func (l *Launcher) InstallDir() string {
	return l.installDir
}

// Resolve computes the complete handoff plan without executing it.
//
// The module search list is assembled in precedence order: the five
// launcher-derived entries, then configured extras, then the components of
// any pre-existing NODE_PATH value. The pre-existing value is preserved but
// searched last, so caller configuration can never shadow the launcher's
// own entries.
func (l *Launcher) Resolve() *model.Resolution {
	nodePath := DerivedNodePath(l.installDir)
	nodePath = append(nodePath, l.cfg.NodePath...)
	if existing := l.getenv(NodePathVar); existing != "" {
		for _, entry := range strings.Split(existing, string(os.PathListSeparator)) {
			if entry != "" {
				nodePath = append(nodePath, entry)
			}
		}
	}

	return &model.Resolution{
		InstallDir:  l.installDir,
		ServerPath:  l.serverPath(),
		Interpreter: SelectInterpreter(l.installDir, l.cfg.Node),
		NodePath:    nodePath,
		ConfigPath:  l.configPath,
	}
}

// serverPath returns the tsserver entry point, honoring a config override.
// Relative overrides are resolved against the install directory. The path
// is never existence-checked: a missing script is the interpreter's error
// to report, after the handoff.
func (l *Launcher) serverPath() string {
	if l.cfg.ServerPath != "" {
		if filepath.IsAbs(l.cfg.ServerPath) {
			return l.cfg.ServerPath
		}
		return filepath.Join(l.installDir, filepath.FromSlash(l.cfg.ServerPath))
	}
	return filepath.Join(l.installDir, filepath.FromSlash(defaultServerSubpath))
}

// Launch replaces the current process with the chosen interpreter running
// the server script, forwarding args verbatim and positionally intact.
//
// This is a terminal operation: on success control never returns and the
// launcher's exit status becomes the replaced process's. An error return
// means the handoff could not be attempted (interpreter lookup failed) or
// the exec primitive itself refused, mapped onto the shell conventions
// (127 not found, 126 not executable).
func (l *Launcher) Launch(args []string) error {
	res := l.Resolve()

	// The exec primitive needs a concrete path; for the system fallback this
	// is the first (and only) point where "node" is resolved through PATH.
	argv0, err := l.lookPath(res.Interpreter.Path)
	if err != nil {
		return model.WrapCLIError(exitCodeFor(err),
			fmt.Sprintf("cannot locate interpreter %q", res.Interpreter.Path), err)
	}

	argv := res.Argv(args)
	argv[0] = argv0
	env := withNodePath(l.environ(), res.NodePathValue())

	if err := l.execFn(argv0, argv, env); err != nil {
		return model.WrapCLIError(exitCodeFor(err),
			fmt.Sprintf("cannot exec %q", argv0), err)
	}
	return nil
}

// withNodePath returns env with any NODE_PATH entries replaced by value.
// The pre-existing value is already folded into value by Resolve, so stale
// entries are dropped rather than duplicated.
func withNodePath(env []string, value string) []string {
	out := make([]string, 0, len(env)+1)
	for _, kv := range env {
		if strings.HasPrefix(kv, NodePathVar+"=") {
			continue
		}
		out = append(out, kv)
	}
	return append(out, NodePathVar+"="+value)
}

// exitCodeFor maps exec/lookup failures onto the shell exit conventions.
func exitCodeFor(err error) model.ExitCode {
	switch {
	case errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist):
		return model.ExitNotFound
	case errors.Is(err, os.ErrPermission):
		return model.ExitNotExecutable
	default:
		return model.ExitGeneralError
	}
}
