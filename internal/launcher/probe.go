package launcher

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/shinji-kodama/tslaunch/internal/model"
)

// ProbeVersion asks an interpreter for its version string by running
// `<nodePath> --version` and returning the trimmed output (e.g. "v22.6.0").
//
// This is diagnostic-only: the launch path never probes the interpreter,
// because the handoff contract is to attempt the exec and let the host
// report failures natively. Only the doctor command calls this.
func ProbeVersion(ctx context.Context, nodePath string) (string, error) {
	// #nosec G204 — nodePath comes from interpreter selection, not user input
	cmd := exec.CommandContext(ctx, nodePath, "--version")

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		message := fmt.Sprintf("%s --version failed", nodePath)
		if detail := strings.TrimSpace(stderr.String()); detail != "" {
			message = fmt.Sprintf("%s: %s", message, detail)
		}
		return "", model.WrapCLIError(model.ExitGeneralError, message, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}
