package launcher

import (
	"path/filepath"

	"github.com/shinji-kodama/tslaunch/internal/model"
)

// SelectInterpreter picks the Node.js interpreter for the handoff.
//
// The decision rule has exactly three tiers and no further chaining:
//
//  1. override (from a config file) — used verbatim when non-empty
//  2. <installDir>/node — used when present and executable
//  3. the bare name "node" — left to the ambient command search path
//
// The system fallback is deliberately not checked for existence here; a
// missing system node surfaces as the exec primitive's native failure.
func SelectInterpreter(installDir, override string) model.Interpreter {
	if override != "" {
		return model.Interpreter{Path: override, Source: model.SourceConfig}
	}

	local := filepath.Join(installDir, interpreterFileName)
	if isExecutable(local) {
		return model.Interpreter{Path: local, Source: model.SourceLocal}
	}

	return model.Interpreter{Path: "node", Source: model.SourceSystem}
}
