// Package cli — doctor_test.go contains unit tests for the doctor report
// assembly and its text rendering.
//
// The report is built against a fabricated install layout in a temp
// directory (a stub node script standing in for the interpreter), so no
// real Node.js installation is required.
package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/tslaunch/internal/model"
)

// writeStubNode creates an executable script that answers --version like a
// real node binary.
func writeStubNode(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "node")
	script := "#!/bin/sh\necho v22.0.0\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

// TestBuildReport_Healthy verifies the report for a complete install layout:
// interpreter resolvable, version probed, server script present, existing
// and missing NODE_PATH entries flagged individually.
func TestBuildReport_Healthy(t *testing.T) {
	dir := t.TempDir()
	node := writeStubNode(t, dir)

	serverDir := filepath.Join(dir, "typescript", "bin")
	require.NoError(t, os.MkdirAll(serverDir, 0o755))
	server := filepath.Join(serverDir, "tsserver")
	require.NoError(t, os.WriteFile(server, []byte("// entry\n"), 0o644))

	existing := filepath.Join(dir, "node_modules")
	require.NoError(t, os.Mkdir(existing, 0o755))
	missing := filepath.Join(dir, "nope", "node_modules")

	res := &model.Resolution{
		InstallDir:  dir,
		ServerPath:  server,
		Interpreter: model.Interpreter{Path: node, Source: model.SourceLocal},
		NodePath:    []string{existing, missing},
	}

	report := buildReport(context.Background(), res)

	assert.True(t, report.InterpreterFound)
	assert.Equal(t, node, report.InterpreterPath)
	assert.Equal(t, "v22.0.0", report.NodeVersion)
	assert.True(t, report.ServerFound)
	assert.True(t, report.healthy())

	require.Len(t, report.NodePath, 2)
	assert.True(t, report.NodePath[0].Exists)
	assert.False(t, report.NodePath[1].Exists)
}

// TestBuildReport_NothingFound verifies the unhealthy report when neither
// the interpreter nor the server script exists.
func TestBuildReport_NothingFound(t *testing.T) {
	dir := t.TempDir()

	res := &model.Resolution{
		InstallDir:  dir,
		ServerPath:  filepath.Join(dir, "typescript", "bin", "tsserver"),
		Interpreter: model.Interpreter{Path: filepath.Join(dir, "node"), Source: model.SourceLocal},
		NodePath:    []string{filepath.Join(dir, "node_modules")},
	}

	report := buildReport(context.Background(), res)

	assert.False(t, report.InterpreterFound)
	assert.Empty(t, report.NodeVersion)
	assert.False(t, report.ServerFound)
	assert.False(t, report.healthy())
}

// TestFormatReportText verifies the text rendering: missing pieces are
// marked inline rather than omitted.
func TestFormatReportText(t *testing.T) {
	report := &doctorReport{
		InstallDir:       "/opt/pkg/.bin",
		Interpreter:      model.Interpreter{Path: "node", Source: model.SourceSystem},
		InterpreterPath:  "/usr/bin/node",
		InterpreterFound: true,
		NodeVersion:      "v22.0.0",
		ServerPath:       "/opt/pkg/typescript/bin/tsserver",
		ServerFound:      false,
		NodePath: []pathEntry{
			{Path: "/opt/pkg", Exists: true},
			{Path: "/opt/pkg/node_modules", Exists: false},
		},
	}

	out := formatReportText(report)

	assert.Contains(t, out, "Install directory:  /opt/pkg/.bin")
	assert.Contains(t, out, "Config file:        none (defaults)")
	assert.Contains(t, out, "/usr/bin/node (system) v22.0.0")
	assert.Contains(t, out, "/opt/pkg/typescript/bin/tsserver  [missing]")
	assert.Contains(t, out, "  /opt/pkg\n")
	assert.Contains(t, out, "  /opt/pkg/node_modules  [missing]")
}

// TestFormatReportText_NotFoundInterpreter verifies the interpreter line
// when lookup failed: the unresolved name is shown with a marker.
func TestFormatReportText_NotFoundInterpreter(t *testing.T) {
	report := &doctorReport{
		InstallDir:  "/opt/pkg/.bin",
		ConfigPath:  "/opt/pkg/.bin/tslaunch.json",
		Interpreter: model.Interpreter{Path: "node", Source: model.SourceSystem},
		ServerPath:  "/opt/pkg/typescript/bin/tsserver",
	}

	out := formatReportText(report)

	assert.Contains(t, out, "Config file:        /opt/pkg/.bin/tslaunch.json")
	assert.Contains(t, out, "Interpreter:        node (system)  [not found]")
}
