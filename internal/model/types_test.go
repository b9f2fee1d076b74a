package model

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInterpreterSource_String verifies that InterpreterSource values produce
// the expected string representations for CLI output and JSON serialization.
func TestInterpreterSource_String(t *testing.T) {
	tests := []struct {
		source   InterpreterSource
		expected string
	}{
		{SourceLocal, "local"},
		{SourceSystem, "system"},
		{SourceConfig, "config"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.source.String())
		})
	}
}

// TestInterpreterSource_IsValid checks that only defined source values pass validation.
func TestInterpreterSource_IsValid(t *testing.T) {
	assert.True(t, SourceLocal.IsValid())
	assert.True(t, SourceSystem.IsValid())
	assert.True(t, SourceConfig.IsValid())
	assert.False(t, InterpreterSource("invalid").IsValid())
	assert.False(t, InterpreterSource("").IsValid())
}

// TestParseInterpreterSource verifies string-to-source conversion,
// including case normalization and error cases.
func TestParseInterpreterSource(t *testing.T) {
	tests := []struct {
		input    string
		expected InterpreterSource
		hasError bool
	}{
		{"local", SourceLocal, false},
		{"system", SourceSystem, false},
		{"config", SourceConfig, false},
		{"Local", SourceLocal, false},   // case insensitive
		{"SYSTEM", SourceSystem, false}, // case insensitive
		{"invalid", "", true},           // unknown value
		{"", "", true},                  // empty string
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseInterpreterSource(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

// TestResolution_NodePathValue verifies that the module search list is joined
// with the platform list separator, preserving entry order.
func TestResolution_NodePathValue(t *testing.T) {
	sep := string(os.PathListSeparator)

	res := &Resolution{
		NodePath: []string{"/a/node_modules", "/b/node_modules", "/custom/path"},
	}
	assert.Equal(t, strings.Join(res.NodePath, sep), res.NodePathValue())

	single := &Resolution{NodePath: []string{"/only"}}
	assert.Equal(t, "/only", single.NodePathValue(), "single entry must not grow a separator")
}

// TestResolution_Argv verifies the replaced process's argument vector:
// interpreter first, server script second, forwarded arguments trailing
// in their original order and count.
func TestResolution_Argv(t *testing.T) {
	res := &Resolution{
		ServerPath:  "/opt/pkg/typescript/bin/tsserver",
		Interpreter: Interpreter{Path: "/usr/bin/node", Source: SourceSystem},
	}

	tests := []struct {
		name      string
		forwarded []string
		want      []string
	}{
		{
			name:      "no arguments",
			forwarded: nil,
			want:      []string{"/usr/bin/node", "/opt/pkg/typescript/bin/tsserver"},
		},
		{
			name:      "single flag",
			forwarded: []string{"--version"},
			want:      []string{"/usr/bin/node", "/opt/pkg/typescript/bin/tsserver", "--version"},
		},
		{
			name:      "order preserved",
			forwarded: []string{"--logVerbosity", "verbose", "--cancellationPipeName", "/tmp/p"},
			want: []string{
				"/usr/bin/node", "/opt/pkg/typescript/bin/tsserver",
				"--logVerbosity", "verbose", "--cancellationPipeName", "/tmp/p",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, res.Argv(tt.forwarded))
		})
	}
}

// TestCLIError_Error verifies message formatting with and without an
// underlying error.
func TestCLIError_Error(t *testing.T) {
	plain := NewCLIError(ExitNotFound, "cannot locate interpreter")
	assert.Equal(t, "cannot locate interpreter", plain.Error())

	underlying := errors.New("no such file or directory")
	wrapped := WrapCLIError(ExitNotFound, "cannot locate interpreter", underlying)
	assert.Equal(t, fmt.Sprintf("cannot locate interpreter: %v", underlying), wrapped.Error())
}

// TestCLIError_Unwrap verifies errors.Is/errors.As compatibility through
// the Unwrap chain.
func TestCLIError_Unwrap(t *testing.T) {
	underlying := os.ErrPermission
	wrapped := WrapCLIError(ExitNotExecutable, "interpreter not executable", underlying)

	assert.True(t, errors.Is(wrapped, os.ErrPermission))

	var cliErr *CLIError
	require.True(t, errors.As(error(wrapped), &cliErr))
	assert.Equal(t, ExitNotExecutable, cliErr.Code)

	assert.Nil(t, NewCLIError(ExitGeneralError, "plain").Unwrap())
}
