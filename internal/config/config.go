package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/tslaunch/internal/model"
)

// fileNames are the config file names probed in the install directory,
// in order. The first one that exists wins.
var fileNames = []string{"tslaunch.json", "tslaunch.yaml", "tslaunch.yml"}

// Config holds the launcher overrides. The zero value means "no overrides":
// local/system interpreter selection and the default tsserver entry point.
type Config struct {
	// Node is an explicit interpreter path. When set, it takes precedence
	// over both the local sibling binary and the system PATH lookup.
	Node string `json:"node,omitempty" yaml:"node,omitempty"`

	// ServerPath replaces the default ../typescript/bin/tsserver entry
	// point. Relative paths are resolved against the install directory.
	ServerPath string `json:"serverPath,omitempty" yaml:"serverPath,omitempty"`

	// NodePath lists extra module search entries. They are inserted after
	// the launcher-derived entries and before any pre-existing NODE_PATH
	// value.
	NodePath []string `json:"nodePath,omitempty" yaml:"nodePath,omitempty"`
}

// Load finds and parses the launcher config file.
//
// explicitPath (normally $TSLAUNCH_CONFIG) short-circuits discovery: when
// non-empty, that file must exist and parse. Otherwise the install directory
// is probed for tslaunch.json / tslaunch.yaml / tslaunch.yml, and the first
// match is parsed. When nothing is found, a zero-value Config and an empty
// path are returned — the zero-config launch path must stay error-free.
//
// The second return value is the path of the file actually used.
func Load(installDir, explicitPath string) (*Config, string, error) {
	if explicitPath != "" {
		cfg, err := parseFile(explicitPath)
		if err != nil {
			return nil, "", err
		}
		return cfg, explicitPath, nil
	}

	for _, name := range fileNames {
		path := filepath.Join(installDir, name)
		if _, err := os.Stat(path); err != nil {
			// Not present (or unreadable) — try the next candidate.
			continue
		}
		cfg, err := parseFile(path)
		if err != nil {
			return nil, "", err
		}
		return cfg, path, nil
	}

	return &Config{}, "", nil
}

// parseFile reads and decodes a single config file, dispatching on the file
// extension: .yaml/.yml via yaml.v3, everything else as JSONC (comments are
// stripped with github.com/tidwall/jsonc before the standard encoding/json
// parse).
func parseFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitConfigInvalid,
			fmt.Sprintf("cannot read config file %q", path), err)
	}

	cfg := &Config{}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, model.WrapCLIError(model.ExitConfigInvalid,
				fmt.Sprintf("invalid YAML in config file %q", path), err)
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, model.WrapCLIError(model.ExitConfigInvalid,
				fmt.Sprintf("invalid JSON in config file %q", path), err)
		}
	}

	return cfg, nil
}
