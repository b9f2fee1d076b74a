// Package config loads the optional tslaunch override file.
//
// The launcher works with zero configuration; a config file only exists to
// override the defaults — an explicit interpreter path, an alternate server
// entry point, or extra module search entries. Two formats are supported:
// tslaunch.json in JSONC (JSON with Comments, matching the convention of the
// editor tooling that spawns the launcher) and tslaunch.yaml.
//
// A missing file is not an error. A file that exists but cannot be parsed is,
// because silently launching with half-applied overrides would be worse than
// failing.
package config
