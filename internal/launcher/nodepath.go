package launcher

import (
	"path/filepath"
)

// NodePathVar is the environment variable node consults for additional
// module resolution roots.
const NodePathVar = "NODE_PATH"

// derivedSubdirs are the module directories the launcher contributes,
// relative to the install directory, in resolution-priority order:
//
//	..                          sibling packages (launcher in node_modules/.bin)
//	../node_modules             nested install, launcher one level deeper
//	../typescript/node_modules  the server package's own nested dependencies
//	../../node_modules          hoisted/deduplicated install
//	../..                       the grandparent dependency directory itself
//
// None of these are existence-checked: entries that do not exist on a given
// install layout are harmless no-ops for node's resolver.
var derivedSubdirs = []string{
	"..",
	"../node_modules",
	"../typescript/node_modules",
	"../../node_modules",
	"../..",
}

// DerivedNodePath returns the launcher-contributed module search entries
// resolved against installDir, in priority order.
func DerivedNodePath(installDir string) []string {
	entries := make([]string, 0, len(derivedSubdirs))
	for _, sub := range derivedSubdirs {
		entries = append(entries, filepath.Join(installDir, filepath.FromSlash(sub)))
	}
	return entries
}
