// ABOUTME: Node-style module resolution for locating a module's .jsii file
// ABOUTME: Walks node_modules dirs from a base directory toward the root

package pkgmanager

import (
	"os"
	"path/filepath"
)

// jsiiFileName is the per-package API assembly file jsii-built modules ship.
const jsiiFileName = ".jsii"

// FindJsiiDir resolves moduleName using the Node module search path rooted
// at baseDir and returns the directory containing its .jsii file. found is
// false when resolution fails because no .jsii exists on the search path;
// any other failure (permission errors and the like) is returned as err.
func FindJsiiDir(baseDir, moduleName string) (dir string, found bool, err error) {
	current, err := filepath.Abs(baseDir)
	if err != nil {
		return "", false, err
	}

	for {
		candidate := filepath.Join(current, "node_modules", moduleName, jsiiFileName)
		_, statErr := os.Stat(candidate)
		if statErr == nil {
			return filepath.Dir(candidate), true, nil
		}
		if !os.IsNotExist(statErr) {
			return "", false, statErr
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false, nil
		}
		current = parent
	}
}
