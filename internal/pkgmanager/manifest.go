// ABOUTME: package.json helpers: existence probe and devDependencies read-back
// ABOUTME: Reads only what install resolution needs; npm owns all writes

package pkgmanager

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const manifestFileName = "package.json"

// manifestPath returns the package.json path under dir.
func manifestPath(dir string) string {
	return filepath.Join(dir, manifestFileName)
}

// manifestExists reports whether dir holds a package.json.
func manifestExists(dir string) bool {
	_, err := os.Stat(manifestPath(dir))
	return err == nil
}

// readDevDependencies reads the devDependencies map from dir/package.json.
func readDevDependencies(dir string) (map[string]string, error) {
	data, err := os.ReadFile(manifestPath(dir))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", manifestFileName, err)
	}

	var manifest struct {
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", manifestFileName, err)
	}
	return manifest.DevDependencies, nil
}
