// ABOUTME: Standard filesystem paths for projen configuration
// ABOUTME: Resolves ~/.projen/ for global and .projen/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".projen"
	projectDirName = ".projen"
)

// GlobalDir returns the user-global config directory (~/.projen/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.projen/ under root).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFiles returns candidate global config file paths in load order.
// The first existing file wins.
func GlobalConfigFiles() []string {
	return []string{
		filepath.Join(GlobalDir(), "config.json"),
		filepath.Join(GlobalDir(), "config.yaml"),
	}
}

// ProjectConfigFiles returns candidate project-local config file paths in
// load order. The first existing file wins.
func ProjectConfigFiles(projectRoot string) []string {
	return []string{
		filepath.Join(ProjectDir(projectRoot), "config.json"),
		filepath.Join(ProjectDir(projectRoot), "config.yaml"),
	}
}
