// ABOUTME: Settings loading with global + project config merge
// ABOUTME: Accepts JSON or YAML files; project values override global ones

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds the merged tool configuration.
type Settings struct {
	// NpmCommand is the package-manager binary to invoke. Defaults to "npm".
	NpmCommand string `json:"npm_command,omitempty" yaml:"npm_command,omitempty"`
	// Registry, when set, is passed to npm as --registry on every invocation.
	Registry string `json:"registry,omitempty" yaml:"registry,omitempty"`
	// Env holds extra environment variables for npm invocations.
	Env map[string]string `json:"env,omitempty" yaml:"env,omitempty"`
}

// Load reads and merges global and project-local settings.
// Project settings override global settings. Missing files are fine.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFirst(GlobalConfigFiles())
	if err != nil {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFirst(ProjectConfigFiles(projectRoot))
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	if merged.NpmCommand == "" {
		merged.NpmCommand = "npm"
	}
	return merged, nil
}

// loadFirst reads the first existing config file from paths.
// Returns zero Settings if none exist.
func loadFirst(paths []string) (*Settings, error) {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return parse(path, data)
	}
	return &Settings{}, nil
}

// parse decodes a settings file by extension.
func parse(path string, data []byte) (*Settings, error) {
	var s Settings
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.NpmCommand != "" {
		result.NpmCommand = project.NpmCommand
	}
	if project.Registry != "" {
		result.Registry = project.Registry
	}
	if len(project.Env) > 0 {
		if result.Env == nil {
			result.Env = make(map[string]string)
		}
		for k, v := range project.Env {
			result.Env[k] = v
		}
	}

	return &result
}
