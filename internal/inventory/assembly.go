// ABOUTME: Reads a module's .jsii assembly and discovers exported project types
// ABOUTME: Project types are classes carrying a pjid tag in their doc custom fields

package inventory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// pjidTag is the custom docs field marking a class as a project type.
const pjidTag = "pjid"

// Assembly is the subset of a .jsii assembly this tool reads.
type Assembly struct {
	Name    string          `json:"name"`
	Version string          `json:"version"`
	Types   map[string]Type `json:"types"`
}

// Type is a single exported jsii type.
type Type struct {
	FQN  string `json:"fqn"`
	Kind string `json:"kind"`
	Name string `json:"name"`
	Docs Docs   `json:"docs"`
}

// Docs carries the documentation block attached to a type.
type Docs struct {
	Summary string            `json:"summary"`
	Custom  map[string]string `json:"custom"`
}

// ProjectType is a project blueprint a jsii module exports.
type ProjectType struct {
	Pjid    string
	FQN     string
	Summary string
}

// LoadAssembly reads the .jsii file in dir.
func LoadAssembly(dir string) (*Assembly, error) {
	path := filepath.Join(dir, ".jsii")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var a Assembly
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &a, nil
}

// ProjectTypes returns the assembly's project types sorted by pjid.
// Types without a pjid doc tag are not project types.
func (a *Assembly) ProjectTypes() []ProjectType {
	var types []ProjectType
	for _, t := range a.Types {
		if t.Kind != "class" {
			continue
		}
		pjid, ok := t.Docs.Custom[pjidTag]
		if !ok || pjid == "" {
			continue
		}
		types = append(types, ProjectType{
			Pjid:    pjid,
			FQN:     t.FQN,
			Summary: t.Docs.Summary,
		})
	}

	sort.Slice(types, func(i, j int) bool { return types[i].Pjid < types[j].Pjid })
	return types
}

// Find returns the project type with the given pjid, or nil.
func (a *Assembly) Find(pjid string) *ProjectType {
	for _, t := range a.ProjectTypes() {
		if t.Pjid == pjid {
			return &t
		}
	}
	return nil
}
