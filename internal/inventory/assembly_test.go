// ABOUTME: Tests for .jsii assembly loading and project-type discovery
// ABOUTME: Uses tempdir fixtures with hand-written assembly JSON

package inventory

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleAssembly = `{
  "name": "my-project-lib",
  "version": "1.4.0",
  "types": {
    "my-project-lib.WebApp": {
      "fqn": "my-project-lib.WebApp",
      "kind": "class",
      "name": "WebApp",
      "docs": {
        "summary": "A web application project.",
        "custom": {"pjid": "web-app"}
      }
    },
    "my-project-lib.CliTool": {
      "fqn": "my-project-lib.CliTool",
      "kind": "class",
      "name": "CliTool",
      "docs": {
        "summary": "A command-line tool project.",
        "custom": {"pjid": "cli-tool"}
      }
    },
    "my-project-lib.Helper": {
      "fqn": "my-project-lib.Helper",
      "kind": "class",
      "name": "Helper",
      "docs": {"summary": "Not a project type."}
    },
    "my-project-lib.IThing": {
      "fqn": "my-project-lib.IThing",
      "kind": "interface",
      "name": "IThing",
      "docs": {"custom": {"pjid": "should-be-ignored"}}
    }
  }
}`

func writeAssembly(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".jsii"), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return dir
}

func TestLoadAssembly(t *testing.T) {
	t.Parallel()

	dir := writeAssembly(t, sampleAssembly)
	a, err := LoadAssembly(dir)
	if err != nil {
		t.Fatalf("LoadAssembly: %v", err)
	}
	if a.Name != "my-project-lib" {
		t.Errorf("Name = %q; want %q", a.Name, "my-project-lib")
	}
	if a.Version != "1.4.0" {
		t.Errorf("Version = %q; want %q", a.Version, "1.4.0")
	}
	if len(a.Types) != 4 {
		t.Errorf("len(Types) = %d; want 4", len(a.Types))
	}
}

func TestLoadAssemblyMissing(t *testing.T) {
	t.Parallel()

	if _, err := LoadAssembly(t.TempDir()); err == nil {
		t.Fatal("expected error for missing .jsii")
	}
}

func TestLoadAssemblyMalformed(t *testing.T) {
	t.Parallel()

	dir := writeAssembly(t, "{not json")
	if _, err := LoadAssembly(dir); err == nil {
		t.Fatal("expected error for malformed .jsii")
	}
}

func TestProjectTypes(t *testing.T) {
	t.Parallel()

	dir := writeAssembly(t, sampleAssembly)
	a, err := LoadAssembly(dir)
	if err != nil {
		t.Fatalf("LoadAssembly: %v", err)
	}

	types := a.ProjectTypes()
	if len(types) != 2 {
		t.Fatalf("len(ProjectTypes) = %d; want 2 (helper and interface excluded)", len(types))
	}
	// Sorted by pjid.
	if types[0].Pjid != "cli-tool" || types[1].Pjid != "web-app" {
		t.Errorf("pjids = %q, %q; want cli-tool, web-app", types[0].Pjid, types[1].Pjid)
	}
	if types[1].FQN != "my-project-lib.WebApp" {
		t.Errorf("FQN = %q; want %q", types[1].FQN, "my-project-lib.WebApp")
	}
	if types[1].Summary != "A web application project." {
		t.Errorf("Summary = %q", types[1].Summary)
	}
}

func TestFind(t *testing.T) {
	t.Parallel()

	dir := writeAssembly(t, sampleAssembly)
	a, err := LoadAssembly(dir)
	if err != nil {
		t.Fatalf("LoadAssembly: %v", err)
	}

	if got := a.Find("web-app"); got == nil || got.FQN != "my-project-lib.WebApp" {
		t.Errorf("Find(web-app) = %+v", got)
	}
	if got := a.Find("nope"); got != nil {
		t.Errorf("Find(nope) = %+v; want nil", got)
	}
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	types := []ProjectType{
		{Pjid: "web-app"},
		{Pjid: "cli-tool"},
		{Pjid: "awscdk-app-ts"},
	}

	matches := Suggest("webapp", types)
	if len(matches) == 0 || matches[0].Pjid != "web-app" {
		t.Errorf("Suggest(webapp) = %+v; want web-app first", matches)
	}

	if got := Suggest("", types); got != nil {
		t.Errorf("Suggest(empty) = %+v; want nil", got)
	}

	if got := Suggest("zzzzqq", types); len(got) != 0 {
		t.Errorf("Suggest(zzzzqq) = %+v; want no matches", got)
	}
}
