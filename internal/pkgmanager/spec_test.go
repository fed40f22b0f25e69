// ABOUTME: Tests for specifier classification and install-command rendering
// ABOUTME: Validates local-ref detection and the rendered npm argv

package pkgmanager

import (
	"slices"
	"testing"
)

func TestIsLocalSpec(t *testing.T) {
	t.Parallel()
	tests := []struct {
		spec string
		want bool
	}{
		{"./my-module", true},
		{"./nested/dir", true},
		{"/abs/path/module", true},
		{"/", true},
		{"my-module-1.2.3.tgz", true},
		{"dist/my-module.tgz", true},
		{"cdk-project", false},
		{"cdk-project@^1.0.0", false},
		{"@scope/name", false},
		{"@scope/name@1.2.3", false},
		{"", false},
		{".hidden", false},
		{"module.tar.gz", false},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			if got := IsLocalSpec(tt.spec); got != tt.want {
				t.Errorf("IsLocalSpec(%q) = %v; want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestRenderInstallCommand(t *testing.T) {
	t.Parallel()

	m := NewManager("npm")
	argv := m.RenderInstallCommand("/work/dir", "@scope/app@^2")

	want := []string{
		"npm", "install",
		"--save", "--save-dev", "--force", "--no-package-lock",
		"--prefix", "/work/dir",
		"@scope/app@^2",
	}
	if !slices.Equal(argv, want) {
		t.Errorf("argv = %q; want %q", argv, want)
	}
}

func TestRenderInstallCommandSpecifierLast(t *testing.T) {
	t.Parallel()

	m := NewManager("npm", WithRegistry("https://registry.example.com"))
	argv := m.RenderInstallCommand("/tmp/x", "./local-module")

	if got := argv[len(argv)-1]; got != "./local-module" {
		t.Errorf("last argv element = %q; want specifier verbatim", got)
	}
	if !slices.Contains(argv, "--registry") {
		t.Error("expected --registry in argv when a registry is configured")
	}
}
