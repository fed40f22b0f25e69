// ABOUTME: Package specifier classification and install-command rendering
// ABOUTME: Local refs start with ./ or / or end in .tgz; everything else is a registry ref

package pkgmanager

import "strings"

// archiveSuffix is the packed-tarball extension npm produces with `npm pack`.
const archiveSuffix = ".tgz"

// IsLocalSpec reports whether spec refers to a local filesystem path or a
// packaged archive rather than a registry reference. Purely syntactic; no
// filesystem access.
func IsLocalSpec(spec string) bool {
	return strings.HasPrefix(spec, "./") ||
		strings.HasPrefix(spec, "/") ||
		strings.HasSuffix(spec, archiveSuffix)
}

// RenderInstallCommand returns the argv that installs spec into dir:
// persist to the manifest's devDependencies, force over conflicts, skip the
// lockfile, and target dir explicitly. The specifier is appended verbatim as
// the final element; npm handles any path expansion itself.
func (m *Manager) RenderInstallCommand(dir, spec string) []string {
	argv := []string{
		m.npm, "install",
		"--save", "--save-dev", "--force", "--no-package-lock",
		"--prefix", dir,
	}
	if m.registry != "" {
		argv = append(argv, "--registry", m.registry)
	}
	return append(argv, spec)
}
