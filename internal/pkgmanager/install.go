// ABOUTME: Package installer: transient manifest bookkeeping around npm install
// ABOUTME: Returns the resolved canonical package name from devDependencies

package pkgmanager

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/caopengau/projen/internal/log"
)

// InstallPackage installs spec into baseDir via npm and returns the resolved
// canonical package name.
//
// If baseDir has no package.json, a minimal one is created with
// `npm init --yes` and removed again afterward (best effort), so the
// directory is left as it was except for the installed files. Engine
// compatibility checks are bypassed for the install; validating runtime
// compatibility is the caller's job at a later stage.
//
// npm failures propagate unwrapped. A successful install whose
// devDependencies hold no package other than the host tool itself fails
// with a resolution error naming spec.
func (m *Manager) InstallPackage(ctx context.Context, baseDir, spec string) (string, error) {
	existed := manifestExists(baseDir)
	if !existed {
		if err := m.runner.Run(ctx, baseDir, m.extraEnv(false), m.npm, "init", "--yes"); err != nil {
			return "", err
		}
		// Transient manifest: remove regardless of how the install goes.
		defer os.RemoveAll(manifestPath(baseDir))
	}

	log.Info("installing module %s...", spec)
	argv := m.RenderInstallCommand(baseDir, spec)
	log.Debug("exec: %s", strings.Join(argv, " "))
	if err := m.runner.Run(ctx, baseDir, m.extraEnv(true), argv[0], argv[1:]...); err != nil {
		return "", err
	}

	devDeps, err := readDevDependencies(baseDir)
	if err != nil {
		return "", err
	}

	for name := range devDeps {
		if name != hostPackage {
			return name, nil
		}
	}
	return "", fmt.Errorf("unable to resolve module name for %q", spec)
}
