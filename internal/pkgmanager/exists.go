// ABOUTME: Module existence probes: filesystem stat for local refs, npm view otherwise
// ABOUTME: Batch probe fans out concurrently with fixed result slots

package pkgmanager

import (
	"context"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// ModuleExists reports whether spec refers to something installable: for a
// local reference, whether a filesystem entry exists at that path (relative
// references resolve against dir, matching where npm would install from);
// for a registry reference, whether `npm view` exits zero in dir. Probe
// failures of any kind (non-zero exit, spawn error) read as "does not
// exist". The result is not atomic with a later install.
func (m *Manager) ModuleExists(ctx context.Context, dir, spec string) bool {
	if IsLocalSpec(spec) {
		path := spec
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		_, err := os.Stat(path)
		return err == nil
	}

	args := []string{"view", spec}
	if m.registry != "" {
		args = append(args, "--registry", m.registry)
	}
	return m.runner.RunQuiet(ctx, dir, m.npm, args...) == nil
}

// ModulesExist probes each specifier concurrently and returns results in
// input order. Each probe writes to its own slot; no mutex is needed.
func (m *Manager) ModulesExist(ctx context.Context, dir string, specs []string) []bool {
	results := make([]bool, len(specs))

	var g errgroup.Group
	for i, spec := range specs {
		i, spec := i, spec
		g.Go(func() error {
			results[i] = m.ModuleExists(ctx, dir, spec)
			return nil
		})
	}
	// Probe goroutines never return errors.
	_ = g.Wait()

	return results
}
