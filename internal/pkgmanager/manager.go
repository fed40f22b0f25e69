// ABOUTME: Manager drives the external npm CLI for install/probe operations
// ABOUTME: Holds the binary name, optional registry, extra env, and the Runner

package pkgmanager

import "sort"

// hostPackage is this tool's own npm package name. Manifest initialization
// may insert it as an incidental dev dependency; resolution filters it out.
const hostPackage = "projen"

// Manager wraps the external package-manager CLI.
type Manager struct {
	npm      string
	registry string
	env      map[string]string
	runner   Runner
}

// Option configures a Manager.
type Option func(*Manager)

// WithRegistry sets the npm registry passed on every invocation.
func WithRegistry(registry string) Option {
	return func(m *Manager) { m.registry = registry }
}

// WithEnv sets extra environment variables for npm invocations.
func WithEnv(env map[string]string) Option {
	return func(m *Manager) { m.env = env }
}

// WithRunner substitutes the command runner. Tests use this to avoid
// spawning real processes.
func WithRunner(r Runner) Option {
	return func(m *Manager) { m.runner = r }
}

// NewManager returns a Manager invoking npmCmd (typically "npm") through
// an ExecRunner unless overridden.
func NewManager(npmCmd string, opts ...Option) *Manager {
	if npmCmd == "" {
		npmCmd = "npm"
	}
	m := &Manager{npm: npmCmd, runner: ExecRunner{}}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// extraEnv renders the configured env map as "K=V" pairs in stable order,
// with the engine-strict bypass appended for install invocations.
func (m *Manager) extraEnv(bypassEngines bool) []string {
	keys := make([]string, 0, len(m.env))
	for k := range m.env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		env = append(env, k+"="+m.env[k])
	}
	if bypassEngines {
		env = append(env, "npm_config_engine_strict=false")
	}
	return env
}
