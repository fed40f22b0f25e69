// ABOUTME: Synchronous external-command runner behind an injectable interface
// ABOUTME: ExecRunner wraps os/exec; tests substitute fakes to avoid spawning npm

package pkgmanager

import (
	"context"
	"os"
	"os/exec"
)

// Runner executes external commands synchronously, blocking until exit.
// A nil error means the process exited zero; spawn failures and non-zero
// exits both surface as errors.
type Runner interface {
	// Run executes name with args in dir. extraEnv entries ("K=V") are
	// appended to the inherited environment. Stderr streams through so
	// npm progress stays visible; stdout is discarded.
	Run(ctx context.Context, dir string, extraEnv []string, name string, args ...string) error

	// RunQuiet executes name with args in dir, discarding all output.
	// Used for probes where only the exit status matters.
	RunQuiet(ctx context.Context, dir string, name string, args ...string) error
}

// ExecRunner implements Runner using os/exec.
type ExecRunner struct{}

// Run executes the command with stderr passthrough.
func (ExecRunner) Run(ctx context.Context, dir string, extraEnv []string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// RunQuiet executes the command with all output suppressed.
func (ExecRunner) RunQuiet(ctx context.Context, dir string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.Run()
}
