// ABOUTME: CLI dispatch for subcommands: install, exists, jsii, types
// ABOUTME: Wires config into a pkgmanager.Manager and prints results on stdout

package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/caopengau/projen/internal/config"
	"github.com/caopengau/projen/internal/inventory"
	"github.com/caopengau/projen/internal/log"
	"github.com/caopengau/projen/internal/pkgmanager"
)

// Run dispatches a subcommand against workDir. args contains the
// subcommand followed by its arguments.
func Run(args []string, workDir string) error {
	if len(args) == 0 {
		return NewError("usage: projen <install|exists|jsii|types> [flags] [spec...]")
	}

	subcmd := args[0]
	rest := args[1:]

	verbose, rest := extractFlag(rest, "-v")
	if verbose {
		log.SetLevel(log.LevelDebug)
	}

	settings, err := config.Load(workDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	opts := []pkgmanager.Option{pkgmanager.WithEnv(settings.Env)}
	if settings.Registry != "" {
		opts = append(opts, pkgmanager.WithRegistry(settings.Registry))
	}
	mgr := pkgmanager.NewManager(settings.NpmCommand, opts...)

	switch subcmd {
	case "install":
		return runInstall(rest, workDir, mgr)
	case "exists":
		return runExists(rest, workDir, mgr)
	case "jsii":
		return runJsii(rest, workDir)
	case "types":
		return runTypes(rest, workDir)
	default:
		return NewError(fmt.Sprintf("unknown subcommand %q: expected install, exists, jsii, or types", subcmd))
	}
}

func runInstall(args []string, workDir string, mgr *pkgmanager.Manager) error {
	if len(args) == 0 {
		return NewError("install requires at least one package spec")
	}

	ctx := context.Background()
	for _, spec := range args {
		name, err := mgr.InstallPackage(ctx, workDir, spec)
		if err != nil {
			return fmt.Errorf("installing %s: %w", spec, err)
		}
		fmt.Println(name)
	}
	return nil
}

func runExists(args []string, workDir string, mgr *pkgmanager.Manager) error {
	if len(args) == 0 {
		return NewError("exists requires at least one package spec")
	}

	results := mgr.ModulesExist(context.Background(), workDir, args)

	var missing []string
	for i, spec := range args {
		fmt.Printf("%s\t%v\n", spec, results[i])
		if !results[i] {
			missing = append(missing, "module not found: "+spec)
		}
	}
	if len(missing) > 0 {
		return NewError(missing...)
	}
	return nil
}

func runJsii(args []string, workDir string) error {
	if len(args) != 1 {
		return NewError("jsii requires exactly one module name")
	}
	module := args[0]

	dir, found, err := pkgmanager.FindJsiiDir(workDir, module)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", module, err)
	}
	if !found {
		return NewError(fmt.Sprintf("module %q has no .jsii assembly on the search path", module))
	}

	fmt.Println(dir)
	return nil
}

func runTypes(args []string, workDir string) error {
	if len(args) == 0 || len(args) > 2 {
		return NewError("usage: projen types <module> [query]")
	}
	module := args[0]

	dir, found, err := pkgmanager.FindJsiiDir(workDir, module)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", module, err)
	}
	if !found {
		return NewError(fmt.Sprintf("module %q has no .jsii assembly on the search path", module))
	}

	assembly, err := inventory.LoadAssembly(dir)
	if err != nil {
		return fmt.Errorf("reading assembly for %s: %w", module, err)
	}

	types := assembly.ProjectTypes()
	if len(types) == 0 {
		return NewError(fmt.Sprintf("module %q exports no project types", module))
	}

	if len(args) == 2 {
		query := args[1]
		// An exact pjid wins outright; fuzzy matching is only a fallback.
		if exact := assembly.Find(query); exact != nil {
			types = []inventory.ProjectType{*exact}
		} else {
			types = inventory.Suggest(query, types)
			if len(types) == 0 {
				return NewError(fmt.Sprintf("no project type matching %q in %s", query, module))
			}
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PJID\tFQN\tSUMMARY")
	for _, t := range types {
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.Pjid, t.FQN, t.Summary)
	}
	return w.Flush()
}

// extractFlag removes a flag from args and returns whether it was present.
func extractFlag(args []string, flag string) (bool, []string) {
	var filtered []string
	found := false
	for _, a := range args {
		if a == flag {
			found = true
			continue
		}
		filtered = append(filtered, a)
	}
	return found, filtered
}
