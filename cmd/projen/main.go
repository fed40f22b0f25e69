// ABOUTME: CLI entry point: resolves the working directory and dispatches subcommands
// ABOUTME: Prints cli.Error lines trace-free; everything else gets an error: prefix

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/caopengau/projen/internal/cli"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := os.Args[1:]

	if len(args) == 1 && (args[0] == "--version" || args[0] == "version") {
		fmt.Printf("projen %s (%s) built %s\n", version, commit, date)
		return
	}

	workDir, dirErr := os.Getwd()
	if dirErr != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", dirErr)
		os.Exit(1)
	}

	// -C <dir> runs as if started in dir, like make and git.
	if len(args) >= 2 && args[0] == "-C" {
		workDir = args[1]
		args = args[2:]
	}

	if err := cli.Run(args, workDir); err != nil {
		var cliErr *cli.Error
		if errors.As(err, &cliErr) {
			for _, line := range cliErr.Lines {
				fmt.Fprintln(os.Stderr, line)
			}
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
