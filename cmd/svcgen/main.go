// Package main is the entry point for svcgen.
// svcgen scaffolds service classes, and optionally the repository layer
// behind them, in a Laravel project.
package main

import (
	"os"

	"github.com/kamui-project/svcgen/internal/cmd"
	"github.com/kamui-project/svcgen/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.ExitCode(err))
	}
}
