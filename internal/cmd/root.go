// Package cmd provides the command-line interface for svcgen.
// It contains all cobra commands and their implementations.
package cmd

import (
	"fmt"

	"github.com/kamui-project/svcgen/internal/di"
	"github.com/kamui-project/svcgen/internal/errors"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time via ldflags
	Version = "dev"
)

// RootCommand represents the root CLI command
type RootCommand struct {
	container *di.Container
	cmd       *cobra.Command

	// Global flags
	projectRoot string
	configFile  string
	logLevel    string

	// Subcommands
	makeServiceCmd *MakeServiceCommand
}

// NewRootCommand creates a new root command
func NewRootCommand() *RootCommand {
	r := &RootCommand{}

	r.cmd = &cobra.Command{
		Use:   "svcgen",
		Short: "svcgen - Service and repository scaffolding for Laravel projects",
		Long: `svcgen generates service classes for a Laravel project.

In repository mode it also generates the repository interface and its
implementation for an existing model, and binds them in the
RepositoryServiceProvider.

To get started, run from the project root:
  svcgen make:service Payment      - Create app/Services/PaymentService.php
  svcgen make:service User -R      - Create the User interface, repository and service`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return r.initialize(cmd)
		},
	}

	// Global flags
	r.cmd.PersistentFlags().StringVarP(&r.projectRoot, "project", "C", ".", "Laravel project root")
	r.cmd.PersistentFlags().StringVar(&r.configFile, "config", "", "Config file (default is .svcgen.yaml in the project root)")
	r.cmd.PersistentFlags().StringVar(&r.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	// Initialize subcommands (will be wired after container init)
	r.makeServiceCmd = NewMakeServiceCommand(r)

	// Add subcommands
	r.cmd.AddCommand(r.makeServiceCmd.Command())

	return r
}

// initialize sets up the DI container
func (r *RootCommand) initialize(cmd *cobra.Command) error {
	// Skip if container is already set (e.g., for testing)
	if r.container != nil {
		return nil
	}

	var err error
	r.container, err = di.NewContainer(di.Options{
		ProjectRoot: r.projectRoot,
		ConfigFile:  r.configFile,
		LogLevel:    r.logLevel,
		LogOutput:   cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	return nil
}

// Execute runs the root command.
// Errors are printed to stderr, with their stack trace at debug level.
func (r *RootCommand) Execute() error {
	err := r.cmd.Execute()
	if err == nil {
		return nil
	}

	fmt.Fprintf(r.cmd.ErrOrStderr(), "Error: %v\n", err)
	if r.container != nil && r.container.Logger() != nil {
		r.container.Logger().Debug(errors.ErrorStack(err))
	}

	return err
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Container returns the DI container
func (r *RootCommand) Container() *di.Container {
	return r.container
}

// SetContainer sets a custom container (for testing)
func (r *RootCommand) SetContainer(c *di.Container) {
	r.container = c
}

// Execute is the main entry point for the CLI
func Execute() error {
	root := NewRootCommand()
	return root.Execute()
}
