package cmd

import (
	"fmt"
	"path"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/kamui-project/svcgen/internal/errors"
	iface "github.com/kamui-project/svcgen/internal/service/interface"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

// exitInterrupted is the conventional exit code after Ctrl+C
const exitInterrupted = 130

// MakeServiceCommand represents the make:service command
type MakeServiceCommand struct {
	root *RootCommand
	cmd  *cobra.Command

	// chooseGroup prompts for a group in --interactive mode
	chooseGroup iface.GroupChooser

	// openFile opens a generated file with --open
	openFile func(path string) error
}

// NewMakeServiceCommand creates a new make:service command
func NewMakeServiceCommand(root *RootCommand) *MakeServiceCommand {
	m := &MakeServiceCommand{
		root:        root,
		chooseGroup: promptGroup,
		openFile:    browser.OpenFile,
	}

	m.cmd = &cobra.Command{
		Use:   "make:service <name>",
		Short: "Create a new service class",
		Long: `Create a new service class.

Without flags a single service class is written to app/Services. The name
may contain namespace segments, e.g. Billing\Invoice or Billing/Invoice.

With --repository the name must be an existing model in app/Models or in one
of its immediate subdirectories. The command then writes, in order:
  app/Interfaces/[Group/]<Model>RepositoryInterface.php
  app/Repositories/[Group/]<Model>Repository.php
  app/Services/[Group/]<Model>Service.php
and binds the interface to the repository in RepositoryServiceProvider.

Existing files are overwritten.

Examples:
  svcgen make:service Payment
  svcgen make:service Billing/Invoice
  svcgen make:service User --repository
  svcgen make:service Post -R --interactive --open`,
		Args: cobra.ExactArgs(1),
		RunE: m.Run,
	}

	m.cmd.Flags().BoolP("repository", "R", false, "Also create the repository interface and implementation for a model")
	m.cmd.Flags().Bool("interactive", false, "Prompt for the group when the model exists in several")
	m.cmd.Flags().Bool("open", false, "Open the generated service file")

	return m
}

// Command returns the underlying cobra command
func (m *MakeServiceCommand) Command() *cobra.Command {
	return m.cmd
}

// Run executes the make:service command
func (m *MakeServiceCommand) Run(cmd *cobra.Command, args []string) error {
	name := args[0]
	ctx := cmd.Context()

	repository, _ := cmd.Flags().GetBool("repository")
	interactive, _ := cmd.Flags().GetBool("interactive")
	open, _ := cmd.Flags().GetBool("open")

	// Get generator from DI container
	generator := m.root.Container().Generator()

	var (
		result *iface.Result
		err    error
	)

	if repository {
		var chooser iface.GroupChooser
		if interactive {
			chooser = m.chooseGroup
		}
		result, err = generator.GenerateRepository(ctx, name, chooser)
	} else {
		result, err = generator.GeneratePlainService(ctx, name)
	}

	// Report what was written even when a later step failed
	m.report(cmd, result)
	if err != nil {
		return err
	}

	if open && result != nil && len(result.Written) > 0 {
		m.open(cmd, result.Written[len(result.Written)-1])
	}

	return nil
}

// report prints one line per touched file
func (m *MakeServiceCommand) report(cmd *cobra.Command, result *iface.Result) {
	if result == nil {
		return
	}

	out := cmd.OutOrStdout()

	for _, written := range result.Written {
		fmt.Fprintf(out, "✓ %s created successfully.\n", path.Base(written))
	}

	if result.Patched != "" {
		provider := path.Base(result.Patched)
		fmt.Fprintf(out, "✓ %s updated successfully.\n", strings.TrimSuffix(provider, path.Ext(provider)))
	}
}

// open opens a project-relative file, falling back to printing its path
func (m *MakeServiceCommand) open(cmd *cobra.Command, rel string) {
	target := m.root.Container().Config().Path(rel)

	if err := m.openFile(target); err != nil {
		m.root.Container().Logger().WithError(err).Debug("Failed to open file")
		fmt.Fprintf(cmd.OutOrStdout(), "Open this file in your editor: %s\n", target)
	}
}

// promptGroup asks the user to pick one of the groups containing the model
func promptGroup(name string, groups []string) (string, error) {
	var group string
	if err := survey.AskOne(&survey.Select{
		Message: fmt.Sprintf("Model %s exists in several groups. Select one:", name),
		Options: groups,
	}, &group); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", errors.ErrorWithExitCode{Err: err, ExitCode: exitInterrupted}
		}
		return "", err
	}

	return group, nil
}
