package controllers

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/loomkit/loom/internal/domain/commands"
	"github.com/loomkit/loom/internal/domain/entities"
	"github.com/loomkit/loom/internal/domain/repositories"
)

// AddController handles the "add" subcommand.
type AddController struct {
	command  commands.Add
	prompter repositories.Prompter
}

// NewAddController creates a new AddController.
func NewAddController(command commands.Add, prompter repositories.Prompter) *AddController {
	return &AddController{command: command, prompter: prompter}
}

// GetBind returns the Cobra command metadata for the add controller.
func (it *AddController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "add [component ...]",
		Short: "Copy UI components into your project",
		Long: `Copy UI components into your project and install their dependencies.

With component names, the listed components are installed directly.
Without arguments, an interactive multi-select over the available
components is shown.

Components are copied as source code that you own; modify them as needed.`,
	}
}

// Execute runs the add pipeline and prints the summary.
func (it *AddController) Execute(cmd *cobra.Command, args []string) error {
	projectRoot, err := resolveProjectRoot(cmd)
	if err != nil {
		return err
	}

	settings, err := entities.LoadSettings(projectRoot)
	if err != nil {
		return err
	}

	it.prompter.Intro("loom")

	report, execErr := it.command.Execute(cmd.Context(), commands.AddOptions{
		ProjectRoot:              projectRoot,
		Components:               args,
		ContinueOnInstallFailure: settings.ContinueOnInstallFailure,
	})
	if execErr != nil {
		if errors.Is(execErr, entities.ErrCancelled) {
			it.prompter.Cancel("Operation cancelled.")
		}
		return execErr
	}

	it.printSummary(report)
	return nil
}

// printSummary lists every component by outcome and closes with the outro.
func (it *AddController) printSummary(report *entities.Report) {
	fmt.Println()
	for _, name := range report.Installed {
		it.prompter.Success("%s", name)
	}
	for _, name := range report.Failed {
		it.prompter.Failure("%s", name)
	}

	it.prompter.Info(
		"%d dependencies (%d UI primitives) via %s",
		report.General.Len()+report.Primitives.Len(),
		report.Primitives.Len(),
		report.Manager,
	)

	if len(report.Failed) > 0 {
		it.prompter.Outro(fmt.Sprintf(
			"Done with errors: %d installed, %d failed.",
			len(report.Installed), len(report.Failed),
		))
		return
	}
	it.prompter.Outro(fmt.Sprintf("Done. %d components installed.", len(report.Installed)))
}

// resolveProjectRoot turns the --cwd flag into an absolute project root.
func resolveProjectRoot(cmd *cobra.Command) (string, error) {
	cwd, _ := cmd.Flags().GetString("cwd")
	projectRoot, err := filepath.Abs(cwd)
	if err != nil {
		return "", fmt.Errorf("invalid project root %q: %w", cwd, err)
	}
	return projectRoot, nil
}
