package controllers

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/loomkit/loom/internal/domain/commands"
	"github.com/loomkit/loom/internal/domain/entities"
	"github.com/loomkit/loom/internal/domain/repositories"
)

// InitController handles the "init" subcommand.
type InitController struct {
	command  commands.Init
	prompter repositories.Prompter
}

// NewInitController creates a new InitController.
func NewInitController(command commands.Init, prompter repositories.Prompter) *InitController {
	return &InitController{command: command, prompter: prompter}
}

// GetBind returns the Cobra command metadata for the init controller.
func (it *InitController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "init",
		Short: "Initialize the project configuration",
		Long: `Write the ` + entities.SettingsFileName + ` configuration template.

Prompts for the target framework. If the file already exists the
command does nothing and exits successfully.`,
	}
}

// Execute writes the configuration template unless one already exists.
func (it *InitController) Execute(cmd *cobra.Command, _ []string) error {
	projectRoot, err := resolveProjectRoot(cmd)
	if err != nil {
		return err
	}

	it.prompter.Intro("loom")

	created, execErr := it.command.Execute(cmd.Context(), commands.InitOptions{
		ProjectRoot: projectRoot,
	})
	if execErr != nil {
		if errors.Is(execErr, entities.ErrCancelled) {
			it.prompter.Cancel("Operation cancelled.")
		}
		return execErr
	}

	if !created {
		it.prompter.Info("%s already exists, nothing to do.", entities.SettingsFileName)
		it.prompter.Outro("Already initialized.")
		return nil
	}

	it.prompter.Success("Created %s", entities.SettingsFileName)
	it.prompter.Outro("Project initialized. Add components with: loom add button card")
	return nil
}
