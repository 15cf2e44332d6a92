package commands

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/loomkit/loom/internal/domain/entities"
	"github.com/loomkit/loom/internal/domain/repositories"
)

// Init is the interface for the init command.
type Init interface {
	Execute(ctx context.Context, opts InitOptions) (bool, error)
}

// InitOptions holds runtime options for a single init run.
type InitOptions struct {
	ProjectRoot string
}

// InitCommand writes the components.yml template after prompting for the
// target framework. An existing file makes the whole run a no-op.
type InitCommand struct {
	prompter repositories.Prompter
}

// NewInitCommand creates a new InitCommand.
func NewInitCommand(prompter repositories.Prompter) *InitCommand {
	return &InitCommand{prompter: prompter}
}

// Execute writes the configuration template. It returns false with a nil
// error when components.yml already exists (zero writes, success).
func (it *InitCommand) Execute(ctx context.Context, opts InitOptions) (bool, error) {
	path := entities.SettingsPath(opts.ProjectRoot)
	if _, err := os.Stat(path); err == nil {
		logger.Debugf("%s already exists, skipping", path)
		return false, nil
	}

	stack, err := it.prompter.Select(ctx, "Which stack are you using?", entities.Stacks())
	if err != nil {
		return false, err
	}

	settings := entities.NewDefaultSettings(stack)
	if writeErr := settings.Write(path); writeErr != nil {
		return false, fmt.Errorf("failed to initialize project: %w", writeErr)
	}

	return true, nil
}
