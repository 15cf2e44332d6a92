package prompts

import (
	"go.uber.org/dig"

	domainRepos "github.com/loomkit/loom/internal/domain/repositories"
)

// RegisterProviders registers all prompt providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewTerminalPrompter); err != nil {
		return err
	}
	if err := container.Provide(func(impl *TerminalPrompter) domainRepos.Prompter {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
