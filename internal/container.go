package internal

import (
	"go.uber.org/dig"

	"github.com/loomkit/loom/internal/domain/commands"
	"github.com/loomkit/loom/internal/domain/entities"
	"github.com/loomkit/loom/internal/infrastructure/controllers"
	"github.com/loomkit/loom/internal/infrastructure/prompts"
	"github.com/loomkit/loom/internal/infrastructure/repositories"
)

// AppInternal exposes the wired controllers to the entrypoint.
type AppInternal struct {
	controllers []entities.Controller
}

// NewAppInternal creates the application context from the controller slice.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

// GetControllers returns all registered controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// RegisterProviders registers all internal providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register all layers (bottom-up: infrastructure repos -> prompts -> domain entities -> domain commands -> controllers)
	if err := repositories.RegisterProviders(container); err != nil {
		return err
	}
	if err := prompts.RegisterProviders(container); err != nil {
		return err
	}
	if err := entities.RegisterProviders(container); err != nil {
		return err
	}
	if err := commands.RegisterProviders(container); err != nil {
		return err
	}
	if err := controllers.RegisterProviders(container); err != nil {
		return err
	}

	// Register the main app internal
	if err := container.Provide(NewAppInternal); err != nil {
		return err
	}

	return nil
}
