package controllers

import (
	"go.uber.org/dig"

	"github.com/loomkit/loom/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewAddController); err != nil {
		return err
	}
	if err := container.Provide(NewInitController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	addController *AddController,
	initController *InitController,
) *[]entities.Controller {
	return &[]entities.Controller{
		addController,
		initController,
	}
}
