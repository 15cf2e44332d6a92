package repositories

import (
	"github.com/loomkit/loom/internal/domain/entities"
)

// ComponentRepository abstracts the component library: where component
// sources live, what dependencies they declare, and how an installed copy
// lands in the consumer project.
type ComponentRepository interface {
	// Read loads the component with the given name. It returns
	// entities.ErrComponentNotFound (wrapped) when no matching source file
	// exists. Read has no side effects and is safe to repeat.
	Read(projectRoot, name string) (*entities.Component, error)

	// List returns the sorted names of every available component in the
	// source directory. A missing directory yields an empty list.
	List(projectRoot string) ([]string, error)

	// Install writes the component's files into the project's component
	// directory, creating it if absent. Existing files are overwritten.
	Install(projectRoot string, component *entities.Component) error
}
