package commands

import (
	"fmt"

	"github.com/loomkit/loom/internal/domain/entities"
)

// aggregateDependencies reads every selected component and unions the
// declared dependencies into two sets: the general baseline shared by all
// components and the UI-primitive packages only specific components need.
// Set union is commutative, so input order and duplicates do not affect
// the result.
func (it *AddCommand) aggregateDependencies(
	projectRoot string,
	names []string,
) (*entities.DependencySet, *entities.DependencySet, error) {
	general := entities.NewDependencySet()
	primitives := entities.NewDependencySet()

	for _, name := range names {
		component, err := it.components.Read(projectRoot, name)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to aggregate dependencies for %q: %w", name, err)
		}

		general.Add(component.Dependencies...)
		primitives.Add(component.Primitives...)
	}

	return general, primitives, nil
}
