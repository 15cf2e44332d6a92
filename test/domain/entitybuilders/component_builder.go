//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/loomkit/loom/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// ComponentBuilder helps create test components with a fluent interface.
type ComponentBuilder struct {
	*testkit.BaseBuilder
	name         string
	files        []entities.File
	dependencies []string
	primitives   []string
}

// NewComponentBuilder creates a new component builder with sensible defaults.
func NewComponentBuilder() *ComponentBuilder {
	return &ComponentBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "button",
		files: []entities.File{
			{Name: "button.tsx", Content: []byte("export const Button = () => null\n")},
		},
		dependencies: []string{"class-variance-authority", "clsx", "tailwind-merge"},
		primitives:   []string{"@radix-ui/react-slot"},
	}
}

// WithName sets the component name and renames its single default file.
func (b *ComponentBuilder) WithName(name string) *ComponentBuilder {
	b.name = name
	b.files = []entities.File{
		{Name: name + ".tsx", Content: []byte("export const X = () => null\n")},
	}
	return b
}

// WithFiles replaces the component files.
func (b *ComponentBuilder) WithFiles(files ...entities.File) *ComponentBuilder {
	b.files = files
	return b
}

// WithDependencies sets the baseline dependency list.
func (b *ComponentBuilder) WithDependencies(dependencies ...string) *ComponentBuilder {
	b.dependencies = dependencies
	return b
}

// WithPrimitives sets the UI-primitive dependency list.
func (b *ComponentBuilder) WithPrimitives(primitives ...string) *ComponentBuilder {
	b.primitives = primitives
	return b
}

// Build creates the component (satisfies testkit.Builder interface).
func (b *ComponentBuilder) Build() interface{} {
	return b.BuildComponent()
}

// BuildComponent creates the component with a concrete return type.
func (b *ComponentBuilder) BuildComponent() *entities.Component {
	return &entities.Component{
		Name:         b.name,
		Files:        b.files,
		Dependencies: b.dependencies,
		Primitives:   b.primitives,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ComponentBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	fresh := NewComponentBuilder()
	b.name = fresh.name
	b.files = fresh.files
	b.dependencies = fresh.dependencies
	b.primitives = fresh.primitives
	return b
}

// Clone creates a deep copy of the ComponentBuilder.
func (b *ComponentBuilder) Clone() testkit.Builder {
	return &ComponentBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:         b.name,
		files:        append([]entities.File(nil), b.files...),
		dependencies: append([]string(nil), b.dependencies...),
		primitives:   append([]string(nil), b.primitives...),
	}
}
