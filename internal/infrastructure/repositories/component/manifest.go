package component

import "strings"

// Manifest declares the npm packages behind the component library: a
// baseline every component shares, and per-component UI-primitive extras.
// Keeping this declarative avoids growing name checks in the reader as
// components are added.
type Manifest struct {
	baseline   []string
	primitives map[string][]string // lowercased component name -> extra packages
}

// DefaultManifest returns the manifest for the bundled component library.
func DefaultManifest() Manifest {
	return Manifest{
		baseline: []string{
			"class-variance-authority",
			"clsx",
			"tailwind-merge",
		},
		primitives: map[string][]string{
			"button": {"@radix-ui/react-slot"},
		},
	}
}

// Baseline returns a copy of the shared baseline packages.
func (m Manifest) Baseline() []string {
	return append([]string(nil), m.baseline...)
}

// PrimitivesFor returns a copy of the extra packages declared for the given
// component name. The match is case-insensitive.
func (m Manifest) PrimitivesFor(name string) []string {
	extras, ok := m.primitives[strings.ToLower(name)]
	if !ok {
		return nil
	}
	return append([]string(nil), extras...)
}
