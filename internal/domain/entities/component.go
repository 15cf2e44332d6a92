package entities

// File is a single source file belonging to a component.
type File struct {
	Name    string
	Content []byte
}

// Component is a named, reusable UI source file plus the npm packages it
// needs at runtime. Components are read from the library's source directory
// and are immutable once read.
type Component struct {
	Name  string
	Files []File

	// Dependencies holds the shared baseline packages every component needs.
	Dependencies []string

	// Primitives holds the UI-primitive packages required only by this
	// component (e.g. "@radix-ui/react-slot" for button).
	Primitives []string
}
