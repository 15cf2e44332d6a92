package entities

// Report summarizes a single add run. Installed and Failed keep the
// selection order; together they partition the input selection, because
// one component's failure never aborts the rest of the batch.
type Report struct {
	Installed []string
	Failed    []string

	// Manager is the name of the package manager that was used.
	Manager string

	// General holds the baseline dependencies shared by all components.
	General *DependencySet

	// Primitives holds the UI-primitive dependencies that only specific
	// components pulled in.
	Primitives *DependencySet
}
