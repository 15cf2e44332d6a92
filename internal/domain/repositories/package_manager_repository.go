package repositories

// PackageManagerRepository abstracts a JavaScript package manager
// (npm, yarn, pnpm). Detection is based purely on lockfile presence;
// lockfiles are never parsed.
type PackageManagerRepository interface {
	// Name returns the manager identifier (e.g. "npm").
	Name() string

	// Detect returns true if the project uses this manager.
	Detect(projectRoot string) bool

	// InstallCommand returns the full argv that installs the given
	// packages, e.g. ["yarn", "add", "clsx", "tailwind-merge"].
	InstallCommand(packages []string) []string
}
