package repositories

import "context"

// InstallerRepository installs npm packages into the consumer project using
// a detected package manager.
type InstallerRepository interface {
	// Install runs one install command for all packages. It is a no-op when
	// the package list is empty and returns an error when the subprocess
	// exits non-zero.
	Install(ctx context.Context, projectRoot string, manager PackageManagerRepository, packages []string) error
}
