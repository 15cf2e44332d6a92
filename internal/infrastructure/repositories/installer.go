package repositories

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	domainRepos "github.com/loomkit/loom/internal/domain/repositories"
)

// DependencyInstaller shells out to the detected package manager with the
// aggregated dependency list, one command per batch.
type DependencyInstaller struct {
	runner domainRepos.CommandRunner
}

// NewDependencyInstaller creates a new DependencyInstaller.
func NewDependencyInstaller(runner domainRepos.CommandRunner) *DependencyInstaller {
	return &DependencyInstaller{runner: runner}
}

// Install runs one install command for all packages. An empty package list
// is a no-op. The subprocess inherits the standard streams and runs
// synchronously without a timeout.
func (it *DependencyInstaller) Install(
	ctx context.Context,
	projectRoot string,
	manager domainRepos.PackageManagerRepository,
	packages []string,
) error {
	if len(packages) == 0 {
		return nil
	}

	argv := manager.InstallCommand(packages)
	logger.Infof("Installing %d dependencies: %s", len(packages), strings.Join(argv, " "))

	if err := it.runner.Run(ctx, projectRoot, argv); err != nil {
		return fmt.Errorf("failed to install dependencies with %s: %w", manager.Name(), err)
	}
	return nil
}
