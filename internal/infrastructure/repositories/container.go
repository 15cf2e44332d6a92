package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/loomkit/loom/internal/domain/repositories"
	componentRepo "github.com/loomkit/loom/internal/infrastructure/repositories/component"
	managerRepo "github.com/loomkit/loom/internal/infrastructure/repositories/manager"
	shellRepo "github.com/loomkit/loom/internal/infrastructure/repositories/shell"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register manager registry with detection priority: yarn, pnpm, npm fallback
	if err := container.Provide(func() *ManagerRegistry {
		return NewManagerRegistry(
			managerRepo.NewNpmRepository(),
			managerRepo.NewYarnRepository(),
			managerRepo.NewPnpmRepository(),
		)
	}); err != nil {
		return err
	}

	// Register the filesystem component repository
	if err := container.Provide(componentRepo.NewFileSystemRepository); err != nil {
		return err
	}
	if err := container.Provide(func(impl *componentRepo.FileSystemRepository) domainRepos.ComponentRepository {
		return impl
	}); err != nil {
		return err
	}

	// Register the command runner and the installer on top of it
	if err := container.Provide(shellRepo.NewExecCommandRunner); err != nil {
		return err
	}
	if err := container.Provide(func(impl *shellRepo.ExecCommandRunner) domainRepos.CommandRunner {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(NewDependencyInstaller); err != nil {
		return err
	}
	if err := container.Provide(func(impl *DependencyInstaller) domainRepos.InstallerRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
