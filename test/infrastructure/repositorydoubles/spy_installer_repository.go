//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/loomkit/loom/internal/domain/repositories"
)

// InstallCall records a single invocation of Install.
type InstallCall struct {
	ProjectRoot string
	Manager     string
	Packages    []string
}

// SpyInstallerRepository implements repositories.InstallerRepository as a
// configurable spy.
type SpyInstallerRepository struct {
	InstallErr error
	// spy: calls received
	Calls []InstallCall
}

var _ repositories.InstallerRepository = (*SpyInstallerRepository)(nil)

func (i *SpyInstallerRepository) Install(
	_ context.Context,
	projectRoot string,
	manager repositories.PackageManagerRepository,
	packages []string,
) error {
	i.Calls = append(i.Calls, InstallCall{
		ProjectRoot: projectRoot,
		Manager:     manager.Name(),
		Packages:    packages,
	})
	return i.InstallErr
}
