//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/loomkit/loom/internal/domain/repositories"
)

// StubPackageManagerRepository implements repositories.PackageManagerRepository
// with fixed answers.
type StubPackageManagerRepository struct {
	ManagerName  string
	DetectResult bool
	Command      []string // prefix prepended to the package list
}

var _ repositories.PackageManagerRepository = (*StubPackageManagerRepository)(nil)

func (m *StubPackageManagerRepository) Name() string { return m.ManagerName }

func (m *StubPackageManagerRepository) Detect(_ string) bool { return m.DetectResult }

func (m *StubPackageManagerRepository) InstallCommand(packages []string) []string {
	return append(append([]string(nil), m.Command...), packages...)
}
