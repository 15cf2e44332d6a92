package repositories

import (
	domainRepos "github.com/loomkit/loom/internal/domain/repositories"
)

// ManagerRegistry holds the package managers in detection priority order,
// plus the fallback used when no lockfile matches.
type ManagerRegistry struct {
	ordered  []domainRepos.PackageManagerRepository
	fallback domainRepos.PackageManagerRepository
}

// NewManagerRegistry creates a registry with the given detection order and
// fallback manager.
func NewManagerRegistry(
	fallback domainRepos.PackageManagerRepository,
	ordered ...domainRepos.PackageManagerRepository,
) *ManagerRegistry {
	return &ManagerRegistry{
		ordered:  ordered,
		fallback: fallback,
	}
}

// Detect returns the first manager whose lockfile is present, checking in
// registration order, or the fallback when none matches. The priority order
// is a design choice, not a correctness requirement; it is pinned by tests.
func (r *ManagerRegistry) Detect(projectRoot string) domainRepos.PackageManagerRepository {
	for _, manager := range r.ordered {
		if manager.Detect(projectRoot) {
			return manager
		}
	}
	return r.fallback
}

// Get returns the manager with the given name, or nil if not registered.
func (r *ManagerRegistry) Get(name string) domainRepos.PackageManagerRepository {
	for _, manager := range append(r.ordered, r.fallback) {
		if manager.Name() == name {
			return manager
		}
	}
	return nil
}

// Names returns the registered manager names in priority order, fallback last.
func (r *ManagerRegistry) Names() []string {
	names := make([]string, 0, len(r.ordered)+1)
	for _, manager := range r.ordered {
		names = append(names, manager.Name())
	}
	return append(names, r.fallback.Name())
}
