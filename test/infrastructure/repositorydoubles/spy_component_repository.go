//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations — no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"

	"github.com/loomkit/loom/internal/domain/entities"
	"github.com/loomkit/loom/internal/domain/repositories"
)

// SpyComponentRepository implements repositories.ComponentRepository as a
// configurable spy backed by an in-memory component map.
type SpyComponentRepository struct {
	// --- Read ---
	Components map[string]*entities.Component // name -> component
	ReadErrs   map[string]error               // name -> forced error
	// spy: names requested, in order (includes re-reads)
	ReadNames []string

	// --- List ---
	Names   []string
	ListErr error

	// --- Install ---
	InstallErrs map[string]error // name -> forced error
	// spy: components written, in order
	InstalledNames []string
}

var _ repositories.ComponentRepository = (*SpyComponentRepository)(nil)

func (r *SpyComponentRepository) Read(_, name string) (*entities.Component, error) {
	r.ReadNames = append(r.ReadNames, name)

	if err, ok := r.ReadErrs[name]; ok {
		return nil, err
	}
	if component, ok := r.Components[name]; ok {
		return component, nil
	}
	return nil, fmt.Errorf("%q: %w", name, entities.ErrComponentNotFound)
}

func (r *SpyComponentRepository) List(_ string) ([]string, error) {
	return r.Names, r.ListErr
}

func (r *SpyComponentRepository) Install(_ string, component *entities.Component) error {
	if err, ok := r.InstallErrs[component.Name]; ok {
		return err
	}
	r.InstalledNames = append(r.InstalledNames, component.Name)
	return nil
}
